// Package repository provides PostgreSQL and MySQL implementations of the
// platform event persistence interface.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/avocadohq/admin-console/internal/database"
	apperrors "github.com/avocadohq/admin-console/internal/errors"
	eventsDomain "github.com/avocadohq/admin-console/internal/events/domain"
	eventsUseCase "github.com/avocadohq/admin-console/internal/events/usecase"
)

// PostgreSQLEventRepository implements PlatformEvent persistence for
// PostgreSQL. Uses native UUID types with transaction support via
// database.GetTx().
type PostgreSQLEventRepository struct {
	db *sql.DB
}

// Create inserts a new PlatformEvent. Handles nil metadata as database NULL.
func (p *PostgreSQLEventRepository) Create(ctx context.Context, event *eventsDomain.PlatformEvent) error {
	querier := database.GetTx(ctx, p.db)

	var metadataJSON []byte
	var err error

	if event.Metadata != nil {
		metadataJSON, err = json.Marshal(event.Metadata)
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal platform event metadata")
		}
	}

	query := `INSERT INTO platform_events (id, source, action, severity, actor_user_id, actor_admin_id, organization_id, target_type, target_id, metadata, signature, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err = querier.ExecContext(
		ctx,
		query,
		event.ID,
		event.Source,
		event.Action,
		string(event.Severity),
		event.ActorUserID,
		event.ActorAdminID,
		event.OrganizationID,
		event.TargetType,
		event.TargetID,
		metadataJSON,
		event.Signature,
		event.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create platform event")
	}

	return nil
}

// List retrieves platform events ordered by ID descending (newest first) with
// optional organization and action filters.
func (p *PostgreSQLEventRepository) List(
	ctx context.Context,
	filter *eventsUseCase.ListEventsFilter,
	offset, limit int,
) ([]*eventsDomain.PlatformEvent, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, source, action, severity, actor_user_id, actor_admin_id, organization_id, target_type, target_id, metadata, signature, created_at
			  FROM platform_events`

	args := make([]any, 0, 6)
	conditions := make([]string, 0, 4)
	if filter != nil {
		if filter.OrganizationID != "" {
			args = append(args, filter.OrganizationID)
			conditions = append(conditions, fmt.Sprintf("organization_id = $%d", len(args)))
		}
		if filter.Action != "" {
			args = append(args, filter.Action)
			conditions = append(conditions, fmt.Sprintf("action = $%d", len(args)))
		}
		if !filter.From.IsZero() {
			args = append(args, filter.From)
			conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
		}
		if !filter.To.IsZero() {
			args = append(args, filter.To)
			conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
		}
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list platform events")
	}
	defer func() {
		_ = rows.Close()
	}()

	events := make([]*eventsDomain.PlatformEvent, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate platform events")
	}

	return events, nil
}

func scanEvent(rows *sql.Rows) (*eventsDomain.PlatformEvent, error) {
	var event eventsDomain.PlatformEvent
	var severity string
	var metadataJSON []byte

	err := rows.Scan(
		&event.ID,
		&event.Source,
		&event.Action,
		&severity,
		&event.ActorUserID,
		&event.ActorAdminID,
		&event.OrganizationID,
		&event.TargetType,
		&event.TargetID,
		&metadataJSON,
		&event.Signature,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to scan platform event")
	}

	event.Severity = eventsDomain.Severity(severity)

	if metadataJSON != nil {
		if err := json.Unmarshal(metadataJSON, &event.Metadata); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal platform event metadata")
		}
	}

	return &event, nil
}

// NewPostgreSQLEventRepository creates a new PostgreSQL PlatformEvent repository.
func NewPostgreSQLEventRepository(db *sql.DB) *PostgreSQLEventRepository {
	return &PostgreSQLEventRepository{db: db}
}
