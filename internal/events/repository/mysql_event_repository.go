package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/avocadohq/admin-console/internal/database"
	apperrors "github.com/avocadohq/admin-console/internal/errors"
	eventsDomain "github.com/avocadohq/admin-console/internal/events/domain"
	eventsUseCase "github.com/avocadohq/admin-console/internal/events/usecase"
)

// MySQLEventRepository implements PlatformEvent persistence for MySQL.
// Stores UUIDs as BINARY(16) with transaction support via database.GetTx().
type MySQLEventRepository struct {
	db *sql.DB
}

// Create inserts a new PlatformEvent. Handles nil metadata as database NULL.
func (m *MySQLEventRepository) Create(ctx context.Context, event *eventsDomain.PlatformEvent) error {
	querier := database.GetTx(ctx, m.db)

	var metadataJSON []byte
	var err error

	if event.Metadata != nil {
		metadataJSON, err = json.Marshal(event.Metadata)
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal platform event metadata")
		}
	}

	query := `INSERT INTO platform_events (id, source, action, severity, actor_user_id, actor_admin_id, organization_id, target_type, target_id, metadata, signature, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		event.ID[:],
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

// List retrieves platform events ordered by creation descending (newest
// first) with optional organization and action filters.
func (m *MySQLEventRepository) List(
	ctx context.Context,
	filter *eventsUseCase.ListEventsFilter,
	offset, limit int,
) ([]*eventsDomain.PlatformEvent, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, source, action, severity, actor_user_id, actor_admin_id, organization_id, target_type, target_id, metadata, signature, created_at
			  FROM platform_events`

	args := make([]any, 0, 6)
	conditions := make([]string, 0, 4)
	if filter != nil {
		if filter.OrganizationID != "" {
			args = append(args, filter.OrganizationID)
			conditions = append(conditions, "organization_id = ?")
		}
		if filter.Action != "" {
			args = append(args, filter.Action)
			conditions = append(conditions, "action = ?")
		}
		if !filter.From.IsZero() {
			args = append(args, filter.From)
			conditions = append(conditions, "created_at >= ?")
		}
		if !filter.To.IsZero() {
			args = append(args, filter.To)
			conditions = append(conditions, "created_at <= ?")
		}
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, limit, offset)
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list platform events")
	}
	defer func() {
		_ = rows.Close()
	}()

	events := make([]*eventsDomain.PlatformEvent, 0)
	for rows.Next() {
		event, err := scanMySQLEvent(rows)
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

func scanMySQLEvent(rows *sql.Rows) (*eventsDomain.PlatformEvent, error) {
	var event eventsDomain.PlatformEvent
	var idBytes []byte
	var severity string
	var metadataJSON []byte

	err := rows.Scan(
		&idBytes,
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

	event.ID, err = uuid.FromBytes(idBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to parse platform event id")
	}

	event.Severity = eventsDomain.Severity(severity)

	if metadataJSON != nil {
		if err := json.Unmarshal(metadataJSON, &event.Metadata); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal platform event metadata")
		}
	}

	return &event, nil
}

// NewMySQLEventRepository creates a new MySQL PlatformEvent repository.
func NewMySQLEventRepository(db *sql.DB) *MySQLEventRepository {
	return &MySQLEventRepository{db: db}
}
