package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avocadohq/admin-console/internal/database"
	apperrors "github.com/avocadohq/admin-console/internal/errors"
	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
)

// MySQLOrganizationRepository implements Organization persistence for MySQL.
type MySQLOrganizationRepository struct {
	db *sql.DB
}

const mysqlOrganizationSelect = `
	SELECT o.id, o.slug, o.name, o.platform_status, COALESCE(s.owner_user_id, ''), o.created_at, o.updated_at
	FROM organizations o
	LEFT JOIN subscriptions s ON s.organization_id = o.id`

// Get retrieves an Organization by ID. Returns ErrOrganizationNotFound when
// no row matches.
func (m *MySQLOrganizationRepository) Get(ctx context.Context, id string) (*platformDomain.Organization, error) {
	querier := database.GetTx(ctx, m.db)

	query := mysqlOrganizationSelect + ` WHERE o.id = ?`

	var org platformDomain.Organization
	var status string
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&org.ID,
		&org.Slug,
		&org.Name,
		&status,
		&org.OwnerUserID,
		&org.CreatedAt,
		&org.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, platformDomain.ErrOrganizationNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get organization")
	}

	org.PlatformStatus = platformDomain.OrganizationStatus(status)
	return &org, nil
}

// List retrieves organizations ordered by creation, newest first.
func (m *MySQLOrganizationRepository) List(ctx context.Context, offset, limit int) ([]*platformDomain.Organization, error) {
	querier := database.GetTx(ctx, m.db)

	query := mysqlOrganizationSelect + `
	ORDER BY o.created_at DESC
	LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list organizations")
	}
	defer func() {
		_ = rows.Close()
	}()

	organizations := make([]*platformDomain.Organization, 0)
	for rows.Next() {
		var org platformDomain.Organization
		var status string

		err := rows.Scan(
			&org.ID,
			&org.Slug,
			&org.Name,
			&status,
			&org.OwnerUserID,
			&org.CreatedAt,
			&org.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan organization")
		}

		org.PlatformStatus = platformDomain.OrganizationStatus(status)
		organizations = append(organizations, &org)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate organizations")
	}

	return organizations, nil
}

// UpdatePlatformStatus transitions a tenant's platform status. Returns
// ErrOrganizationNotFound when no row matches.
func (m *MySQLOrganizationRepository) UpdatePlatformStatus(ctx context.Context, id string, status platformDomain.OrganizationStatus) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE organizations
			  SET platform_status = ?, updated_at = NOW()
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update organization platform status")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check organization update result")
	}
	if affected == 0 {
		return platformDomain.ErrOrganizationNotFound
	}

	return nil
}

// GetOwnerMemberUserID returns the user id of the earliest member with an
// owner role, case-insensitive. Returns ErrOwnerMemberNotFound when the
// tenant has no such member.
func (m *MySQLOrganizationRepository) GetOwnerMemberUserID(ctx context.Context, organizationID string) (string, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT user_id
			  FROM organization_members
			  WHERE organization_id = ? AND LOWER(role) = 'owner'
			  ORDER BY created_at ASC
			  LIMIT 1`

	var userID string
	err := querier.QueryRowContext(ctx, query, organizationID).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", platformDomain.ErrOwnerMemberNotFound
		}
		return "", apperrors.Wrap(err, "failed to get organization owner member")
	}

	return userID, nil
}

// NewMySQLOrganizationRepository creates a new MySQL Organization repository.
func NewMySQLOrganizationRepository(db *sql.DB) *MySQLOrganizationRepository {
	return &MySQLOrganizationRepository{db: db}
}
