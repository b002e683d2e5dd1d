package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/avocadohq/admin-console/internal/database"
	apperrors "github.com/avocadohq/admin-console/internal/errors"
	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
)

// PostgreSQLAdminRepository implements PlatformAdmin persistence for
// PostgreSQL. Uses native UUID types with transaction support via
// database.GetTx().
type PostgreSQLAdminRepository struct {
	db *sql.DB
}

const postgresAdminColumns = `id, user_id, email, role, status, must_change_password, temp_password_hash, created_at, updated_at`

// Create inserts a new PlatformAdmin. Returns ErrAdminAlreadyExists when the
// user already has an admin record.
func (p *PostgreSQLAdminRepository) Create(ctx context.Context, admin *platformDomain.PlatformAdmin) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO platform_admins (` + postgresAdminColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := querier.ExecContext(
		ctx,
		query,
		admin.ID,
		admin.UserID,
		admin.Email,
		string(admin.Role),
		string(admin.Status),
		admin.MustChangePassword,
		admin.TempPasswordHash,
		admin.CreatedAt,
		admin.UpdatedAt,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return platformDomain.ErrAdminAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create platform admin")
	}

	return nil
}

// Get retrieves a PlatformAdmin by ID. Returns ErrAdminNotFound when no row
// matches.
func (p *PostgreSQLAdminRepository) Get(ctx context.Context, id uuid.UUID) (*platformDomain.PlatformAdmin, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + postgresAdminColumns + `
			  FROM platform_admins
			  WHERE id = $1`

	return scanPostgresAdmin(querier.QueryRowContext(ctx, query, id))
}

// GetByUserID retrieves a PlatformAdmin by the auth provider user id.
// Returns ErrAdminNotFound when no row matches.
func (p *PostgreSQLAdminRepository) GetByUserID(ctx context.Context, userID string) (*platformDomain.PlatformAdmin, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + postgresAdminColumns + `
			  FROM platform_admins
			  WHERE user_id = $1`

	return scanPostgresAdmin(querier.QueryRowContext(ctx, query, userID))
}

// List retrieves platform admins ordered by creation, newest first.
func (p *PostgreSQLAdminRepository) List(ctx context.Context, offset, limit int) ([]*platformDomain.PlatformAdmin, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + postgresAdminColumns + `
			  FROM platform_admins
			  ORDER BY id DESC
			  LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list platform admins")
	}
	defer func() {
		_ = rows.Close()
	}()

	admins := make([]*platformDomain.PlatformAdmin, 0)
	for rows.Next() {
		var admin platformDomain.PlatformAdmin
		var role, status string

		err := rows.Scan(
			&admin.ID,
			&admin.UserID,
			&admin.Email,
			&role,
			&status,
			&admin.MustChangePassword,
			&admin.TempPasswordHash,
			&admin.CreatedAt,
			&admin.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan platform admin")
		}

		admin.Role = platformDomain.AdminRole(role)
		admin.Status = platformDomain.AdminStatus(status)
		admins = append(admins, &admin)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate platform admins")
	}

	return admins, nil
}

// UpdateStatus transitions an admin's status. Returns ErrAdminNotFound when
// no row matches.
func (p *PostgreSQLAdminRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status platformDomain.AdminStatus) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE platform_admins
			  SET status = $1, updated_at = NOW()
			  WHERE id = $2`

	result, err := querier.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update platform admin status")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check platform admin update result")
	}
	if affected == 0 {
		return platformDomain.ErrAdminNotFound
	}

	return nil
}

// CountActiveMasters counts admins with the MASTER role and ACTIVE status.
func (p *PostgreSQLAdminRepository) CountActiveMasters(ctx context.Context) (int, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT COUNT(*)
			  FROM platform_admins
			  WHERE role = $1 AND status = $2`

	var count int
	err := querier.QueryRowContext(ctx, query, string(platformDomain.AdminRoleMaster), string(platformDomain.AdminStatusActive)).Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count active master admins")
	}

	return count, nil
}

func scanPostgresAdmin(row *sql.Row) (*platformDomain.PlatformAdmin, error) {
	var admin platformDomain.PlatformAdmin
	var role, status string

	err := row.Scan(
		&admin.ID,
		&admin.UserID,
		&admin.Email,
		&role,
		&status,
		&admin.MustChangePassword,
		&admin.TempPasswordHash,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, platformDomain.ErrAdminNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get platform admin")
	}

	admin.Role = platformDomain.AdminRole(role)
	admin.Status = platformDomain.AdminStatus(status)
	return &admin, nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique
// constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}

// NewPostgreSQLAdminRepository creates a new PostgreSQL PlatformAdmin repository.
func NewPostgreSQLAdminRepository(db *sql.DB) *PostgreSQLAdminRepository {
	return &PostgreSQLAdminRepository{db: db}
}
