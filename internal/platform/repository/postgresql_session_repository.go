// Package repository provides PostgreSQL and MySQL implementations of the
// platform persistence interfaces.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avocadohq/admin-console/internal/database"
	apperrors "github.com/avocadohq/admin-console/internal/errors"
	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
)

// PostgreSQLSessionRepository reads auth provider sessions from PostgreSQL.
// The sessions table is written by the auth provider; this repository only
// resolves tokens.
type PostgreSQLSessionRepository struct {
	db *sql.DB
}

// GetByToken retrieves a session by its token. Returns ErrSessionNotFound
// when no row matches.
func (p *PostgreSQLSessionRepository) GetByToken(ctx context.Context, token string) (*platformDomain.Session, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT token, user_id, expires_at, created_at
			  FROM sessions
			  WHERE token = $1`

	var session platformDomain.Session
	err := querier.QueryRowContext(ctx, query, token).Scan(
		&session.Token,
		&session.UserID,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, platformDomain.ErrSessionNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get session")
	}

	return &session, nil
}

// NewPostgreSQLSessionRepository creates a new PostgreSQL session repository.
func NewPostgreSQLSessionRepository(db *sql.DB) *PostgreSQLSessionRepository {
	return &PostgreSQLSessionRepository{db: db}
}
