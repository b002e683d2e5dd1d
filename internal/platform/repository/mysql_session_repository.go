package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avocadohq/admin-console/internal/database"
	apperrors "github.com/avocadohq/admin-console/internal/errors"
	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
)

// MySQLSessionRepository reads auth provider sessions from MySQL.
type MySQLSessionRepository struct {
	db *sql.DB
}

// GetByToken retrieves a session by its token. Returns ErrSessionNotFound
// when no row matches.
func (m *MySQLSessionRepository) GetByToken(ctx context.Context, token string) (*platformDomain.Session, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT token, user_id, expires_at, created_at
			  FROM sessions
			  WHERE token = ?`

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

// NewMySQLSessionRepository creates a new MySQL session repository.
func NewMySQLSessionRepository(db *sql.DB) *MySQLSessionRepository {
	return &MySQLSessionRepository{db: db}
}
