package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, mock
}

func adminRowColumns() []string {
	return []string{"id", "user_id", "email", "role", "status", "must_change_password", "temp_password_hash", "created_at", "updated_at"}
}

func testAdmin() *platformDomain.PlatformAdmin {
	now := time.Now().UTC()
	return &platformDomain.PlatformAdmin{
		ID:                 uuid.Must(uuid.NewV7()),
		UserID:             "user_admin_1",
		Email:              "master@example.com",
		Role:               platformDomain.AdminRoleMaster,
		Status:             platformDomain.AdminStatusActive,
		MustChangePassword: false,
		TempPasswordHash:   "$argon2id$hash",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func TestPostgreSQLAdminRepositoryCreate(t *testing.T) {
	t.Run("inserts the admin row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLAdminRepository(db)
		admin := testAdmin()

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO platform_admins")).
			WithArgs(admin.ID, admin.UserID, admin.Email, "MASTER", "ACTIVE", false, admin.TempPasswordHash, admin.CreatedAt, admin.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Create(context.Background(), admin)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps unique violations to already exists", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLAdminRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO platform_admins")).
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "platform_admins_user_id_key"`))

		err := repo.Create(context.Background(), testAdmin())
		assert.ErrorIs(t, err, platformDomain.ErrAdminAlreadyExists)
	})
}

func TestPostgreSQLAdminRepositoryGetByUserID(t *testing.T) {
	t.Run("returns the matching admin", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLAdminRepository(db)
		admin := testAdmin()

		rows := sqlmock.NewRows(adminRowColumns()).
			AddRow(admin.ID, admin.UserID, admin.Email, "MASTER", "ACTIVE", false, admin.TempPasswordHash, admin.CreatedAt, admin.UpdatedAt)

		mock.ExpectQuery(regexp.QuoteMeta("FROM platform_admins")).
			WithArgs(admin.UserID).
			WillReturnRows(rows)

		got, err := repo.GetByUserID(context.Background(), admin.UserID)
		require.NoError(t, err)
		assert.Equal(t, admin.ID, got.ID)
		assert.Equal(t, platformDomain.AdminRoleMaster, got.Role)
		assert.Equal(t, platformDomain.AdminStatusActive, got.Status)
	})

	t.Run("returns not found for unknown user", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLAdminRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM platform_admins")).
			WithArgs("user_missing").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.GetByUserID(context.Background(), "user_missing")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, platformDomain.ErrAdminNotFound)
	})
}

func TestPostgreSQLAdminRepositoryList(t *testing.T) {
	t.Run("returns empty slice when no admins exist", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLAdminRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM platform_admins")).
			WithArgs(50, 0).
			WillReturnRows(sqlmock.NewRows(adminRowColumns()))

		admins, err := repo.List(context.Background(), 0, 50)
		require.NoError(t, err)
		assert.NotNil(t, admins)
		assert.Empty(t, admins)
	})

	t.Run("scans multiple rows", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLAdminRepository(db)
		first := testAdmin()
		second := testAdmin()
		second.UserID = "user_admin_2"
		second.Role = platformDomain.AdminRoleAdmin

		rows := sqlmock.NewRows(adminRowColumns()).
			AddRow(first.ID, first.UserID, first.Email, "MASTER", "ACTIVE", false, first.TempPasswordHash, first.CreatedAt, first.UpdatedAt).
			AddRow(second.ID, second.UserID, second.Email, "ADMIN", "ACTIVE", true, second.TempPasswordHash, second.CreatedAt, second.UpdatedAt)

		mock.ExpectQuery(regexp.QuoteMeta("FROM platform_admins")).
			WithArgs(50, 0).
			WillReturnRows(rows)

		admins, err := repo.List(context.Background(), 0, 50)
		require.NoError(t, err)
		require.Len(t, admins, 2)
		assert.Equal(t, platformDomain.AdminRoleAdmin, admins[1].Role)
		assert.True(t, admins[1].MustChangePassword)
	})
}

func TestPostgreSQLAdminRepositoryUpdateStatus(t *testing.T) {
	t.Run("updates the status", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLAdminRepository(db)
		id := uuid.Must(uuid.NewV7())

		mock.ExpectExec(regexp.QuoteMeta("UPDATE platform_admins")).
			WithArgs("DISABLED", id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), id, platformDomain.AdminStatusDisabled)
		assert.NoError(t, err)
	})

	t.Run("returns not found when no row matches", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLAdminRepository(db)
		id := uuid.Must(uuid.NewV7())

		mock.ExpectExec(regexp.QuoteMeta("UPDATE platform_admins")).
			WithArgs("DISABLED", id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), id, platformDomain.AdminStatusDisabled)
		assert.ErrorIs(t, err, platformDomain.ErrAdminNotFound)
	})
}

func TestPostgreSQLAdminRepositoryCountActiveMasters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgreSQLAdminRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs("MASTER", "ACTIVE").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountActiveMasters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
