package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventsDomain "github.com/avocadohq/admin-console/internal/events/domain"
	eventsUseCase "github.com/avocadohq/admin-console/internal/events/usecase"
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

func eventRowColumns() []string {
	return []string{"id", "source", "action", "severity", "actor_user_id", "actor_admin_id", "organization_id", "target_type", "target_id", "metadata", "signature", "created_at"}
}

func TestPostgreSQLEventRepositoryCreate(t *testing.T) {
	t.Run("inserts the event with metadata JSON", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLEventRepository(db)

		event := &eventsDomain.PlatformEvent{
			ID:             uuid.Must(uuid.NewV7()),
			Source:         eventsDomain.DefaultSource,
			Action:         eventsDomain.ActionImpersonationRequested,
			Severity:       eventsDomain.SeverityInfo,
			ActorUserID:    "user_admin_1",
			ActorAdminID:   "padm_1",
			OrganizationID: "org_1",
			TargetType:     "user",
			TargetID:       "user_owner_1",
			Metadata:       map[string]any{"ip": "203.0.113.9"},
			Signature:      []byte{0x01, 0x02},
			CreatedAt:      time.Now().UTC(),
		}

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO platform_events")).
			WithArgs(event.ID, event.Source, event.Action, "INFO", event.ActorUserID, event.ActorAdminID,
				event.OrganizationID, event.TargetType, event.TargetID, []byte(`{"ip":"203.0.113.9"}`),
				event.Signature, event.CreatedAt).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Create(context.Background(), event)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil metadata is stored as NULL", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLEventRepository(db)

		event := &eventsDomain.PlatformEvent{
			ID:        uuid.Must(uuid.NewV7()),
			Source:    eventsDomain.DefaultSource,
			Action:    eventsDomain.ActionOrganizationBlocked,
			Severity:  eventsDomain.SeverityWarn,
			CreatedAt: time.Now().UTC(),
		}

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO platform_events")).
			WithArgs(event.ID, event.Source, event.Action, "WARN", "", "", "", "", "",
				nil, nil, event.CreatedAt).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Create(context.Background(), event)
		assert.NoError(t, err)
	})
}

func TestPostgreSQLEventRepositoryList(t *testing.T) {
	now := time.Now().UTC()

	t.Run("returns events without filters", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLEventRepository(db)
		id := uuid.Must(uuid.NewV7())

		rows := sqlmock.NewRows(eventRowColumns()).
			AddRow(id, "admin-console", eventsDomain.ActionImpersonationRequested, "INFO",
				"user_admin_1", "padm_1", "org_1", "user", "user_owner_1",
				[]byte(`{"ip":"203.0.113.9"}`), []byte{0x01}, now)

		mock.ExpectQuery(regexp.QuoteMeta("FROM platform_events")).
			WithArgs(50, 0).
			WillReturnRows(rows)

		events, err := repo.List(context.Background(), nil, 0, 50)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, id, events[0].ID)
		assert.Equal(t, "203.0.113.9", events[0].Metadata["ip"])
	})

	t.Run("applies organization and action filters", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLEventRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE organization_id = $1 AND action = $2")).
			WithArgs("org_1", eventsDomain.ActionOrganizationBlocked, 10, 0).
			WillReturnRows(sqlmock.NewRows(eventRowColumns()))

		filter := &eventsUseCase.ListEventsFilter{
			OrganizationID: "org_1",
			Action:         eventsDomain.ActionOrganizationBlocked,
		}
		events, err := repo.List(context.Background(), filter, 0, 10)
		require.NoError(t, err)
		assert.Empty(t, events)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NULL metadata yields nil map", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLEventRepository(db)
		id := uuid.Must(uuid.NewV7())

		rows := sqlmock.NewRows(eventRowColumns()).
			AddRow(id, "admin-console", eventsDomain.ActionAdminCreated, "INFO",
				"", "", "", "", "", nil, nil, now)

		mock.ExpectQuery(regexp.QuoteMeta("FROM platform_events")).
			WithArgs(50, 0).
			WillReturnRows(rows)

		events, err := repo.List(context.Background(), nil, 0, 50)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Nil(t, events[0].Metadata)
		assert.Nil(t, events[0].Signature)
	})
}
