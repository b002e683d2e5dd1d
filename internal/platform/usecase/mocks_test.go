package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	eventsDomain "github.com/avocadohq/admin-console/internal/events/domain"
	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
)

// MockSessionRepository is a mock implementation of SessionRepository.
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) GetByToken(ctx context.Context, token string) (*platformDomain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platformDomain.Session), args.Error(1)
}

// MockAdminRepository is a mock implementation of AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *platformDomain.PlatformAdmin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) Get(ctx context.Context, id uuid.UUID) (*platformDomain.PlatformAdmin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platformDomain.PlatformAdmin), args.Error(1)
}

func (m *MockAdminRepository) GetByUserID(ctx context.Context, userID string) (*platformDomain.PlatformAdmin, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platformDomain.PlatformAdmin), args.Error(1)
}

func (m *MockAdminRepository) List(ctx context.Context, offset, limit int) ([]*platformDomain.PlatformAdmin, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*platformDomain.PlatformAdmin), args.Error(1)
}

func (m *MockAdminRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status platformDomain.AdminStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockAdminRepository) CountActiveMasters(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockOrganizationRepository is a mock implementation of OrganizationRepository.
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) Get(ctx context.Context, id string) (*platformDomain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platformDomain.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) List(ctx context.Context, offset, limit int) ([]*platformDomain.Organization, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*platformDomain.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) UpdatePlatformStatus(ctx context.Context, id string, status platformDomain.OrganizationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrganizationRepository) GetOwnerMemberUserID(ctx context.Context, organizationID string) (string, error) {
	args := m.Called(ctx, organizationID)
	return args.String(0), args.Error(1)
}

// MockEventRecorder is a mock implementation of EventRecorder.
type MockEventRecorder struct {
	mock.Mock
}

func (m *MockEventRecorder) Log(ctx context.Context, input *eventsDomain.LogEventInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

// passthroughTxManager runs the function without a real transaction.
type passthroughTxManager struct{}

func (passthroughTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func activeSession(userID string) *platformDomain.Session {
	return &platformDomain.Session{
		Token:     "sess_token_1",
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
		CreatedAt: time.Now().UTC(),
	}
}

func activeMasterAdmin(userID string) *platformDomain.PlatformAdmin {
	now := time.Now().UTC()
	return &platformDomain.PlatformAdmin{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    userID,
		Email:     "master@example.com",
		Role:      platformDomain.AdminRoleMaster,
		Status:    platformDomain.AdminStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
