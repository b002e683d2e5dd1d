package http

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
	platformUseCase "github.com/avocadohq/admin-console/internal/platform/usecase"
)

// MockAdminContextUseCase is a mock implementation of AdminContextUseCase.
type MockAdminContextUseCase struct {
	mock.Mock
}

func (m *MockAdminContextUseCase) Require(ctx context.Context, sessionToken string) (*platformDomain.AdminContext, error) {
	args := m.Called(ctx, sessionToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platformDomain.AdminContext), args.Error(1)
}

func (m *MockAdminContextUseCase) RequireMaster(ctx context.Context, sessionToken string) (*platformDomain.AdminContext, error) {
	args := m.Called(ctx, sessionToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platformDomain.AdminContext), args.Error(1)
}

// MockOrganizationUseCase is a mock implementation of OrganizationUseCase.
type MockOrganizationUseCase struct {
	mock.Mock
}

func (m *MockOrganizationUseCase) Get(ctx context.Context, id string) (*platformDomain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platformDomain.Organization), args.Error(1)
}

func (m *MockOrganizationUseCase) List(ctx context.Context, offset, limit int) ([]*platformDomain.Organization, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*platformDomain.Organization), args.Error(1)
}

func (m *MockOrganizationUseCase) SetPlatformStatus(ctx context.Context, input *platformUseCase.SetOrganizationStatusInput) (*platformDomain.Organization, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platformDomain.Organization), args.Error(1)
}

// MockAdminUseCase is a mock implementation of AdminUseCase.
type MockAdminUseCase struct {
	mock.Mock
}

func (m *MockAdminUseCase) Create(ctx context.Context, input *platformUseCase.CreateAdminInput) (*platformUseCase.CreateAdminOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platformUseCase.CreateAdminOutput), args.Error(1)
}

func (m *MockAdminUseCase) List(ctx context.Context, offset, limit int) ([]*platformDomain.PlatformAdmin, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*platformDomain.PlatformAdmin), args.Error(1)
}

func (m *MockAdminUseCase) SetStatus(ctx context.Context, input *platformUseCase.SetAdminStatusInput) (*platformDomain.PlatformAdmin, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platformDomain.PlatformAdmin), args.Error(1)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAdminContext() *platformDomain.AdminContext {
	return &platformDomain.AdminContext{
		Session: &platformDomain.Session{
			Token:     "sess_token_1",
			UserID:    "user_admin_1",
			ExpiresAt: time.Now().Add(time.Hour),
		},
		Admin: &platformDomain.PlatformAdmin{
			ID:     uuid.Must(uuid.NewV7()),
			UserID: "user_admin_1",
			Email:  "master@example.com",
			Role:   platformDomain.AdminRoleMaster,
			Status: platformDomain.AdminStatusActive,
		},
	}
}

func testOrganization() *platformDomain.Organization {
	now := time.Now().UTC().Truncate(time.Second)
	return &platformDomain.Organization{
		ID:             "org_1",
		Slug:           "acme",
		Name:           "Acme Inc",
		PlatformStatus: platformDomain.OrganizationStatusActive,
		OwnerUserID:    "user_owner_1",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func testAdmin() *platformDomain.PlatformAdmin {
	now := time.Now().UTC().Truncate(time.Second)
	return &platformDomain.PlatformAdmin{
		ID:                 uuid.Must(uuid.NewV7()),
		UserID:             "user_new_admin",
		Email:              "new-admin@example.com",
		Role:               platformDomain.AdminRoleAdmin,
		Status:             platformDomain.AdminStatusActive,
		MustChangePassword: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// adminContextInjector stores a fixed admin context on the request, standing
// in for SessionMiddleware in handler tests.
func adminContextInjector(adminCtx *platformDomain.AdminContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(WithAdminContext(c.Request.Context(), adminCtx))
		c.Next()
	}
}

func init() {
	gin.SetMode(gin.TestMode)
}
