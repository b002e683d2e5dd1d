package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/avocadohq/admin-console/internal/errors"
	eventsDomain "github.com/avocadohq/admin-console/internal/events/domain"
	"github.com/avocadohq/admin-console/internal/impersonation/domain"
	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
)

// MockAdminContextUseCase is a mock implementation of the admin context
// resolver.
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

// MockOrganizationRepository is a mock implementation of the organization
// repository.
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

// MockTokenCodec is a mock implementation of the token codec.
type MockTokenCodec struct {
	mock.Mock
}

func (m *MockTokenCodec) CreateToken(input *domain.CreateTokenInput) (string, error) {
	args := m.Called(input)
	return args.String(0), args.Error(1)
}

func (m *MockTokenCodec) VerifyToken(token string) (*domain.TokenPayload, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenPayload), args.Error(1)
}

// MockEventRecorder is a mock implementation of the event recorder.
type MockEventRecorder struct {
	mock.Mock
}

func (m *MockEventRecorder) Log(ctx context.Context, input *eventsDomain.LogEventInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

type issuerMocks struct {
	adminContext *MockAdminContextUseCase
	orgRepo      *MockOrganizationRepository
	codec        *MockTokenCodec
	recorder     *MockEventRecorder
}

func newIssuer() (ImpersonationUseCase, *issuerMocks) {
	mocks := &issuerMocks{
		adminContext: new(MockAdminContextUseCase),
		orgRepo:      new(MockOrganizationRepository),
		codec:        new(MockTokenCodec),
		recorder:     new(MockEventRecorder),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := NewImpersonationUseCase(mocks.adminContext, mocks.orgRepo, mocks.codec, mocks.recorder, logger)
	return uc, mocks
}

func masterContext() *platformDomain.AdminContext {
	now := time.Now().UTC()
	return &platformDomain.AdminContext{
		Session: &platformDomain.Session{
			Token:     "sess_token_1",
			UserID:    "user_admin_1",
			ExpiresAt: now.Add(time.Hour),
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

func activeOrg(ownerUserID string) *platformDomain.Organization {
	return &platformDomain.Organization{
		ID:             "org_1",
		Slug:           "acme",
		Name:           "Acme Inc",
		PlatformStatus: platformDomain.OrganizationStatusActive,
		OwnerUserID:    ownerUserID,
	}
}

func issueInput() *domain.IssueInput {
	return &domain.IssueInput{
		SessionToken:   "sess_token_1",
		OrganizationID: "org_1",
	}
}

func TestImpersonationUseCaseIssue(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path with a subscription owner", func(t *testing.T) {
		uc, mocks := newIssuer()
		adminCtx := masterContext()

		mocks.adminContext.On("RequireMaster", ctx, "sess_token_1").Return(adminCtx, nil)
		mocks.orgRepo.On("Get", ctx, "org_1").Return(activeOrg("user_owner_1"), nil)

		var minted *domain.CreateTokenInput
		mocks.codec.On("CreateToken", mock.AnythingOfType("*domain.CreateTokenInput")).
			Run(func(args mock.Arguments) {
				minted = args.Get(0).(*domain.CreateTokenInput)
			}).
			Return("payload.signature", nil)

		var logged *eventsDomain.LogEventInput
		mocks.recorder.On("Log", ctx, mock.AnythingOfType("*domain.LogEventInput")).
			Run(func(args mock.Arguments) {
				logged = args.Get(1).(*eventsDomain.LogEventInput)
			}).
			Return(nil)

		output, err := uc.Issue(ctx, issueInput())
		require.NoError(t, err)

		assert.Equal(t, "payload.signature", output.Token)
		assert.Equal(t, "user_owner_1", output.TargetUserID)
		assert.Equal(t, adminCtx.Admin.ID.String(), output.ActorAdminID)

		require.NotNil(t, minted)
		assert.Equal(t, "user_admin_1", minted.ActorUserID)
		assert.Equal(t, "user_owner_1", minted.TargetUserID)
		assert.Equal(t, "org_1", minted.OrganizationID)

		require.NotNil(t, logged)
		assert.Equal(t, eventsDomain.ActionImpersonationRequested, logged.Action)
		assert.Equal(t, "user_owner_1", logged.TargetID)
		assert.Equal(t, "acme", logged.Metadata["organization_slug"])

		// The subscription owner short-circuits the member fallback.
		mocks.orgRepo.AssertNotCalled(t, "GetOwnerMemberUserID")
	})

	t.Run("falls back to the owner-role member", func(t *testing.T) {
		uc, mocks := newIssuer()

		mocks.adminContext.On("RequireMaster", ctx, "sess_token_1").Return(masterContext(), nil)
		mocks.orgRepo.On("Get", ctx, "org_1").Return(activeOrg(""), nil)
		mocks.orgRepo.On("GetOwnerMemberUserID", ctx, "org_1").Return("user_member_1", nil)
		mocks.codec.On("CreateToken", mock.AnythingOfType("*domain.CreateTokenInput")).Return("payload.signature", nil)
		mocks.recorder.On("Log", ctx, mock.AnythingOfType("*domain.LogEventInput")).Return(nil)

		output, err := uc.Issue(ctx, issueInput())
		require.NoError(t, err)
		assert.Equal(t, "user_member_1", output.TargetUserID)
	})

	t.Run("blank organization id fails before any lookup", func(t *testing.T) {
		uc, mocks := newIssuer()

		output, err := uc.Issue(ctx, &domain.IssueInput{SessionToken: "sess_token_1", OrganizationID: "   "})
		assert.Nil(t, output)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		mocks.adminContext.AssertNotCalled(t, "RequireMaster")
		mocks.codec.AssertNotCalled(t, "CreateToken")
	})

	t.Run("identity failure stops before the tenant lookup", func(t *testing.T) {
		uc, mocks := newIssuer()

		mocks.adminContext.On("RequireMaster", ctx, "sess_token_1").
			Return(nil, platformDomain.ErrSessionRequired)

		output, err := uc.Issue(ctx, issueInput())
		assert.Nil(t, output)
		assert.ErrorIs(t, err, platformDomain.ErrSessionRequired)
		mocks.orgRepo.AssertNotCalled(t, "Get")
		mocks.codec.AssertNotCalled(t, "CreateToken")
		mocks.recorder.AssertNotCalled(t, "Log")
	})

	t.Run("role failure propagates unchanged", func(t *testing.T) {
		uc, mocks := newIssuer()

		mocks.adminContext.On("RequireMaster", ctx, "sess_token_1").
			Return(nil, platformDomain.ErrMasterRequired)

		_, err := uc.Issue(ctx, issueInput())
		assert.ErrorIs(t, err, platformDomain.ErrMasterRequired)
		mocks.orgRepo.AssertNotCalled(t, "Get")
	})

	t.Run("unknown organization fails without minting", func(t *testing.T) {
		uc, mocks := newIssuer()

		mocks.adminContext.On("RequireMaster", ctx, "sess_token_1").Return(masterContext(), nil)
		mocks.orgRepo.On("Get", ctx, "org_1").Return(nil, platformDomain.ErrOrganizationNotFound)

		output, err := uc.Issue(ctx, issueInput())
		assert.Nil(t, output)
		assert.ErrorIs(t, err, platformDomain.ErrOrganizationNotFound)
		mocks.codec.AssertNotCalled(t, "CreateToken")
	})

	t.Run("blocked organization fails without minting", func(t *testing.T) {
		uc, mocks := newIssuer()

		org := activeOrg("user_owner_1")
		org.PlatformStatus = platformDomain.OrganizationStatusBlocked
		mocks.adminContext.On("RequireMaster", ctx, "sess_token_1").Return(masterContext(), nil)
		mocks.orgRepo.On("Get", ctx, "org_1").Return(org, nil)

		output, err := uc.Issue(ctx, issueInput())
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domain.ErrOrganizationBlocked)
		mocks.codec.AssertNotCalled(t, "CreateToken")
		mocks.recorder.AssertNotCalled(t, "Log")
	})

	t.Run("unresolvable owner fails without minting", func(t *testing.T) {
		uc, mocks := newIssuer()

		mocks.adminContext.On("RequireMaster", ctx, "sess_token_1").Return(masterContext(), nil)
		mocks.orgRepo.On("Get", ctx, "org_1").Return(activeOrg(""), nil)
		mocks.orgRepo.On("GetOwnerMemberUserID", ctx, "org_1").Return("", platformDomain.ErrOwnerMemberNotFound)

		output, err := uc.Issue(ctx, issueInput())
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domain.ErrOwnerNotResolvable)
		mocks.codec.AssertNotCalled(t, "CreateToken")
	})

	t.Run("codec configuration failure propagates", func(t *testing.T) {
		uc, mocks := newIssuer()

		mocks.adminContext.On("RequireMaster", ctx, "sess_token_1").Return(masterContext(), nil)
		mocks.orgRepo.On("Get", ctx, "org_1").Return(activeOrg("user_owner_1"), nil)
		mocks.codec.On("CreateToken", mock.AnythingOfType("*domain.CreateTokenInput")).
			Return("", domain.ErrSecretNotConfigured)

		output, err := uc.Issue(ctx, issueInput())
		assert.Nil(t, output)
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
		mocks.recorder.AssertNotCalled(t, "Log")
	})

	t.Run("audit failure withholds the token", func(t *testing.T) {
		uc, mocks := newIssuer()

		mocks.adminContext.On("RequireMaster", ctx, "sess_token_1").Return(masterContext(), nil)
		mocks.orgRepo.On("Get", ctx, "org_1").Return(activeOrg("user_owner_1"), nil)
		mocks.codec.On("CreateToken", mock.AnythingOfType("*domain.CreateTokenInput")).Return("payload.signature", nil)
		mocks.recorder.On("Log", ctx, mock.AnythingOfType("*domain.LogEventInput")).
			Return(eventsDomain.ErrActionRequired)

		output, err := uc.Issue(ctx, issueInput())
		assert.Nil(t, output)
		assert.Error(t, err)
	})
}
