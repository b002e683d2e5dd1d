// Package usecase implements business logic orchestration for platform
// governance: admin session resolution, tenant status management and
// administrator provisioning.
package usecase

import (
	"context"

	"github.com/google/uuid"

	eventsDomain "github.com/avocadohq/admin-console/internal/events/domain"
	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
)

// EventRecorder records audit events for governance operations. Satisfied by
// the events use case.
type EventRecorder interface {
	Log(ctx context.Context, input *eventsDomain.LogEventInput) error
}

// SessionRepository reads auth provider sessions. The auth provider owns
// writes; this service only resolves cookie values.
type SessionRepository interface {
	GetByToken(ctx context.Context, token string) (*platformDomain.Session, error)
}

// AdminRepository defines platform admin persistence operations.
type AdminRepository interface {
	Create(ctx context.Context, admin *platformDomain.PlatformAdmin) error
	Get(ctx context.Context, id uuid.UUID) (*platformDomain.PlatformAdmin, error)
	GetByUserID(ctx context.Context, userID string) (*platformDomain.PlatformAdmin, error)
	List(ctx context.Context, offset, limit int) ([]*platformDomain.PlatformAdmin, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status platformDomain.AdminStatus) error
	CountActiveMasters(ctx context.Context) (int, error)
}

// OrganizationRepository defines tenant organization persistence operations.
type OrganizationRepository interface {
	Get(ctx context.Context, id string) (*platformDomain.Organization, error)
	List(ctx context.Context, offset, limit int) ([]*platformDomain.Organization, error)
	UpdatePlatformStatus(ctx context.Context, id string, status platformDomain.OrganizationStatus) error

	// GetOwnerMemberUserID returns the user id of the earliest member whose
	// role is "owner" (case-insensitive). Used as a fallback when the tenant
	// has no subscription owner.
	GetOwnerMemberUserID(ctx context.Context, organizationID string) (string, error)
}

// AdminContextUseCase resolves a session cookie into an authenticated
// platform admin context.
type AdminContextUseCase interface {
	// Require resolves the session and enforces, in order: a valid unexpired
	// session, an active platform admin record for the session user, and no
	// pending forced password rotation.
	Require(ctx context.Context, sessionToken string) (*platformDomain.AdminContext, error)

	// RequireMaster applies Require and additionally enforces the MASTER role.
	RequireMaster(ctx context.Context, sessionToken string) (*platformDomain.AdminContext, error)
}

// CreateAdminInput carries the fields for provisioning a platform admin.
// TempPassword is optional; when empty a random one is generated.
type CreateAdminInput struct {
	UserID       string
	Email        string
	Role         platformDomain.AdminRole
	TempPassword string

	// Actor identities, recorded in the audit trail. Empty for CLI
	// provisioning.
	ActorUserID  string
	ActorAdminID string
}

// CreateAdminOutput returns the created record plus the plain temporary
// password, shown to the operator exactly once.
type CreateAdminOutput struct {
	Admin        *platformDomain.PlatformAdmin
	TempPassword string
}

// SetAdminStatusInput carries an admin status transition.
type SetAdminStatusInput struct {
	AdminID      uuid.UUID
	Status       platformDomain.AdminStatus
	ActorUserID  string
	ActorAdminID string
}

// AdminUseCase defines platform administrator management operations.
type AdminUseCase interface {
	Create(ctx context.Context, input *CreateAdminInput) (*CreateAdminOutput, error)
	List(ctx context.Context, offset, limit int) ([]*platformDomain.PlatformAdmin, error)
	SetStatus(ctx context.Context, input *SetAdminStatusInput) (*platformDomain.PlatformAdmin, error)
}

// SetOrganizationStatusInput carries a tenant platform-status transition.
type SetOrganizationStatusInput struct {
	OrganizationID string
	Status         platformDomain.OrganizationStatus
	Reason         string
	ActorUserID    string
	ActorAdminID   string
}

// OrganizationUseCase defines tenant governance operations.
type OrganizationUseCase interface {
	Get(ctx context.Context, id string) (*platformDomain.Organization, error)
	List(ctx context.Context, offset, limit int) ([]*platformDomain.Organization, error)
	SetPlatformStatus(ctx context.Context, input *SetOrganizationStatusInput) (*platformDomain.Organization, error)
}
