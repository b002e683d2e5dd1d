package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	apperrors "github.com/avocadohq/admin-console/internal/errors"
	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
)

// adminContextUseCase resolves auth provider session cookies into platform
// admin contexts. It enforces the request preconditions in a fixed order so
// callers always get the most specific failure: session validity first, then
// admin existence and status, then forced password rotation, then role.
type adminContextUseCase struct {
	sessionRepo SessionRepository
	adminRepo   AdminRepository
	logger      *slog.Logger
	now         func() time.Time
}

// Require resolves the session token into an active platform admin context.
func (a *adminContextUseCase) Require(ctx context.Context, sessionToken string) (*platformDomain.AdminContext, error) {
	if sessionToken == "" {
		return nil, platformDomain.ErrSessionRequired
	}

	session, err := a.sessionRepo.GetByToken(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, platformDomain.ErrSessionNotFound) {
			return nil, platformDomain.ErrSessionRequired
		}
		return nil, apperrors.Wrap(err, "failed to resolve session")
	}

	if session.IsExpired(a.now().UTC()) {
		return nil, platformDomain.ErrSessionRequired
	}

	admin, err := a.adminRepo.GetByUserID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, platformDomain.ErrAdminNotFound) {
			a.logger.Debug("session user has no platform admin record",
				slog.String("user_id", session.UserID))
			return nil, platformDomain.ErrNotPlatformAdmin
		}
		return nil, apperrors.Wrap(err, "failed to resolve platform admin")
	}

	if !admin.IsActive() {
		return nil, platformDomain.ErrNotPlatformAdmin
	}

	if admin.MustChangePassword {
		return nil, platformDomain.ErrPasswordChangeRequired
	}

	return &platformDomain.AdminContext{Session: session, Admin: admin}, nil
}

// RequireMaster applies Require and additionally enforces the MASTER role.
func (a *adminContextUseCase) RequireMaster(ctx context.Context, sessionToken string) (*platformDomain.AdminContext, error) {
	adminCtx, err := a.Require(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	if adminCtx.Admin.Role != platformDomain.AdminRoleMaster {
		return nil, platformDomain.ErrMasterRequired
	}

	return adminCtx, nil
}

// NewAdminContextUseCase creates a new AdminContextUseCase with the provided
// dependencies.
func NewAdminContextUseCase(
	sessionRepo SessionRepository,
	adminRepo AdminRepository,
	logger *slog.Logger,
) AdminContextUseCase {
	return &adminContextUseCase{
		sessionRepo: sessionRepo,
		adminRepo:   adminRepo,
		logger:      logger,
		now:         time.Now,
	}
}
