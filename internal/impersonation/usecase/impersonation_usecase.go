package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	apperrors "github.com/avocadohq/admin-console/internal/errors"
	eventsDomain "github.com/avocadohq/admin-console/internal/events/domain"
	"github.com/avocadohq/admin-console/internal/impersonation/domain"
	impersonationService "github.com/avocadohq/admin-console/internal/impersonation/service"
	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
	platformUseCase "github.com/avocadohq/admin-console/internal/platform/usecase"
)

// impersonationUseCase implements ImpersonationUseCase.
//
// The precondition order is fixed: caller identity (session, active admin,
// password rotation, MASTER role), then tenant state (existence, platform
// status, owner resolution), then the mint and the audit event. Each check
// runs only after every earlier check passed, so the caller always receives
// the most specific failure and no tenant information leaks to callers that
// failed an identity check.
type impersonationUseCase struct {
	adminContext platformUseCase.AdminContextUseCase
	orgRepo      platformUseCase.OrganizationRepository
	codec        impersonationService.TokenCodec
	recorder     platformUseCase.EventRecorder
	logger       *slog.Logger
}

// Issue runs the full handoff chain for one request.
func (i *impersonationUseCase) Issue(ctx context.Context, input *domain.IssueInput) (*domain.IssueOutput, error) {
	organizationID := strings.TrimSpace(input.OrganizationID)
	if organizationID == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "organization id is required")
	}

	adminCtx, err := i.adminContext.RequireMaster(ctx, input.SessionToken)
	if err != nil {
		return nil, err
	}

	org, err := i.orgRepo.Get(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	if org.IsBlocked() {
		return nil, domain.ErrOrganizationBlocked
	}

	targetUserID, err := i.resolveOwner(ctx, org)
	if err != nil {
		return nil, err
	}

	token, err := i.codec.CreateToken(&domain.CreateTokenInput{
		ActorUserID:    adminCtx.Admin.UserID,
		ActorAdminID:   adminCtx.Admin.ID.String(),
		TargetUserID:   targetUserID,
		OrganizationID: org.ID,
	})
	if err != nil {
		return nil, err
	}

	// The audit event gates the handoff: if the trail cannot be written the
	// token is never released to the browser.
	err = i.recorder.Log(ctx, &eventsDomain.LogEventInput{
		Action:         eventsDomain.ActionImpersonationRequested,
		ActorUserID:    adminCtx.Admin.UserID,
		ActorAdminID:   adminCtx.Admin.ID.String(),
		OrganizationID: org.ID,
		TargetType:     "user",
		TargetID:       targetUserID,
		Metadata: map[string]any{
			"organization_slug": org.Slug,
		},
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to record impersonation event")
	}

	i.logger.Info("impersonation token issued",
		slog.String("actor_admin_id", adminCtx.Admin.ID.String()),
		slog.String("organization_id", org.ID),
		slog.String("target_user_id", targetUserID))

	return &domain.IssueOutput{
		Token:          token,
		ActorUserID:    adminCtx.Admin.UserID,
		ActorAdminID:   adminCtx.Admin.ID.String(),
		TargetUserID:   targetUserID,
		OrganizationID: org.ID,
	}, nil
}

// resolveOwner picks the account to impersonate: the subscription owner when
// present, otherwise the earliest member holding an owner role.
func (i *impersonationUseCase) resolveOwner(ctx context.Context, org *platformDomain.Organization) (string, error) {
	if owner := strings.TrimSpace(org.OwnerUserID); owner != "" {
		return owner, nil
	}

	memberUserID, err := i.orgRepo.GetOwnerMemberUserID(ctx, org.ID)
	if err != nil {
		if errors.Is(err, platformDomain.ErrOwnerMemberNotFound) {
			return "", domain.ErrOwnerNotResolvable
		}
		return "", apperrors.Wrap(err, "failed to resolve organization owner")
	}

	if strings.TrimSpace(memberUserID) == "" {
		return "", domain.ErrOwnerNotResolvable
	}

	return memberUserID, nil
}

// NewImpersonationUseCase creates a new ImpersonationUseCase with the
// provided dependencies.
func NewImpersonationUseCase(
	adminContext platformUseCase.AdminContextUseCase,
	orgRepo platformUseCase.OrganizationRepository,
	codec impersonationService.TokenCodec,
	recorder platformUseCase.EventRecorder,
	logger *slog.Logger,
) ImpersonationUseCase {
	return &impersonationUseCase{
		adminContext: adminContext,
		orgRepo:      orgRepo,
		codec:        codec,
		recorder:     recorder,
		logger:       logger,
	}
}
