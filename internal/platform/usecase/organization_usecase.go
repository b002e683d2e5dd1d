package usecase

import (
	"context"
	"log/slog"

	apperrors "github.com/avocadohq/admin-console/internal/errors"
	eventsDomain "github.com/avocadohq/admin-console/internal/events/domain"
	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
)

// organizationUseCase implements OrganizationUseCase for tenant governance.
type organizationUseCase struct {
	orgRepo  OrganizationRepository
	recorder EventRecorder
	logger   *slog.Logger
}

// Get retrieves a tenant organization by ID.
func (o *organizationUseCase) Get(ctx context.Context, id string) (*platformDomain.Organization, error) {
	return o.orgRepo.Get(ctx, id)
}

// List retrieves tenant organizations, newest first.
func (o *organizationUseCase) List(ctx context.Context, offset, limit int) ([]*platformDomain.Organization, error) {
	return o.orgRepo.List(ctx, offset, limit)
}

// SetPlatformStatus transitions a tenant's platform status and records the
// change in the audit trail. Transitioning to the current status is rejected
// so a stale admin console page cannot silently re-apply a block.
func (o *organizationUseCase) SetPlatformStatus(ctx context.Context, input *SetOrganizationStatusInput) (*platformDomain.Organization, error) {
	if !input.Status.IsValid() {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid organization platform status")
	}

	org, err := o.orgRepo.Get(ctx, input.OrganizationID)
	if err != nil {
		return nil, err
	}

	if org.PlatformStatus == input.Status {
		return nil, platformDomain.ErrSameStatus
	}

	if err := o.orgRepo.UpdatePlatformStatus(ctx, org.ID, input.Status); err != nil {
		return nil, err
	}

	org.PlatformStatus = input.Status

	action := eventsDomain.ActionOrganizationUnblocked
	severity := eventsDomain.SeverityInfo
	if input.Status == platformDomain.OrganizationStatusBlocked {
		action = eventsDomain.ActionOrganizationBlocked
		severity = eventsDomain.SeverityWarn
	}

	metadata := map[string]any{"status": string(input.Status)}
	if input.Reason != "" {
		metadata["reason"] = input.Reason
	}

	err = o.recorder.Log(ctx, &eventsDomain.LogEventInput{
		Action:         action,
		Severity:       severity,
		ActorUserID:    input.ActorUserID,
		ActorAdminID:   input.ActorAdminID,
		OrganizationID: org.ID,
		TargetType:     "organization",
		TargetID:       org.ID,
		Metadata:       metadata,
	})
	if err != nil {
		// The status change is already committed; surface the audit failure
		// in logs without failing the operation.
		o.logger.Error("failed to record organization status event",
			slog.String("organization_id", org.ID),
			slog.String("error", err.Error()))
	}

	o.logger.Info("organization platform status changed",
		slog.String("organization_id", org.ID),
		slog.String("status", string(input.Status)))

	return org, nil
}

// NewOrganizationUseCase creates a new OrganizationUseCase with the provided
// dependencies.
func NewOrganizationUseCase(
	orgRepo OrganizationRepository,
	recorder EventRecorder,
	logger *slog.Logger,
) OrganizationUseCase {
	return &organizationUseCase{
		orgRepo:  orgRepo,
		recorder: recorder,
		logger:   logger,
	}
}
