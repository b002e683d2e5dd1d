package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/avocadohq/admin-console/internal/database"
	apperrors "github.com/avocadohq/admin-console/internal/errors"
	eventsDomain "github.com/avocadohq/admin-console/internal/events/domain"
	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
	platformService "github.com/avocadohq/admin-console/internal/platform/service"
	appValidation "github.com/avocadohq/admin-console/internal/validation"
)

// adminUseCase implements AdminUseCase for platform administrator
// provisioning and lifecycle management.
type adminUseCase struct {
	txManager       database.TxManager
	adminRepo       AdminRepository
	passwordService platformService.PasswordService
	recorder        EventRecorder
	logger          *slog.Logger
}

// validateCreateAdminInput validates provisioning input. The temporary
// password is optional; when present it must satisfy the strength rules
// enforced at first login.
func (a *adminUseCase) validateCreateAdminInput(input *CreateAdminInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.UserID,
			validation.Required.Error("user id is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("user id must be between 1 and 255 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.TempPassword,
			validation.Length(10, 128).Error("temporary password must be between 10 and 128 characters"),
			validation.By(func(value any) error {
				password, _ := value.(string)
				if password == "" {
					return nil
				}
				return appValidation.PasswordStrength{
					MinLength:     10,
					RequireUpper:  true,
					RequireLower:  true,
					RequireNumber: true,
				}.Validate(password)
			}),
		),
	)
	if err != nil {
		return appValidation.WrapValidationError(err)
	}

	if !input.Role.IsValid() {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "role must be MASTER or ADMIN")
	}

	return nil
}

// Create provisions a platform administrator with a temporary password and a
// forced rotation flag. When no password is supplied a random one is
// generated and returned to the operator exactly once.
func (a *adminUseCase) Create(ctx context.Context, input *CreateAdminInput) (*CreateAdminOutput, error) {
	if err := a.validateCreateAdminInput(input); err != nil {
		return nil, err
	}

	plainPassword := input.TempPassword
	var hashedPassword string
	var err error

	if plainPassword == "" {
		plainPassword, hashedPassword, err = a.passwordService.GeneratePassword()
	} else {
		hashedPassword, err = a.passwordService.HashPassword(plainPassword)
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	admin := &platformDomain.PlatformAdmin{
		ID:                 uuid.Must(uuid.NewV7()),
		UserID:             input.UserID,
		Email:              input.Email,
		Role:               input.Role,
		Status:             platformDomain.AdminStatusActive,
		MustChangePassword: true,
		TempPasswordHash:   hashedPassword,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := a.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	err = a.recorder.Log(ctx, &eventsDomain.LogEventInput{
		Action:       eventsDomain.ActionAdminCreated,
		ActorUserID:  input.ActorUserID,
		ActorAdminID: input.ActorAdminID,
		TargetType:   "platform_admin",
		TargetID:     admin.ID.String(),
		Metadata:     map[string]any{"role": string(admin.Role), "email": admin.Email},
	})
	if err != nil {
		a.logger.Error("failed to record admin creation event",
			slog.String("admin_id", admin.ID.String()),
			slog.String("error", err.Error()))
	}

	a.logger.Info("platform admin created",
		slog.String("admin_id", admin.ID.String()),
		slog.String("role", string(admin.Role)))

	return &CreateAdminOutput{Admin: admin, TempPassword: plainPassword}, nil
}

// List retrieves platform admins, newest first.
func (a *adminUseCase) List(ctx context.Context, offset, limit int) ([]*platformDomain.PlatformAdmin, error) {
	return a.adminRepo.List(ctx, offset, limit)
}

// SetStatus transitions an admin's status. Disabling the last active MASTER
// administrator is rejected so the platform never locks itself out.
func (a *adminUseCase) SetStatus(ctx context.Context, input *SetAdminStatusInput) (*platformDomain.PlatformAdmin, error) {
	if !input.Status.IsValid() {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid platform admin status")
	}

	// The last-master check and the update run in one transaction so two
	// concurrent disables cannot both pass the count.
	var admin *platformDomain.PlatformAdmin
	err := a.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		admin, err = a.adminRepo.Get(ctx, input.AdminID)
		if err != nil {
			return err
		}

		if admin.Status == input.Status {
			return platformDomain.ErrSameStatus
		}

		if input.Status == platformDomain.AdminStatusDisabled && admin.Role == platformDomain.AdminRoleMaster {
			count, err := a.adminRepo.CountActiveMasters(ctx)
			if err != nil {
				return err
			}
			if count <= 1 {
				return platformDomain.ErrLastMasterAdmin
			}
		}

		return a.adminRepo.UpdateStatus(ctx, admin.ID, input.Status)
	})
	if err != nil {
		return nil, err
	}

	admin.Status = input.Status

	err = a.recorder.Log(ctx, &eventsDomain.LogEventInput{
		Action:       eventsDomain.ActionAdminStatusChanged,
		ActorUserID:  input.ActorUserID,
		ActorAdminID: input.ActorAdminID,
		TargetType:   "platform_admin",
		TargetID:     admin.ID.String(),
		Metadata:     map[string]any{"status": string(input.Status)},
	})
	if err != nil {
		a.logger.Error("failed to record admin status event",
			slog.String("admin_id", admin.ID.String()),
			slog.String("error", err.Error()))
	}

	return admin, nil
}

// NewAdminUseCase creates a new AdminUseCase with the provided dependencies.
func NewAdminUseCase(
	txManager database.TxManager,
	adminRepo AdminRepository,
	passwordService platformService.PasswordService,
	recorder EventRecorder,
	logger *slog.Logger,
) AdminUseCase {
	return &adminUseCase{
		txManager:       txManager,
		adminRepo:       adminRepo,
		passwordService: passwordService,
		recorder:        recorder,
		logger:          logger,
	}
}
