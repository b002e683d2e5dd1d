package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
	platformUseCase "github.com/avocadohq/admin-console/internal/platform/usecase"
)

// RunCreateAdmin provisions a new platform administrator. When no temporary
// password is given, a random one is generated. Outputs the admin record and
// the plain temporary password in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateAdmin(
	ctx context.Context,
	adminUseCase platformUseCase.AdminUseCase,
	logger *slog.Logger,
	userID, email, role, tempPassword string,
	format string,
	io IOTuple,
) error {
	adminRole := platformDomain.AdminRole(role)
	if !adminRole.IsValid() {
		return fmt.Errorf("invalid role: %s (valid options: MASTER, ADMIN)", role)
	}

	logger.Info("creating platform admin",
		slog.String("user_id", userID),
		slog.String("role", role),
	)

	input := &platformUseCase.CreateAdminInput{
		UserID:       userID,
		Email:        email,
		Role:         adminRole,
		TempPassword: tempPassword,
	}

	output, err := adminUseCase.Create(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create platform admin: %w", err)
	}

	if format == "json" {
		outputAdminJSON(output, io.Writer)
	} else {
		outputAdminText(output, io.Writer)
	}

	logger.Info("platform admin created successfully",
		slog.String("admin_id", output.Admin.ID.String()),
		slog.String("user_id", userID),
		slog.String("role", role),
	)

	return nil
}

// outputAdminText outputs the result in human-readable text format.
func outputAdminText(output *platformUseCase.CreateAdminOutput, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nPlatform admin created successfully!")
	_, _ = fmt.Fprintf(writer, "Admin ID: %s\n", output.Admin.ID.String())
	_, _ = fmt.Fprintf(writer, "User ID: %s\n", output.Admin.UserID)
	_, _ = fmt.Fprintf(writer, "Email: %s\n", output.Admin.Email)
	_, _ = fmt.Fprintf(writer, "Role: %s\n", output.Admin.Role)
	_, _ = fmt.Fprintf(writer, "Temporary Password: %s\n", output.TempPassword)
	_, _ = fmt.Fprintln(writer, "\nIMPORTANT: The temporary password is shown only once. The admin must change it at first login.")
}

// outputAdminJSON outputs the result in JSON format for machine consumption.
func outputAdminJSON(output *platformUseCase.CreateAdminOutput, writer io.Writer) {
	result := map[string]string{
		"admin_id":      output.Admin.ID.String(),
		"user_id":       output.Admin.UserID,
		"email":         output.Admin.Email,
		"role":          string(output.Admin.Role),
		"temp_password": output.TempPassword,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
