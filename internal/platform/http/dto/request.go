// Package dto provides data transfer objects for HTTP request and response
// handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/avocadohq/admin-console/internal/validation"
)

// SetOrganizationStatusRequest contains the parameters for transitioning a
// tenant's platform status.
type SetOrganizationStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// Validate checks if the status transition request is valid.
func (r *SetOrganizationStatusRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Status,
			validation.Required,
			validation.In("ACTIVE", "BLOCKED").Error("status must be ACTIVE or BLOCKED"),
		),
		validation.Field(&r.Reason,
			validation.Length(0, 500),
		),
	)
}

// CreateAdminRequest contains the parameters for provisioning a platform
// administrator. TempPassword is optional; a random one is generated when
// omitted.
type CreateAdminRequest struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	TempPassword string `json:"temp_password"`
}

// Validate checks if the provisioning request is valid. Password strength is
// enforced by the use case so CLI and HTTP provisioning share one rule set.
func (r *CreateAdminRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.UserID,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Email,
			validation.Length(5, 255),
		),
		validation.Field(&r.Role,
			validation.Required,
			validation.In("MASTER", "ADMIN").Error("role must be MASTER or ADMIN"),
		),
	)
}

// SetAdminStatusRequest contains the parameters for transitioning an admin's
// status.
type SetAdminStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks if the status transition request is valid.
func (r *SetAdminStatusRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Status,
			validation.Required,
			validation.In("ACTIVE", "DISABLED").Error("status must be ACTIVE or DISABLED"),
		),
	)
}
