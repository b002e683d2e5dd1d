package dto

import (
	"time"

	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
)

// OrganizationResponse represents a tenant organization in API responses.
type OrganizationResponse struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	Name           string    `json:"name"`
	PlatformStatus string    `json:"platform_status"`
	OwnerUserID    string    `json:"owner_user_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MapOrganizationToResponse converts a domain organization to an API response.
func MapOrganizationToResponse(org *platformDomain.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:             org.ID,
		Slug:           org.Slug,
		Name:           org.Name,
		PlatformStatus: string(org.PlatformStatus),
		OwnerUserID:    org.OwnerUserID,
		CreatedAt:      org.CreatedAt,
		UpdatedAt:      org.UpdatedAt,
	}
}

// ListOrganizationsResponse represents a paginated list of organizations.
type ListOrganizationsResponse struct {
	Data []OrganizationResponse `json:"data"`
}

// MapOrganizationsToListResponse converts domain organizations to a list response.
func MapOrganizationsToListResponse(orgs []*platformDomain.Organization) ListOrganizationsResponse {
	responses := make([]OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		responses = append(responses, MapOrganizationToResponse(org))
	}
	return ListOrganizationsResponse{Data: responses}
}

// AdminResponse represents a platform administrator in API responses. The
// temporary password hash is never exposed.
type AdminResponse struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	Email              string    `json:"email"`
	Role               string    `json:"role"`
	Status             string    `json:"status"`
	MustChangePassword bool      `json:"must_change_password"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// MapAdminToResponse converts a domain admin to an API response.
func MapAdminToResponse(admin *platformDomain.PlatformAdmin) AdminResponse {
	return AdminResponse{
		ID:                 admin.ID.String(),
		UserID:             admin.UserID,
		Email:              admin.Email,
		Role:               string(admin.Role),
		Status:             string(admin.Status),
		MustChangePassword: admin.MustChangePassword,
		CreatedAt:          admin.CreatedAt,
		UpdatedAt:          admin.UpdatedAt,
	}
}

// ListAdminsResponse represents a paginated list of platform admins.
type ListAdminsResponse struct {
	Data []AdminResponse `json:"data"`
}

// MapAdminsToListResponse converts domain admins to a list response.
func MapAdminsToListResponse(admins []*platformDomain.PlatformAdmin) ListAdminsResponse {
	responses := make([]AdminResponse, 0, len(admins))
	for _, admin := range admins {
		responses = append(responses, MapAdminToResponse(admin))
	}
	return ListAdminsResponse{Data: responses}
}

// CreateAdminResponse contains the result of provisioning an admin.
// SECURITY: The temporary password is only returned once.
type CreateAdminResponse struct {
	Admin        AdminResponse `json:"admin"`
	TempPassword string        `json:"temp_password"`
}
