package domain

import "time"

// OrganizationStatus is the platform-level state of a tenant. A BLOCKED
// tenant keeps its data but cannot be entered or operated until unblocked.
type OrganizationStatus string

const (
	OrganizationStatusActive  OrganizationStatus = "ACTIVE"
	OrganizationStatusBlocked OrganizationStatus = "BLOCKED"
)

// IsValid checks if the status is a known value.
func (s OrganizationStatus) IsValid() bool {
	return s == OrganizationStatusActive || s == OrganizationStatusBlocked
}

// Organization is a tenant of the starter application, mirrored into the
// admin console database. IDs are the tenant system's opaque identifiers,
// not values this service generates.
type Organization struct {
	ID             string
	Slug           string
	Name           string
	PlatformStatus OrganizationStatus

	// OwnerUserID is the subscription owner's user id, empty when the tenant
	// has no subscription on record.
	OwnerUserID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocked reports whether the tenant is blocked on the platform.
func (o *Organization) IsBlocked() bool {
	return o.PlatformStatus == OrganizationStatusBlocked
}
