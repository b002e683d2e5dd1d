// Package domain defines the platform governance entities: platform
// administrators, tenant organizations and auth provider sessions.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdminRole determines what a platform administrator may do. Only MASTER
// admins can block tenants, manage other admins and start cross-app
// impersonation sessions.
type AdminRole string

const (
	AdminRoleMaster AdminRole = "MASTER"
	AdminRoleAdmin  AdminRole = "ADMIN"
)

// IsValid checks if the role is a known value.
func (r AdminRole) IsValid() bool {
	return r == AdminRoleMaster || r == AdminRoleAdmin
}

// AdminStatus is the lifecycle state of a platform administrator account.
type AdminStatus string

const (
	AdminStatusActive   AdminStatus = "ACTIVE"
	AdminStatusDisabled AdminStatus = "DISABLED"
)

// IsValid checks if the status is a known value.
func (s AdminStatus) IsValid() bool {
	return s == AdminStatusActive || s == AdminStatusDisabled
}

// PlatformAdmin is an operator account of the admin console. UserID points at
// the auth provider's user record, which owns authentication; this row owns
// platform authorization (role, status, forced password rotation).
type PlatformAdmin struct {
	ID                 uuid.UUID
	UserID             string
	Email              string
	Role               AdminRole
	Status             AdminStatus
	MustChangePassword bool
	TempPasswordHash   string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsActive reports whether the admin may act on the platform.
func (a *PlatformAdmin) IsActive() bool {
	return a.Status == AdminStatusActive
}

// AdminContext is the resolved identity of an authenticated request: the auth
// provider session plus the platform admin record it maps to.
type AdminContext struct {
	Session *Session
	Admin   *PlatformAdmin
}
