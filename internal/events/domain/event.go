// Package domain defines the platform audit event entities.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Severity classifies a platform event.
type Severity string

const (
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// Event actions recorded by the admin console. Action names are part of the
// audit contract consumed by downstream tooling.
const (
	ActionImpersonationRequested = "starter.impersonation.requested"
	ActionOrganizationBlocked    = "organization.blocked"
	ActionOrganizationUnblocked  = "organization.unblocked"
	ActionAdminCreated           = "platform_admin.created"
	ActionAdminStatusChanged     = "platform_admin.status_changed"
)

// DefaultSource identifies this service in the event stream.
const DefaultSource = "admin-console"

// PlatformEvent is an append-only audit record of a privileged platform
// operation. Signature is optional tamper evidence, present only when event
// signing is configured.
type PlatformEvent struct {
	ID             uuid.UUID
	Source         string
	Action         string
	Severity       Severity
	ActorUserID    string
	ActorAdminID   string
	OrganizationID string
	TargetType     string
	TargetID       string
	Metadata       map[string]any
	Signature      []byte
	CreatedAt      time.Time
}

// LogEventInput carries the fields of an event to record. Source defaults to
// DefaultSource and Severity to INFO when unset.
type LogEventInput struct {
	Source         string
	Action         string
	Severity       Severity
	ActorUserID    string
	ActorAdminID   string
	OrganizationID string
	TargetType     string
	TargetID       string
	Metadata       map[string]any
}
