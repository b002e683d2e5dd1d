// Package usecase implements business logic orchestration for platform audit
// events.
package usecase

import (
	"context"
	"time"

	eventsDomain "github.com/avocadohq/admin-console/internal/events/domain"
)

// EventRepository defines platform event persistence operations. Events are
// append-only; there is no update or delete.
type EventRepository interface {
	Create(ctx context.Context, event *eventsDomain.PlatformEvent) error
	List(ctx context.Context, filter *ListEventsFilter, offset, limit int) ([]*eventsDomain.PlatformEvent, error)
}

// ListEventsFilter narrows an event listing. Empty fields mean no filter.
type ListEventsFilter struct {
	OrganizationID string
	Action         string

	// From and To bound the creation time, inclusive. Zero values mean
	// unbounded.
	From time.Time
	To   time.Time
}

// VerifyReport summarizes a signature verification pass over stored events.
type VerifyReport struct {
	Total    int
	Valid    int
	Unsigned int

	// InvalidIDs lists events whose signatures failed verification.
	InvalidIDs []string
}

// EventUseCase defines audit trail operations.
type EventUseCase interface {
	// Log records a platform event, signing it when a signing secret is
	// configured.
	Log(ctx context.Context, input *eventsDomain.LogEventInput) error

	// List retrieves events newest first.
	List(ctx context.Context, filter *ListEventsFilter, offset, limit int) ([]*eventsDomain.PlatformEvent, error)

	// VerifyRange checks the signatures of all events created within the
	// given time range. Requires a configured signing secret.
	VerifyRange(ctx context.Context, from, to time.Time) (*VerifyReport, error)
}
