// Package dto provides data transfer objects for audit event HTTP responses.
package dto

import (
	"time"

	eventsDomain "github.com/avocadohq/admin-console/internal/events/domain"
)

// EventResponse represents an audit event in API responses. The signature is
// internal verification material and is reported only as a presence flag.
type EventResponse struct {
	ID             string         `json:"id"`
	Source         string         `json:"source"`
	Action         string         `json:"action"`
	Severity       string         `json:"severity"`
	ActorUserID    string         `json:"actor_user_id,omitempty"`
	ActorAdminID   string         `json:"actor_admin_id,omitempty"`
	OrganizationID string         `json:"organization_id,omitempty"`
	TargetType     string         `json:"target_type,omitempty"`
	TargetID       string         `json:"target_id,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	Signed         bool           `json:"signed"`
	CreatedAt      time.Time      `json:"created_at"`
}

// MapEventToResponse converts a domain event to an API response.
func MapEventToResponse(event *eventsDomain.PlatformEvent) EventResponse {
	return EventResponse{
		ID:             event.ID.String(),
		Source:         event.Source,
		Action:         event.Action,
		Severity:       string(event.Severity),
		ActorUserID:    event.ActorUserID,
		ActorAdminID:   event.ActorAdminID,
		OrganizationID: event.OrganizationID,
		TargetType:     event.TargetType,
		TargetID:       event.TargetID,
		Metadata:       event.Metadata,
		Signed:         len(event.Signature) > 0,
		CreatedAt:      event.CreatedAt,
	}
}

// ListEventsResponse represents a paginated list of audit events.
type ListEventsResponse struct {
	Data []EventResponse `json:"data"`
}

// MapEventsToListResponse converts domain events to a list response.
func MapEventsToListResponse(events []*eventsDomain.PlatformEvent) ListEventsResponse {
	responses := make([]EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, MapEventToResponse(event))
	}
	return ListEventsResponse{Data: responses}
}
