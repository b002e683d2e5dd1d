// Package http provides HTTP handlers for audit event queries.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avocadohq/admin-console/internal/events/http/dto"
	eventsUseCase "github.com/avocadohq/admin-console/internal/events/usecase"
	"github.com/avocadohq/admin-console/internal/httputil"
)

// EventHandler handles HTTP requests for the audit trail.
type EventHandler struct {
	eventUseCase eventsUseCase.EventUseCase
	logger       *slog.Logger
}

// NewEventHandler creates a new event handler with required dependencies.
func NewEventHandler(eventUseCase eventsUseCase.EventUseCase, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		eventUseCase: eventUseCase,
		logger:       logger,
	}
}

// ListHandler retrieves audit events, newest first, with pagination support.
// GET /v1/events?organization_id=...&action=...&offset=0&limit=50 - Requires
// an active admin session.
// Returns 200 OK with paginated event list.
func (h *EventHandler) ListHandler(c *gin.Context) {
	// Parse offset and limit query parameters
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Optional filters
	filter := &eventsUseCase.ListEventsFilter{
		OrganizationID: c.Query("organization_id"),
		Action:         c.Query("action"),
	}

	// Call use case
	events, err := h.eventUseCase.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Map to response
	response := dto.MapEventsToListResponse(events)
	c.JSON(http.StatusOK, response)
}
