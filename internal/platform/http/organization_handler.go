package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avocadohq/admin-console/internal/httputil"
	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
	"github.com/avocadohq/admin-console/internal/platform/http/dto"
	platformUseCase "github.com/avocadohq/admin-console/internal/platform/usecase"
	customValidation "github.com/avocadohq/admin-console/internal/validation"
)

// OrganizationHandler handles HTTP requests for tenant governance operations.
type OrganizationHandler struct {
	organizationUseCase platformUseCase.OrganizationUseCase
	logger              *slog.Logger
}

// NewOrganizationHandler creates a new organization handler with required dependencies.
func NewOrganizationHandler(
	organizationUseCase platformUseCase.OrganizationUseCase,
	logger *slog.Logger,
) *OrganizationHandler {
	return &OrganizationHandler{
		organizationUseCase: organizationUseCase,
		logger:              logger,
	}
}

// ListHandler retrieves organizations with pagination support.
// GET /v1/organizations?offset=0&limit=50 - Requires an active admin session.
// Returns 200 OK with paginated organization list.
func (h *OrganizationHandler) ListHandler(c *gin.Context) {
	// Parse offset and limit query parameters
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Call use case
	orgs, err := h.organizationUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Map to response
	response := dto.MapOrganizationsToListResponse(orgs)
	c.JSON(http.StatusOK, response)
}

// GetHandler retrieves an organization by ID.
// GET /v1/organizations/:id - Requires an active admin session.
// Returns 200 OK with organization data.
func (h *OrganizationHandler) GetHandler(c *gin.Context) {
	// Call use case
	org, err := h.organizationUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return response
	c.JSON(http.StatusOK, dto.MapOrganizationToResponse(org))
}

// SetPlatformStatusHandler transitions a tenant's platform status.
// PUT /v1/organizations/:id/platform-status - Requires the MASTER role.
// Returns 200 OK with updated organization data.
func (h *OrganizationHandler) SetPlatformStatusHandler(c *gin.Context) {
	var req dto.SetOrganizationStatusRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Resolve the acting admin for the audit trail
	input := &platformUseCase.SetOrganizationStatusInput{
		OrganizationID: c.Param("id"),
		Status:         platformDomain.OrganizationStatus(req.Status),
		Reason:         req.Reason,
	}
	if adminCtx, ok := GetAdminContext(c.Request.Context()); ok {
		input.ActorUserID = adminCtx.Admin.UserID
		input.ActorAdminID = adminCtx.Admin.ID.String()
	}

	// Call use case
	org, err := h.organizationUseCase.SetPlatformStatus(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return response
	c.JSON(http.StatusOK, dto.MapOrganizationToResponse(org))
}
