package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/avocadohq/admin-console/internal/httputil"
	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
	"github.com/avocadohq/admin-console/internal/platform/http/dto"
	platformUseCase "github.com/avocadohq/admin-console/internal/platform/usecase"
	customValidation "github.com/avocadohq/admin-console/internal/validation"
)

// AdminHandler handles HTTP requests for platform administrator management.
type AdminHandler struct {
	adminUseCase platformUseCase.AdminUseCase
	logger       *slog.Logger
}

// NewAdminHandler creates a new admin handler with required dependencies.
func NewAdminHandler(adminUseCase platformUseCase.AdminUseCase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

// CreateHandler provisions a new platform administrator.
// POST /v1/admins - Requires the MASTER role.
// Returns 201 Created with the admin record and one-time temporary password.
func (h *AdminHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateAdminRequest

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
	input := &platformUseCase.CreateAdminInput{
		UserID:       req.UserID,
		Email:        req.Email,
		Role:         platformDomain.AdminRole(req.Role),
		TempPassword: req.TempPassword,
	}
	if adminCtx, ok := GetAdminContext(c.Request.Context()); ok {
		input.ActorUserID = adminCtx.Admin.UserID
		input.ActorAdminID = adminCtx.Admin.ID.String()
	}

	// Call use case
	output, err := h.adminUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return response with the one-time temporary password
	response := dto.CreateAdminResponse{
		Admin:        dto.MapAdminToResponse(output.Admin),
		TempPassword: output.TempPassword,
	}

	c.JSON(http.StatusCreated, response)
}

// ListHandler retrieves platform admins with pagination support.
// GET /v1/admins?offset=0&limit=50 - Requires the MASTER role.
// Returns 200 OK with paginated admin list.
func (h *AdminHandler) ListHandler(c *gin.Context) {
	// Parse offset and limit query parameters
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Call use case
	admins, err := h.adminUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Map to response
	response := dto.MapAdminsToListResponse(admins)
	c.JSON(http.StatusOK, response)
}

// SetStatusHandler transitions a platform admin's status.
// PUT /v1/admins/:id/status - Requires the MASTER role.
// Returns 200 OK with updated admin data.
func (h *AdminHandler) SetStatusHandler(c *gin.Context) {
	// Parse and validate UUID
	adminID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid admin ID format: must be a valid UUID"),
			h.logger)
		return
	}

	var req dto.SetAdminStatusRequest

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
	input := &platformUseCase.SetAdminStatusInput{
		AdminID: adminID,
		Status:  platformDomain.AdminStatus(req.Status),
	}
	if adminCtx, ok := GetAdminContext(c.Request.Context()); ok {
		input.ActorUserID = adminCtx.Admin.UserID
		input.ActorAdminID = adminCtx.Admin.ID.String()
	}

	// Call use case
	admin, err := h.adminUseCase.SetStatus(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return response
	c.JSON(http.StatusOK, dto.MapAdminToResponse(admin))
}
