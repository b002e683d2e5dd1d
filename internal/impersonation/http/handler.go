package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avocadohq/admin-console/internal/config"
	apperrors "github.com/avocadohq/admin-console/internal/errors"
	"github.com/avocadohq/admin-console/internal/httputil"
	"github.com/avocadohq/admin-console/internal/impersonation/domain"
	impersonationUseCase "github.com/avocadohq/admin-console/internal/impersonation/usecase"
	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
)

const (
	// defaultReturnTo is where failed handoffs land in the admin console.
	defaultReturnTo = "/admin/organizations"

	// starterNextPath is where the tenant app sends the operator after
	// consuming the token.
	starterNextPath = "/dashboard"

	// starterConsumePath is the tenant app endpoint that consumes the token.
	starterConsumePath = "/api/platform-admin/impersonation"

	// changePasswordPath hosts the forced password rotation flow.
	changePasswordPath = "/change-password"
)

// User-facing failure messages. Every issuer failure maps to exactly one of
// these; internal details never reach the browser.
const (
	msgCrossOrigin         = "Cross-origin requests cannot start tenant impersonation."
	msgOrganizationMissing = "Organization not specified."
	msgMasterRequired      = "Only MASTER administrators can open tenant sessions."
	msgPasswordChange      = "Change your password before accessing tenants."
	msgOrganizationGone    = "Organization not found."
	msgOrganizationBlocked = "Tenant is blocked on the platform. Unblock it before signing in to the tenant app."
	msgOwnerMissing        = "Organization has no owner account to impersonate."
	msgTokenFailure        = "Failed to create the cross-app authentication token."
	msgInvalidFlow         = "Invalid flow. Use the secure access button in the admin panel."
)

// ImpersonationHandler serves the cross-app handoff endpoint. POST starts a
// handoff; GET is always rejected so tokens can never be minted from a
// crafted link.
type ImpersonationHandler struct {
	useCase impersonationUseCase.ImpersonationUseCase
	cfg     *config.Config
	logger  *slog.Logger
}

// NewImpersonationHandler creates a new ImpersonationHandler.
func NewImpersonationHandler(
	useCase impersonationUseCase.ImpersonationUseCase,
	cfg *config.Config,
	logger *slog.Logger,
) *ImpersonationHandler {
	return &ImpersonationHandler{
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}
}

// PostHandler handles POST requests to start a handoff. Every outcome is
// terminal: either the auto-submitting document or a redirect carrying a
// user-facing message.
func (h *ImpersonationHandler) PostHandler(c *gin.Context) {
	returnTo := httputil.SafePath(c.PostForm("returnTo"), defaultReturnTo)

	// Origin is checked before anything else so a cross-site form post never
	// reaches the session lookup.
	origin := strings.TrimSpace(c.GetHeader("Origin"))
	if origin != "" && origin != h.cfg.AdminAppOrigin() {
		h.logger.Warn("impersonation rejected: cross-origin request",
			slog.String("origin", origin))
		httputil.RedirectWithMessage(c, returnTo, "error", msgCrossOrigin)
		return
	}

	organizationID := strings.TrimSpace(c.PostForm("organizationId"))
	if organizationID == "" {
		httputil.RedirectWithMessage(c, returnTo, "error", msgOrganizationMissing)
		return
	}

	sessionToken, err := c.Cookie(h.cfg.SessionCookieName)
	if err != nil {
		sessionToken = ""
	}

	output, err := h.useCase.Issue(c.Request.Context(), &domain.IssueInput{
		SessionToken:   sessionToken,
		OrganizationID: organizationID,
	})
	if err != nil {
		h.redirectForError(c, err, returnTo)
		return
	}

	actionURL := h.cfg.StarterAppBaseURL() + starterConsumePath
	document := renderAutoPostDocument(actionURL, output.Token, starterNextPath)

	// The response embeds a live credential: forbid caching, referrers and
	// framing.
	c.Header("Cache-Control", "no-store")
	c.Header("Referrer-Policy", "no-referrer")
	c.Header("X-Frame-Options", "DENY")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(document))
}

// GetHandler rejects GET requests with an error redirect. The handoff only
// accepts form posts from the admin console itself.
func (h *ImpersonationHandler) GetHandler(c *gin.Context) {
	returnTo := httputil.SafePath(c.Query("returnTo"), defaultReturnTo)
	httputil.RedirectWithMessage(c, returnTo, "error", msgInvalidFlow)
}

// redirectForError translates issuer errors into their terminal redirects.
// Unknown errors, including configuration problems, collapse into a generic
// message so nothing about the deployment leaks.
func (h *ImpersonationHandler) redirectForError(c *gin.Context, err error, returnTo string) {
	switch {
	case errors.Is(err, platformDomain.ErrSessionRequired),
		errors.Is(err, platformDomain.ErrNotPlatformAdmin):
		httputil.RedirectToSignIn(c, returnTo, "")
	case errors.Is(err, platformDomain.ErrPasswordChangeRequired):
		httputil.RedirectWithMessage(c, changePasswordPath, "error", msgPasswordChange)
	case errors.Is(err, platformDomain.ErrMasterRequired):
		httputil.RedirectWithMessage(c, returnTo, "error", msgMasterRequired)
	case errors.Is(err, platformDomain.ErrOrganizationNotFound):
		httputil.RedirectWithMessage(c, returnTo, "error", msgOrganizationGone)
	case errors.Is(err, domain.ErrOrganizationBlocked):
		httputil.RedirectWithMessage(c, returnTo, "error", msgOrganizationBlocked)
	case errors.Is(err, domain.ErrOwnerNotResolvable):
		httputil.RedirectWithMessage(c, returnTo, "error", msgOwnerMissing)
	case errors.Is(err, apperrors.ErrInvalidInput):
		httputil.RedirectWithMessage(c, returnTo, "error", msgOrganizationMissing)
	default:
		h.logger.Error("impersonation handoff failed",
			slog.String("error", err.Error()))
		httputil.RedirectWithMessage(c, returnTo, "error", msgTokenFailure)
	}
}
