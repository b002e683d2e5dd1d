package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/avocadohq/admin-console/internal/httputil"
	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
	platformUseCase "github.com/avocadohq/admin-console/internal/platform/usecase"
)

// SessionMiddleware authenticates JSON API requests via the auth provider's
// session cookie.
//
// The middleware:
// 1. Reads the session cookie named by cookieName
// 2. Resolves it into an admin context via AdminContextUseCase.Require
// 3. Stores the admin context in the request context
// 4. Allows downstream handlers to access it via GetAdminContext()
//
// Error handling:
//   - Missing/invalid/expired session → 401 Unauthorized
//   - Pending password rotation → 403 Forbidden
//   - Other errors → 500 Internal Server Error
func SessionMiddleware(
	adminContext platformUseCase.AdminContextUseCase,
	cookieName string,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionToken, err := c.Cookie(cookieName)
		if err != nil {
			sessionToken = ""
		}

		adminCtx, err := adminContext.Require(c.Request.Context(), sessionToken)
		if err != nil {
			logger.Debug("session authentication failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithAdminContext(c.Request.Context(), adminCtx)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireMasterMiddleware restricts a route group to MASTER administrators.
// Must run after SessionMiddleware.
func RequireMasterMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminCtx, ok := GetAdminContext(c.Request.Context())
		if !ok {
			httputil.HandleErrorGin(c, platformDomain.ErrSessionRequired, logger)
			c.Abort()
			return
		}

		if adminCtx.Admin.Role != platformDomain.AdminRoleMaster {
			logger.Debug("master role required",
				slog.String("admin_id", adminCtx.Admin.ID.String()),
				slog.String("role", string(adminCtx.Admin.Role)))
			httputil.HandleErrorGin(c, platformDomain.ErrMasterRequired, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
