// Package http provides HTTP middleware and handlers for platform
// governance operations.
package http

import (
	"context"

	platformDomain "github.com/avocadohq/admin-console/internal/platform/domain"
)

// adminContextKey is a context key type for storing the authenticated admin
// context.
type adminContextKey struct{}

// WithAdminContext stores an authenticated admin context in the context.
// Called by the session middleware after successful resolution.
func WithAdminContext(ctx context.Context, adminCtx *platformDomain.AdminContext) context.Context {
	return context.WithValue(ctx, adminContextKey{}, adminCtx)
}

// GetAdminContext retrieves the authenticated admin context. Returns
// (adminCtx, true) when present, or (nil, false) when no middleware set it.
func GetAdminContext(ctx context.Context) (*platformDomain.AdminContext, bool) {
	adminCtx, ok := ctx.Value(adminContextKey{}).(*platformDomain.AdminContext)
	return adminCtx, ok
}
