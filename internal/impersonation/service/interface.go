// Package service implements the signed token codec for cross-application
// impersonation.
package service

import (
	"github.com/avocadohq/admin-console/internal/impersonation/domain"
)

// TokenCodec mints and verifies short-lived impersonation tokens shared with
// the tenant application.
type TokenCodec interface {
	// CreateToken mints a signed token binding the four identities together.
	// Fails with a validation error when any identifier is blank and with a
	// configuration error when the signing secret is unusable.
	CreateToken(input *domain.CreateTokenInput) (string, error)

	// VerifyToken checks a token's signature and structure and returns the
	// decoded payload. It does not check expiry; callers compare ExpiresAt
	// against their own clock.
	VerifyToken(token string) (*domain.TokenPayload, error)
}
