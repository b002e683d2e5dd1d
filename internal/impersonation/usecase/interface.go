// Package usecase implements the impersonation issuer: the ordered
// precondition chain between an operator's handoff request and a minted
// token.
package usecase

import (
	"context"

	"github.com/avocadohq/admin-console/internal/impersonation/domain"
)

// ImpersonationUseCase issues cross-application impersonation tokens.
type ImpersonationUseCase interface {
	// Issue validates the caller and the target tenant, resolves the account
	// to impersonate, mints a token and records the audit event. Failures
	// are tagged domain errors; callers translate them into redirects.
	Issue(ctx context.Context, input *domain.IssueInput) (*domain.IssueOutput, error)
}
