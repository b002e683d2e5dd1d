package domain

import (
	apperrors "github.com/avocadohq/admin-console/internal/errors"
)

// Impersonation-specific errors. Each wraps a base error kind so callers can
// use errors.Is() for classification while the HTTP layer decides how the
// outcome is presented to the operator.
var (
	// ErrMissingIdentifier indicates that one of the four token identifiers
	// was empty or whitespace-only at mint time.
	ErrMissingIdentifier = apperrors.Wrap(apperrors.ErrInvalidInput, "impersonation token requires actor, admin, target and organization identifiers")

	// ErrSecretNotConfigured indicates the shared signing secret is unset.
	ErrSecretNotConfigured = apperrors.Wrap(apperrors.ErrConfiguration, "impersonation signing secret is not configured")

	// ErrSecretTooShort indicates the shared signing secret is below the
	// minimum accepted length.
	ErrSecretTooShort = apperrors.Wrap(apperrors.ErrConfiguration, "impersonation signing secret is shorter than the minimum length")

	// ErrOrganizationBlocked indicates the selected tenant is blocked on the
	// platform and cannot be entered until unblocked.
	ErrOrganizationBlocked = apperrors.Wrap(apperrors.ErrInvalidState, "organization is blocked on the platform")

	// ErrOwnerNotResolvable indicates the tenant has neither a subscription
	// owner nor an owner-role member to impersonate.
	ErrOwnerNotResolvable = apperrors.Wrap(apperrors.ErrInvalidState, "organization has no resolvable owner account")
)
