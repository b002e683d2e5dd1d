package domain

import (
	apperrors "github.com/avocadohq/admin-console/internal/errors"
)

// Platform governance errors. Each wraps a base error kind so callers can
// classify with errors.Is() while keeping a specific message.
var (
	// ErrSessionRequired indicates the request carried no session cookie, an
	// unknown session token, or an expired session.
	ErrSessionRequired = apperrors.Wrap(apperrors.ErrUnauthorized, "a valid session is required")

	// ErrSessionNotFound indicates no session matches the token.
	ErrSessionNotFound = apperrors.Wrap(apperrors.ErrNotFound, "session not found")

	// ErrNotPlatformAdmin indicates the session user has no platform admin
	// record or the record is not active.
	ErrNotPlatformAdmin = apperrors.Wrap(apperrors.ErrUnauthorized, "an active platform administrator account is required")

	// ErrPasswordChangeRequired indicates the admin must rotate their
	// temporary password before performing any privileged operation.
	ErrPasswordChangeRequired = apperrors.Wrap(apperrors.ErrForbidden, "password change required before this operation")

	// ErrMasterRequired indicates the operation is restricted to MASTER
	// administrators.
	ErrMasterRequired = apperrors.Wrap(apperrors.ErrForbidden, "operation restricted to MASTER administrators")

	// ErrAdminNotFound indicates no platform admin matches the identifier.
	ErrAdminNotFound = apperrors.Wrap(apperrors.ErrNotFound, "platform admin not found")

	// ErrAdminAlreadyExists indicates the user already has an admin record.
	ErrAdminAlreadyExists = apperrors.Wrap(apperrors.ErrConflict, "platform admin already exists for this user")

	// ErrLastMasterAdmin indicates the operation would leave the platform
	// without any active MASTER administrator.
	ErrLastMasterAdmin = apperrors.Wrap(apperrors.ErrInvalidState, "cannot disable the last active MASTER administrator")

	// ErrOrganizationNotFound indicates no organization matches the identifier.
	ErrOrganizationNotFound = apperrors.Wrap(apperrors.ErrNotFound, "organization not found")

	// ErrOwnerMemberNotFound indicates the organization has no member with an
	// owner role.
	ErrOwnerMemberNotFound = apperrors.Wrap(apperrors.ErrNotFound, "organization has no owner member")

	// ErrSameStatus indicates a status transition to the value already set.
	ErrSameStatus = apperrors.Wrap(apperrors.ErrInvalidState, "status is already set to the requested value")
)
