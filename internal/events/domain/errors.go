package domain

import (
	apperrors "github.com/avocadohq/admin-console/internal/errors"
)

var (
	// ErrSignatureInvalid indicates the event signature does not match its
	// content, meaning the record was altered after it was written.
	ErrSignatureInvalid = apperrors.Wrap(apperrors.ErrUnauthorized, "platform event signature is invalid")

	// ErrActionRequired indicates an event was logged without an action name.
	ErrActionRequired = apperrors.Wrap(apperrors.ErrInvalidInput, "platform event action is required")
)
