// Package service implements tamper-evidence signing for platform events.
package service

import (
	eventsDomain "github.com/avocadohq/admin-console/internal/events/domain"
)

// EventSigner produces and verifies HMAC signatures over platform events.
type EventSigner interface {
	// Sign generates an HMAC-SHA256 signature for the event using a key
	// derived from the signing secret.
	Sign(secret []byte, event *eventsDomain.PlatformEvent) ([]byte, error)

	// Verify checks the event's signature. Returns nil when valid,
	// ErrSignatureInvalid when the record was tampered with.
	Verify(secret []byte, event *eventsDomain.PlatformEvent) error
}
