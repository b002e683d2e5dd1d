package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	eventsDomain "github.com/avocadohq/admin-console/internal/events/domain"
)

type eventSigner struct{}

// NewEventSigner creates an HMAC-based platform event signer using HKDF-SHA256
// for key derivation and HMAC-SHA256 for signature generation.
func NewEventSigner() EventSigner {
	return &eventSigner{}
}

// deriveSigningKey uses HKDF-SHA256 to derive a 32-byte signing key from the
// configured secret. The info string is versioned for future algorithm changes.
func (e *eventSigner) deriveSigningKey(secret []byte) ([]byte, error) {
	info := []byte("platform-event-signing-v1")
	hash := sha256.New
	hkdf := hkdf.New(hash, secret, nil, info)

	signingKey := make([]byte, 32)
	if _, err := io.ReadFull(hkdf, signingKey); err != nil {
		return nil, err
	}

	return signingKey, nil
}

// canonicalizeEvent converts the event to a canonical byte representation.
// Variable-length fields are length-prefixed to prevent ambiguity between
// adjacent values.
func (e *eventSigner) canonicalizeEvent(event *eventsDomain.PlatformEvent) ([]byte, error) {
	buf := make([]byte, 0, 1024)

	buf = append(buf, event.ID[:]...)
	buf = appendLengthPrefixed(buf, []byte(event.Source))
	buf = appendLengthPrefixed(buf, []byte(event.Action))
	buf = appendLengthPrefixed(buf, []byte(string(event.Severity)))
	buf = appendLengthPrefixed(buf, []byte(event.ActorUserID))
	buf = appendLengthPrefixed(buf, []byte(event.ActorAdminID))
	buf = appendLengthPrefixed(buf, []byte(event.OrganizationID))
	buf = appendLengthPrefixed(buf, []byte(event.TargetType))
	buf = appendLengthPrefixed(buf, []byte(event.TargetID))

	if event.Metadata != nil {
		metadataBytes, err := json.Marshal(event.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal event metadata: %w", err)
		}
		buf = appendLengthPrefixed(buf, metadataBytes)
	} else {
		buf = appendLengthPrefixed(buf, nil)
	}

	timeBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(timeBytes, uint64(event.CreatedAt.UnixNano()))
	buf = append(buf, timeBytes...)

	return buf, nil
}

// appendLengthPrefixed adds a 4-byte big-endian length prefix followed by data.
func appendLengthPrefixed(buf []byte, data []byte) []byte {
	dataLen := len(data)
	if dataLen > 0xFFFFFFFF {
		panic("data length exceeds uint32 max")
	}
	length := make([]byte, 4)
	binary.BigEndian.PutUint32(length, uint32(dataLen))
	buf = append(buf, length...)
	buf = append(buf, data...)
	return buf
}

// Sign generates an HMAC-SHA256 signature for the event.
func (e *eventSigner) Sign(secret []byte, event *eventsDomain.PlatformEvent) ([]byte, error) {
	signingKey, err := e.deriveSigningKey(secret)
	if err != nil {
		return nil, fmt.Errorf("failed to derive signing key: %w", err)
	}
	defer zero(signingKey)

	canonical, err := e.canonicalizeEvent(event)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize event: %w", err)
	}

	mac := hmac.New(sha256.New, signingKey)
	mac.Write(canonical)
	return mac.Sum(nil), nil
}

// Verify checks if the event signature is valid.
func (e *eventSigner) Verify(secret []byte, event *eventsDomain.PlatformEvent) error {
	expectedSig, err := e.Sign(secret, event)
	if err != nil {
		return fmt.Errorf("failed to compute expected signature: %w", err)
	}

	if !hmac.Equal(event.Signature, expectedSig) {
		return eventsDomain.ErrSignatureInvalid
	}

	return nil
}

// zero overwrites key material in memory after use.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
