package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventsDomain "github.com/avocadohq/admin-console/internal/events/domain"
)

func testEvent() *eventsDomain.PlatformEvent {
	return &eventsDomain.PlatformEvent{
		ID:             uuid.Must(uuid.NewV7()),
		Source:         eventsDomain.DefaultSource,
		Action:         eventsDomain.ActionImpersonationRequested,
		Severity:       eventsDomain.SeverityInfo,
		ActorUserID:    "user_admin_1",
		ActorAdminID:   "padm_1",
		OrganizationID: "org_1",
		TargetType:     "user",
		TargetID:       "user_owner_1",
		Metadata:       map[string]any{"ip": "203.0.113.9"},
		CreatedAt:      time.Now().UTC(),
	}
}

func TestEventSigner(t *testing.T) {
	signer := NewEventSigner()
	secret := []byte("platform-event-signing-secret-01")

	t.Run("sign and verify round-trip", func(t *testing.T) {
		event := testEvent()

		sig, err := signer.Sign(secret, event)
		require.NoError(t, err)
		require.Len(t, sig, 32)

		event.Signature = sig
		assert.NoError(t, signer.Verify(secret, event))
	})

	t.Run("verify fails after field mutation", func(t *testing.T) {
		event := testEvent()

		sig, err := signer.Sign(secret, event)
		require.NoError(t, err)
		event.Signature = sig

		event.OrganizationID = "org_other"
		assert.ErrorIs(t, signer.Verify(secret, event), eventsDomain.ErrSignatureInvalid)
	})

	t.Run("verify fails after metadata mutation", func(t *testing.T) {
		event := testEvent()

		sig, err := signer.Sign(secret, event)
		require.NoError(t, err)
		event.Signature = sig

		event.Metadata["ip"] = "198.51.100.1"
		assert.ErrorIs(t, signer.Verify(secret, event), eventsDomain.ErrSignatureInvalid)
	})

	t.Run("verify fails with a different secret", func(t *testing.T) {
		event := testEvent()

		sig, err := signer.Sign(secret, event)
		require.NoError(t, err)
		event.Signature = sig

		assert.ErrorIs(t, signer.Verify([]byte("another-signing-secret-value-02"), event), eventsDomain.ErrSignatureInvalid)
	})

	t.Run("nil metadata signs deterministically", func(t *testing.T) {
		event := testEvent()
		event.Metadata = nil

		first, err := signer.Sign(secret, event)
		require.NoError(t, err)

		second, err := signer.Sign(secret, event)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
