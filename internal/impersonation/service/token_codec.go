package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/avocadohq/admin-console/internal/config"
	apperrors "github.com/avocadohq/admin-console/internal/errors"
	"github.com/avocadohq/admin-console/internal/impersonation/domain"
)

const (
	// minSecretLength is the minimum accepted length of the shared signing
	// secret. Short secrets weaken the HMAC and are rejected outright.
	minSecretLength = 32

	// nonceByteLength is the number of random bytes behind the jti claim.
	nonceByteLength = 16

	// defaultTokenTTL bounds the token lifetime when configuration carries a
	// non-positive value.
	defaultTokenTTL = 60 * time.Second
)

// tokenCodec implements TokenCodec using HMAC-SHA256 over a base64url-encoded
// JSON payload. The secret is read from configuration on every mint so a
// misconfigured deployment fails at request time instead of at startup,
// matching the tenant application's behavior.
type tokenCodec struct {
	cfg *config.Config
	now func() time.Time
}

// NewTokenCodec creates a TokenCodec backed by the shared impersonation
// secret from configuration.
func NewTokenCodec(cfg *config.Config) TokenCodec {
	return &tokenCodec{
		cfg: cfg,
		now: time.Now,
	}
}

// CreateToken mints a signed impersonation token. The wire format is
// base64url(payload JSON) + "." + base64url(HMAC-SHA256(secret, encoded payload)),
// both segments unpadded.
func (t *tokenCodec) CreateToken(input *domain.CreateTokenInput) (string, error) {
	actorUserID := strings.TrimSpace(input.ActorUserID)
	actorAdminID := strings.TrimSpace(input.ActorAdminID)
	targetUserID := strings.TrimSpace(input.TargetUserID)
	organizationID := strings.TrimSpace(input.OrganizationID)

	if actorUserID == "" || actorAdminID == "" || targetUserID == "" || organizationID == "" {
		return "", domain.ErrMissingIdentifier
	}

	secret, err := t.signingSecret()
	if err != nil {
		return "", err
	}

	nonce, err := generateNonce()
	if err != nil {
		return "", apperrors.Wrap(err, "failed to generate token nonce")
	}

	issuedAt := t.now().UTC().Unix()
	payload := domain.TokenPayload{
		Version:        domain.TokenVersion,
		IssuedAt:       issuedAt,
		ExpiresAt:      issuedAt + int64(t.tokenTTL().Seconds()),
		Nonce:          nonce,
		ActorUserID:    actorUserID,
		ActorAdminID:   actorAdminID,
		TargetUserID:   targetUserID,
		OrganizationID: organizationID,
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to marshal token payload")
	}

	encodedPayload := base64.RawURLEncoding.EncodeToString(payloadJSON)
	signature := sign(secret, encodedPayload)

	return encodedPayload + "." + signature, nil
}

// VerifyToken validates the token structure and signature and returns the
// decoded payload. Expiry is left to the caller.
func (t *tokenCodec) VerifyToken(token string) (*domain.TokenPayload, error) {
	secret, err := t.signingSecret()
	if err != nil {
		return nil, err
	}

	encodedPayload, encodedSignature, ok := strings.Cut(token, ".")
	if !ok || encodedPayload == "" || encodedSignature == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "malformed impersonation token")
	}

	expected := sign(secret, encodedPayload)
	if !hmac.Equal([]byte(expected), []byte(encodedSignature)) {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "impersonation token signature mismatch")
	}

	payloadJSON, err := base64.RawURLEncoding.DecodeString(encodedPayload)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "malformed impersonation token payload")
	}

	var payload domain.TokenPayload
	if err := json.Unmarshal(payloadJSON, &payload); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "malformed impersonation token payload")
	}

	if payload.Version != domain.TokenVersion {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "unsupported impersonation token version")
	}

	return &payload, nil
}

// signingSecret validates and returns the shared secret. Validation happens
// here rather than in config loading so unrelated commands (migrations, admin
// provisioning) start without the secret being set.
func (t *tokenCodec) signingSecret() (string, error) {
	secret := strings.TrimSpace(t.cfg.ImpersonationSecret)
	if secret == "" {
		return "", domain.ErrSecretNotConfigured
	}
	if len(secret) < minSecretLength {
		return "", domain.ErrSecretTooShort
	}
	return secret, nil
}

func (t *tokenCodec) tokenTTL() time.Duration {
	if t.cfg.ImpersonationTokenTTL <= 0 {
		return defaultTokenTTL
	}
	return t.cfg.ImpersonationTokenTTL
}

// sign computes the unpadded base64url HMAC-SHA256 of the encoded payload.
func sign(secret, encodedPayload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(encodedPayload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// generateNonce returns a hex-encoded random nonce for the jti claim.
func generateNonce() (string, error) {
	buf := make([]byte, nonceByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
