// Package domain defines the entities of the cross-application impersonation handshake.
package domain

// TokenVersion is the current impersonation token schema version. Consumers
// reject payloads carrying any other value.
const TokenVersion = 1

// TokenPayload is the signed body of an impersonation token. The JSON field
// names are a wire contract shared with the tenant application and must not
// change without bumping TokenVersion.
type TokenPayload struct {
	Version        int    `json:"v"`
	IssuedAt       int64  `json:"iat"`
	ExpiresAt      int64  `json:"exp"`
	Nonce          string `json:"jti"`
	ActorUserID    string `json:"actorUserId"`
	ActorAdminID   string `json:"actorAdminId"`
	TargetUserID   string `json:"targetUserId"`
	OrganizationID string `json:"organizationId"`
}

// CreateTokenInput identifies the parties of an impersonation token: the
// platform operator requesting access and the tenant account being entered.
type CreateTokenInput struct {
	ActorUserID    string
	ActorAdminID   string
	TargetUserID   string
	OrganizationID string
}

// IssueInput carries the caller identity and the tenant selection for a
// handoff request. SessionToken may be empty when the browser sent no
// session cookie.
type IssueInput struct {
	SessionToken   string
	OrganizationID string
}

// IssueOutput is the result of a successful handoff: the signed token plus
// the resolved identities, kept for audit logging by the caller.
type IssueOutput struct {
	Token          string
	ActorUserID    string
	ActorAdminID   string
	TargetUserID   string
	OrganizationID string
}
