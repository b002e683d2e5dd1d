package domain

import "time"

// Session is an auth provider session row, read-only from this service's
// point of view. The auth provider creates and rotates sessions; the admin
// console only resolves cookies against them.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session has passed its expiry at the given
// instant.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
