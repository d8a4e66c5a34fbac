package entity

import "time"

// Session represents an authenticated browser's server-side state.
// It associates the signed session cookie with a user identity.
type Session struct {
	ID        string    // Session token value (64-character hex string)
	UserID    uint      // Associated user ID
	CreatedAt time.Time // Session creation time
	ExpiresAt time.Time // Session expiration time (fixed, no sliding renewal)
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsValid returns true if the session has not expired.
func (s *Session) IsValid() bool {
	return !s.IsExpired()
}
