package domain

import "time"

const SessionTypeAccess = "access"

// AuthSession is one issued bearer credential. Only the digest of the token
// is persisted.
type AuthSession struct {
	ID          string
	UserID      string
	SessionType string
	TokenHash   string
	IssuedAt    time.Time
	ExpiresAt   *time.Time
	RevokedAt   *time.Time
	LastUsedAt  *time.Time
	IP          string
	UserAgent   string
	Metadata    map[string]any
}

// ValidAt reports whether the session can authenticate a request at now.
// Expiry is never written back; it is evaluated here on every check.
func (s *AuthSession) ValidAt(now time.Time) bool {
	if s.RevokedAt != nil {
		return false
	}
	return s.ExpiresAt == nil || s.ExpiresAt.After(now)
}

// Principal is the result of a successful authentication: the session and
// the user it belongs to.
type Principal struct {
	SessionID   string
	SessionType string
	User        Profile
}

// IssuedSession is returned by signup and login.
type IssuedSession struct {
	User        Profile   `json:"user"`
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
