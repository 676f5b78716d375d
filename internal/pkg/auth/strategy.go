package auth

import "time"

// Strategy signs and verifies session tokens. The token only proves the
// session ID was issued by us; whether the session is still alive is the
// session store's business.
type Strategy interface {
	IssueToken(sessionID string, expiresAt time.Time) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}
