package model

import "time"

// Session is a server-side login record. Deleting it revokes every token
// minted for it, and it carries the navigation position across requests.
type Session struct {
	ID        string
	UserID    int64
	Screen    string
	Tab       string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its lifetime at the given time.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
