package usecase

import "time"

// SetNow overrides the clock of an AuthUseCase in tests.
func (u *AuthUseCase) SetNow(now func() time.Time) {
	u.now = now
}

// NewSessionID exposes session ID generation for tests.
var NewSessionID = newSessionID
