// Package identity abstracts external credential verification. The shipped
// provider is an explicit placeholder, not a security mechanism: it exists so
// a genuine verifier can be substituted without touching session logic.
package identity

import (
	"context"

	"github.com/takaex/takaex/internal/domain/model"
)

// Provider verifies a phone/password pair and answers the matching profile.
type Provider interface {
	Verify(ctx context.Context, phone, password string) (*model.User, error)
	VerifyOTP(ctx context.Context, phone, code string) (*model.User, error)
}
