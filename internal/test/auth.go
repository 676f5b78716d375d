package test

import (
	"context"
	"errors"
	"time"

	"github.com/takaex/takaex/internal/domain/model"
	pkgAuth "github.com/takaex/takaex/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses session tokens via function overrides. The
// default behaviour echoes the session ID with a prefix.
type StrategyStub struct {
	IssueFn func(string, time.Time) (string, error)
	ParseFn func(string) (string, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(sessionID string, expiresAt time.Time) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(sessionID, expiresAt)
	}
	return "token-" + sessionID, nil
}

// ParseToken recovers the session ID from a previously issued token.
func (s StrategyStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if len(token) <= 6 || token[:6] != "token-" {
		return "", pkgAuth.ErrInvalidToken
	}
	return token[6:], nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// SessionResolverStub implements the middleware authentication contract.
type SessionResolverStub struct {
	Session *model.Session
	Err     error
	Fn      func(context.Context, string) (*model.Session, error)
}

// Authenticate either delegates to the override or returns the predefined result.
func (s SessionResolverStub) Authenticate(ctx context.Context, token string) (*model.Session, error) {
	if s.Fn != nil {
		return s.Fn(ctx, token)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Session != nil {
		return s.Session, nil
	}
	return &model.Session{ID: "sess-1", UserID: 1, Screen: "dashboard", Tab: "dashboard", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

// ProviderStub simulates the external identity provider.
type ProviderStub struct {
	VerifyFn    func(context.Context, string, string) (*model.User, error)
	VerifyOTPFn func(context.Context, string, string) (*model.User, error)
	Profile     *model.User
	Err         error
}

// Verify returns the configured profile or error.
func (s ProviderStub) Verify(ctx context.Context, phone, password string) (*model.User, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, phone, password)
	}
	return s.answer(phone)
}

// VerifyOTP returns the configured profile or error.
func (s ProviderStub) VerifyOTP(ctx context.Context, phone, code string) (*model.User, error) {
	if s.VerifyOTPFn != nil {
		return s.VerifyOTPFn(ctx, phone, code)
	}
	return s.answer(phone)
}

func (s ProviderStub) answer(phone string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Profile != nil {
		profile := *s.Profile
		return &profile, nil
	}
	return &model.User{Name: "John Doe", Email: "john@example.com", Phone: phone, Verified: true}, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
