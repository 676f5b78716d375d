package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/takaex/takaex/internal/adapter/identity"
	domainErrors "github.com/takaex/takaex/internal/domain/errors"
	"github.com/takaex/takaex/internal/domain/model"
	"github.com/takaex/takaex/internal/domain/repository"
	"github.com/takaex/takaex/internal/nav"
	pkgAuth "github.com/takaex/takaex/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle and server-side sessions. A token is
// only a signed session ID; deleting the session record is what revokes it.
type AuthUseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	provider identity.Provider
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
	ttl      time.Duration
	now      func() time.Time
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	provider identity.Provider,
	hasher pkgAuth.PasswordHasher,
	strategy pkgAuth.Strategy,
	ttl time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		users:    users,
		sessions: sessions,
		provider: provider,
		hasher:   hasher,
		tokens:   strategy,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Register creates an unverified account. The login is completed by the OTP
// verification step, which is when a session is issued.
func (u *AuthUseCase) Register(ctx context.Context, name, phone, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.users.Create(ctx, &model.User{Name: name, Phone: phone, PasswordHash: hash})
}

// Login validates credentials and opens a session. Registered accounts are
// checked against their stored hash; unknown phones fall through to the
// identity provider, whose accepted profile is persisted on first login.
func (u *AuthUseCase) Login(ctx context.Context, phone, password string) (*model.User, string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByPhone(ctx, phone)
	switch {
	case err == nil && usr.PasswordHash != "":
		if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
	case err == nil:
		// Provider-sourced account without a local password.
		if _, err := u.provider.Verify(ctx, phone, password); err != nil {
			return nil, "", err
		}
	case errors.Is(err, domainErrors.ErrNotFound):
		usr, err = u.adoptProfile(ctx, phone, password)
		if err != nil {
			return nil, "", err
		}
	default:
		return nil, "", err
	}

	token, err := u.startSession(ctx, usr.ID)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// VerifyOTP completes a signup or phone confirmation and opens a session.
func (u *AuthUseCase) VerifyOTP(ctx context.Context, phone, code string) (*model.User, string, error) {
	phone = strings.TrimSpace(phone)
	profile, err := u.provider.VerifyOTP(ctx, phone, code)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.GetByPhone(ctx, phone)
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		usr, err = u.users.Create(ctx, profile)
		if err != nil {
			return nil, "", err
		}
	case err != nil:
		return nil, "", err
	case !usr.Verified:
		usr.Verified = true
		if err := u.users.Update(ctx, usr); err != nil {
			return nil, "", err
		}
	}

	token, err := u.startSession(ctx, usr.ID)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// Logout revokes the session behind the token. Revoking an already dead
// session is not an error; logout is idempotent.
func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	sessionID, err := u.tokens.ParseToken(token)
	if err != nil {
		return err
	}
	if err := u.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return err
	}
	return nil
}

// Authenticate resolves a token to its live session. Expired sessions are
// removed on sight.
func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (*model.Session, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	sessionID, err := u.tokens.ParseToken(token)
	if err != nil {
		return nil, err
	}
	session, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Expired(u.now()) {
		_ = u.sessions.Delete(ctx, sessionID)
		return nil, domainErrors.ErrSessionExpired
	}
	return session, nil
}

// ChangePassword rotates the stored hash after checking the current password.
// Provider-sourced accounts have no hash yet, so their first change skips the
// comparison.
func (u *AuthUseCase) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	if next == "" {
		return domainErrors.ErrInvalidCredentials
	}
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if usr.PasswordHash != "" {
		if err := u.hasher.Compare(usr.PasswordHash, current); err != nil {
			return domainErrors.ErrInvalidCredentials
		}
	}
	hash, err := u.hasher.Hash(next)
	if err != nil {
		return err
	}
	usr.PasswordHash = hash
	return u.users.Update(ctx, usr)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

func (u *AuthUseCase) adoptProfile(ctx context.Context, phone, password string) (*model.User, error) {
	profile, err := u.provider.Verify(ctx, phone, password)
	if err != nil {
		return nil, err
	}
	usr, err := u.users.Create(ctx, profile)
	if errors.Is(err, domainErrors.ErrAlreadyExists) {
		return u.users.GetByPhone(ctx, phone)
	}
	return usr, err
}

func (u *AuthUseCase) startSession(ctx context.Context, userID int64) (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", err
	}
	now := u.now()
	session := &model.Session{
		ID:        id,
		UserID:    userID,
		Screen:    string(nav.ScreenDashboard),
		Tab:       string(nav.TabDashboard),
		CreatedAt: now,
		ExpiresAt: now.Add(u.ttl),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", err
	}
	return u.tokens.IssueToken(session.ID, session.ExpiresAt)
}

func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
