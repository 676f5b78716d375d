package usecase

import (
	"context"
	"strings"

	"github.com/takaex/takaex/internal/domain/model"
	"github.com/takaex/takaex/internal/domain/repository"
)

// ProfileUseCase reads and edits the account profile. The phone number is the
// account identity and stays immutable; the repository enforces that too.
type ProfileUseCase struct {
	users repository.UserRepository
}

// NewProfileUseCase constructs ProfileUseCase.
func NewProfileUseCase(users repository.UserRepository) *ProfileUseCase {
	return &ProfileUseCase{users: users}
}

// Profile fetches the account behind the session.
func (u *ProfileUseCase) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return u.users.GetByID(ctx, userID)
}

// Update applies name and email edits. Blank fields keep their current value.
func (u *ProfileUseCase) Update(ctx context.Context, userID int64, name, email string) (*model.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if name = strings.TrimSpace(name); name != "" {
		usr.Name = name
	}
	if email = strings.TrimSpace(email); email != "" {
		usr.Email = email
	}
	if err := u.users.Update(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}
