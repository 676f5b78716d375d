package repository

import (
	"context"

	"github.com/takaex/takaex/internal/domain/model"
)

// SessionRepository keeps server-side login records. Deleting a record is how
// logout revokes an otherwise still-valid signed token.
type SessionRepository interface {
	Create(ctx context.Context, s *model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Update(ctx context.Context, s *model.Session) error
	Delete(ctx context.Context, id string) error
}
