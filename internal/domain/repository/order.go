package repository

import (
	"context"

	"github.com/takaex/takaex/internal/domain/model"
)

// OrderRepository is the insertion-ordered order ledger. Create prepends, so
// List comes back newest first.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
}
