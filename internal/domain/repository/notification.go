package repository

import (
	"context"

	"github.com/takaex/takaex/internal/domain/model"
)

// NotificationRepository stores the user-facing notification feed.
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)
	List(ctx context.Context) ([]model.Notification, error)
	Clear(ctx context.Context) error
}
