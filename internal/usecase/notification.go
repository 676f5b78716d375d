package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/takaex/takaex/internal/domain/model"
	"github.com/takaex/takaex/internal/domain/repository"
)

// NotificationUseCase manages the notification feed.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
}

// NewNotificationUseCase constructs NotificationUseCase.
func NewNotificationUseCase(notifications repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

// Feed returns notifications newest first.
func (u *NotificationUseCase) Feed(ctx context.Context) ([]model.Notification, error) {
	return u.notifications.List(ctx)
}

// Clear empties the feed.
func (u *NotificationUseCase) Clear(ctx context.Context) error {
	return u.notifications.Clear(ctx)
}

// RecordOrderSubmitted appends the receipt notification for a new order.
func (u *NotificationUseCase) RecordOrderSubmitted(ctx context.Context, order model.Order) (*model.Notification, error) {
	return u.notifications.Create(ctx, &model.Notification{
		Title: "Order Received",
		Message: fmt.Sprintf("Your %s %s request %s has been submitted for review.",
			order.Service, strings.ToLower(string(order.Type)), order.ID),
		Type: model.NotificationOrder,
	})
}
