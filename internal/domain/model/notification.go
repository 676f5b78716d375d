package model

import "time"

// NotificationType categorizes feed entries for client-side styling.
type NotificationType string

const (
	NotificationOrder  NotificationType = "order"
	NotificationRate   NotificationType = "rate"
	NotificationSystem NotificationType = "system"
)

// Notification is a single feed entry.
type Notification struct {
	ID        string
	Title     string
	Message   string
	Type      NotificationType
	Read      bool
	CreatedAt time.Time
}
