package dto

import (
	"fmt"
	"time"

	"github.com/takaex/takaex/internal/domain/model"
)

// NotificationResponse is the public view of a feed entry. Time is the
// relative label the client renders directly.
type NotificationResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Read    bool   `json:"read"`
	Time    string `json:"time"`
}

// ToNotificationResponse converts a feed entry against the given clock.
func ToNotificationResponse(n model.Notification, now time.Time) NotificationResponse {
	return NotificationResponse{
		ID:      n.ID,
		Title:   n.Title,
		Message: n.Message,
		Type:    string(n.Type),
		Read:    n.Read,
		Time:    RelativeTime(n.CreatedAt, now),
	}
}

// ToNotificationFeed converts the whole feed.
func ToNotificationFeed(feed []model.Notification, now time.Time) []NotificationResponse {
	resp := make([]NotificationResponse, 0, len(feed))
	for _, n := range feed {
		resp = append(resp, ToNotificationResponse(n, now))
	}
	return resp
}

// RelativeTime renders the "2h ago" style age labels used in the feed.
func RelativeTime(t, now time.Time) string {
	age := now.Sub(t)
	switch {
	case age < time.Minute:
		return "Just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	}
}
