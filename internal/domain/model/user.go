package model

import "time"

// User represents an exchange customer. PasswordHash is empty for profiles
// answered by an external identity provider.
type User struct {
	ID              int64
	Name            string
	Email           string
	Phone           string
	PasswordHash    string
	Verified        bool
	TotalOrders     int
	CompletedOrders int
	CreatedAt       time.Time
}
