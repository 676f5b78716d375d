package dto

import "github.com/takaex/takaex/internal/domain/model"

// RegisterRequest describes the signup payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest describes the phone/password payload.
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// OTPRequest describes the verification code payload.
type OTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// AuthResponse carries the session token and the authenticated profile.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Verified        bool   `json:"verified"`
	TotalOrders     int    `json:"total_orders"`
	CompletedOrders int    `json:"completed_orders"`
}

// ToUserResponse converts the domain user.
func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Phone:           u.Phone,
		Verified:        u.Verified,
		TotalOrders:     u.TotalOrders,
		CompletedOrders: u.CompletedOrders,
	}
}
