package dto

import "github.com/takaex/takaex/internal/usecase"

// NavigateRequest moves the session to a target screen, or back one step.
type NavigateRequest struct {
	Target string `json:"target"`
	Back   bool   `json:"back"`
}

// SessionResponse reports the navigation position.
type SessionResponse struct {
	Screen        string `json:"screen"`
	Tab           string `json:"tab"`
	Authenticated bool   `json:"authenticated"`
}

// ToSessionResponse converts a navigation state.
func ToSessionResponse(state usecase.NavState, authenticated bool) SessionResponse {
	return SessionResponse{
		Screen:        string(state.Screen),
		Tab:           string(state.Tab),
		Authenticated: authenticated,
	}
}
