package handlers

import (
	"context"

	"github.com/takaex/takaex/internal/domain/model"
	"github.com/takaex/takaex/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, phone, password string) (*model.User, error)
	Login(ctx context.Context, phone, password string) (*model.User, string, error)
	VerifyOTP(ctx context.Context, phone, code string) (*model.User, string, error)
	Logout(ctx context.Context, token string) error
}

// SessionResolver turns a token into its live session.
type SessionResolver interface {
	Authenticate(ctx context.Context, token string) (*model.Session, error)
}

// RateFacade exposes rate and quote lookups.
type RateFacade interface {
	Rates(ctx context.Context) (model.RatePair, error)
	PreviewQuote(ctx context.Context, direction, amount string) (*usecase.Quote, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	SubmitOrder(ctx context.Context, userID int64, in usecase.SubmitOrderInput) (*model.Order, error)
	Orders(ctx context.Context, statusFilter string) ([]model.Order, int, error)
	Order(ctx context.Context, id string) (*model.Order, error)
}

// NotificationFacade provides feed operations.
type NotificationFacade interface {
	Notifications(ctx context.Context) ([]model.Notification, error)
	ClearNotifications(ctx context.Context) error
}

// ProfileFacade provides account profile operations.
type ProfileFacade interface {
	Profile(ctx context.Context, userID int64) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, name, email string) (*model.User, error)
	ChangePassword(ctx context.Context, userID int64, current, next string) error
}

// NavFacade drives the navigation state machine.
type NavFacade interface {
	NavState(session *model.Session) usecase.NavState
	Navigate(ctx context.Context, session *model.Session, target string) (usecase.NavState, error)
	NavigateBack(ctx context.Context, session *model.Session) (usecase.NavState, error)
}

// ExchangeFacade aggregates the full set of operations used across handlers.
type ExchangeFacade interface {
	AuthFacade
	SessionResolver
	RateFacade
	OrderFacade
	NotificationFacade
	ProfileFacade
	NavFacade
}
