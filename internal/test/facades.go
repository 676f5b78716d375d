package test

import (
	"context"
	"sync"

	"github.com/takaex/takaex/internal/domain/model"
	"github.com/takaex/takaex/internal/nav"
	"github.com/takaex/takaex/internal/usecase"
)

// RateFeedStub answers a fixed rate pair for tests.
type RateFeedStub struct {
	Pair model.RatePair
	Err  error
}

// Rates returns the configured pair.
func (s RateFeedStub) Rates(ctx context.Context) (model.RatePair, error) {
	if s.Err != nil {
		return model.RatePair{}, s.Err
	}
	if s.Pair == (model.RatePair{}) {
		return model.RatePair{Buy: 122.5, Sell: 118.2}, s.Err
	}
	return s.Pair, nil
}

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn  func(context.Context, string, string, string) (*model.User, error)
	LoginFn     func(context.Context, string, string) (*model.User, string, error)
	VerifyOTPFn func(context.Context, string, string) (*model.User, string, error)
	LogoutFn    func(context.Context, string) error
}

// Register returns a created account for signup scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, name, phone, password string) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, phone, password)
	}
	return &model.User{ID: 1, Name: name, Phone: phone}, nil
}

// Login returns a user and token for successful authentication scenarios.
func (s AuthFacadeStub) Login(ctx context.Context, phone, password string) (*model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, phone, password)
	}
	return &model.User{ID: 1, Phone: phone}, "token", nil
}

// VerifyOTP returns a user and token for completed verifications.
func (s AuthFacadeStub) VerifyOTP(ctx context.Context, phone, code string) (*model.User, string, error) {
	if s.VerifyOTPFn != nil {
		return s.VerifyOTPFn(ctx, phone, code)
	}
	return &model.User{ID: 1, Phone: phone, Verified: true}, "token", nil
}

// Logout revokes the supplied token.
func (s AuthFacadeStub) Logout(ctx context.Context, token string) error {
	if s.LogoutFn != nil {
		return s.LogoutFn(ctx, token)
	}
	return nil
}

// RateFacadeStub simulates rate and quote lookups.
type RateFacadeStub struct {
	RatesFn   func(context.Context) (model.RatePair, error)
	PreviewFn func(context.Context, string, string) (*usecase.Quote, error)
}

// Rates returns the configured rate pair.
func (s RateFacadeStub) Rates(ctx context.Context) (model.RatePair, error) {
	if s.RatesFn != nil {
		return s.RatesFn(ctx)
	}
	return model.RatePair{Buy: 122.5, Sell: 118.2}, nil
}

// PreviewQuote returns the configured quote.
func (s RateFacadeStub) PreviewQuote(ctx context.Context, direction, amount string) (*usecase.Quote, error) {
	if s.PreviewFn != nil {
		return s.PreviewFn(ctx, direction, amount)
	}
	return &usecase.Quote{Type: model.ExchangeTypeBuy, USD: 100, BDT: 12250, Rate: 122.5}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	SubmitFn func(context.Context, int64, usecase.SubmitOrderInput) (*model.Order, error)
	OrdersFn func(context.Context, string) ([]model.Order, int, error)
	OrderFn  func(context.Context, string) (*model.Order, error)
}

// SubmitOrder delegates to the override or returns a default pending order.
func (s OrderFacadeStub) SubmitOrder(ctx context.Context, userID int64, in usecase.SubmitOrderInput) (*model.Order, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, userID, in)
	}
	return &model.Order{ID: "ORD-1001", UserID: userID, Status: model.OrderStatusPending}, nil
}

// Orders returns predefined ledger contents.
func (s OrderFacadeStub) Orders(ctx context.Context, statusFilter string) ([]model.Order, int, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, statusFilter)
	}
	return []model.Order{{ID: "ORD-1001"}}, 1, nil
}

// Order returns a single predefined order.
func (s OrderFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id}, nil
}

// NotificationFacadeStub simulates feed operations.
type NotificationFacadeStub struct {
	NotificationsFn func(context.Context) ([]model.Notification, error)
	ClearFn         func(context.Context) error
}

// Notifications returns the configured feed.
func (s NotificationFacadeStub) Notifications(ctx context.Context) ([]model.Notification, error) {
	if s.NotificationsFn != nil {
		return s.NotificationsFn(ctx)
	}
	return []model.Notification{{ID: "n1", Title: "Order Approved"}}, nil
}

// ClearNotifications empties the feed.
func (s NotificationFacadeStub) ClearNotifications(ctx context.Context) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx)
	}
	return nil
}

// ProfileFacadeStub simulates profile operations.
type ProfileFacadeStub struct {
	ProfileFn        func(context.Context, int64) (*model.User, error)
	UpdateFn         func(context.Context, int64, string, string) (*model.User, error)
	ChangePasswordFn func(context.Context, int64, string, string) error
}

// Profile returns the configured account.
func (s ProfileFacadeStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.User{ID: userID, Name: "John Doe", Phone: "+8801712345678", Verified: true}, nil
}

// UpdateProfile applies the configured edit handler.
func (s ProfileFacadeStub) UpdateProfile(ctx context.Context, userID int64, name, email string) (*model.User, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, name, email)
	}
	return &model.User{ID: userID, Name: name, Email: email}, nil
}

// ChangePassword applies the configured rotation handler.
func (s ProfileFacadeStub) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	if s.ChangePasswordFn != nil {
		return s.ChangePasswordFn(ctx, userID, current, next)
	}
	return nil
}

// NavFacadeStub simulates navigation state transitions.
type NavFacadeStub struct {
	StateFn    func(*model.Session) usecase.NavState
	NavigateFn func(context.Context, *model.Session, string) (usecase.NavState, error)
	BackFn     func(context.Context, *model.Session) (usecase.NavState, error)
}

// NavState reports the configured position.
func (s NavFacadeStub) NavState(session *model.Session) usecase.NavState {
	if s.StateFn != nil {
		return s.StateFn(session)
	}
	if session == nil {
		return usecase.NavState{Screen: nav.ScreenLogin, Tab: nav.TabDashboard}
	}
	return usecase.NavState{Screen: nav.Screen(session.Screen), Tab: nav.Tab(session.Tab)}
}

// Navigate applies the configured transition handler.
func (s NavFacadeStub) Navigate(ctx context.Context, session *model.Session, target string) (usecase.NavState, error) {
	if s.NavigateFn != nil {
		return s.NavigateFn(ctx, session, target)
	}
	return usecase.NavState{Screen: nav.Screen(target), Tab: nav.TabDashboard}, nil
}

// NavigateBack applies the configured back handler.
func (s NavFacadeStub) NavigateBack(ctx context.Context, session *model.Session) (usecase.NavState, error) {
	if s.BackFn != nil {
		return s.BackFn(ctx, session)
	}
	return usecase.NavState{Screen: nav.ScreenDashboard, Tab: nav.TabDashboard}, nil
}

// ExchangeFacadeStub aggregates facade dependencies for HTTP layer tests.
type ExchangeFacadeStub struct {
	AuthFacadeStub
	SessionResolverStub
	RateFacadeStub
	OrderFacadeStub
	NotificationFacadeStub
	ProfileFacadeStub
	NavFacadeStub
}

// WorkerFacadeStub mimics notifier interactions with the application facade.
type WorkerFacadeStub struct {
	RecordFn func(context.Context, model.Order) (*model.Notification, error)

	mu       sync.Mutex
	Recorded []model.Order
}

// Lock exposes the internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases a previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// RecordOrderSubmitted tracks which orders were turned into notifications.
func (s *WorkerFacadeStub) RecordOrderSubmitted(ctx context.Context, order model.Order) (*model.Notification, error) {
	if s.RecordFn != nil {
		return s.RecordFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Recorded = append(s.Recorded, order)
	return &model.Notification{ID: "n1", Type: model.NotificationOrder}, nil
}
