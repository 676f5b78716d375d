package app

import (
	"context"

	"github.com/takaex/takaex/internal/domain/model"
	"github.com/takaex/takaex/internal/usecase"
	"github.com/takaex/takaex/internal/worker"
)

// ExchangeFacade aggregates the use cases behind the single surface the HTTP
// layer and the notifier pool talk to.
type ExchangeFacade struct {
	auth          *usecase.AuthUseCase
	rates         *usecase.RateUseCase
	orders        *usecase.OrderUseCase
	notifications *usecase.NotificationUseCase
	profile       *usecase.ProfileUseCase
	nav           *usecase.NavUseCase
	notifier      *worker.Notifier
}

// NewExchangeFacade constructs the application facade.
func NewExchangeFacade(
	auth *usecase.AuthUseCase,
	rates *usecase.RateUseCase,
	orders *usecase.OrderUseCase,
	notifications *usecase.NotificationUseCase,
	profile *usecase.ProfileUseCase,
	nav *usecase.NavUseCase,
	notifier *worker.Notifier,
) *ExchangeFacade {
	return &ExchangeFacade{
		auth:          auth,
		rates:         rates,
		orders:        orders,
		notifications: notifications,
		profile:       profile,
		nav:           nav,
		notifier:      notifier,
	}
}

func (f *ExchangeFacade) Register(ctx context.Context, name, phone, password string) (*model.User, error) {
	return f.auth.Register(ctx, name, phone, password)
}

func (f *ExchangeFacade) Login(ctx context.Context, phone, password string) (*model.User, string, error) {
	return f.auth.Login(ctx, phone, password)
}

func (f *ExchangeFacade) VerifyOTP(ctx context.Context, phone, code string) (*model.User, string, error) {
	return f.auth.VerifyOTP(ctx, phone, code)
}

func (f *ExchangeFacade) Logout(ctx context.Context, token string) error {
	return f.auth.Logout(ctx, token)
}

func (f *ExchangeFacade) Authenticate(ctx context.Context, token string) (*model.Session, error) {
	return f.auth.Authenticate(ctx, token)
}

func (f *ExchangeFacade) Rates(ctx context.Context) (model.RatePair, error) {
	return f.rates.Rates(ctx)
}

func (f *ExchangeFacade) PreviewQuote(ctx context.Context, direction, amount string) (*usecase.Quote, error) {
	return f.rates.Preview(ctx, direction, amount)
}

// SubmitOrder stores the order and hands it to the notifier pool. The receipt
// notification is written asynchronously.
func (f *ExchangeFacade) SubmitOrder(ctx context.Context, userID int64, in usecase.SubmitOrderInput) (*model.Order, error) {
	order, err := f.orders.Submit(ctx, userID, in)
	if err != nil {
		return nil, err
	}
	f.notifier.Enqueue(*order)
	return order, nil
}

func (f *ExchangeFacade) Orders(ctx context.Context, statusFilter string) ([]model.Order, int, error) {
	return f.orders.List(ctx, statusFilter)
}

func (f *ExchangeFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *ExchangeFacade) Notifications(ctx context.Context) ([]model.Notification, error) {
	return f.notifications.Feed(ctx)
}

func (f *ExchangeFacade) ClearNotifications(ctx context.Context) error {
	return f.notifications.Clear(ctx)
}

func (f *ExchangeFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.profile.Profile(ctx, userID)
}

func (f *ExchangeFacade) UpdateProfile(ctx context.Context, userID int64, name, email string) (*model.User, error) {
	return f.profile.Update(ctx, userID, name, email)
}

func (f *ExchangeFacade) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	return f.auth.ChangePassword(ctx, userID, current, next)
}

func (f *ExchangeFacade) NavState(session *model.Session) usecase.NavState {
	return f.nav.State(session)
}

func (f *ExchangeFacade) Navigate(ctx context.Context, session *model.Session, target string) (usecase.NavState, error) {
	return f.nav.Navigate(ctx, session, target)
}

func (f *ExchangeFacade) NavigateBack(ctx context.Context, session *model.Session) (usecase.NavState, error) {
	return f.nav.Back(ctx, session)
}
