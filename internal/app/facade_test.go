package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	domainErrors "github.com/takaex/takaex/internal/domain/errors"
	"github.com/takaex/takaex/internal/domain/model"
	"github.com/takaex/takaex/internal/nav"
	testhelpers "github.com/takaex/takaex/internal/test"
	"github.com/takaex/takaex/internal/usecase"
	"github.com/takaex/takaex/internal/worker"
)

type facadeFixture struct {
	facade        *ExchangeFacade
	users         *testhelpers.UserRepositoryStub
	sessions      *testhelpers.SessionRepositoryStub
	orders        *testhelpers.OrderRepositoryStub
	notifications *testhelpers.NotificationRepositoryStub
	notifier      *worker.Notifier
}

func newFacadeFixture() *facadeFixture {
	users := testhelpers.NewUserRepositoryStub()
	sessions := testhelpers.NewSessionRepositoryStub()
	orders := &testhelpers.OrderRepositoryStub{}
	notifications := &testhelpers.NotificationRepositoryStub{}
	feed := testhelpers.RateFeedStub{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	authUC := usecase.NewAuthUseCase(users, sessions, testhelpers.ProviderStub{}, testhelpers.HasherStub{}, testhelpers.StrategyStub{}, time.Hour)
	rateUC := usecase.NewRateUseCase(feed)
	orderUC := usecase.NewOrderUseCase(orders, users, feed)
	notificationUC := usecase.NewNotificationUseCase(notifications)
	profileUC := usecase.NewProfileUseCase(users)
	navUC := usecase.NewNavUseCase(sessions)
	notifier := worker.NewNotifier(notificationUC, 1, 8, logger)

	return &facadeFixture{
		facade:        NewExchangeFacade(authUC, rateUC, orderUC, notificationUC, profileUC, navUC, notifier),
		users:         users,
		sessions:      sessions,
		orders:        orders,
		notifications: notifications,
		notifier:      notifier,
	}
}

func TestExchangeFacadeAuthFlow(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	user, err := f.facade.Register(ctx, "Rahim Uddin", "+8801712345678", "secret123")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.Verified {
		t.Fatal("registration must not verify the account")
	}

	verified, token, err := f.facade.VerifyOTP(ctx, "+8801712345678", "123456")
	if err != nil {
		t.Fatalf("otp verification returned error: %v", err)
	}
	if !verified.Verified {
		t.Fatal("expected verified account after OTP")
	}
	if !strings.HasPrefix(token, "token-") {
		t.Fatalf("unexpected token %q", token)
	}

	session, err := f.facade.Authenticate(ctx, token)
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if session.UserID != verified.ID {
		t.Fatalf("session belongs to user %d, expected %d", session.UserID, verified.ID)
	}

	if err := f.facade.Logout(ctx, token); err != nil {
		t.Fatalf("logout returned error: %v", err)
	}
	if _, err := f.facade.Authenticate(ctx, token); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected revoked session, got %v", err)
	}
}

func TestExchangeFacadeSubmitOrderNotifies(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	recorded := make(chan struct{})
	f.notifications.CreateFn = func(ctx context.Context, n *model.Notification) (*model.Notification, error) {
		stored := *n
		stored.ID = "n1"
		f.notifications.Items = append([]model.Notification{stored}, f.notifications.Items...)
		close(recorded)
		return &stored, nil
	}
	f.notifier.Start(ctx)

	order, err := f.facade.SubmitOrder(ctx, 7, usecase.SubmitOrderInput{
		Direction:     "Buy",
		Service:       "PayPal",
		Amount:        "150",
		PaymentMethod: "Bkash",
	})
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}
	if order.BDTAmount != 150*122.5 {
		t.Fatalf("expected locked buy rate applied, got %v", order.BDTAmount)
	}

	select {
	case <-recorded:
	case <-time.After(time.Second):
		t.Fatal("expected receipt notification to be written")
	}
	f.notifier.Stop()

	if len(f.notifications.Items) != 1 {
		t.Fatalf("expected one receipt notification, got %d", len(f.notifications.Items))
	}
	receipt := f.notifications.Items[0]
	if receipt.Type != model.NotificationOrder {
		t.Fatalf("unexpected notification type %s", receipt.Type)
	}
	if !strings.Contains(receipt.Message, order.ID) {
		t.Fatalf("expected order id in message, got %q", receipt.Message)
	}

	feed, err := f.facade.Notifications(ctx)
	if err != nil {
		t.Fatalf("feed returned error: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("expected feed of one, got %d", len(feed))
	}
	if err := f.facade.ClearNotifications(ctx); err != nil {
		t.Fatalf("clear returned error: %v", err)
	}
	if len(f.notifications.Items) != 0 {
		t.Fatal("expected empty feed after clear")
	}
}

func TestExchangeFacadeSubmitOrderValidation(t *testing.T) {
	f := newFacadeFixture()
	_, err := f.facade.SubmitOrder(context.Background(), 7, usecase.SubmitOrderInput{
		Direction:     "Buy",
		Service:       "PayPal",
		Amount:        "abc",
		PaymentMethod: "Bkash",
	})
	if !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}
	if len(f.orders.Orders) != 0 {
		t.Fatal("rejected order must not reach the ledger")
	}
}

func TestExchangeFacadeOrders(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()
	f.orders.Orders = []model.Order{
		{ID: "ORD-1002", Status: model.OrderStatusPending},
		{ID: "ORD-1001", Status: model.OrderStatusApproved},
	}

	listed, total, err := f.facade.Orders(ctx, "Pending")
	if err != nil {
		t.Fatalf("orders returned error: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != "ORD-1002" {
		t.Fatalf("unexpected filtered ledger: %+v", listed)
	}
	if total != 2 {
		t.Fatalf("expected unfiltered total 2, got %d", total)
	}

	order, err := f.facade.Order(ctx, "ORD-1001")
	if err != nil {
		t.Fatalf("order lookup returned error: %v", err)
	}
	if order.Status != model.OrderStatusApproved {
		t.Fatalf("unexpected order %+v", order)
	}
}

func TestExchangeFacadeRates(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	pair, err := f.facade.Rates(ctx)
	if err != nil {
		t.Fatalf("rates returned error: %v", err)
	}
	if pair.Buy != 122.5 || pair.Sell != 118.2 {
		t.Fatalf("unexpected pair %+v", pair)
	}

	quote, err := f.facade.PreviewQuote(ctx, "Sell", "200")
	if err != nil {
		t.Fatalf("preview returned error: %v", err)
	}
	if quote.Rate != 118.2 || quote.BDT != quote.USD*quote.Rate {
		t.Fatalf("unexpected quote %+v", quote)
	}
}

func TestExchangeFacadeProfile(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()
	created, err := f.users.Create(ctx, &model.User{Name: "John Doe", Phone: "+8801712345678", PasswordHash: "hash:secret123"})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	profile, err := f.facade.Profile(ctx, created.ID)
	if err != nil {
		t.Fatalf("profile returned error: %v", err)
	}
	if profile.Name != "John Doe" {
		t.Fatalf("unexpected profile %+v", profile)
	}

	updated, err := f.facade.UpdateProfile(ctx, created.ID, "Jane Doe", "jane@example.com")
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Name != "Jane Doe" || updated.Email != "jane@example.com" {
		t.Fatalf("unexpected updated profile %+v", updated)
	}

	if err := f.facade.ChangePassword(ctx, created.ID, "secret123", "rotated456"); err != nil {
		t.Fatalf("change password returned error: %v", err)
	}
	stored, _ := f.users.GetByID(ctx, created.ID)
	if stored.PasswordHash != "hash:rotated456" {
		t.Fatalf("expected rotated hash, got %q", stored.PasswordHash)
	}
}

func TestExchangeFacadeNavigation(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()
	session := &model.Session{ID: "sess-1", UserID: 1, Screen: "dashboard", Tab: "dashboard", ExpiresAt: time.Now().Add(time.Hour)}
	if err := f.sessions.Create(ctx, session); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	state := f.facade.NavState(session)
	if state.Screen != nav.ScreenDashboard {
		t.Fatalf("unexpected initial state %+v", state)
	}

	state, err := f.facade.Navigate(ctx, session, "history")
	if err != nil {
		t.Fatalf("navigate returned error: %v", err)
	}
	if state.Screen != nav.ScreenHistory || state.Tab != nav.TabHistory {
		t.Fatalf("unexpected state %+v", state)
	}
	stored, _ := f.sessions.Get(ctx, "sess-1")
	if stored.Screen != "history" {
		t.Fatalf("expected persisted screen, got %q", stored.Screen)
	}

	state, err = f.facade.NavigateBack(ctx, session)
	if err != nil {
		t.Fatalf("back returned error: %v", err)
	}
	if state.Screen != nav.ScreenDashboard {
		t.Fatalf("unexpected state after back %+v", state)
	}
}
