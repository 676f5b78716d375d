package usecase

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/takaex/takaex/internal/adapter/ratefeed"
	domainErrors "github.com/takaex/takaex/internal/domain/errors"
	"github.com/takaex/takaex/internal/domain/model"
	"github.com/takaex/takaex/internal/domain/repository"
)

// SubmitOrderInput carries the raw form fields of a new exchange request.
type SubmitOrderInput struct {
	Direction     string
	Service       string
	Amount        string
	PaymentMethod string
	Screenshot    string
}

// OrderUseCase encapsulates the exchange order lifecycle.
type OrderUseCase struct {
	orders repository.OrderRepository
	users  repository.UserRepository
	feed   ratefeed.Feed
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, users repository.UserRepository, feed ratefeed.Feed) *OrderUseCase {
	return &OrderUseCase{orders: orders, users: users, feed: feed}
}

// Submit validates the request, locks in the current rate and records the
// order as pending review. The rate stored on the order is the rate shown at
// submission time, not whatever the feed says later.
func (u *OrderUseCase) Submit(ctx context.Context, userID int64, in SubmitOrderInput) (*model.Order, error) {
	exType, ok := model.ParseExchangeType(in.Direction)
	if !ok {
		return nil, domainErrors.ErrInvalidDirection
	}
	service, ok := model.ParseServiceProvider(in.Service)
	if !ok {
		return nil, domainErrors.ErrInvalidProvider
	}
	method, ok := model.ParsePaymentMethod(in.PaymentMethod)
	if !ok {
		return nil, domainErrors.ErrInvalidPayment
	}
	usd := ParseAmount(in.Amount)
	if usd <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}

	rates, err := u.feed.Rates(ctx)
	if err != nil {
		return nil, err
	}
	rate := rates.For(exType)
	bdt := usd * rate
	// A finite amount like 1e308 can still overflow the conversion; an
	// infinite BDT value would poison every later render of the ledger.
	if math.IsInf(bdt, 0) || math.IsNaN(bdt) {
		return nil, domainErrors.ErrInvalidAmount
	}

	order, err := u.orders.Create(ctx, &model.Order{
		UserID:        userID,
		Type:          exType,
		Service:       service,
		USDAmount:     usd,
		BDTAmount:     bdt,
		Rate:          rate,
		PaymentMethod: method,
		Status:        model.OrderStatusPending,
		Screenshot:    in.Screenshot,
	})
	if err != nil {
		return nil, err
	}

	if err := u.bumpOrderCount(ctx, userID); err != nil {
		return nil, err
	}
	return order, nil
}

// List returns the ledger newest first, optionally narrowed to one status.
// The total is always the unfiltered ledger size so callers can tell an
// empty filter result from an empty ledger.
func (u *OrderUseCase) List(ctx context.Context, statusFilter string) ([]model.Order, int, error) {
	all, err := u.orders.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	total := len(all)

	filter := strings.TrimSpace(statusFilter)
	if filter == "" || strings.EqualFold(filter, "all") {
		return all, total, nil
	}
	status, ok := model.ParseOrderStatus(filter)
	if !ok {
		return nil, 0, domainErrors.ErrInvalidStatusFilter
	}

	filtered := make([]model.Order, 0, total)
	for _, o := range all {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	return filtered, total, nil
}

// Get fetches a single order by its public identifier.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

func (u *OrderUseCase) bumpOrderCount(ctx context.Context, userID int64) error {
	usr, err := u.users.GetByID(ctx, userID)
	if errors.Is(err, domainErrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	usr.TotalOrders++
	return u.users.Update(ctx, usr)
}
