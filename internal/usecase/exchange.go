package usecase

import (
	"context"

	"github.com/takaex/takaex/internal/adapter/ratefeed"
	domainErrors "github.com/takaex/takaex/internal/domain/errors"
	"github.com/takaex/takaex/internal/domain/model"
)

// Quote is a live conversion preview. Amounts keep full float precision;
// rounding to two decimals happens at the presentation boundary only.
type Quote struct {
	Type model.ExchangeType
	USD  float64
	BDT  float64
	Rate float64
}

// RateUseCase exposes current rates and conversion previews.
type RateUseCase struct {
	feed ratefeed.Feed
}

// NewRateUseCase constructs RateUseCase.
func NewRateUseCase(feed ratefeed.Feed) *RateUseCase {
	return &RateUseCase{feed: feed}
}

// Rates returns the current USD/BDT rate pair.
func (u *RateUseCase) Rates(ctx context.Context) (model.RatePair, error) {
	return u.feed.Rates(ctx)
}

// Preview converts a raw USD amount at the rate for the given direction.
func (u *RateUseCase) Preview(ctx context.Context, direction, amountRaw string) (*Quote, error) {
	exType, ok := model.ParseExchangeType(direction)
	if !ok {
		return nil, domainErrors.ErrInvalidDirection
	}
	rates, err := u.feed.Rates(ctx)
	if err != nil {
		return nil, err
	}
	usd := ParseAmount(amountRaw)
	rate := rates.For(exType)
	return &Quote{Type: exType, USD: usd, BDT: usd * rate, Rate: rate}, nil
}
