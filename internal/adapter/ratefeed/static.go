package ratefeed

import (
	"context"
	"fmt"
	"time"

	"github.com/takaex/takaex/internal/domain/model"
)

// StaticFeed answers rates fixed at construction time. UpdatedAt is the boot
// instant, which is what the dashboard's "last updated" label reflects.
type StaticFeed struct {
	pair model.RatePair
}

// NewStaticFeed validates and pins the configured rate pair.
func NewStaticFeed(buy, sell float64, now time.Time) (*StaticFeed, error) {
	if buy <= 0 || sell <= 0 {
		return nil, fmt.Errorf("rates must be positive: buy=%v sell=%v", buy, sell)
	}
	return &StaticFeed{pair: model.RatePair{Buy: buy, Sell: sell, UpdatedAt: now}}, nil
}

// Rates returns the pinned pair.
func (f *StaticFeed) Rates(ctx context.Context) (model.RatePair, error) {
	return f.pair, nil
}
