package ratefeed

import (
	"time"

	"go.uber.org/fx"

	"github.com/takaex/takaex/internal/config"
)

// Module wires the configured static feed as the Feed implementation.
var Module = fx.Provide(newFeed)

type feedParams struct {
	fx.In

	Config *config.Config
}

func newFeed(p feedParams) (Feed, error) {
	return NewStaticFeed(p.Config.BuyRate, p.Config.SellRate, time.Now())
}
