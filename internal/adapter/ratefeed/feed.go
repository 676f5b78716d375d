// Package ratefeed abstracts where exchange rates come from so a real quote
// service can replace the configured constants without touching state logic.
package ratefeed

import (
	"context"

	"github.com/takaex/takaex/internal/domain/model"
)

// Feed exposes the current USD/BDT rate pair.
type Feed interface {
	Rates(ctx context.Context) (model.RatePair, error)
}
