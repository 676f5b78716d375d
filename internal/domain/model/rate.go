package model

import "time"

// RatePair is the current USD/BDT exchange rate in both directions.
type RatePair struct {
	Buy       float64
	Sell      float64
	UpdatedAt time.Time
}

// For returns the rate applied to the given exchange direction.
func (p RatePair) For(t ExchangeType) float64 {
	if t == ExchangeTypeSell {
		return p.Sell
	}
	return p.Buy
}
