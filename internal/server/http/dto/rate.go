package dto

import (
	"time"

	"github.com/takaex/takaex/internal/domain/model"
	"github.com/takaex/takaex/internal/usecase"
)

// RatesResponse carries the current USD/BDT pair.
type RatesResponse struct {
	Buy       float64   `json:"buy"`
	Sell      float64   `json:"sell"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToRatesResponse converts the domain pair.
func ToRatesResponse(p model.RatePair) RatesResponse {
	return RatesResponse{Buy: p.Buy, Sell: p.Sell, UpdatedAt: p.UpdatedAt}
}

// QuoteResponse is a conversion preview, display-rounded.
type QuoteResponse struct {
	Type      string  `json:"type"`
	AmountUSD float64 `json:"amount_usd"`
	AmountBDT float64 `json:"amount_bdt"`
	Rate      float64 `json:"rate"`
}

// ToQuoteResponse converts the domain quote.
func ToQuoteResponse(q *usecase.Quote) QuoteResponse {
	return QuoteResponse{
		Type:      string(q.Type),
		AmountUSD: Round2(q.USD),
		AmountBDT: Round2(q.BDT),
		Rate:      q.Rate,
	}
}
