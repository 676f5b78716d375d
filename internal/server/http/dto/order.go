package dto

import (
	"math"

	"github.com/takaex/takaex/internal/domain/model"
)

// dateLayout is the human-readable timestamp shown on orders.
const dateLayout = "2006-01-02 03:04 PM"

// SubmitOrderRequest describes a new exchange request. The amount arrives as
// the raw form string; the server decides how to interpret it.
type SubmitOrderRequest struct {
	Type          string `json:"type"`
	Service       string `json:"service"`
	AmountUSD     string `json:"amount_usd"`
	PaymentMethod string `json:"payment_method"`
	Screenshot    string `json:"screenshot,omitempty"`
}

// OrderResponse is the public view of a ledger entry. Monetary fields are
// rounded to two decimals for display; stored values keep full precision.
type OrderResponse struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Service       string  `json:"service"`
	AmountUSD     float64 `json:"amount_usd"`
	AmountBDT     float64 `json:"amount_bdt"`
	Rate          float64 `json:"rate"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
	Date          string  `json:"date"`
	AdminNote     string  `json:"admin_note,omitempty"`
}

// OrderListResponse pairs the (possibly filtered) page with the unfiltered
// ledger size so clients can tell "no matches" from "no orders yet".
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

// ToOrderResponse converts the domain order.
func ToOrderResponse(o model.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		Type:          string(o.Type),
		Service:       string(o.Service),
		AmountUSD:     Round2(o.USDAmount),
		AmountBDT:     Round2(o.BDTAmount),
		Rate:          o.Rate,
		PaymentMethod: string(o.PaymentMethod),
		Status:        string(o.Status),
		Date:          o.CreatedAt.Format(dateLayout),
		AdminNote:     o.AdminNote,
	}
}

// ToOrderListResponse converts a ledger page.
func ToOrderListResponse(orders []model.Order, total int) OrderListResponse {
	resp := OrderListResponse{Orders: make([]OrderResponse, 0, len(orders)), Total: total}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, ToOrderResponse(o))
	}
	return resp
}

// Round2 rounds to two decimal places for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
