package model

import "time"

// OrderStatus describes review lifecycle of an exchange request.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "Pending"
	OrderStatusApproved OrderStatus = "Approved"
	OrderStatusRejected OrderStatus = "Rejected"
)

// ExchangeType describes direction of the currency exchange.
type ExchangeType string

const (
	ExchangeTypeBuy  ExchangeType = "Buy"
	ExchangeTypeSell ExchangeType = "Sell"
)

// ServiceProvider is the third-party platform funds move through.
type ServiceProvider string

const (
	ServicePayPal   ServiceProvider = "PayPal"
	ServicePayoneer ServiceProvider = "Payoneer"
	ServiceSkrill   ServiceProvider = "Skrill"
	ServiceBinance  ServiceProvider = "Binance"
	ServiceBybit    ServiceProvider = "Bybit"
)

// PaymentMethod is the local channel the BDT side settles over.
type PaymentMethod string

const (
	PaymentBkash PaymentMethod = "Bkash"
	PaymentNagad PaymentMethod = "Nagad"
	PaymentBank  PaymentMethod = "Bank"
)

// ServiceProviders lists every supported provider in display order.
var ServiceProviders = []ServiceProvider{ServicePayPal, ServicePayoneer, ServiceSkrill, ServiceBinance, ServiceBybit}

// PaymentMethods lists every supported settlement channel in display order.
var PaymentMethods = []PaymentMethod{PaymentBkash, PaymentNagad, PaymentBank}

// ParseExchangeType validates raw direction value.
func ParseExchangeType(s string) (ExchangeType, bool) {
	switch ExchangeType(s) {
	case ExchangeTypeBuy, ExchangeTypeSell:
		return ExchangeType(s), true
	}
	return "", false
}

// ParseOrderStatus validates raw status value.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusApproved, OrderStatusRejected:
		return OrderStatus(s), true
	}
	return "", false
}

// ParseServiceProvider validates raw provider value.
func ParseServiceProvider(s string) (ServiceProvider, bool) {
	for _, p := range ServiceProviders {
		if ServiceProvider(s) == p {
			return p, true
		}
	}
	return "", false
}

// ParsePaymentMethod validates raw payment method value.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	for _, m := range PaymentMethods {
		if PaymentMethod(s) == m {
			return m, true
		}
	}
	return "", false
}

// Order is a requested USD/BDT exchange. Rate and BDT amount are resolved at
// submission time and frozen; later rate changes never touch existing orders.
type Order struct {
	ID            string
	UserID        int64
	Type          ExchangeType
	Service       ServiceProvider
	USDAmount     float64
	BDTAmount     float64
	Rate          float64
	PaymentMethod PaymentMethod
	Status        OrderStatus
	CreatedAt     time.Time
	Screenshot    string
	AdminNote     string
}
