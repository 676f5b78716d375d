package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/takaex/takaex/internal/domain/model"
)

// dateLayout is the human-readable order timestamp format used throughout.
const dateLayout = "2006-01-02 03:04 PM"

// Seed describes the records loaded into the store at boot.
type Seed struct {
	Users         []SeedUser         `json:"users"`
	Orders        []SeedOrder        `json:"orders"`
	Notifications []SeedNotification `json:"notifications"`
}

// SeedUser is a pre-provisioned account.
type SeedUser struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Verified        bool   `json:"verified"`
	TotalOrders     int    `json:"total_orders"`
	CompletedOrders int    `json:"completed_orders"`
}

// SeedOrder is a pre-existing ledger entry. Date uses the display layout.
type SeedOrder struct {
	ID            string  `json:"id"`
	UserID        int64   `json:"user_id"`
	Type          string  `json:"type"`
	Service       string  `json:"service"`
	USDAmount     float64 `json:"usd_amount"`
	BDTAmount     float64 `json:"bdt_amount"`
	Rate          float64 `json:"rate"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
	Date          string  `json:"date"`
	AdminNote     string  `json:"admin_note,omitempty"`
}

// SeedNotification is a pre-existing feed entry. Age is how long before boot
// it was created, e.g. "2h".
type SeedNotification struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Read    bool   `json:"read"`
	Age     string `json:"age"`
}

// DefaultSeed mirrors the demo data set the service ships with.
func DefaultSeed() *Seed {
	return &Seed{
		Users: []SeedUser{
			{ID: 1, Name: "John Doe", Email: "john@example.com", Phone: "+8801712345678", Verified: true, TotalOrders: 5, CompletedOrders: 3},
		},
		Orders: []SeedOrder{
			{
				ID: "ORD-8821", UserID: 1, Type: "Buy", Service: "PayPal",
				USDAmount: 100, BDTAmount: 12250, Rate: 122.5,
				PaymentMethod: "Bkash", Status: "Approved", Date: "2024-05-20 10:30 AM",
			},
			{
				ID: "ORD-7742", UserID: 1, Type: "Sell", Service: "Binance",
				USDAmount: 50, BDTAmount: 5910, Rate: 118.2,
				PaymentMethod: "Nagad", Status: "Pending", Date: "2024-05-21 02:15 PM",
			},
		},
		Notifications: []SeedNotification{
			{ID: "n1", Title: "Order Approved", Message: "Your PayPal buy request #ORD-8821 has been approved.", Type: "order", Read: false, Age: "2h"},
			{ID: "n2", Title: "Rate Update", Message: "Dollar buy rate increased to 122.50 BDT.", Type: "rate", Read: true, Age: "5h"},
		},
	}
}

// LoadSeed reads a seed file. Any failure here is fatal at boot: a configured
// but unusable seed is a configuration error, not something to limp past.
func LoadSeed(path string) (*Seed, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seed Seed
	if err := json.Unmarshal(content, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &seed, nil
}

func (s SeedOrder) toModel() (*model.Order, error) {
	exType, ok := model.ParseExchangeType(s.Type)
	if !ok {
		return nil, fmt.Errorf("seed order %s: bad type %q", s.ID, s.Type)
	}
	service, ok := model.ParseServiceProvider(s.Service)
	if !ok {
		return nil, fmt.Errorf("seed order %s: bad service %q", s.ID, s.Service)
	}
	method, ok := model.ParsePaymentMethod(s.PaymentMethod)
	if !ok {
		return nil, fmt.Errorf("seed order %s: bad payment method %q", s.ID, s.PaymentMethod)
	}
	status, ok := model.ParseOrderStatus(s.Status)
	if !ok {
		return nil, fmt.Errorf("seed order %s: bad status %q", s.ID, s.Status)
	}
	createdAt, err := time.Parse(dateLayout, s.Date)
	if err != nil {
		return nil, fmt.Errorf("seed order %s: bad date %q: %w", s.ID, s.Date, err)
	}
	return &model.Order{
		ID:            s.ID,
		UserID:        s.UserID,
		Type:          exType,
		Service:       service,
		USDAmount:     s.USDAmount,
		BDTAmount:     s.BDTAmount,
		Rate:          s.Rate,
		PaymentMethod: method,
		Status:        status,
		CreatedAt:     createdAt,
		AdminNote:     s.AdminNote,
	}, nil
}

func (s SeedNotification) toModel(now time.Time) (*model.Notification, error) {
	switch model.NotificationType(s.Type) {
	case model.NotificationOrder, model.NotificationRate, model.NotificationSystem:
	default:
		return nil, fmt.Errorf("seed notification %s: bad type %q", s.ID, s.Type)
	}
	createdAt := now
	if s.Age != "" {
		age, err := time.ParseDuration(s.Age)
		if err != nil {
			return nil, fmt.Errorf("seed notification %s: bad age %q: %w", s.ID, s.Age, err)
		}
		createdAt = now.Add(-age)
	}
	return &model.Notification{
		ID:        s.ID,
		Title:     s.Title,
		Message:   s.Message,
		Type:      model.NotificationType(s.Type),
		Read:      s.Read,
		CreatedAt: createdAt,
	}, nil
}
