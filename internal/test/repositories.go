package test

import (
	"context"
	"fmt"

	domainErrors "github.com/takaex/takaex/internal/domain/errors"
	"github.com/takaex/takaex/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByPhone map[string]*model.User
	ByID    map[int64]*model.User
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByPhone: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		Next:    1,
	}
}

// Create registers user unless the phone is taken or the stub has an
// explicit error configured.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByPhone[user.Phone]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	stored := *user
	stored.ID = s.Next
	s.Next++
	s.ByPhone[stored.Phone] = &stored
	s.ByID[stored.ID] = &stored
	result := stored
	return &result, nil
}

// GetByPhone fetches user by phone or returns not found.
func (s *UserRepositoryStub) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByPhone[phone]; ok {
		result := *user
		return &result, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		result := *user
		return &result, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Update replaces the stored record, enforcing phone immutability like the
// real stores do.
func (s *UserRepositoryStub) Update(ctx context.Context, user *model.User) error {
	if s.Err != nil {
		return s.Err
	}
	existing, ok := s.ByID[user.ID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if user.Phone != existing.Phone {
		return domainErrors.ErrPhoneImmutable
	}
	stored := *user
	s.ByID[stored.ID] = &stored
	s.ByPhone[stored.Phone] = &stored
	return nil
}

// OrderRepositoryStub keeps a newest-first ledger and allows overrides.
type OrderRepositoryStub struct {
	CreateFn  func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn func(context.Context, string) (*model.Order, error)
	ListFn    func(context.Context) ([]model.Order, error)

	Orders []model.Order
	NextID int
	Err    error
}

// Create prepends the order and assigns a sequential identifier.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *order
	if stored.ID == "" {
		s.NextID++
		stored.ID = fmt.Sprintf("ORD-%04d", 1000+s.NextID)
	}
	s.Orders = append([]model.Order{stored}, s.Orders...)
	result := stored
	return &result, nil
}

// GetByID searches the ledger or delegates to the override.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns the ledger as stored.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Orders, nil
}

// NotificationRepositoryStub stores the feed for tests.
type NotificationRepositoryStub struct {
	CreateFn func(context.Context, *model.Notification) (*model.Notification, error)
	ListFn   func(context.Context) ([]model.Notification, error)
	ClearFn  func(context.Context) error

	Items []model.Notification
	Next  int
	Err   error
}

// Create appends the notification with a generated identifier.
func (s *NotificationRepositoryStub) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, n)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *n
	if stored.ID == "" {
		s.Next++
		stored.ID = fmt.Sprintf("n%d", s.Next)
	}
	s.Items = append([]model.Notification{stored}, s.Items...)
	result := stored
	return &result, nil
}

// List returns the stored feed.
func (s *NotificationRepositoryStub) List(ctx context.Context) ([]model.Notification, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}

// Clear empties the stored feed.
func (s *NotificationRepositoryStub) Clear(ctx context.Context) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx)
	}
	if s.Err != nil {
		return s.Err
	}
	s.Items = nil
	return nil
}

// SessionRepositoryStub stores sessions in-memory for tests.
type SessionRepositoryStub struct {
	Sessions map[string]*model.Session
	Err      error
}

// NewSessionRepositoryStub constructs stub with initialized map.
func NewSessionRepositoryStub() *SessionRepositoryStub {
	return &SessionRepositoryStub{Sessions: make(map[string]*model.Session)}
}

// Create stores the session unless the identifier is taken.
func (s *SessionRepositoryStub) Create(ctx context.Context, session *model.Session) error {
	if s.Err != nil {
		return s.Err
	}
	if _, exists := s.Sessions[session.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	stored := *session
	s.Sessions[stored.ID] = &stored
	return nil
}

// Get fetches a session or returns not found.
func (s *SessionRepositoryStub) Get(ctx context.Context, id string) (*model.Session, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if session, ok := s.Sessions[id]; ok {
		result := *session
		return &result, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Update replaces the stored session.
func (s *SessionRepositoryStub) Update(ctx context.Context, session *model.Session) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Sessions[session.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *session
	s.Sessions[stored.ID] = &stored
	return nil
}

// Delete removes the session or returns not found.
func (s *SessionRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Sessions[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Sessions, id)
	return nil
}
