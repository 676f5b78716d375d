// Package memory is the default store: process-lifetime state seeded at boot,
// guarded by a single mutex. Matches the original's in-memory model while
// staying safe under concurrent HTTP handlers.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	domainErrors "github.com/takaex/takaex/internal/domain/errors"
	"github.com/takaex/takaex/internal/domain/model"
	"github.com/takaex/takaex/internal/domain/repository"
)

// Storage acts as repository facade backed by process memory.
type Storage struct {
	mu sync.RWMutex

	usersByID    map[int64]*model.User
	usersByPhone map[string]*model.User
	nextUserID   int64

	orders     []model.Order
	orderIndex map[string]int

	notifications    []model.Notification
	nextNotification int

	sessions map[string]*model.Session

	rng    *rand.Rand
	logger *slog.Logger
}

type userRepository struct{ storage *Storage }
type orderRepository struct{ storage *Storage }
type notificationRepository struct{ storage *Storage }
type sessionRepository struct{ storage *Storage }

// New creates a seeded store. Seed problems abort boot.
func New(seed *Seed, now time.Time, logger *slog.Logger) (*Storage, error) {
	s := &Storage{
		usersByID:    make(map[int64]*model.User),
		usersByPhone: make(map[string]*model.User),
		nextUserID:   1,
		orderIndex:   make(map[string]int),
		sessions:     make(map[string]*model.Session),
		rng:          rand.New(rand.NewSource(now.UnixNano())),
		logger:       logger,
	}

	if seed == nil {
		seed = DefaultSeed()
	}

	for _, su := range seed.Users {
		user := &model.User{
			ID:              su.ID,
			Name:            su.Name,
			Email:           su.Email,
			Phone:           su.Phone,
			Verified:        su.Verified,
			TotalOrders:     su.TotalOrders,
			CompletedOrders: su.CompletedOrders,
			CreatedAt:       now,
		}
		if user.CompletedOrders > user.TotalOrders {
			return nil, fmt.Errorf("seed user %d: completed orders exceed total", su.ID)
		}
		s.usersByID[user.ID] = user
		s.usersByPhone[user.Phone] = user
		if user.ID >= s.nextUserID {
			s.nextUserID = user.ID + 1
		}
	}

	// Seed file lists oldest first; the ledger is kept newest first.
	for _, so := range seed.Orders {
		order, err := so.toModel()
		if err != nil {
			return nil, err
		}
		if _, exists := s.orderIndex[order.ID]; exists {
			return nil, fmt.Errorf("seed order %s: duplicate id", order.ID)
		}
		s.prependOrder(*order)
	}

	for _, sn := range seed.Notifications {
		n, err := sn.toModel(now)
		if err != nil {
			return nil, err
		}
		s.notifications = append(s.notifications, *n)
		s.nextNotification++
	}

	logger.Info("memory store seeded",
		slog.Int("users", len(s.usersByID)),
		slog.Int("orders", len(s.orders)),
		slog.Int("notifications", len(s.notifications)),
	)

	return s, nil
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository { return &userRepository{storage: s} }

func (s *Storage) Orders() repository.OrderRepository { return &orderRepository{storage: s} }

func (s *Storage) Notifications() repository.NotificationRepository {
	return &notificationRepository{storage: s}
}

func (s *Storage) Sessions() repository.SessionRepository { return &sessionRepository{storage: s} }

func (s *Storage) prependOrder(order model.Order) {
	s.orders = append([]model.Order{order}, s.orders...)
	for id, idx := range s.orderIndex {
		s.orderIndex[id] = idx + 1
	}
	s.orderIndex[order.ID] = 0
}

// newOrderID draws ORD- plus a 4-digit suffix, retrying on collision.
// Uniqueness is best effort for a small ledger; after too many collisions the
// suffix simply grows.
func (s *Storage) newOrderID() string {
	for attempt := 0; attempt < 32; attempt++ {
		id := fmt.Sprintf("ORD-%d", 1000+s.rng.Intn(9000))
		if _, exists := s.orderIndex[id]; !exists {
			return id
		}
	}
	return fmt.Sprintf("ORD-%d", 10000+s.rng.Intn(90000))
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usersByPhone[user.Phone]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}

	stored := *user
	stored.ID = s.nextUserID
	s.nextUserID++
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	s.usersByID[stored.ID] = &stored
	s.usersByPhone[stored.Phone] = &stored

	result := stored
	return &result, nil
}

func (r *userRepository) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByPhone[phone]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	result := *user
	return &result, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	result := *user
	return &result, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.usersByID[user.ID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if user.Phone != existing.Phone {
		return domainErrors.ErrPhoneImmutable
	}

	stored := *user
	s.usersByID[stored.ID] = &stored
	s.usersByPhone[stored.Phone] = &stored
	return nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *order
	if stored.ID == "" {
		stored.ID = s.newOrderID()
	} else if _, exists := s.orderIndex[stored.ID]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	s.prependOrder(stored)

	result := stored
	return &result, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.orderIndex[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	result := s.orders[idx]
	return &result, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Order, len(s.orders))
	copy(result, s.orders)
	return result, nil
}

// --- NotificationRepository implementation ---

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *n
	if stored.ID == "" {
		s.nextNotification++
		stored.ID = fmt.Sprintf("n%d", s.nextNotification)
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	s.notifications = append(s.notifications, stored)

	result := stored
	return &result, nil
}

func (r *notificationRepository) List(ctx context.Context) ([]model.Notification, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Feed renders newest first.
	result := make([]model.Notification, 0, len(s.notifications))
	for i := len(s.notifications) - 1; i >= 0; i-- {
		result = append(result, s.notifications[i])
	}
	return result, nil
}

func (r *notificationRepository) Clear(ctx context.Context) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = nil
	return nil
}

// --- SessionRepository implementation ---

func (r *sessionRepository) Create(ctx context.Context, session *model.Session) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	stored := *session
	s.sessions[stored.ID] = &stored
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*model.Session, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	result := *session
	return &result, nil
}

func (r *sessionRepository) Update(ctx context.Context, session *model.Session) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *session
	s.sessions[stored.ID] = &stored
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}
