package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/takaex/takaex/internal/domain/errors"
	"github.com/takaex/takaex/internal/domain/model"
	"github.com/takaex/takaex/internal/domain/repository"
)

const uniqueViolation = "23505"

// pool is the subset of pgxpool.Pool the storage uses; tests substitute it.
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL. Used instead of the
// in-memory store when a DSN is configured.
type Storage struct {
	pool   pool
	logger *slog.Logger

	// rng feeds generated identifiers; rand.Rand is not goroutine-safe and
	// handlers create rows concurrently, so every draw goes through rngMu.
	rngMu sync.Mutex
	rng   *rand.Rand
}

func (s *Storage) randIntn(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(n)
}

func (s *Storage) randInt63() int64 {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Int63()
}

type userRepository struct{ storage *Storage }
type orderRepository struct{ storage *Storage }
type notificationRepository struct{ storage *Storage }
type sessionRepository struct{ storage *Storage }

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: p, logger: logger, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	if err := storage.initSchema(ctx); err != nil {
		p.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository { return &userRepository{storage: s} }

func (s *Storage) Orders() repository.OrderRepository { return &orderRepository{storage: s} }

func (s *Storage) Notifications() repository.NotificationRepository {
	return &notificationRepository{storage: s}
}

func (s *Storage) Sessions() repository.SessionRepository { return &sessionRepository{storage: s} }

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL DEFAULT '',
            phone TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL DEFAULT '',
            verified BOOLEAN NOT NULL DEFAULT FALSE,
            total_orders INT NOT NULL DEFAULT 0,
            completed_orders INT NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            seq BIGSERIAL PRIMARY KEY,
            id TEXT UNIQUE NOT NULL,
            user_id BIGINT NOT NULL REFERENCES users(id),
            type TEXT NOT NULL,
            service TEXT NOT NULL,
            usd_amount DOUBLE PRECISION NOT NULL,
            bdt_amount DOUBLE PRECISION NOT NULL,
            rate DOUBLE PRECISION NOT NULL,
            payment_method TEXT NOT NULL,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            screenshot TEXT NOT NULL DEFAULT '',
            admin_note TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS notifications (
            seq BIGSERIAL PRIMARY KEY,
            id TEXT UNIQUE NOT NULL,
            title TEXT NOT NULL,
            message TEXT NOT NULL,
            type TEXT NOT NULL,
            read BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS sessions (
            id TEXT PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            screen TEXT NOT NULL,
            tab TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            expires_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_ledger ON orders(seq DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_feed ON notifications(seq DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `INSERT INTO users (name, email, phone, password_hash, verified, total_orders, completed_orders)
                   VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	stored := *user
	err := r.storage.pool.QueryRow(ctx, query,
		user.Name, user.Email, user.Phone, user.PasswordHash, user.Verified, user.TotalOrders, user.CompletedOrders,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &stored, nil
}

func (r *userRepository) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	const query = `SELECT id, name, email, phone, password_hash, verified, total_orders, completed_orders, created_at
                   FROM users WHERE phone=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, phone))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, name, email, phone, password_hash, verified, total_orders, completed_orders, created_at
                   FROM users WHERE id=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Verified, &u.TotalOrders, &u.CompletedOrders, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update never touches the phone column: once verified it is immutable.
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	const query = `UPDATE users SET name=$2, email=$3, password_hash=$4, verified=$5, total_orders=$6, completed_orders=$7
                   WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Verified, user.TotalOrders, user.CompletedOrders)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders (id, user_id, type, service, usd_amount, bdt_amount, rate, payment_method, status, created_at, screenshot, admin_note)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING created_at`

	stored := *order
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	explicit := stored.ID != ""
	for attempt := 0; ; attempt++ {
		if !explicit {
			stored.ID = fmt.Sprintf("ORD-%d", 1000+r.storage.randIntn(9000))
		}
		err := r.storage.pool.QueryRow(ctx, query,
			stored.ID, stored.UserID, stored.Type, stored.Service,
			stored.USDAmount, stored.BDTAmount, stored.Rate,
			stored.PaymentMethod, stored.Status, stored.CreatedAt,
			stored.Screenshot, stored.AdminNote,
		).Scan(&stored.CreatedAt)
		if err == nil {
			return &stored, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			if explicit {
				return nil, domainErrors.ErrAlreadyExists
			}
			if attempt < 32 {
				continue
			}
		}
		return nil, err
	}
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT id, user_id, type, service, usd_amount, bdt_amount, rate, payment_method, status, created_at, screenshot, admin_note
                   FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.UserID, &o.Type, &o.Service, &o.USDAmount, &o.BDTAmount, &o.Rate,
		&o.PaymentMethod, &o.Status, &o.CreatedAt, &o.Screenshot, &o.AdminNote)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT id, user_id, type, service, usd_amount, bdt_amount, rate, payment_method, status, created_at, screenshot, admin_note
                   FROM orders ORDER BY seq DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.Type, &o.Service, &o.USDAmount, &o.BDTAmount, &o.Rate,
			&o.PaymentMethod, &o.Status, &o.CreatedAt, &o.Screenshot, &o.AdminNote); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// --- NotificationRepository implementation ---

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	const query = `INSERT INTO notifications (id, title, message, type, read, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`

	stored := *n
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	if stored.ID == "" {
		stored.ID = fmt.Sprintf("n%d", r.storage.randInt63())
	}
	err := r.storage.pool.QueryRow(ctx, query,
		stored.ID, stored.Title, stored.Message, stored.Type, stored.Read, stored.CreatedAt,
	).Scan(&stored.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &stored, nil
}

func (r *notificationRepository) List(ctx context.Context) ([]model.Notification, error) {
	const query = `SELECT id, title, message, type, read, created_at FROM notifications ORDER BY seq DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feed []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		feed = append(feed, n)
	}
	return feed, rows.Err()
}

func (r *notificationRepository) Clear(ctx context.Context) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM notifications`)
	return err
}

// --- SessionRepository implementation ---

func (r *sessionRepository) Create(ctx context.Context, session *model.Session) error {
	const query = `INSERT INTO sessions (id, user_id, screen, tab, created_at, expires_at)
                   VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.storage.pool.Exec(ctx, query,
		session.ID, session.UserID, session.Screen, session.Tab, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domainErrors.ErrAlreadyExists
		}
	}
	return err
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*model.Session, error) {
	const query = `SELECT id, user_id, screen, tab, created_at, expires_at FROM sessions WHERE id=$1`
	var s model.Session
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.UserID, &s.Screen, &s.Tab, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepository) Update(ctx context.Context, session *model.Session) error {
	const query = `UPDATE sessions SET screen=$2, tab=$3, expires_at=$4 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, session.ID, session.Screen, session.Tab, session.ExpiresAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM sessions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
