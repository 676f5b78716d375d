// Package storage selects the repository backend: the in-memory seeded store
// by default, PostgreSQL when a DSN is configured.
package storage

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/takaex/takaex/internal/config"
	"github.com/takaex/takaex/internal/domain/repository"
	"github.com/takaex/takaex/internal/storage/memory"
	"github.com/takaex/takaex/internal/storage/postgres"
)

// Module wires the storage backend and repository adapters.
var Module = fx.Options(
	fx.Provide(newFactory),
	fx.Provide(
		func(f repository.Factory) repository.UserRepository { return f.Users() },
		func(f repository.Factory) repository.OrderRepository { return f.Orders() },
		func(f repository.Factory) repository.NotificationRepository { return f.Notifications() },
		func(f repository.Factory) repository.SessionRepository { return f.Sessions() },
	),
)

type factoryParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Lc     fx.Lifecycle
}

func newFactory(p factoryParams) (repository.Factory, error) {
	if p.Config.DatabaseURI != "" {
		store, err := postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
		if err != nil {
			return nil, err
		}
		p.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				store.Close()
				return nil
			},
		})
		return store, nil
	}

	seed := memory.DefaultSeed()
	if p.Config.SeedFile != "" {
		loaded, err := memory.LoadSeed(p.Config.SeedFile)
		if err != nil {
			return nil, err
		}
		seed = loaded
	}
	return memory.New(seed, time.Now(), p.Logger)
}
