// Package di assembles the fx application graph.
package di

import (
	"go.uber.org/fx"

	"github.com/takaex/takaex/internal/adapter/identity"
	"github.com/takaex/takaex/internal/adapter/ratefeed"
	"github.com/takaex/takaex/internal/app"
	"github.com/takaex/takaex/internal/config"
	"github.com/takaex/takaex/internal/logger"
	"github.com/takaex/takaex/internal/pkg/auth"
	"github.com/takaex/takaex/internal/server/http/handlers"
	"github.com/takaex/takaex/internal/server/http/router"
	"github.com/takaex/takaex/internal/storage"
	"github.com/takaex/takaex/internal/usecase"
)

// Module combines all application modules, letting callers append overrides.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		identity.Module,
		ratefeed.Module,
		storage.Module,
		usecase.Module,
		fx.Provide(func(f *app.ExchangeFacade) handlers.ExchangeFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
