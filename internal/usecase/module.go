package usecase

import (
	"go.uber.org/fx"

	"github.com/takaex/takaex/internal/adapter/identity"
	"github.com/takaex/takaex/internal/config"
	"github.com/takaex/takaex/internal/domain/repository"
	pkgAuth "github.com/takaex/takaex/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	NewRateUseCase,
	NewOrderUseCase,
	NewNotificationUseCase,
	NewProfileUseCase,
	NewNavUseCase,
)

func newAuthUseCase(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	provider identity.Provider,
	hasher pkgAuth.PasswordHasher,
	strategy pkgAuth.Strategy,
	cfg *config.Config,
) *AuthUseCase {
	return NewAuthUseCase(users, sessions, provider, hasher, strategy, cfg.SessionTTL)
}
