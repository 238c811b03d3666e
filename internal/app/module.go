// Package app wires the identity store for a host process.
package app

import (
	"log/slog"

	"idstore/config"
	"idstore/internal/domain/entity"
	"idstore/internal/domain/repository"
	logs "idstore/internal/infra/log"
	"idstore/internal/infra/persistence/memory"
	"idstore/internal/infra/persistence/postgres"
	"idstore/internal/usecase/impl"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// User is the user type the wired store persists.
type User = postgres.User

// Module provides usecase.IdentityUsecase[*User, uuid.UUID] and everything below it.
// The host supplies *config.Config, usually through config.New.
var Module = fx.Module("idstore",
	fx.Provide(
		logs.New,
		newBackend,
		newDependencyFactory,
		impl.NewIdentityStore[*User, uuid.UUID],
	),
)

type backendParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type backendResult struct {
	fx.Out

	UnitOfWorkFactory repository.UnitOfWorkFactory
	RepositoryFactory repository.RepositoryFactory[*User, uuid.UUID]
}

// newBackend selects the persistence backend named by config.Store.Driver.
func newBackend(params backendParams) (backendResult, error) {
	if params.Config.Store.Driver == config.DriverMemory {
		store := memory.NewStore[*User, uuid.UUID]()
		params.Logger.Warn("Using the in-memory store, nothing is persisted")

		return backendResult{UnitOfWorkFactory: store, RepositoryFactory: store}, nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return backendResult{}, err
	}

	return backendResult{
		UnitOfWorkFactory: postgres.NewUnitOfWorkFactory(db),
		RepositoryFactory: postgres.NewRepositoryFactory(),
	}, nil
}

func newDependencyFactory() repository.DependencyFactory[uuid.UUID] {
	return entity.NewFactory[uuid.UUID]()
}
