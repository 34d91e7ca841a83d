package memory

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/adolfokaiser/precios-api/internal/domain/repository"
)

// Module wires in-memory storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.PriceRepository { return s.Prices() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Logger *slog.Logger
}

func newStorage(p storageParams) *Storage {
	return New(p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
