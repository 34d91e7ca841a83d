package di

import (
	"github.com/adolfokaiser/precios-api/internal/adapter/document"
	"github.com/adolfokaiser/precios-api/internal/app"
	"github.com/adolfokaiser/precios-api/internal/config"
	"github.com/adolfokaiser/precios-api/internal/logger"
	"github.com/adolfokaiser/precios-api/internal/pkg/auth"
	"github.com/adolfokaiser/precios-api/internal/server/http/router"
	"github.com/adolfokaiser/precios-api/internal/storage/memory"
	"github.com/adolfokaiser/precios-api/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		memory.Module,
		document.Module,
		usecase.Module,
		fx.Provide(func(svc *document.Service) app.DocumentProcessor { return svc }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
