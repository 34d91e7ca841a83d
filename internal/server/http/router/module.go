package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/adolfokaiser/precios-api/internal/app"
	"github.com/adolfokaiser/precios-api/internal/config"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(newRouter)

type routerParams struct {
	fx.In

	Facade *app.PreciosFacade
	Logger *slog.Logger
	Config *config.Config
}

func newRouter(p routerParams) *gin.Engine {
	engine := Setup(p.Facade, p.Logger)
	engine.MaxMultipartMemory = p.Config.MaxUploadBytes
	return engine
}
