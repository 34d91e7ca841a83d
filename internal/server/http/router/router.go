package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/adolfokaiser/precios-api/internal/server/http/handlers"
	"github.com/adolfokaiser/precios-api/internal/server/http/middleware"
)

// Facade is the application surface the router exposes over HTTP.
type Facade interface {
	handlers.PreciosFacade
	middleware.TokenResolver
}

// Setup configures gin router with handlers and middleware.
func Setup(facade Facade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	profileHandler := handlers.NewProfileHandler(facade)
	priceHandler := handlers.NewPriceHandler(facade)
	uploadHandler := handlers.NewUploadHandler(facade)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := engine.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := engine.Group("")
	protected.Use(middleware.AuthRequired(facade))
	protected.GET("/profile", profileHandler.Read)
	protected.PUT("/profile", profileHandler.Update)
	protected.POST("/prices", priceHandler.Create)
	protected.GET("/prices", priceHandler.List)
	protected.GET("/prices/:id", priceHandler.Get)
	protected.PUT("/prices/:id", priceHandler.Update)
	protected.DELETE("/prices/:id", priceHandler.Delete)
	protected.POST("/upload", uploadHandler.Upload)

	return engine
}
