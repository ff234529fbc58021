package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/agroferia/agroferia-backend/internal/config"
	"github.com/agroferia/agroferia-backend/internal/handler"
	"github.com/agroferia/agroferia-backend/internal/middleware"
)

// PublicHandlers bundles the handlers behind the unauthenticated surface.
type PublicHandlers struct {
	Fairs         *handler.FairHandler
	Producers     *handler.ProducerHandler
	Products      *handler.ProductHandler
	Registrations *handler.RegistrationHandler
	Sales         *handler.SaleHandler
	Translations  *handler.TranslationHandler
}

// RegisterPublic registers the unauthenticated browse and capture routes.
// The legacy clients create fairs, producers, products, registrations and
// sales without a session, so the write routes stay open here.  Read routes
// get response caching and a per-client token bucket when Redis is
// available; without Redis both middlewares are skipped and the routes
// serve uncached.
func RegisterPublic(e *echo.Echo, h PublicHandlers, rdb *redis.Client) {
	reads := e.Group("/v1")
	if rdb != nil {
		reads.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
		reads.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	}
	reads.GET("/fairs", h.Fairs.List)
	reads.GET("/fairs/:id", h.Fairs.Get)
	reads.GET("/producers", h.Producers.List)
	reads.GET("/producers/:id", h.Producers.Get)
	reads.GET("/products", h.Products.List)
	reads.GET("/products/:id", h.Products.Get)
	reads.GET("/registrations", h.Registrations.List)
	reads.GET("/registrations/:id", h.Registrations.Get)
	reads.GET("/sales", h.Sales.List)
	reads.GET("/translations/:lang", h.Translations.Get)

	w := e.Group("/v1")
	w.POST("/fairs", h.Fairs.Create)
	w.POST("/producers", h.Producers.Create)
	w.POST("/products", h.Products.Create)
	w.PUT("/products/:id", h.Products.Update)
	w.DELETE("/products/:id", h.Products.Delete)
	w.POST("/registrations", h.Registrations.Create)
	w.POST("/sales", h.Sales.Create)
}
