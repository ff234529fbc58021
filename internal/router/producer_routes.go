package router

import (
	"github.com/labstack/echo/v4"

	"github.com/agroferia/agroferia-backend/internal/handler"
	"github.com/agroferia/agroferia-backend/internal/middleware"
	"github.com/agroferia/agroferia-backend/internal/model"
)

// ProducerHandlers bundles the handlers behind the producer-facing
// authenticated surface.
type ProducerHandlers struct {
	Surveys  *handler.FairSurveyHandler
	PostSale *handler.PostSaleHandler
	Help     *handler.TechnicalHelpHandler
	Reports  *handler.ContentReportHandler
}

// RegisterProducer registers the routes producers (and, for content
// reports, any authenticated user) use to file surveys, reports and help
// requests.
func RegisterProducer(e *echo.Echo, h ProducerHandlers, jwtSecret string) {
	// Content reports come from any signed-in role.
	any := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	any.POST("/content-reports", h.Reports.Create)

	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleProducer),
	)
	g.POST("/fair-surveys", h.Surveys.Create)
	g.POST("/post-sale", h.PostSale.Create)
	g.POST("/technical-help", h.Help.Create)
}
