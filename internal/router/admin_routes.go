package router

import (
	"github.com/labstack/echo/v4"

	"github.com/agroferia/agroferia-backend/internal/handler"
	"github.com/agroferia/agroferia-backend/internal/middleware"
	"github.com/agroferia/agroferia-backend/internal/model"
)

// AdminHandlers bundles the handlers behind the staff-facing surface.
type AdminHandlers struct {
	Fairs         *handler.FairHandler
	Registrations *handler.RegistrationHandler
	Coordinators  *handler.CoordinatorHandler
	Surveys       *handler.FairSurveyHandler
	PostSale      *handler.PostSaleHandler
	Reports       *handler.ContentReportHandler
	Help          *handler.TechnicalHelpHandler
	Translations  *handler.TranslationHandler
	Users         *handler.UserHandler
}

// RegisterAdmin registers the staff routes.  Review and statistics
// endpoints accept admin or coordinator; mutations of other users'
// records and system data are admin only.
func RegisterAdmin(e *echo.Echo, h AdminHandlers, jwtSecret string) {
	staff := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin, model.RoleCoordinator),
	)
	staff.PUT("/registrations/:id/status", h.Registrations.UpdateStatus)
	staff.GET("/content-reports", h.Reports.List)
	staff.GET("/technical-help", h.Help.List)
	staff.GET("/technical-help/stats", h.Help.Stats)
	staff.GET("/fair-surveys/fair/:fairId", h.Surveys.ListByFair)
	staff.GET("/fair-surveys/fair/:fairId/stats", h.Surveys.Stats)
	staff.GET("/post-sale/fair/:fairId", h.PostSale.ListByFair)
	staff.GET("/post-sale/stats", h.PostSale.Stats)

	admin := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)
	admin.PUT("/fairs/:id/status", h.Fairs.UpdateStatus)
	admin.POST("/fairs/:id/coordinators", h.Coordinators.Assign)
	admin.GET("/fairs/:id/coordinators", h.Coordinators.ListByFair)
	admin.PUT("/content-reports/:id/status", h.Reports.UpdateStatus)
	admin.PUT("/technical-help/:id/status", h.Help.UpdateStatus)
	admin.PUT("/translations", h.Translations.Upsert)

	admin.GET("/users", h.Users.List)
	admin.GET("/users/:id", h.Users.Get)
	admin.POST("/users", h.Users.Create)
	admin.PUT("/users/:id", h.Users.Update)
	admin.DELETE("/users/:id", h.Users.Delete)
}
