package router

import (
	"github.com/labstack/echo/v4"

	"github.com/agroferia/agroferia-backend/internal/handler"
	"github.com/agroferia/agroferia-backend/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check, used by load balancers to
// verify that the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication routes and the session
// endpoints that ride on a valid access token.  Unauthenticated
// operations live under /v1/auth; /v1/me requires a JWT of any role.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Refresh rotates the refresh token: the presented one is revoked and
	// a new pair is issued.
	g.POST("/refresh", a.Refresh)
	// Logout accepts the refresh token in the body and revokes it; it does
	// not require a JWT so expired sessions can still be terminated.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}
