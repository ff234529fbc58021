package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole returns a middleware enforcing that the authenticated user has
// one of the given roles.  Roles correspond to the JWT "role" claim
// (admin, coordinator, producer, user).  A missing or disallowed role aborts
// the request with 403 before any handler logic runs, regardless of payload
// validity.  JWTAuth must run first so the role is present in the context.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v := c.Get("role")
			role, ok := v.(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"success": false, "message": "no tiene permisos para esta operación"})
			}
			return next(c)
		}
	}
}
