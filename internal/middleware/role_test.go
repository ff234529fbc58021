package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callWithRole(t *testing.T, role any, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}

	h := RequireRole(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec
}

func TestRequireRoleAllows(t *testing.T) {
	rec := callWithRole(t, "admin", "admin", "coordinator")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	rec := callWithRole(t, "producer", "admin")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "no tiene permisos")
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	rec := callWithRole(t, nil, "admin")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleRejectsNonStringRole(t *testing.T) {
	rec := callWithRole(t, 42, "admin")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
