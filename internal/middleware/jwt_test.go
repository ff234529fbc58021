package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroferia/agroferia-backend/internal/utils"
)

const testSecret = "test-secret"

func callJWT(t *testing.T, authorization string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := JWTAuth(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, c
}

func TestJWTAuthValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 42, "producer", 5)
	require.NoError(t, err)

	rec, c := callJWT(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "producer", c.Get("role"))
	assert.NotNil(t, c.Get("user_id"))
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec, _ := callJWT(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token de acceso requerido")
}

func TestJWTAuthMalformedToken(t *testing.T) {
	rec, _ := callJWT(t, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token inválido")
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 42, "admin", 5)
	require.NoError(t, err)

	rec, _ := callJWT(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 42, "admin", -1)
	require.NoError(t, err)

	rec, _ := callJWT(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
