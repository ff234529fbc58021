package router

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroferia/agroferia-backend/internal/handler"
	"github.com/agroferia/agroferia-backend/internal/model"
	"github.com/agroferia/agroferia-backend/internal/repository"
	"github.com/agroferia/agroferia-backend/internal/utils"
)

const routeTestSecret = "route-test-secret"

// unreachableConnector yields a *sql.DB whose every operation errors, so
// route tests can exercise the middleware chain without a database.  A
// request that clears the role gate reaches its handler and fails with 500
// instead of 403.
type unreachableConnector struct{}

func (unreachableConnector) Connect(context.Context) (driver.Conn, error) {
	return nil, errors.New("database unreachable")
}

func (unreachableConnector) Driver() driver.Driver { return nil }

func newStaffEcho(t *testing.T) *echo.Echo {
	t.Helper()
	db := sql.OpenDB(unreachableConnector{})

	e := echo.New()
	RegisterAdmin(e, AdminHandlers{
		Fairs:         handler.NewFairHandler(repository.NewFairRepo(db)),
		Registrations: handler.NewRegistrationHandler(repository.NewRegistrationRepo(db)),
		Coordinators:  handler.NewCoordinatorHandler(repository.NewCoordinatorRepo(db)),
		Surveys:       handler.NewFairSurveyHandler(repository.NewSurveyRepo(db)),
		PostSale:      handler.NewPostSaleHandler(repository.NewPostSaleRepo(db)),
		Reports:       handler.NewContentReportHandler(repository.NewReportRepo(db), t.TempDir()),
		Help:          handler.NewTechnicalHelpHandler(repository.NewHelpRepo(db), t.TempDir()),
		Translations:  handler.NewTranslationHandler(repository.NewTranslationRepo(db)),
		Users:         handler.NewUserHandler(repository.NewUserRepo(db), 4),
	}, routeTestSecret)
	return e
}

func getAs(t *testing.T, e *echo.Echo, role, path string) *httptest.ResponseRecorder {
	t.Helper()
	tok, err := utils.NewAccessToken(routeTestSecret, 1, role, 5)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHelpStatsAcceptsCoordinator(t *testing.T) {
	e := newStaffEcho(t)

	// Clears the gate and fails only at the (unreachable) database.
	rec := getAs(t, e, model.RoleCoordinator, "/v1/technical-help/stats")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = getAs(t, e, model.RoleAdmin, "/v1/technical-help/stats")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHelpStatsRejectsNonStaff(t *testing.T) {
	e := newStaffEcho(t)

	for _, role := range []string{model.RoleProducer, model.RoleUser} {
		rec := getAs(t, e, role, "/v1/technical-help/stats")
		assert.Equal(t, http.StatusForbidden, rec.Code, "role %s", role)
	}
}

func TestStaffRoutesAcceptCoordinator(t *testing.T) {
	e := newStaffEcho(t)

	for _, path := range []string{
		"/v1/technical-help",
		"/v1/content-reports",
		"/v1/fair-surveys/fair/1/stats",
	} {
		rec := getAs(t, e, model.RoleCoordinator, path)
		assert.NotEqual(t, http.StatusForbidden, rec.Code, "path %s", path)
	}
}

func TestAdminOnlyRoutesRejectCoordinator(t *testing.T) {
	e := newStaffEcho(t)

	for _, path := range []string{
		"/v1/users",
		"/v1/fairs/1/coordinators",
	} {
		rec := getAs(t, e, model.RoleCoordinator, path)
		assert.Equal(t, http.StatusForbidden, rec.Code, "path %s", path)
	}
}
