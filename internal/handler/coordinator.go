package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agroferia/agroferia-backend/internal/model"
	"github.com/agroferia/agroferia-backend/internal/normalize"
	"github.com/agroferia/agroferia-backend/internal/repository"
	"github.com/agroferia/agroferia-backend/internal/validate"
)

// CoordinatorHandler serves the fair coordinator assignment endpoints.
type CoordinatorHandler struct {
	Coordinators *repository.CoordinatorRepo
}

func NewCoordinatorHandler(r *repository.CoordinatorRepo) *CoordinatorHandler {
	return &CoordinatorHandler{Coordinators: r}
}

var coordinatorRules = []validate.Rule{
	{Field: "user_id", Required: true, Kind: validate.Number, HasRange: true, Min: 1, Max: 1e12},
}

// Assign handles POST /v1/fairs/:id/coordinators (admin).
func (h *CoordinatorHandler) Assign(c echo.Context) error {
	fairID, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "id inválido")
	}
	raw, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
	}
	p := normalize.Apply([]normalize.Field{{Name: "user_id"}}, raw)
	if errs := validate.Check(coordinatorRules, p); len(errs) > 0 {
		return failValidation(c, errs)
	}

	fc := model.FairCoordinator{
		UserID:       normalize.Uint(p, "user_id"),
		FairID:       fairID,
		AssignedDate: time.Now().UTC(),
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Coordinators.Assign(ctx, &fc); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fail(c, http.StatusBadRequest, "el coordinador ya está asignado a esta feria")
		}
		return fail(c, http.StatusInternalServerError, "no se pudo asignar el coordinador")
	}
	return respond(c, http.StatusCreated, "coordinador asignado", fc)
}

// ListByFair handles GET /v1/fairs/:id/coordinators (admin).
func (h *CoordinatorHandler) ListByFair(c echo.Context) error {
	fairID, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "id inválido")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.Coordinators.ListByFair(ctx, fairID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "error al consultar coordinadores")
	}
	return respond(c, http.StatusOK, "coordinadores", items)
}
