package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/agroferia/agroferia-backend/internal/model"
	"github.com/agroferia/agroferia-backend/internal/normalize"
	"github.com/agroferia/agroferia-backend/internal/repository"
	"github.com/agroferia/agroferia-backend/internal/validate"
)

// FairHandler serves the fair CRUD endpoints.
type FairHandler struct {
	Fairs *repository.FairRepo
}

func NewFairHandler(f *repository.FairRepo) *FairHandler { return &FairHandler{Fairs: f} }

var fairRules = []validate.Rule{
	{Field: "name", Required: true, MinLen: 3, MaxLen: 200},
	{Field: "location", Required: true, MinLen: 3, MaxLen: 200},
	{Field: "address", Required: true, MinLen: 3, MaxLen: 300},
	{Field: "start_date", Required: true},
	{Field: "end_date", Required: true},
	{Field: "max_capacity", Kind: validate.Number, HasRange: true, Min: 1, Max: 10000},
	{Field: "status", OneOf: []string{model.FairScheduled, model.FairActive, model.FairClosed}},
}

// List handles GET /v1/fairs.  An optional ?status= filters the result.
func (h *FairHandler) List(c echo.Context) error {
	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.Fairs.List(ctx, strings.TrimSpace(c.QueryParam("status")))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "error al consultar ferias")
	}
	return respond(c, http.StatusOK, "ferias", items)
}

// Get handles GET /v1/fairs/:id.
func (h *FairHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "id inválido")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	f, err := h.Fairs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "feria no encontrada")
		}
		return fail(c, http.StatusInternalServerError, "error al consultar la feria")
	}
	return respond(c, http.StatusOK, "feria", f)
}

// Create handles POST /v1/fairs.  The payload may mix camelCase and
// snake_case keys; a missing maxCapacity persists as 50 with
// current_capacity 0, and status defaults to scheduled.
func (h *FairHandler) Create(c echo.Context) error {
	raw, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
	}
	p := normalize.Apply(normalize.FairFields, raw)
	if errs := validate.Check(fairRules, p); len(errs) > 0 {
		return failValidation(c, errs)
	}

	start, okS := parseDate(normalize.Str(p, "start_date"))
	end, okE := parseDate(normalize.Str(p, "end_date"))
	if !okS || !okE {
		return failValidation(c, map[string]string{"start_date": "fecha inválida"})
	}
	if end.Before(start) {
		return failValidation(c, map[string]string{"end_date": "debe ser posterior a la fecha de inicio"})
	}

	f := model.Fair{
		Name:              normalize.Str(p, "name"),
		Location:          normalize.Str(p, "location"),
		Address:           normalize.Str(p, "address"),
		StartDate:         start,
		EndDate:           end,
		MaxCapacity:       normalize.Int(p, "max_capacity"),
		CurrentCapacity:   normalize.Int(p, "current_capacity"),
		Status:            strings.ToLower(normalize.Str(p, "status")),
		ProductCategories: normalize.List(p, "product_categories"),
		Requirements:      normalize.List(p, "requirements"),
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Fairs.Create(ctx, &f); err != nil {
		return fail(c, http.StatusInternalServerError, "no se pudo crear la feria")
	}
	return respond(c, http.StatusCreated, "feria creada", f)
}

// UpdateStatus handles PUT /v1/fairs/:id/status (admin).  Moves the fair
// through scheduled -> active -> closed.
func (h *FairHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "id inválido")
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
	}
	status := strings.ToLower(strings.TrimSpace(body.Status))
	switch status {
	case model.FairScheduled, model.FairActive, model.FairClosed:
	default:
		return failValidation(c, map[string]string{"status": "valor no permitido"})
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Fairs.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "feria no encontrada")
		}
		return fail(c, http.StatusInternalServerError, "no se pudo actualizar la feria")
	}
	return respond(c, http.StatusOK, "estado actualizado", echo.Map{"id": id, "status": status})
}
