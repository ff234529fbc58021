package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agroferia/agroferia-backend/internal/model"
	"github.com/agroferia/agroferia-backend/internal/normalize"
	"github.com/agroferia/agroferia-backend/internal/repository"
	"github.com/agroferia/agroferia-backend/internal/validate"
)

// ProducerHandler serves the producer endpoints.
type ProducerHandler struct {
	Producers *repository.ProducerRepo
}

func NewProducerHandler(p *repository.ProducerRepo) *ProducerHandler {
	return &ProducerHandler{Producers: p}
}

var producerRules = []validate.Rule{
	{Field: "name", Required: true, MinLen: 3, MaxLen: 200},
	{Field: "document_type", Required: true, OneOf: []string{"cedula", "ruc", "pasaporte"}},
	{Field: "document_number", Required: true, MinLen: 5, MaxLen: 20},
	{Field: "phone", MaxLen: 20},
	{Field: "email", MaxLen: 150},
	{Field: "farm_size", Kind: validate.Number, HasRange: true, Min: 0, Max: 100000},
}

// List handles GET /v1/producers.
func (h *ProducerHandler) List(c echo.Context) error {
	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.Producers.List(ctx)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "error al consultar productores")
	}
	return respond(c, http.StatusOK, "productores", items)
}

// Get handles GET /v1/producers/:id.
func (h *ProducerHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "id inválido")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	p, err := h.Producers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "productor no encontrado")
		}
		return fail(c, http.StatusInternalServerError, "error al consultar el productor")
	}
	return respond(c, http.StatusOK, "productor", p)
}

// Create handles POST /v1/producers.  product_type accepts an array, a
// JSON-encoded string or a bare string.
func (h *ProducerHandler) Create(c echo.Context) error {
	raw, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
	}
	p := normalize.Apply(normalize.ProducerFields, raw)
	if errs := validate.Check(producerRules, p); len(errs) > 0 {
		return failValidation(c, errs)
	}

	prod := model.Producer{
		Name:           normalize.Str(p, "name"),
		DocumentType:   normalize.Str(p, "document_type"),
		DocumentNumber: normalize.Str(p, "document_number"),
		Phone:          normalize.Str(p, "phone"),
		Email:          normalize.Str(p, "email"),
		FarmName:       normalize.Str(p, "farm_name"),
		FarmSize:       normalize.Float(p, "farm_size"),
		ProductType:    normalize.List(p, "product_type"),
	}
	if uid := normalize.Uint(p, "user_id"); uid != 0 {
		prod.UserID = &uid
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Producers.Create(ctx, &prod); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fail(c, http.StatusBadRequest, "ya existe un productor con ese documento")
		}
		return fail(c, http.StatusInternalServerError, "no se pudo crear el productor")
	}
	return respond(c, http.StatusCreated, "productor creado", prod)
}
