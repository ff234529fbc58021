package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/agroferia/agroferia-backend/internal/model"
	"github.com/agroferia/agroferia-backend/internal/normalize"
	"github.com/agroferia/agroferia-backend/internal/repository"
	"github.com/agroferia/agroferia-backend/internal/validate"
)

// ProductHandler serves the product CRUD endpoints.
type ProductHandler struct {
	Products *repository.ProductRepo
}

func NewProductHandler(p *repository.ProductRepo) *ProductHandler {
	return &ProductHandler{Products: p}
}

var productRules = []validate.Rule{
	{Field: "producer_id", Required: true, Kind: validate.Number, HasRange: true, Min: 1, Max: 1e12},
	{Field: "name", Required: true, MinLen: 2, MaxLen: 150},
	{Field: "quantity", Required: true, Kind: validate.Number, HasRange: true, Min: 0, Max: 1e9},
	{Field: "unit", Required: true, MaxLen: 20},
	{Field: "unit_price", Required: true, Kind: validate.Number, HasRange: true, Min: 0, Max: 1e9},
	{Field: "category", MaxLen: 80},
}

// List handles GET /v1/products.  ?producer_id= filters by producer.
func (h *ProductHandler) List(c echo.Context) error {
	var producerID uint64
	if q := c.QueryParam("producer_id"); q != "" {
		n, err := strconv.ParseUint(q, 10, 64)
		if err != nil {
			return fail(c, http.StatusBadRequest, "producer_id inválido")
		}
		producerID = n
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.Products.List(ctx, producerID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "error al consultar productos")
	}
	return respond(c, http.StatusOK, "productos", items)
}

// Get handles GET /v1/products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "id inválido")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	p, err := h.Products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "producto no encontrado")
		}
		return fail(c, http.StatusInternalServerError, "error al consultar el producto")
	}
	return respond(c, http.StatusOK, "producto", p)
}

// Create handles POST /v1/products.
func (h *ProductHandler) Create(c echo.Context) error {
	raw, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
	}
	p := normalize.Apply(normalize.ProductFields, raw)
	if errs := validate.Check(productRules, p); len(errs) > 0 {
		return failValidation(c, errs)
	}

	prod := model.Product{
		ProducerID: normalize.Uint(p, "producer_id"),
		Name:       normalize.Str(p, "name"),
		Quantity:   normalize.Float(p, "quantity"),
		Unit:       normalize.Str(p, "unit"),
		UnitPrice:  normalize.Float(p, "unit_price"),
		Category:   normalize.Str(p, "category"),
		Status:     normalize.Str(p, "status"),
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Products.Create(ctx, &prod); err != nil {
		return fail(c, http.StatusInternalServerError, "no se pudo crear el producto")
	}
	return respond(c, http.StatusCreated, "producto creado", prod)
}

// Update handles PUT /v1/products/:id.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "id inválido")
	}
	raw, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	// Load the current row so a partial payload only overwrites what it
	// actually sends.
	current, err := h.Products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "producto no encontrado")
		}
		return fail(c, http.StatusInternalServerError, "error al consultar el producto")
	}

	p := normalize.Apply(normalize.ProductFields, raw)
	if v := normalize.Str(p, "name"); v != "" {
		current.Name = v
	}
	if normalize.Has(raw, "quantity") {
		current.Quantity = normalize.Float(p, "quantity")
	}
	if v := normalize.Str(p, "unit"); normalize.Has(raw, "unit") && v != "" {
		current.Unit = v
	}
	if normalize.Has(raw, "unit_price") {
		current.UnitPrice = normalize.Float(p, "unit_price")
	}
	if v := normalize.Str(p, "category"); v != "" {
		current.Category = v
	}
	if v := normalize.Str(p, "status"); normalize.Has(raw, "status") && v != "" {
		current.Status = v
	}

	if err := h.Products.Update(ctx, &current); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "producto no encontrado")
		}
		return fail(c, http.StatusInternalServerError, "no se pudo actualizar el producto")
	}
	return respond(c, http.StatusOK, "producto actualizado", current)
}

// Delete handles DELETE /v1/products/:id.  Deletion is hard; there is no
// soft-delete.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "id inválido")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Products.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "producto no encontrado")
		}
		return fail(c, http.StatusInternalServerError, "no se pudo eliminar el producto")
	}
	return respond(c, http.StatusOK, "producto eliminado", echo.Map{"id": id})
}
