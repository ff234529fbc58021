package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agroferia/agroferia-backend/internal/model"
	"github.com/agroferia/agroferia-backend/internal/normalize"
	"github.com/agroferia/agroferia-backend/internal/repository"
	"github.com/agroferia/agroferia-backend/internal/validate"
)

// SaleHandler serves the sale endpoints.
type SaleHandler struct {
	Sales *repository.SaleRepo
}

func NewSaleHandler(r *repository.SaleRepo) *SaleHandler {
	return &SaleHandler{Sales: r}
}

var saleRules = []validate.Rule{
	{Field: "registration_id", Required: true, Kind: validate.Number, HasRange: true, Min: 1, Max: 1e12},
	{Field: "product_name", Required: true, Kind: validate.Text, MinLen: 2, MaxLen: 120},
	{Field: "quantity", Required: true, Kind: validate.Number, HasRange: true, Min: 0.01, Max: 1e9},
	{Field: "unit_price", Required: true, Kind: validate.Number, HasRange: true, Min: 0, Max: 1e9},
	{Field: "payment_method", Kind: validate.Text, OneOf: []string{"efectivo", "tarjeta", "transferencia"}},
}

// List handles GET /v1/sales with an optional ?registration_id= filter.
func (h *SaleHandler) List(c echo.Context) error {
	registrationID, err := queryID(c, "registration_id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "registration_id inválido")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.Sales.List(ctx, registrationID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "error al consultar ventas")
	}
	return respond(c, http.StatusOK, "ventas", items)
}

// Create handles POST /v1/sales.  TotalAmount falls back to
// quantity * unit_price when the payload omits it.
func (h *SaleHandler) Create(c echo.Context) error {
	raw, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
	}
	p := normalize.Apply(normalize.SaleFields, raw)
	if errs := validate.Check(saleRules, p); len(errs) > 0 {
		return failValidation(c, errs)
	}

	s := model.Sale{
		RegistrationID: normalize.Uint(p, "registration_id"),
		ProductName:    normalize.Str(p, "product_name"),
		Quantity:       normalize.Float(p, "quantity"),
		UnitPrice:      normalize.Float(p, "unit_price"),
		TotalAmount:    normalize.Float(p, "total_amount"),
		PaymentMethod:  normalize.Str(p, "payment_method"),
		SaleDate:       time.Now().UTC(),
	}
	if pid := normalize.Uint(p, "product_id"); pid != 0 {
		s.ProductID = &pid
	}
	if s.TotalAmount == 0 {
		s.TotalAmount = s.Quantity * s.UnitPrice
	}
	if d, ok := parseDate(normalize.Str(p, "sale_date")); ok {
		s.SaleDate = d
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Sales.Create(ctx, &s); err != nil {
		return fail(c, http.StatusInternalServerError, "no se pudo registrar la venta")
	}
	return respond(c, http.StatusCreated, "venta registrada", s)
}
