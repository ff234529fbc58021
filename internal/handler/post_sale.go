package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agroferia/agroferia-backend/internal/model"
	"github.com/agroferia/agroferia-backend/internal/normalize"
	"github.com/agroferia/agroferia-backend/internal/repository"
	"github.com/agroferia/agroferia-backend/internal/validate"
)

// PostSaleHandler serves the post-sale report endpoints.
type PostSaleHandler struct {
	Reports *repository.PostSaleRepo
}

func NewPostSaleHandler(r *repository.PostSaleRepo) *PostSaleHandler {
	return &PostSaleHandler{Reports: r}
}

var postSaleRules = []validate.Rule{
	{Field: "fair_id", Required: true, Kind: validate.Number, HasRange: true, Min: 1, Max: 1e12},
	{Field: "total_sales", Required: true, Kind: validate.Number, HasRange: true, Min: 0, Max: 1e9},
	{Field: "leftover_percent", Kind: validate.Number, HasRange: true, Min: 0, Max: 100},
	{Field: "comments", Kind: validate.Text, MaxLen: 2000},
}

// Create handles POST /v1/post-sale (producer).
func (h *PostSaleHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "sesión inválida")
	}
	raw, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
	}
	p := normalize.Apply(normalize.PostSaleFields, raw)
	if errs := validate.Check(postSaleRules, p); len(errs) > 0 {
		return failValidation(c, errs)
	}

	rep := model.PostSaleReport{
		UserID:          uid,
		FairID:          normalize.Uint(p, "fair_id"),
		TotalSales:      normalize.Float(p, "total_sales"),
		ProductsSold:    normalize.List(p, "products_sold"),
		LeftoverPercent: normalize.Float(p, "leftover_percent"),
		Comments:        normalize.Str(p, "comments"),
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Reports.Create(ctx, &rep); err != nil {
		return fail(c, http.StatusInternalServerError, "no se pudo guardar el reporte")
	}
	return respond(c, http.StatusCreated, "reporte post-venta registrado", rep)
}

// ListByFair handles GET /v1/post-sale/:fairId (admin or coordinator).
func (h *PostSaleHandler) ListByFair(c echo.Context) error {
	fairID, err := pathID(c, "fairId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "fairId inválido")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.Reports.ListByFair(ctx, fairID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "error al consultar reportes")
	}
	return respond(c, http.StatusOK, "reportes post-venta", items)
}

// Stats handles GET /v1/post-sale/stats?fair_id= (admin or coordinator).
func (h *PostSaleHandler) Stats(c echo.Context) error {
	fairID, err := queryID(c, "fair_id")
	if err != nil || fairID == 0 {
		return fail(c, http.StatusBadRequest, "fair_id inválido")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	st, err := h.Reports.Stats(ctx, fairID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "error al calcular estadísticas")
	}
	return respond(c, http.StatusOK, "estadísticas post-venta", st)
}
