package handler

import (
	"context"
	"errors"
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agroferia/agroferia-backend/internal/model"
	"github.com/agroferia/agroferia-backend/internal/normalize"
	"github.com/agroferia/agroferia-backend/internal/repository"
	"github.com/agroferia/agroferia-backend/internal/validate"
)

// SurveyStore is the persistence surface the survey endpoints depend on.
// *repository.SurveyRepo satisfies it.
type SurveyStore interface {
	Exists(ctx context.Context, userID, fairID uint64) (bool, error)
	Create(ctx context.Context, s *model.FairSurvey) error
	ListByFair(ctx context.Context, fairID uint64) ([]model.FairSurvey, error)
	SatisfactionScores(ctx context.Context, fairID uint64) ([]int, error)
}

// FairSurveyHandler serves the fair satisfaction survey endpoints.
type FairSurveyHandler struct {
	Surveys SurveyStore
}

func NewFairSurveyHandler(s SurveyStore) *FairSurveyHandler {
	return &FairSurveyHandler{Surveys: s}
}

var surveyRules = []validate.Rule{
	{Field: "fair_id", Required: true, Kind: validate.Number, HasRange: true, Min: 1, Max: 1e12},
	{Field: "satisfaction", Required: true, Kind: validate.Number, HasRange: true, Min: 1, Max: 10},
	{Field: "organization", Required: true, Kind: validate.Number, HasRange: true, Min: 1, Max: 10},
	{Field: "comments", Kind: validate.Text, MaxLen: 2000},
}

// ComputeNPS derives a Net Promoter Score from 1-10 satisfaction scores:
// promoters are >= 8, detractors <= 6, and the result is the rounded
// percentage difference.  An empty slice scores 0.
func ComputeNPS(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	var promoters, detractors int
	for _, s := range scores {
		switch {
		case s >= 8:
			promoters++
		case s <= 6:
			detractors++
		}
	}
	return int(math.Round(100 * float64(promoters-detractors) / float64(len(scores))))
}

// Create handles POST /v1/fair-surveys (producer).  One survey per user per
// fair; repeats are rejected before hitting the unique constraint, which
// still backstops the race.
func (h *FairSurveyHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "sesión inválida")
	}
	raw, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
	}
	p := normalize.Apply(normalize.SurveyFields, raw)
	if errs := validate.Check(surveyRules, p); len(errs) > 0 {
		return failValidation(c, errs)
	}
	fairID := normalize.Uint(p, "fair_id")

	ctx, cancel := dbCtx(c)
	defer cancel()

	exists, err := h.Surveys.Exists(ctx, uid, fairID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "error al verificar la encuesta")
	}
	if exists {
		return fail(c, http.StatusBadRequest, "ya envió una encuesta para esta feria")
	}

	s := model.FairSurvey{
		UserID:         uid,
		FairID:         fairID,
		Satisfaction:   normalize.Int(p, "satisfaction"),
		Organization:   normalize.Int(p, "organization"),
		SalesVolume:    normalize.Str(p, "sales_volume"),
		Comments:       normalize.Str(p, "comments"),
		WouldRecommend: normalize.Bool(p, "would_recommend"),
	}
	if err := h.Surveys.Create(ctx, &s); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fail(c, http.StatusBadRequest, "ya envió una encuesta para esta feria")
		}
		return fail(c, http.StatusInternalServerError, "no se pudo guardar la encuesta")
	}
	return respond(c, http.StatusCreated, "encuesta registrada", s)
}

// ListByFair handles GET /v1/fair-surveys/:fairId (admin or coordinator).
func (h *FairSurveyHandler) ListByFair(c echo.Context) error {
	fairID, err := pathID(c, "fairId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "fairId inválido")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.Surveys.ListByFair(ctx, fairID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "error al consultar encuestas")
	}
	return respond(c, http.StatusOK, "encuestas", items)
}

// Stats handles GET /v1/fair-surveys/:fairId/stats (admin or coordinator):
// response count, average satisfaction and the NPS for one fair.
func (h *FairSurveyHandler) Stats(c echo.Context) error {
	fairID, err := pathID(c, "fairId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "fairId inválido")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	scores, err := h.Surveys.SatisfactionScores(ctx, fairID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "error al calcular estadísticas")
	}

	var avg float64
	if len(scores) > 0 {
		var sum int
		for _, s := range scores {
			sum += s
		}
		avg = float64(sum) / float64(len(scores))
	}
	return respond(c, http.StatusOK, "estadísticas de encuestas", echo.Map{
		"fairId":          fairID,
		"responses":       len(scores),
		"avgSatisfaction": avg,
		"nps":             ComputeNPS(scores),
	})
}
