package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/agroferia/agroferia-backend/internal/model"
	"github.com/agroferia/agroferia-backend/internal/normalize"
	"github.com/agroferia/agroferia-backend/internal/repository"
	"github.com/agroferia/agroferia-backend/internal/validate"
)

// TranslationHandler serves the UI translation endpoints.
type TranslationHandler struct {
	Translations *repository.TranslationRepo
}

func NewTranslationHandler(r *repository.TranslationRepo) *TranslationHandler {
	return &TranslationHandler{Translations: r}
}

var translationRules = []validate.Rule{
	{Field: "language_code", Required: true, Kind: validate.Text, MinLen: 2, MaxLen: 10},
	{Field: "key", Required: true, Kind: validate.Text, MinLen: 1, MaxLen: 150},
	{Field: "value", Required: true, Kind: validate.Text, MinLen: 1, MaxLen: 2000},
}

// Get handles GET /v1/translations/:lang (public): the key/value map for
// one language.  Unknown languages return an empty map, not an error.
func (h *TranslationHandler) Get(c echo.Context) error {
	lang := strings.ToLower(strings.TrimSpace(c.Param("lang")))
	if lang == "" {
		return fail(c, http.StatusBadRequest, "idioma inválido")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	m, err := h.Translations.ListByLanguage(ctx, lang)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "error al consultar traducciones")
	}
	return respond(c, http.StatusOK, "traducciones", m)
}

// Upsert handles PUT /v1/translations (admin).  Writing an existing
// (language, key) pair replaces its value.
func (h *TranslationHandler) Upsert(c echo.Context) error {
	raw, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
	}
	p := normalize.Apply(normalize.TranslationFields, raw)
	if errs := validate.Check(translationRules, p); len(errs) > 0 {
		return failValidation(c, errs)
	}

	t := model.Translation{
		LanguageCode: strings.ToLower(normalize.Str(p, "language_code")),
		Key:          normalize.Str(p, "key"),
		Value:        normalize.Str(p, "value"),
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Translations.Upsert(ctx, &t); err != nil {
		return fail(c, http.StatusInternalServerError, "no se pudo guardar la traducción")
	}
	return respond(c, http.StatusOK, "traducción guardada", t)
}
