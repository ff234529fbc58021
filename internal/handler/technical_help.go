package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/agroferia/agroferia-backend/internal/model"
	"github.com/agroferia/agroferia-backend/internal/normalize"
	"github.com/agroferia/agroferia-backend/internal/repository"
	"github.com/agroferia/agroferia-backend/internal/validate"
)

const (
	maxHelpFiles      = 5
	maxHelpTotalBytes = 10 << 20
)

// TechnicalHelpHandler serves the technical help request endpoints.
type TechnicalHelpHandler struct {
	Help      *repository.HelpRepo
	UploadDir string
}

func NewTechnicalHelpHandler(r *repository.HelpRepo, uploadDir string) *TechnicalHelpHandler {
	return &TechnicalHelpHandler{Help: r, UploadDir: uploadDir}
}

var helpRules = []validate.Rule{
	{Field: "subject", Required: true, Kind: validate.Text, MinLen: 3, MaxLen: 150},
	{Field: "description", Required: true, Kind: validate.Text, MinLen: 10, MaxLen: 3000},
	{Field: "urgency", Kind: validate.Text, OneOf: []string{
		model.UrgencyCritical, model.UrgencyHigh, model.UrgencyMedium, model.UrgencyLow,
	}},
}

// UrgencyRank maps an urgency level to its sort rank; lower sorts first.
// Unknown levels sink to the bottom.
func UrgencyRank(urgency string) int {
	switch urgency {
	case model.UrgencyCritical:
		return 0
	case model.UrgencyHigh:
		return 1
	case model.UrgencyMedium:
		return 2
	case model.UrgencyLow:
		return 3
	}
	return 4
}

// Create handles POST /v1/technical-help (producer).  The payload is
// multipart: form fields plus up to five attachments totaling 10 MB.
func (h *TechnicalHelpHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "sesión inválida")
	}
	form, err := c.MultipartForm()
	if err != nil {
		return fail(c, http.StatusBadRequest, "formulario inválido")
	}
	raw := formPayload(form)
	p := normalize.Apply(normalize.HelpFields, raw)
	if errs := validate.Check(helpRules, p); len(errs) > 0 {
		return failValidation(c, errs)
	}

	req := model.TechnicalHelpRequest{
		UserID:      uid,
		Subject:     normalize.Str(p, "subject"),
		Description: normalize.Str(p, "description"),
		Urgency:     normalize.Str(p, "urgency"),
		Attachments: []string{},
		Status:      "pending",
	}

	files := form.File["attachments"]
	if len(files) > maxHelpFiles {
		return fail(c, http.StatusBadRequest, "máximo 5 archivos adjuntos")
	}
	var total int64
	for _, fh := range files {
		total += fh.Size
	}
	if total > maxHelpTotalBytes {
		return fail(c, http.StatusBadRequest, "los adjuntos no pueden superar 10MB en total")
	}
	for _, fh := range files {
		name, err := saveUpload(fh, filepath.Join(h.UploadDir, "help"))
		if err != nil {
			return fail(c, http.StatusInternalServerError, "no se pudo guardar el adjunto")
		}
		req.Attachments = append(req.Attachments, name)
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Help.Create(ctx, &req); err != nil {
		return fail(c, http.StatusInternalServerError, "no se pudo crear la solicitud")
	}
	return respond(c, http.StatusCreated, "solicitud creada", req)
}

// List handles GET /v1/technical-help (admin or coordinator).  Results come
// back ordered by urgency rank, most pressing first.
func (h *TechnicalHelpHandler) List(c echo.Context) error {
	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.Help.List(ctx)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "error al consultar solicitudes")
	}
	return respond(c, http.StatusOK, "solicitudes", items)
}

// UpdateStatus handles PUT /v1/technical-help/:id/status (admin).
func (h *TechnicalHelpHandler) UpdateStatus(c echo.Context) error {
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
	case "pending", "in_progress", "resolved":
	default:
		return failValidation(c, map[string]string{"status": "valor no permitido"})
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Help.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "solicitud no encontrada")
		}
		return fail(c, http.StatusInternalServerError, "no se pudo actualizar la solicitud")
	}
	return respond(c, http.StatusOK, "estado actualizado", echo.Map{"id": id, "status": status})
}

// Stats handles GET /v1/technical-help/stats (admin): open requests grouped
// by urgency level.
func (h *TechnicalHelpHandler) Stats(c echo.Context) error {
	ctx, cancel := dbCtx(c)
	defer cancel()

	counts, err := h.Help.CountByUrgency(ctx)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "error al calcular estadísticas")
	}
	return respond(c, http.StatusOK, "estadísticas de soporte", echo.Map{
		"critical": counts[model.UrgencyCritical],
		"high":     counts[model.UrgencyHigh],
		"medium":   counts[model.UrgencyMedium],
		"low":      counts[model.UrgencyLow],
	})
}
