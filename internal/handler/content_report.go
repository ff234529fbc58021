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

// maxReportPhotoBytes caps the single optional report photo at 5 MB.
const maxReportPhotoBytes = 5 << 20

// ContentReportHandler serves the content report endpoints.
type ContentReportHandler struct {
	Reports   *repository.ReportRepo
	UploadDir string
}

func NewContentReportHandler(r *repository.ReportRepo, uploadDir string) *ContentReportHandler {
	return &ContentReportHandler{Reports: r, UploadDir: uploadDir}
}

var reportRules = []validate.Rule{
	{Field: "content_type", Required: true, Kind: validate.Text, MinLen: 2, MaxLen: 60},
	{Field: "description", Required: true, Kind: validate.Text, MinLen: 10, MaxLen: 500},
	{Field: "location", Kind: validate.Text, MinLen: 3, MaxLen: 200},
}

// Create handles POST /v1/content-reports (any authenticated user).  The
// payload is multipart: form fields plus an optional "photo" image.
func (h *ContentReportHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "sesión inválida")
	}
	form, err := c.MultipartForm()
	if err != nil {
		return fail(c, http.StatusBadRequest, "formulario inválido")
	}
	raw := formPayload(form)
	p := normalize.Apply(normalize.ReportFields, raw)
	if errs := validate.Check(reportRules, p); len(errs) > 0 {
		return failValidation(c, errs)
	}

	rep := model.ContentReport{
		UserID:      uid,
		ContentType: normalize.Str(p, "content_type"),
		Description: normalize.Str(p, "description"),
		Location:    normalize.Str(p, "location"),
		Status:      "pending",
	}

	if files := form.File["photo"]; len(files) > 0 {
		fh := files[0]
		if !imageExtAllowed(fh.Filename) {
			return fail(c, http.StatusBadRequest, "formato de imagen no permitido (jpeg, jpg, png, gif)")
		}
		if fh.Size > maxReportPhotoBytes {
			return fail(c, http.StatusBadRequest, "la imagen no puede superar 5MB")
		}
		name, err := saveUpload(fh, filepath.Join(h.UploadDir, "reports"))
		if err != nil {
			return fail(c, http.StatusInternalServerError, "no se pudo guardar la imagen")
		}
		rep.PhotoFile = &name
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Reports.Create(ctx, &rep); err != nil {
		return fail(c, http.StatusInternalServerError, "no se pudo crear el reporte")
	}
	return respond(c, http.StatusCreated, "reporte creado", rep)
}

// List handles GET /v1/content-reports (admin or coordinator).
func (h *ContentReportHandler) List(c echo.Context) error {
	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.Reports.List(ctx)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "error al consultar reportes")
	}
	return respond(c, http.StatusOK, "reportes", items)
}

// UpdateStatus handles PUT /v1/content-reports/:id/status (admin).
func (h *ContentReportHandler) UpdateStatus(c echo.Context) error {
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
	case "pending", "reviewed", "resolved":
	default:
		return failValidation(c, map[string]string{"status": "valor no permitido"})
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Reports.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "reporte no encontrado")
		}
		return fail(c, http.StatusInternalServerError, "no se pudo actualizar el reporte")
	}
	return respond(c, http.StatusOK, "estado actualizado", echo.Map{"id": id, "status": status})
}
