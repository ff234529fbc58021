package handler // handler implements the HTTP endpoints of the API

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Every route answers the same envelope: {success, message, data} on
// success, {success: false, message} on failure, plus a field-keyed errors
// object for validation failures.  Legacy bare-row responses are gone.

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, echo.Map{"success": true, "message": message, "data": data})
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"success": false, "message": message})
}

func failValidation(c echo.Context, errs map[string]string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"success": false,
		"message": "datos inválidos",
		"errors":  errs,
	})
}

// bindPayload decodes a JSON body into a raw map for normalization.  The
// map form is what lets a route accept camelCase and snake_case variants of
// the same field.
func bindPayload(c echo.Context) (map[string]any, error) {
	raw := map[string]any{}
	if err := c.Bind(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// formPayload flattens multipart form values into a raw map.  Repeated keys
// keep all values so list coercion still works.
func formPayload(form *multipart.Form) map[string]any {
	raw := make(map[string]any, len(form.Value))
	for k, vals := range form.Value {
		switch len(vals) {
		case 0:
		case 1:
			raw[k] = vals[0]
		default:
			raw[k] = vals
		}
	}
	return raw
}

// getUserID extracts the authenticated user id stored by the JWT middleware.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses the :id route parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// dbCtx derives the per-call database context with the service-wide 5s
// timeout.
func dbCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// parseDate accepts the two formats clients send: RFC3339 timestamps from
// the date pickers and bare YYYY-MM-DD from legacy forms.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// saveUpload stores a multipart file under dir with a generated name and
// returns the stored file name.  The original name only contributes its
// extension.
func saveUpload(fh *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.New().String() + strings.ToLower(filepath.Ext(fh.Filename))
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// imageExtAllowed reports whether the upload has one of the accepted image
// extensions (jpeg, jpg, png, gif).
func imageExtAllowed(filename string) bool {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "jpeg", "jpg", "png", "gif":
		return true
	}
	return false
}
