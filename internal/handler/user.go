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

// UserHandler serves the admin user management endpoints.  Self-service
// registration lives in AuthHandler; this surface can mint any role.
type UserHandler struct {
	Users      *repository.UserRepo
	BcryptCost int
}

func NewUserHandler(r *repository.UserRepo, bcryptCost int) *UserHandler {
	return &UserHandler{Users: r, BcryptCost: bcryptCost}
}

var userCreateRules = []validate.Rule{
	{Field: "username", Required: true, Kind: validate.Text, MinLen: 3, MaxLen: 50},
	{Field: "email", Required: true, Kind: validate.Text, MinLen: 5, MaxLen: 120},
	{Field: "password", Required: true, Kind: validate.Text, MinLen: 8, MaxLen: 72},
	{Field: "full_name", Required: true, Kind: validate.Text, MinLen: 3, MaxLen: 120},
	{Field: "role", Kind: validate.Text, OneOf: []string{
		model.RoleAdmin, model.RoleCoordinator, model.RoleProducer, model.RoleUser,
	}},
	{Field: "status", Kind: validate.Text, OneOf: []string{"active", "inactive"}},
}

var userUpdateRules = []validate.Rule{
	{Field: "email", Kind: validate.Text, MinLen: 5, MaxLen: 120},
	{Field: "full_name", Kind: validate.Text, MinLen: 3, MaxLen: 120},
	{Field: "role", Kind: validate.Text, OneOf: []string{
		model.RoleAdmin, model.RoleCoordinator, model.RoleProducer, model.RoleUser,
	}},
	{Field: "status", Kind: validate.Text, OneOf: []string{"active", "inactive"}},
}

// List handles GET /v1/users.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.Users.List(ctx)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "error al consultar usuarios")
	}
	return respond(c, http.StatusOK, "usuarios", items)
}

// Get handles GET /v1/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "id inválido")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "usuario no encontrado")
		}
		return fail(c, http.StatusInternalServerError, "error al consultar el usuario")
	}
	return respond(c, http.StatusOK, "usuario", u)
}

// Create handles POST /v1/users.
func (h *UserHandler) Create(c echo.Context) error {
	raw, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
	}
	p := normalize.Apply(normalize.UserFields, raw)
	if errs := validate.Check(userCreateRules, p); len(errs) > 0 {
		return failValidation(c, errs)
	}

	u := model.User{
		Username: normalize.Str(p, "username"),
		Email:    normalize.Str(p, "email"),
		FullName: normalize.Str(p, "full_name"),
		Phone:    normalize.Str(p, "phone"),
		Role:     normalize.Str(p, "role"),
		Status:   normalize.Str(p, "status"),
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	id, err := h.Users.Create(ctx, &u, normalize.Str(p, "password"), h.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fail(c, http.StatusBadRequest, "el usuario o correo ya existe")
		}
		return fail(c, http.StatusInternalServerError, "no se pudo crear el usuario")
	}
	u.ID = id
	return respond(c, http.StatusCreated, "usuario creado", u)
}

// Update handles PUT /v1/users/:id.  Absent fields keep their stored value.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "id inválido")
	}
	raw, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
	}
	p := normalize.Apply(normalize.UserFields, raw)

	ctx, cancel := dbCtx(c)
	defer cancel()

	current, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "usuario no encontrado")
		}
		return fail(c, http.StatusInternalServerError, "error al consultar el usuario")
	}

	if normalize.Has(raw, "email") {
		current.Email = normalize.Str(p, "email")
	}
	if normalize.Has(raw, "full_name") {
		current.FullName = normalize.Str(p, "full_name")
	}
	if normalize.Has(raw, "phone") {
		current.Phone = normalize.Str(p, "phone")
	}
	if normalize.Has(raw, "role") {
		current.Role = normalize.Str(p, "role")
	}
	if normalize.Has(raw, "status") {
		current.Status = normalize.Str(p, "status")
	}
	if errs := validate.Check(userUpdateRules, map[string]any{
		"email": current.Email, "full_name": current.FullName,
		"role": current.Role, "status": current.Status,
	}); len(errs) > 0 {
		return failValidation(c, errs)
	}

	if err := h.Users.Update(ctx, &current); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fail(c, http.StatusBadRequest, "el correo ya está en uso")
		}
		return fail(c, http.StatusInternalServerError, "no se pudo actualizar el usuario")
	}
	return respond(c, http.StatusOK, "usuario actualizado", current)
}

// Delete handles DELETE /v1/users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "id inválido")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "usuario no encontrado")
		}
		return fail(c, http.StatusInternalServerError, "no se pudo eliminar el usuario")
	}
	return respond(c, http.StatusOK, "usuario eliminado", echo.Map{"id": id})
}
