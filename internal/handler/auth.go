package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agroferia/agroferia-backend/internal/config"
	"github.com/agroferia/agroferia-backend/internal/model"
	"github.com/agroferia/agroferia-backend/internal/repository"
	"github.com/agroferia/agroferia-backend/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg    config.Config
	Users  *repository.UserRepo
	Tokens *repository.TokenRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, t *repository.TokenRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Tokens: t}
}

// ----- DTOs -----

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Role     string `json:"role"` // producer | user; privileged roles are assigned by an admin
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type userPart struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
type authResp struct {
	User    userPart  `json:"user"`
	Access  tokenPart `json:"access"`
	Refresh tokenPart `json:"refresh"`
}

// Register creates an account and returns a token pair immediately.
// Self-registration only grants the producer and user roles; admin and
// coordinator accounts are created through the admin users endpoints.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "usuario, correo y contraseña son obligatorios")
	}
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role != model.RoleProducer && role != model.RoleUser {
		role = model.RoleUser
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	u := model.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     role,
		Status:   "active",
	}
	uid, err := h.Users.Create(ctx, &u, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fail(c, http.StatusBadRequest, "el usuario o correo ya existe")
		}
		return fail(c, http.StatusInternalServerError, "no se pudo crear el usuario")
	}

	return h.issuePair(c, http.StatusCreated, uid, req.Email, role)
}

// Login verifies credentials and returns a new token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "correo y contraseña son obligatorios")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	cr, err := h.Users.GetCredentials(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusUnauthorized, "credenciales inválidas")
		}
		return fail(c, http.StatusInternalServerError, "error de consulta")
	}
	if cr.Status != "active" || !utils.VerifyPassword(cr.PasswordHash, req.Password) {
		return fail(c, http.StatusUnauthorized, "credenciales inválidas")
	}

	return h.issuePair(c, http.StatusOK, cr.ID, req.Email, cr.Role)
}

// Refresh validates a refresh token by hash, revokes it and issues a new
// pair (rotation).
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return fail(c, http.StatusBadRequest, "refresh_token es obligatorio")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	hash := utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))
	uid, err := h.Tokens.FindValid(ctx, hash)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusUnauthorized, "refresh token inválido o expirado")
		}
		return fail(c, http.StatusInternalServerError, "error de consulta")
	}
	if err := h.Tokens.Revoke(ctx, hash); err != nil {
		return fail(c, http.StatusInternalServerError, "no se pudo rotar el token")
	}

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "usuario no encontrado")
	}
	return h.issuePair(c, http.StatusOK, u.ID, u.Email, u.Role)
}

// Logout invalidates the presented refresh token.  Revoking an unknown
// token still answers 204; logout is idempotent.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return fail(c, http.StatusBadRequest, "refresh_token es obligatorio")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Tokens.Revoke(ctx, utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))); err != nil {
		return fail(c, http.StatusInternalServerError, "no se pudo cerrar la sesión")
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "no autorizado")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "usuario no encontrado")
		}
		return fail(c, http.StatusInternalServerError, "error de consulta")
	}
	return respond(c, http.StatusOK, "perfil", u)
}

func (h *AuthHandler) issuePair(c echo.Context, status int, uid uint64, email, role string) error {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, uid, role, h.Cfg.AccessTTLMin)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "no se pudo emitir el token de acceso")
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "no se pudo emitir el refresh token")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()
	if err := h.Tokens.StoreRefresh(ctx, uid, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return fail(c, http.StatusInternalServerError, "no se pudo guardar el refresh token")
	}

	return respond(c, status, "autenticado", authResp{
		User:    userPart{ID: uid, Email: email, Role: role},
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp}, // raw back to client
	})
}
