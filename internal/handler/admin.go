package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ilnabucco/restaurant-reservation/internal/config"
	"github.com/ilnabucco/restaurant-reservation/internal/middleware"
	"github.com/ilnabucco/restaurant-reservation/internal/model"
	"github.com/ilnabucco/restaurant-reservation/internal/repository"
	"github.com/ilnabucco/restaurant-reservation/internal/utils"
)

// AdminHandler covers admin login plus account management. Account
// management routes are superadmin-only; the role check lives in the
// router.
type AdminHandler struct {
	Cfg    config.Config
	Admins *repository.AdminRepo
}

func NewAdminHandler(cfg config.Config, admins *repository.AdminRepo) *AdminHandler {
	if admins == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Cfg: cfg, Admins: admins}
}

type adminJSON struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toAdminJSON(a model.Admin) adminJSON {
	return adminJSON{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role, CreatedAt: a.CreatedAt}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/admins/login. Unknown email and wrong
// password answer the same 401 so the response does not reveal which
// accounts exist.
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	a, err := h.Admins.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return fail(c, err)
	}
	if !utils.VerifyPassword(a.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, a.ID, a.Email, a.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{
		"admin":   toAdminJSON(a),
		"token":   access.Token,
		"expires": access.Exp,
	})
}

// Me handles GET /api/admins/me, echoing the verified token claims.
func (h *AdminHandler) Me(c echo.Context) error {
	return ok(c, http.StatusOK, echo.Map{
		"adminId": c.Get(middleware.CtxAdminID),
		"email":   c.Get(middleware.CtxEmail),
		"role":    c.Get(middleware.CtxRole),
	})
}

// List handles GET /api/admins.
func (h *AdminHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	admins, err := h.Admins.List(ctx)
	if err != nil {
		return fail(c, err)
	}
	out := make([]adminJSON, 0, len(admins))
	for _, a := range admins {
		out = append(out, toAdminJSON(a))
	}
	return ok(c, http.StatusOK, out)
}

// Get handles GET /api/admins/:id.
func (h *AdminHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	a, err := h.Admins.GetByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, toAdminJSON(a))
}

type adminCreateReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Create handles POST /api/admins. Unknown roles fall back to the
// plain admin role.
func (h *AdminHandler) Create(c echo.Context) error {
	var req adminCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email and password are required"})
	}
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role != model.RoleSuperadmin {
		role = model.RoleAdmin
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return fail(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	a, err := h.Admins.Create(ctx, model.Admin{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, toAdminJSON(a))
}

type adminUpdateReq struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// Update handles PUT /api/admins/:id with partial semantics.
func (h *AdminHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req adminUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	a, err := h.Admins.GetByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		a.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		a.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Role != nil {
		role := strings.ToLower(strings.TrimSpace(*req.Role))
		if role != model.RoleAdmin && role != model.RoleSuperadmin {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "role must be admin or superadmin"})
		}
		a.Role = role
	}

	updated, err := h.Admins.Update(ctx, a)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, toAdminJSON(updated))
}

type passwordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdatePassword handles PUT /api/admins/:id/password. The current
// password must verify before the new one is stored.
func (h *AdminHandler) UpdatePassword(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req passwordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "currentPassword and newPassword are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	a, err := h.Admins.GetByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	if !utils.VerifyPassword(a.PasswordHash, req.CurrentPassword) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "current password is incorrect"})
	}
	hash, err := utils.HashPassword(req.NewPassword, h.Cfg.BcryptCost)
	if err != nil {
		return fail(c, err)
	}
	if err := h.Admins.UpdatePassword(ctx, id, hash); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "password updated")
}

// Delete handles DELETE /api/admins/:id.
func (h *AdminHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Admins.Delete(ctx, id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "admin deleted")
}
