package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ilnabucco/restaurant-reservation/internal/model"
	"github.com/ilnabucco/restaurant-reservation/internal/repository"
)

// MenuHandler covers the public menu and the admin catalog CRUD.
type MenuHandler struct {
	Repo *repository.MenuRepo
}

func NewMenuHandler(repo *repository.MenuRepo) *MenuHandler {
	if repo == nil {
		panic("nil repository passed to NewMenuHandler")
	}
	return &MenuHandler{Repo: repo}
}

type menuItemJSON struct {
	ID    uint64  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type menuCategoryJSON struct {
	ID    uint64         `json:"id"`
	Name  string         `json:"name"`
	Note  *string        `json:"note"`
	Items []menuItemJSON `json:"items"`
}

// Public handles GET /api/menu: categories in card order, each with
// its available items only.
func (h *MenuHandler) Public(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	cats, err := h.Repo.ListCategories(ctx)
	if err != nil {
		return fail(c, err)
	}
	out := make([]menuCategoryJSON, 0, len(cats))
	for _, cat := range cats {
		items, err := h.Repo.ListAvailableByCategory(ctx, cat.ID)
		if err != nil {
			return fail(c, err)
		}
		cj := menuCategoryJSON{ID: cat.ID, Name: cat.Name, Note: cat.Note, Items: make([]menuItemJSON, 0, len(items))}
		for _, it := range items {
			cj.Items = append(cj.Items, menuItemJSON{ID: it.ID, Name: it.Name, Price: it.Price})
		}
		out = append(out, cj)
	}
	return ok(c, http.StatusOK, out)
}

type categoryAdminJSON struct {
	ID    uint64  `json:"id"`
	Name  string  `json:"name"`
	Note  *string `json:"note"`
	Order int     `json:"order"`
}

// ListCategories handles GET /api/menu/categories (admin).
func (h *MenuHandler) ListCategories(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	cats, err := h.Repo.ListCategories(ctx)
	if err != nil {
		return fail(c, err)
	}
	out := make([]categoryAdminJSON, 0, len(cats))
	for _, cat := range cats {
		out = append(out, categoryAdminJSON{ID: cat.ID, Name: cat.Name, Note: cat.Note, Order: cat.Order})
	}
	return ok(c, http.StatusOK, out)
}

type categoryReq struct {
	Name  string  `json:"name"`
	Note  *string `json:"note"`
	Order int     `json:"order"`
}

// CreateCategory handles POST /api/menu/categories (admin).
func (h *MenuHandler) CreateCategory(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	cat, err := h.Repo.CreateCategory(ctx, model.MenuCategory{Name: req.Name, Note: req.Note, Order: req.Order})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, categoryAdminJSON{ID: cat.ID, Name: cat.Name, Note: cat.Note, Order: cat.Order})
}

// UpdateCategory handles PUT /api/menu/categories/:id (admin).
func (h *MenuHandler) UpdateCategory(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	cat, err := h.Repo.UpdateCategory(ctx, model.MenuCategory{ID: id, Name: req.Name, Note: req.Note, Order: req.Order})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, categoryAdminJSON{ID: cat.ID, Name: cat.Name, Note: cat.Note, Order: cat.Order})
}

// DeleteCategory handles DELETE /api/menu/categories/:id (admin).
func (h *MenuHandler) DeleteCategory(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Repo.DeleteCategory(ctx, id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "category deleted")
}

type itemAdminJSON struct {
	ID         uint64  `json:"id"`
	CategoryID uint64  `json:"categoryId"`
	Category   string  `json:"category,omitempty"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Available  bool    `json:"available"`
}

// ListItems handles GET /api/menu/items (admin): every item including
// hidden ones, with its category name.
func (h *MenuHandler) ListItems(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	rows, err := h.Repo.ListItems(ctx)
	if err != nil {
		return fail(c, err)
	}
	out := make([]itemAdminJSON, 0, len(rows))
	for _, row := range rows {
		out = append(out, itemAdminJSON{
			ID: row.ID, CategoryID: row.CategoryID, Category: row.CategoryName,
			Name: row.Name, Price: row.Price, Available: row.Available,
		})
	}
	return ok(c, http.StatusOK, out)
}

type itemReq struct {
	CategoryID uint64  `json:"categoryId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Available  *bool   `json:"available"`
}

func (r *itemReq) validate() string {
	r.Name = strings.TrimSpace(r.Name)
	switch {
	case r.CategoryID == 0:
		return "categoryId is required"
	case r.Name == "":
		return "name is required"
	case r.Price < 0:
		return "price must be zero or more"
	}
	return ""
}

// CreateItem handles POST /api/menu/items (admin). New items default
// to available.
func (h *MenuHandler) CreateItem(c echo.Context) error {
	var req itemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	it, err := h.Repo.CreateItem(ctx, model.MenuItem{
		CategoryID: req.CategoryID, Name: req.Name, Price: req.Price, Available: available,
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, itemAdminJSON{
		ID: it.ID, CategoryID: it.CategoryID, Name: it.Name, Price: it.Price, Available: it.Available,
	})
}

// UpdateItem handles PUT /api/menu/items/:id (admin).
func (h *MenuHandler) UpdateItem(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req itemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	it, err := h.Repo.UpdateItem(ctx, model.MenuItem{
		ID: id, CategoryID: req.CategoryID, Name: req.Name, Price: req.Price, Available: available,
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, itemAdminJSON{
		ID: it.ID, CategoryID: it.CategoryID, Name: it.Name, Price: it.Price, Available: it.Available,
	})
}

// DeleteItem handles DELETE /api/menu/items/:id (admin).
func (h *MenuHandler) DeleteItem(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Repo.DeleteItem(ctx, id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "item deleted")
}
