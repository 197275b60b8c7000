package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ilnabucco/restaurant-reservation/internal/model"
	"github.com/ilnabucco/restaurant-reservation/internal/repository"
)

// WineHandler covers the public wine list and the admin wine CRUD.
type WineHandler struct {
	Repo *repository.WineRepo
}

func NewWineHandler(repo *repository.WineRepo) *WineHandler {
	if repo == nil {
		panic("nil repository passed to NewWineHandler")
	}
	return &WineHandler{Repo: repo}
}

// winePricing is the derived public pricing block. House wines are
// served by the glass or pitcher; anything without those prices is
// presented as a premium bottle.
type winePricing struct {
	Type        string   `json:"type"`
	Glass       *float64 `json:"glass,omitempty"`
	Pitcher25cl *float64 `json:"pitcher25cl,omitempty"`
	Pitcher50cl *float64 `json:"pitcher50cl,omitempty"`
	Pitcher1l   *float64 `json:"pitcher1l,omitempty"`
	HalfBottle  *float64 `json:"halfBottle,omitempty"`
	FullBottle  *float64 `json:"fullBottle,omitempty"`
}

type wineJSON struct {
	ID      uint64      `json:"id"`
	Name    string      `json:"name"`
	Country *string     `json:"country"`
	Pricing winePricing `json:"pricing"`
}

func toWineJSON(w model.Wine) wineJSON {
	out := wineJSON{ID: w.ID, Name: w.Name, Country: w.Country}
	if w.GlassPrice != nil || w.Pitcher25cl != nil || w.Pitcher50cl != nil || w.Pitcher1l != nil {
		out.Pricing = winePricing{
			Type:        "house",
			Glass:       w.GlassPrice,
			Pitcher25cl: w.Pitcher25cl,
			Pitcher50cl: w.Pitcher50cl,
			Pitcher1l:   w.Pitcher1l,
		}
	} else {
		out.Pricing = winePricing{
			Type:       "premium",
			HalfBottle: w.HalfBottle,
			FullBottle: w.FullBottle,
		}
	}
	return out
}

type wineCategoryJSON struct {
	ID     uint64     `json:"id"`
	Name   string     `json:"name"`
	NameEn string     `json:"nameEn"`
	Wines  []wineJSON `json:"wines"`
}

// Public handles GET /api/wines: categories in list order, each with
// its available wines ordered by country then name.
func (h *WineHandler) Public(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	cats, err := h.Repo.ListCategories(ctx)
	if err != nil {
		return fail(c, err)
	}
	out := make([]wineCategoryJSON, 0, len(cats))
	for _, cat := range cats {
		wines, err := h.Repo.ListAvailableByCategory(ctx, cat.ID)
		if err != nil {
			return fail(c, err)
		}
		cj := wineCategoryJSON{ID: cat.ID, Name: cat.Name, NameEn: cat.NameEn, Wines: make([]wineJSON, 0, len(wines))}
		for _, w := range wines {
			cj.Wines = append(cj.Wines, toWineJSON(w))
		}
		out = append(out, cj)
	}
	return ok(c, http.StatusOK, out)
}

type wineCategoryAdminJSON struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	NameEn string `json:"nameEn"`
	Order  int    `json:"order"`
}

// ListCategories handles GET /api/wines/categories (admin).
func (h *WineHandler) ListCategories(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	cats, err := h.Repo.ListCategories(ctx)
	if err != nil {
		return fail(c, err)
	}
	out := make([]wineCategoryAdminJSON, 0, len(cats))
	for _, cat := range cats {
		out = append(out, wineCategoryAdminJSON{ID: cat.ID, Name: cat.Name, NameEn: cat.NameEn, Order: cat.Order})
	}
	return ok(c, http.StatusOK, out)
}

type wineCategoryReq struct {
	Name   string `json:"name"`
	NameEn string `json:"nameEn"`
	Order  int    `json:"order"`
}

// CreateCategory handles POST /api/wines/categories (admin).
func (h *WineHandler) CreateCategory(c echo.Context) error {
	var req wineCategoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.NameEn = strings.ToLower(strings.TrimSpace(req.NameEn))
	if req.Name == "" || req.NameEn == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and nameEn are required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	cat, err := h.Repo.CreateCategory(ctx, model.WineCategory{Name: req.Name, NameEn: req.NameEn, Order: req.Order})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, wineCategoryAdminJSON{ID: cat.ID, Name: cat.Name, NameEn: cat.NameEn, Order: cat.Order})
}

type wineAdminJSON struct {
	ID          uint64   `json:"id"`
	CategoryID  uint64   `json:"categoryId"`
	Category    string   `json:"category,omitempty"`
	Name        string   `json:"name"`
	Country     *string  `json:"country"`
	GlassPrice  *float64 `json:"glassPrice"`
	Pitcher25cl *float64 `json:"pitcher25cl"`
	Pitcher50cl *float64 `json:"pitcher50cl"`
	Pitcher1l   *float64 `json:"pitcher1l"`
	HalfBottle  *float64 `json:"halfBottle"`
	FullBottle  *float64 `json:"fullBottle"`
	Available   bool     `json:"available"`
}

func toWineAdminJSON(w model.Wine, category string) wineAdminJSON {
	return wineAdminJSON{
		ID: w.ID, CategoryID: w.CategoryID, Category: category,
		Name: w.Name, Country: w.Country,
		GlassPrice: w.GlassPrice, Pitcher25cl: w.Pitcher25cl,
		Pitcher50cl: w.Pitcher50cl, Pitcher1l: w.Pitcher1l,
		HalfBottle: w.HalfBottle, FullBottle: w.FullBottle,
		Available: w.Available,
	}
}

// ListItems handles GET /api/wines/items (admin): every wine with raw
// prices, hidden ones included.
func (h *WineHandler) ListItems(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	rows, err := h.Repo.ListAll(ctx)
	if err != nil {
		return fail(c, err)
	}
	out := make([]wineAdminJSON, 0, len(rows))
	for _, row := range rows {
		out = append(out, toWineAdminJSON(row.Wine, row.CategoryName))
	}
	return ok(c, http.StatusOK, out)
}

type wineReq struct {
	CategoryID  uint64   `json:"categoryId"`
	Name        string   `json:"name"`
	Country     *string  `json:"country"`
	GlassPrice  *float64 `json:"glassPrice"`
	Pitcher25cl *float64 `json:"pitcher25cl"`
	Pitcher50cl *float64 `json:"pitcher50cl"`
	Pitcher1l   *float64 `json:"pitcher1l"`
	HalfBottle  *float64 `json:"halfBottle"`
	FullBottle  *float64 `json:"fullBottle"`
	Available   *bool    `json:"available"`
}

func (r *wineReq) toModel(id uint64) (model.Wine, string) {
	r.Name = strings.TrimSpace(r.Name)
	if r.CategoryID == 0 {
		return model.Wine{}, "categoryId is required"
	}
	if r.Name == "" {
		return model.Wine{}, "name is required"
	}
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return model.Wine{
		ID: id, CategoryID: r.CategoryID, Name: r.Name, Country: r.Country,
		GlassPrice: r.GlassPrice, Pitcher25cl: r.Pitcher25cl,
		Pitcher50cl: r.Pitcher50cl, Pitcher1l: r.Pitcher1l,
		HalfBottle: r.HalfBottle, FullBottle: r.FullBottle,
		Available: available,
	}, ""
}

// CreateItem handles POST /api/wines/items (admin).
func (h *WineHandler) CreateItem(c echo.Context) error {
	var req wineReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	w, msg := req.toModel(0)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	created, err := h.Repo.Create(ctx, w)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, toWineAdminJSON(created, ""))
}

// UpdateItem handles PUT /api/wines/items/:id (admin).
func (h *WineHandler) UpdateItem(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req wineReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	w, msg := req.toModel(id)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	updated, err := h.Repo.Update(ctx, w)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, toWineAdminJSON(updated, ""))
}

// DeleteItem handles DELETE /api/wines/items/:id (admin).
func (h *WineHandler) DeleteItem(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Repo.Delete(ctx, id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "wine deleted")
}
