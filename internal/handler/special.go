package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ilnabucco/restaurant-reservation/internal/model"
	"github.com/ilnabucco/restaurant-reservation/internal/repository"
)

// SpecialHandler covers the seasonal specials page and its admin CRUD.
// Specials come in three shapes: two-price combos, single-price mains
// and free-form custom items.
type SpecialHandler struct {
	Repo *repository.SpecialRepo
}

func NewSpecialHandler(repo *repository.SpecialRepo) *SpecialHandler {
	if repo == nil {
		panic("nil repository passed to NewSpecialHandler")
	}
	return &SpecialHandler{Repo: repo}
}

type comboJSON struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	EntreePrice float64 `json:"entreePrice"`
	FullPrice   float64 `json:"fullPrice"`
	Available   bool    `json:"available"`
}

type mainJSON struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

type customJSON struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
}

func toComboJSON(c model.SpecialCombo) comboJSON {
	return comboJSON{ID: c.ID, Name: c.Name, EntreePrice: c.EntreePrice, FullPrice: c.FullPrice, Available: c.Available}
}

func toMainJSON(m model.SpecialMain) mainJSON {
	return mainJSON{ID: m.ID, Name: m.Name, Price: m.Price, Available: m.Available}
}

func toCustomJSON(c model.SpecialCustom) customJSON {
	return customJSON{ID: c.ID, Name: c.Name, Description: c.Description, Price: c.Price, Available: c.Available}
}

func (h *SpecialHandler) listAll(ctx context.Context, availableOnly bool) (echo.Map, error) {
	combos, err := h.Repo.ListCombos(ctx, availableOnly)
	if err != nil {
		return nil, err
	}
	mains, err := h.Repo.ListMains(ctx, availableOnly)
	if err != nil {
		return nil, err
	}
	customs, err := h.Repo.ListCustoms(ctx, availableOnly)
	if err != nil {
		return nil, err
	}
	cj := make([]comboJSON, 0, len(combos))
	for _, c := range combos {
		cj = append(cj, toComboJSON(c))
	}
	mj := make([]mainJSON, 0, len(mains))
	for _, m := range mains {
		mj = append(mj, toMainJSON(m))
	}
	uj := make([]customJSON, 0, len(customs))
	for _, c := range customs {
		uj = append(uj, toCustomJSON(c))
	}
	return echo.Map{"combos": cj, "mains": mj, "customs": uj}, nil
}

// Public handles GET /api/specials: available items only.
func (h *SpecialHandler) Public(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	out, err := h.listAll(ctx, true)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, out)
}

// ListAdmin handles GET /api/specials/all (admin): every item
// including hidden ones.
func (h *SpecialHandler) ListAdmin(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	out, err := h.listAll(ctx, false)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, out)
}

type comboReq struct {
	Name        string  `json:"name"`
	EntreePrice float64 `json:"entreePrice"`
	FullPrice   float64 `json:"fullPrice"`
	Available   *bool   `json:"available"`
}

// CreateCombo handles POST /api/specials/combos (admin).
func (h *SpecialHandler) CreateCombo(c echo.Context) error {
	var req comboReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	combo, err := h.Repo.CreateCombo(ctx, model.SpecialCombo{
		Name: req.Name, EntreePrice: req.EntreePrice, FullPrice: req.FullPrice, Available: available,
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, toComboJSON(combo))
}

// UpdateCombo handles PUT /api/specials/combos/:id (admin).
func (h *SpecialHandler) UpdateCombo(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req comboReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	combo, err := h.Repo.UpdateCombo(ctx, model.SpecialCombo{
		ID: id, Name: req.Name, EntreePrice: req.EntreePrice, FullPrice: req.FullPrice, Available: available,
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, toComboJSON(combo))
}

// DeleteCombo handles DELETE /api/specials/combos/:id (admin).
func (h *SpecialHandler) DeleteCombo(c echo.Context) error {
	return h.deleteByID(c, h.Repo.DeleteCombo, "combo deleted")
}

type mainReq struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available *bool   `json:"available"`
}

// CreateMain handles POST /api/specials/mains (admin).
func (h *SpecialHandler) CreateMain(c echo.Context) error {
	var req mainReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	m, err := h.Repo.CreateMain(ctx, model.SpecialMain{Name: req.Name, Price: req.Price, Available: available})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, toMainJSON(m))
}

// UpdateMain handles PUT /api/specials/mains/:id (admin).
func (h *SpecialHandler) UpdateMain(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req mainReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	m, err := h.Repo.UpdateMain(ctx, model.SpecialMain{ID: id, Name: req.Name, Price: req.Price, Available: available})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, toMainJSON(m))
}

// DeleteMain handles DELETE /api/specials/mains/:id (admin).
func (h *SpecialHandler) DeleteMain(c echo.Context) error {
	return h.deleteByID(c, h.Repo.DeleteMain, "main deleted")
}

type customReq struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Available   *bool   `json:"available"`
}

// CreateCustom handles POST /api/specials/customs (admin).
func (h *SpecialHandler) CreateCustom(c echo.Context) error {
	var req customReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	cu, err := h.Repo.CreateCustom(ctx, model.SpecialCustom{
		Name: req.Name, Description: req.Description, Price: req.Price, Available: available,
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, toCustomJSON(cu))
}

// UpdateCustom handles PUT /api/specials/customs/:id (admin).
func (h *SpecialHandler) UpdateCustom(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req customReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	cu, err := h.Repo.UpdateCustom(ctx, model.SpecialCustom{
		ID: id, Name: req.Name, Description: req.Description, Price: req.Price, Available: available,
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, toCustomJSON(cu))
}

// DeleteCustom handles DELETE /api/specials/customs/:id (admin).
func (h *SpecialHandler) DeleteCustom(c echo.Context) error {
	return h.deleteByID(c, h.Repo.DeleteCustom, "custom special deleted")
}

func (h *SpecialHandler) deleteByID(c echo.Context, del func(context.Context, uint64) error, msg string) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := del(ctx, id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, msg)
}
