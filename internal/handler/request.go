package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ilnabucco/restaurant-reservation/internal/model"
	"github.com/ilnabucco/restaurant-reservation/internal/repository"
	"github.com/ilnabucco/restaurant-reservation/internal/service"
)

// RequestHandler covers the public contact form, the admin request
// inbox and the ban list.
type RequestHandler struct {
	Contacts *service.ContactService
	Requests *repository.ContactRequestRepo
	Bans     *repository.BannedCustomerRepo
}

func NewRequestHandler(contacts *service.ContactService, requests *repository.ContactRequestRepo, bans *repository.BannedCustomerRepo) *RequestHandler {
	if contacts == nil || requests == nil || bans == nil {
		panic("nil dependency passed to NewRequestHandler")
	}
	return &RequestHandler{Contacts: contacts, Requests: requests, Bans: bans}
}

type requestJSON struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func toRequestJSON(r model.ContactRequest) requestJSON {
	return requestJSON{ID: r.ID, Name: r.Name, Email: r.Email, Phone: r.Phone, Message: r.Message, CreatedAt: r.CreatedAt}
}

// Create handles the public POST /api/requests. Banned senders get a
// 403 and nothing is stored.
func (h *RequestHandler) Create(c echo.Context) error {
	var in service.ContactInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	req, err := h.Contacts.Create(ctx, in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, toRequestJSON(req))
}

// List handles GET /api/requests (admin), newest first.
func (h *RequestHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	reqs, err := h.Requests.List(ctx)
	if err != nil {
		return fail(c, err)
	}
	out := make([]requestJSON, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, toRequestJSON(r))
	}
	return ok(c, http.StatusOK, out)
}

// Get handles GET /api/requests/:id (admin).
func (h *RequestHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	req, err := h.Requests.GetByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, toRequestJSON(req))
}

// Delete handles DELETE /api/requests/:id (admin).
func (h *RequestHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Requests.Delete(ctx, id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "request deleted")
}

type banJSON struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Reason    *string   `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

func toBanJSON(b model.BannedCustomer) banJSON {
	return banJSON{ID: b.ID, Email: b.Email, Reason: b.Reason, CreatedAt: b.CreatedAt}
}

// ListBanned handles GET /api/requests/banned/list (admin).
func (h *RequestHandler) ListBanned(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	bans, err := h.Bans.List(ctx)
	if err != nil {
		return fail(c, err)
	}
	out := make([]banJSON, 0, len(bans))
	for _, b := range bans {
		out = append(out, toBanJSON(b))
	}
	return ok(c, http.StatusOK, out)
}

type banReq struct {
	Email  string  `json:"email"`
	Reason *string `json:"reason"`
}

// CreateBan handles POST /api/requests/banned (admin). Banning an
// already-banned email answers 409.
func (h *RequestHandler) CreateBan(c echo.Context) error {
	var req banReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	ban, err := h.Bans.Create(ctx, email, req.Reason)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, toBanJSON(ban))
}

// DeleteBan handles DELETE /api/requests/banned/:id (admin).
func (h *RequestHandler) DeleteBan(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Bans.Delete(ctx, id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "ban removed")
}
