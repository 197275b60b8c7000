package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ilnabucco/restaurant-reservation/internal/model"
	"github.com/ilnabucco/restaurant-reservation/internal/queue"
	"github.com/ilnabucco/restaurant-reservation/internal/service"
)

// ReservationHandler exposes the reservation lifecycle to the admin
// surface.
type ReservationHandler struct {
	Svc    *service.ReservationService
	Events *queue.Publisher
}

func NewReservationHandler(svc *service.ReservationService, events *queue.Publisher) *ReservationHandler {
	if svc == nil {
		panic("nil service passed to NewReservationHandler")
	}
	return &ReservationHandler{Svc: svc, Events: events}
}

// reservationJSON is the wire shape of a reservation.
type reservationJSON struct {
	ID             uint64    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Adults         int       `json:"adults"`
	Children       int       `json:"children"`
	SpecialRemarks string    `json:"specialRemarks"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toReservationJSON(r model.Reservation) reservationJSON {
	return reservationJSON{
		ID:             r.ID,
		Name:           r.Name,
		Email:          r.Email,
		Date:           r.Date,
		Time:           r.Time,
		Adults:         r.Adults,
		Children:       r.Children,
		SpecialRemarks: r.SpecialRemarks,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt,
	}
}

func toReservationList(rs []model.Reservation) []reservationJSON {
	out := make([]reservationJSON, 0, len(rs))
	for _, r := range rs {
		out = append(out, toReservationJSON(r))
	}
	return out
}

// publish sends a status event to the broker without blocking the
// request; failures are the publisher's problem to log.
func (h *ReservationHandler) publish(old string, r model.Reservation) {
	ev := queue.ReservationStatusEvent{
		ReservationID: r.ID,
		Name:          r.Name,
		Email:         r.Email,
		Date:          r.Date,
		Time:          r.Time,
		OldStatus:     old,
		NewStatus:     r.Status,
		ChangedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()
		_ = h.Events.PublishStatusChange(ctx, ev)
	}()
}

// List handles GET /api/reservations with optional date and status
// query filters.
func (h *ReservationHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	out, err := h.Svc.List(ctx, service.ListFilter{
		Date:   c.QueryParam("date"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, toReservationList(out))
}

// Today handles GET /api/reservations/today.
func (h *ReservationHandler) Today(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	out, err := h.Svc.Today(ctx)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, toReservationList(out))
}

// Get handles GET /api/reservations/:id.
func (h *ReservationHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	res, err := h.Svc.Get(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, toReservationJSON(res))
}

// Create handles POST /api/reservations. New reservations always
// start out pending regardless of what the body says.
func (h *ReservationHandler) Create(c echo.Context) error {
	var in service.CreateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	res, err := h.Svc.Create(ctx, in)
	if err != nil {
		return fail(c, err)
	}
	h.publish("", res)
	return ok(c, http.StatusCreated, toReservationJSON(res))
}

// Update handles PUT /api/reservations/:id with partial semantics:
// absent fields keep their stored values.
func (h *ReservationHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var in service.UpdateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	before, err := h.Svc.Get(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	res, err := h.Svc.Update(ctx, id, in)
	if err != nil {
		return fail(c, err)
	}
	if res.Status != before.Status {
		h.publish(before.Status, res)
	}
	return ok(c, http.StatusOK, toReservationJSON(res))
}

// SetStatus handles PATCH /api/reservations/:id/status.
func (h *ReservationHandler) SetStatus(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	before, err := h.Svc.Get(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	res, err := h.Svc.SetStatus(ctx, id, body.Status)
	if err != nil {
		return fail(c, err)
	}
	if res.Status != before.Status {
		h.publish(before.Status, res)
	}
	return ok(c, http.StatusOK, toReservationJSON(res))
}

// Delete handles DELETE /api/reservations/:id. Deletion is final;
// repeating it answers 404.
func (h *ReservationHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "reservation deleted")
}
