package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ilnabucco/restaurant-reservation/internal/model"
	"github.com/ilnabucco/restaurant-reservation/internal/repository"
	"github.com/ilnabucco/restaurant-reservation/internal/service"
)

// DashboardHandler aggregates reservation, request and menu data into
// the admin overview screens.
type DashboardHandler struct {
	Svc      *service.ReservationService
	ResRepo  *repository.ReservationRepo
	Requests *repository.ContactRequestRepo
	Menu     *repository.MenuRepo
}

func NewDashboardHandler(svc *service.ReservationService, resRepo *repository.ReservationRepo, requests *repository.ContactRequestRepo, menu *repository.MenuRepo) *DashboardHandler {
	if svc == nil || resRepo == nil || requests == nil || menu == nil {
		panic("nil dependency passed to NewDashboardHandler")
	}
	return &DashboardHandler{Svc: svc, ResRepo: resRepo, Requests: requests, Menu: menu}
}

type scheduleEntryJSON struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Time           string `json:"time"`
	Adults         int    `json:"adults"`
	Children       int    `json:"children"`
	TotalGuests    int    `json:"totalGuests"`
	SpecialRemarks string `json:"specialRemarks"`
	Status         string `json:"status"`
}

func toScheduleEntry(r model.Reservation) scheduleEntryJSON {
	return scheduleEntryJSON{
		ID: r.ID, Name: r.Name, Email: r.Email, Time: r.Time,
		Adults: r.Adults, Children: r.Children, TotalGuests: r.Adults + r.Children,
		SpecialRemarks: r.SpecialRemarks, Status: r.Status,
	}
}

type recentRequestJSON struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Overview handles GET /api/dashboard: key metrics, today's schedule
// ordered by time, and the latest contact requests.
func (h *DashboardHandler) Overview(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	today, err := h.Svc.Today(ctx)
	if err != nil {
		return fail(c, err)
	}
	byStatus, err := h.ResRepo.CountByStatus(ctx)
	if err != nil {
		return fail(c, err)
	}
	menuItems, err := h.Menu.CountAvailableItems(ctx)
	if err != nil {
		return fail(c, err)
	}
	recent, err := h.Requests.ListRecent(ctx, 7, 5)
	if err != nil {
		return fail(c, err)
	}

	guests, confirmedToday := 0, 0
	schedule := make([]scheduleEntryJSON, 0, len(today))
	for _, r := range today {
		guests += r.Adults + r.Children
		if r.Status == model.StatusConfirmed {
			confirmedToday++
		}
		schedule = append(schedule, toScheduleEntry(r))
	}
	total := 0
	for _, n := range byStatus {
		total += n
	}

	requests := make([]recentRequestJSON, 0, len(recent))
	for _, r := range recent {
		msg := r.Message
		if len(msg) > 100 {
			msg = msg[:100] + "..."
		}
		requests = append(requests, recentRequestJSON{
			ID: r.ID, Name: r.Name, Email: r.Email, Message: msg, CreatedAt: r.CreatedAt,
		})
	}

	return ok(c, http.StatusOK, echo.Map{
		"metrics": echo.Map{
			"todayReservationsCount":   len(today),
			"todayGuestCount":          guests,
			"pendingReservationsCount": byStatus[model.StatusPending],
			"confirmedTodayCount":      confirmedToday,
			"totalMenuItems":           menuItems,
			"totalReservationsAllTime": total,
			"recentRequestsCount":      len(requests),
		},
		"todaySchedule":  schedule,
		"recentRequests": requests,
	})
}

type weeklyEntryJSON struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Time        string `json:"time"`
	Adults      int    `json:"adults"`
	Children    int    `json:"children"`
	TotalGuests int    `json:"totalGuests"`
	Status      string `json:"status"`
}

// Weekly handles GET /api/dashboard/weekly-reservations: the next
// seven days grouped by date, each day ordered by time.
func (h *DashboardHandler) Weekly(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	week, err := h.Svc.Week(ctx)
	if err != nil {
		return fail(c, err)
	}
	grouped := make(map[string][]weeklyEntryJSON)
	for _, r := range week {
		grouped[r.Date] = append(grouped[r.Date], weeklyEntryJSON{
			ID: r.ID, Name: r.Name, Time: r.Time,
			Adults: r.Adults, Children: r.Children,
			TotalGuests: r.Adults + r.Children, Status: r.Status,
		})
	}
	return ok(c, http.StatusOK, grouped)
}
