package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilnabucco/restaurant-reservation/internal/model"
	"github.com/ilnabucco/restaurant-reservation/internal/repository"
	"github.com/ilnabucco/restaurant-reservation/internal/service"
)

// memStore implements service.ReservationStore in memory with the
// same contract as the SQL repository.
type memStore struct {
	nextID uint64
	rows   map[uint64]model.Reservation
}

func newMemStore() *memStore {
	return &memStore{nextID: 1, rows: map[uint64]model.Reservation{}}
}

func (s *memStore) Create(_ context.Context, res model.Reservation) (model.Reservation, error) {
	res.ID = s.nextID
	res.CreatedAt = time.Now()
	s.nextID++
	s.rows[res.ID] = res
	return res, nil
}

func (s *memStore) GetByID(_ context.Context, id uint64) (model.Reservation, error) {
	res, ok := s.rows[id]
	if !ok {
		return model.Reservation{}, sql.ErrNoRows
	}
	return res, nil
}

func (s *memStore) List(_ context.Context, f repository.ListFilter) ([]model.Reservation, error) {
	var out []model.Reservation
	for _, r := range s.rows {
		if f.Date != "" && r.Date != f.Date {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (s *memStore) ListBetween(_ context.Context, from, to string) ([]model.Reservation, error) {
	var out []model.Reservation
	for _, r := range s.rows {
		if r.Date >= from && r.Date <= to {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memStore) Update(_ context.Context, res model.Reservation) (model.Reservation, error) {
	if _, ok := s.rows[res.ID]; !ok {
		return model.Reservation{}, sql.ErrNoRows
	}
	s.rows[res.ID] = res
	return res, nil
}

func (s *memStore) Delete(_ context.Context, id uint64) error {
	if _, ok := s.rows[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.rows, id)
	return nil
}

type memBans struct{ banned map[string]bool }

func (m *memBans) IsBanned(_ context.Context, email string) (bool, error) {
	return m.banned[email], nil
}

func newTestHandler(banned ...string) (*ReservationHandler, *memStore) {
	bans := &memBans{banned: map[string]bool{}}
	for _, e := range banned {
		bans.banned[e] = true
	}
	store := newMemStore()
	svc := service.NewReservationService(store, service.NewDenylistGuard(bans))
	return NewReservationHandler(svc, nil), store
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func call(t *testing.T, h echo.HandlerFunc, method, path, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	require.NoError(t, h(c))
	return rec
}

const createBody = `{"name":"Jean Dupont","email":"JEAN@Example.COM","date":"2026-09-15","time":"19:30"}`

func TestCreateReservationNormalizes(t *testing.T) {
	h, _ := newTestHandler()

	rec := call(t, h.Create, http.MethodPost, "/api/reservations", createBody, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	env := decode(t, rec)
	assert.True(t, env.Success)
	var res reservationJSON
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "jean@example.com", res.Email)
	assert.Equal(t, model.StatusPending, res.Status)
	assert.Equal(t, 1, res.Adults)
	assert.Equal(t, 0, res.Children)
}

func TestCreateReservationMissingFields(t *testing.T) {
	h, store := newTestHandler()

	rec := call(t, h.Create, http.MethodPost, "/api/reservations", `{"name":"Jean"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email, date and time are required", decode(t, rec).Error)
	assert.Empty(t, store.rows)
}

func TestCreateReservationBannedEmail(t *testing.T) {
	h, store := newTestHandler("jean@example.com")

	rec := call(t, h.Create, http.MethodPost, "/api/reservations", createBody, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, store.rows)
}

func TestSetStatusLifecycle(t *testing.T) {
	h, store := newTestHandler()

	rec := call(t, h.Create, http.MethodPost, "/api/reservations", createBody, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = call(t, h.SetStatus, http.MethodPatch, "/api/reservations/1/status",
		`{"status":"confirmed"}`, map[string]string{"id": "1"})
	require.Equal(t, http.StatusOK, rec.Code)
	var res reservationJSON
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &res))
	assert.Equal(t, model.StatusConfirmed, res.Status)

	// Unknown status answers 400 and leaves the row untouched.
	rec = call(t, h.SetStatus, http.MethodPatch, "/api/reservations/1/status",
		`{"status":"archived"}`, map[string]string{"id": "1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, model.StatusConfirmed, store.rows[1].Status)

	// Missing reservation answers 404.
	rec = call(t, h.SetStatus, http.MethodPatch, "/api/reservations/99/status",
		`{"status":"confirmed"}`, map[string]string{"id": "99"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdatePartial(t *testing.T) {
	h, _ := newTestHandler()

	rec := call(t, h.Create, http.MethodPost, "/api/reservations", createBody, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = call(t, h.Update, http.MethodPut, "/api/reservations/1",
		`{"time":"20:00"}`, map[string]string{"id": "1"})
	require.Equal(t, http.StatusOK, rec.Code)
	var res reservationJSON
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &res))
	assert.Equal(t, "20:00", res.Time)
	assert.Equal(t, "Jean Dupont", res.Name)
	assert.Equal(t, "2026-09-15", res.Date)
}

func TestDeleteReservationTwice(t *testing.T) {
	h, _ := newTestHandler()

	rec := call(t, h.Create, http.MethodPost, "/api/reservations", createBody, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = call(t, h.Delete, http.MethodDelete, "/api/reservations/1", "", map[string]string{"id": "1"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "reservation deleted", decode(t, rec).Message)

	rec = call(t, h.Delete, http.MethodDelete, "/api/reservations/1", "", map[string]string{"id": "1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListFiltersAndOrdering(t *testing.T) {
	h, _ := newTestHandler()

	mk := func(date, tm string) {
		body := fmt.Sprintf(`{"name":"N","email":"n@example.com","date":%q,"time":%q}`, date, tm)
		rec := call(t, h.Create, http.MethodPost, "/api/reservations", body, nil)
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	mk("2026-09-16", "12:00")
	mk("2026-09-15", "21:00")
	mk("2026-09-15", "19:00")

	rec := call(t, h.List, http.MethodGet, "/api/reservations?date=2026-09-15", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []reservationJSON
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &list))
	require.Len(t, list, 2)
	assert.Equal(t, "19:00", list[0].Time)
	assert.Equal(t, "21:00", list[1].Time)

	rec = call(t, h.List, http.MethodGet, "/api/reservations?status=archived", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTodaySchedule(t *testing.T) {
	h, _ := newTestHandler()
	h.Svc.Clock = func() time.Time {
		return time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	}

	mk := func(date string) {
		body := fmt.Sprintf(`{"name":"N","email":"n@example.com","date":%q,"time":"19:00"}`, date)
		rec := call(t, h.Create, http.MethodPost, "/api/reservations", body, nil)
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	mk("2026-09-15")
	mk("2026-09-16")

	rec := call(t, h.Today, http.MethodGet, "/api/reservations/today", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []reservationJSON
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "2026-09-15", list[0].Date)
}

func TestGetReservationInvalidID(t *testing.T) {
	h, _ := newTestHandler()
	rec := call(t, h.Get, http.MethodGet, "/api/reservations/abc", "", map[string]string{"id": "abc"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
