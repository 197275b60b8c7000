package service

import (
	"context"
	"database/sql"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilnabucco/restaurant-reservation/internal/model"
	"github.com/ilnabucco/restaurant-reservation/internal/repository"
)

// fakeStore is an in-memory ReservationStore mirroring the repository
// contract: sql.ErrNoRows for missing IDs, date-then-time ordering on
// reads.
type fakeStore struct {
	nextID uint64
	rows   map[uint64]model.Reservation
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, rows: map[uint64]model.Reservation{}}
}

func (s *fakeStore) Create(_ context.Context, res model.Reservation) (model.Reservation, error) {
	res.ID = s.nextID
	res.CreatedAt = time.Now()
	s.nextID++
	s.rows[res.ID] = res
	return res, nil
}

func (s *fakeStore) GetByID(_ context.Context, id uint64) (model.Reservation, error) {
	res, ok := s.rows[id]
	if !ok {
		return model.Reservation{}, sql.ErrNoRows
	}
	return res, nil
}

func (s *fakeStore) List(_ context.Context, f repository.ListFilter) ([]model.Reservation, error) {
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
	sortReservations(out)
	return out, nil
}

func (s *fakeStore) ListBetween(_ context.Context, from, to string) ([]model.Reservation, error) {
	var out []model.Reservation
	for _, r := range s.rows {
		if r.Date >= from && r.Date <= to {
			out = append(out, r)
		}
	}
	sortReservations(out)
	return out, nil
}

func (s *fakeStore) Update(_ context.Context, res model.Reservation) (model.Reservation, error) {
	if _, ok := s.rows[res.ID]; !ok {
		return model.Reservation{}, sql.ErrNoRows
	}
	s.rows[res.ID] = res
	return res, nil
}

func (s *fakeStore) Delete(_ context.Context, id uint64) error {
	if _, ok := s.rows[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.rows, id)
	return nil
}

func sortReservations(rs []model.Reservation) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].Date != rs[j].Date {
			return rs[i].Date < rs[j].Date
		}
		return rs[i].Time < rs[j].Time
	})
}

// fakeBans is an in-memory denylist.
type fakeBans struct{ banned map[string]bool }

func (f *fakeBans) IsBanned(_ context.Context, email string) (bool, error) {
	return f.banned[email], nil
}

func newTestService(banned ...string) (*ReservationService, *fakeStore) {
	bans := &fakeBans{banned: map[string]bool{}}
	for _, e := range banned {
		bans.banned[e] = true
	}
	store := newFakeStore()
	svc := NewReservationService(store, NewDenylistGuard(bans))
	return svc, store
}

func validInput() CreateInput {
	return CreateInput{
		Name:  "Jean Dupont",
		Email: "jean@example.com",
		Date:  "2026-09-15",
		Time:  "19:30",
	}
}

func TestCreateDefaultsAndNormalization(t *testing.T) {
	svc, _ := newTestService()

	in := validInput()
	in.Email = "  JEAN@Example.COM "
	res, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "jean@example.com", res.Email)
	assert.Equal(t, model.StatusPending, res.Status)
	assert.Equal(t, 1, res.Adults)
	assert.Equal(t, 0, res.Children)
	assert.NotZero(t, res.ID)
}

func TestCreateExplicitZeroAdultsKept(t *testing.T) {
	svc, _ := newTestService()

	in := validInput()
	zero, two := 0, 2
	in.Adults, in.Children = &zero, &two
	res, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Adults)
	assert.Equal(t, 2, res.Children)
}

func TestCreateMissingFieldsMessage(t *testing.T) {
	svc, store := newTestService()

	_, err := svc.Create(context.Background(), CreateInput{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name, email, date and time are required", verr.Error())
	assert.Equal(t, []string{"name", "email", "date", "time"}, verr.Fields)
	assert.Empty(t, store.rows)
}

func TestCreateRejectsMalformedDateAndTime(t *testing.T) {
	svc, _ := newTestService()

	in := validInput()
	in.Date = "15/09/2026"
	_, err := svc.Create(context.Background(), in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "date")

	in = validInput()
	in.Time = "7pm"
	_, err = svc.Create(context.Background(), in)
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "time")
}

func TestCreateBannedEmailPersistsNothing(t *testing.T) {
	svc, store := newTestService("banned@example.com")

	in := validInput()
	in.Email = "BANNED@example.com" // denylist check runs on the normalized form
	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrEmailBanned)
	assert.Empty(t, store.rows)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	in := validInput()
	in.SpecialRemarks = "window table"
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestListOrderingAndFilters(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	mk := func(date, tm string) {
		in := validInput()
		in.Date, in.Time = date, tm
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}
	mk("2026-09-16", "12:00")
	mk("2026-09-15", "21:00")
	mk("2026-09-15", "19:00")

	all, err := svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "19:00", all[0].Time)
	assert.Equal(t, "21:00", all[1].Time)
	assert.Equal(t, "2026-09-16", all[2].Date)

	day, err := svc.List(ctx, ListFilter{Date: "2026-09-15"})
	require.NoError(t, err)
	assert.Len(t, day, 2)

	_, err = svc.List(ctx, ListFilter{Status: "archived"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestTodayUsesClock(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	svc.Clock = func() time.Time {
		return time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	}

	in := validInput()
	in.Date = "2026-09-15"
	_, err := svc.Create(ctx, in)
	require.NoError(t, err)
	in = validInput()
	in.Date = "2026-09-16"
	_, err = svc.Create(ctx, in)
	require.NoError(t, err)

	today, err := svc.Today(ctx)
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, "2026-09-15", today[0].Date)
}

func TestUpdatePartialSemantics(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	res, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	// Empty update is a no-op.
	same, err := svc.Update(ctx, res.ID, UpdateInput{})
	require.NoError(t, err)
	assert.Equal(t, res, same)

	// Single-field update leaves everything else alone.
	newTime := "20:00"
	updated, err := svc.Update(ctx, res.ID, UpdateInput{Time: &newTime})
	require.NoError(t, err)
	assert.Equal(t, "20:00", updated.Time)
	assert.Equal(t, res.Name, updated.Name)
	assert.Equal(t, res.Date, updated.Date)

	// Explicit empty name is rejected, not treated as "keep".
	empty := ""
	_, err = svc.Update(ctx, res.ID, UpdateInput{Name: &empty})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = svc.Update(ctx, 9999, UpdateInput{Time: &newTime})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetStatusTransitions(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	res, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	confirmed, err := svc.SetStatus(ctx, res.ID, model.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, confirmed.Status)

	// Cancelled back to confirmed is allowed.
	_, err = svc.SetStatus(ctx, res.ID, model.StatusCancelled)
	require.NoError(t, err)
	back, err := svc.SetStatus(ctx, res.ID, model.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, back.Status)

	// Unknown value leaves the stored status untouched.
	_, err = svc.SetStatus(ctx, res.ID, "archived")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	cur, err := svc.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, cur.Status)

	_, err = svc.SetStatus(ctx, 9999, model.StatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteIsFinal(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	res, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, res.ID))
	assert.ErrorIs(t, svc.Delete(ctx, res.ID), ErrNotFound)
	_, err = svc.Get(ctx, res.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
