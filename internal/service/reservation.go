package service

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ilnabucco/restaurant-reservation/internal/model"
	"github.com/ilnabucco/restaurant-reservation/internal/repository"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ReservationStore is the persistence abstraction the service writes
// through.  Every operation re-reads or re-writes through the store;
// the service holds no cached state between requests.
// *repository.ReservationRepo satisfies it; tests substitute an
// in-memory map.
type ReservationStore interface {
	Create(ctx context.Context, res model.Reservation) (model.Reservation, error)
	GetByID(ctx context.Context, id uint64) (model.Reservation, error)
	List(ctx context.Context, f repository.ListFilter) ([]model.Reservation, error)
	ListBetween(ctx context.Context, from, to string) ([]model.Reservation, error)
	Update(ctx context.Context, res model.Reservation) (model.Reservation, error)
	Delete(ctx context.Context, id uint64) error
}

// CreateInput carries the fields accepted when creating a reservation.
// Adults and Children are pointers so that "absent" and "zero" can be
// told apart; absent values default to 1 adult and 0 children.  Any
// status supplied by the caller is ignored: a new reservation is
// always pending.
type CreateInput struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Date           string `json:"date" validate:"required"`
	Time           string `json:"time" validate:"required"`
	Adults         *int   `json:"adults"`
	Children       *int   `json:"children"`
	SpecialRemarks string `json:"specialRemarks"`
}

// UpdateInput carries a partial update.  Only non-nil fields are
// applied; everything else keeps its stored value.
type UpdateInput struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Date           *string `json:"date"`
	Time           *string `json:"time"`
	Adults         *int    `json:"adults"`
	Children       *int    `json:"children"`
	SpecialRemarks *string `json:"specialRemarks"`
	Status         *string `json:"status"`
}

// ListFilter narrows List results.  Empty fields are ignored.
type ListFilter struct {
	Date   string
	Status string
}

// ReservationService orchestrates validation, the denylist check,
// date/time normalization and persistence for the reservation
// lifecycle.
type ReservationService struct {
	store    ReservationStore
	guard    *DenylistGuard
	machine  StatusMachine
	validate *validator.Validate

	// Clock supplies "now" for the today view; overridden in tests.
	Clock func() time.Time
}

// NewReservationService wires the service to a store and a denylist
// guard.
func NewReservationService(store ReservationStore, guard *DenylistGuard) *ReservationService {
	if store == nil || guard == nil {
		panic("nil dependency passed to NewReservationService")
	}
	v := validator.New()
	// Report field errors under their json names so validation
	// messages match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &ReservationService{
		store:    store,
		guard:    guard,
		validate: v,
		Clock:    time.Now,
	}
}

// Create validates the input, consults the denylist and persists a
// new pending reservation.  Typed errors: *ValidationError for
// missing or malformed fields, ErrEmailBanned when the email is
// denylisted (nothing is persisted in either case).
func (s *ReservationService) Create(ctx context.Context, in CreateInput) (model.Reservation, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return model.Reservation{}, requiredError(fields...)
		}
		return model.Reservation{}, err
	}
	if _, err := time.Parse(dateLayout, in.Date); err != nil {
		return model.Reservation{}, invalidFieldError("date", "a valid YYYY-MM-DD date")
	}
	if _, err := time.Parse(timeLayout, in.Time); err != nil {
		return model.Reservation{}, invalidFieldError("time", "a valid HH:MM time")
	}

	adults, children := 1, 0
	if in.Adults != nil {
		adults = *in.Adults
	}
	if in.Children != nil {
		children = *in.Children
	}
	if adults < 0 {
		return model.Reservation{}, invalidFieldError("adults", "zero or more")
	}
	if children < 0 {
		return model.Reservation{}, invalidFieldError("children", "zero or more")
	}

	blocked, err := s.guard.IsBlocked(ctx, in.Email)
	if err != nil {
		return model.Reservation{}, err
	}
	if blocked {
		return model.Reservation{}, ErrEmailBanned
	}

	return s.store.Create(ctx, model.Reservation{
		Name:           in.Name,
		Email:          in.Email,
		Date:           in.Date,
		Time:           in.Time,
		Adults:         adults,
		Children:       children,
		SpecialRemarks: in.SpecialRemarks,
		Status:         model.StatusPending,
	})
}

// Get returns a single reservation, ErrNotFound when absent.
func (s *ReservationService) Get(ctx context.Context, id uint64) (model.Reservation, error) {
	res, err := s.store.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Reservation{}, ErrNotFound
	}
	return res, err
}

// List returns reservations matching the filter, ordered by date then
// time ascending.  A malformed date or unknown status in the filter
// is a *ValidationError.
func (s *ReservationService) List(ctx context.Context, f ListFilter) ([]model.Reservation, error) {
	if f.Date != "" {
		if _, err := time.Parse(dateLayout, f.Date); err != nil {
			return nil, invalidFieldError("date", "a valid YYYY-MM-DD date")
		}
	}
	if f.Status != "" && !s.machine.ValidStatus(f.Status) {
		return nil, invalidFieldError("status", "one of pending, confirmed, declined, cancelled")
	}
	return s.store.List(ctx, repository.ListFilter{Date: f.Date, Status: f.Status})
}

// Today returns the schedule for the current calendar date, ordered
// by time ascending.
func (s *ReservationService) Today(ctx context.Context) ([]model.Reservation, error) {
	return s.List(ctx, ListFilter{Date: s.Clock().Format(dateLayout)})
}

// Week returns reservations from today (inclusive) through the next
// seven days, ordered by date then time.  Used by the dashboard.
func (s *ReservationService) Week(ctx context.Context) ([]model.Reservation, error) {
	today := s.Clock().Format(dateLayout)
	end := s.Clock().AddDate(0, 0, 7).Format(dateLayout)
	return s.store.ListBetween(ctx, today, end)
}

// Update applies a partial update.  Unset fields keep their stored
// values, so an empty input is a no-op that returns the record
// unchanged.  Supplied emails are re-normalized, supplied dates and
// times re-parsed, and a supplied status goes through the status
// machine.
func (s *ReservationService) Update(ctx context.Context, id uint64, in UpdateInput) (model.Reservation, error) {
	res, err := s.Get(ctx, id)
	if err != nil {
		return model.Reservation{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return model.Reservation{}, requiredError("name")
		}
		res.Name = name
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email == "" {
			return model.Reservation{}, requiredError("email")
		}
		res.Email = email
	}
	if in.Date != nil {
		if _, err := time.Parse(dateLayout, *in.Date); err != nil {
			return model.Reservation{}, invalidFieldError("date", "a valid YYYY-MM-DD date")
		}
		res.Date = *in.Date
	}
	if in.Time != nil {
		if _, err := time.Parse(timeLayout, *in.Time); err != nil {
			return model.Reservation{}, invalidFieldError("time", "a valid HH:MM time")
		}
		res.Time = *in.Time
	}
	if in.Adults != nil {
		if *in.Adults < 0 {
			return model.Reservation{}, invalidFieldError("adults", "zero or more")
		}
		res.Adults = *in.Adults
	}
	if in.Children != nil {
		if *in.Children < 0 {
			return model.Reservation{}, invalidFieldError("children", "zero or more")
		}
		res.Children = *in.Children
	}
	if in.SpecialRemarks != nil {
		res.SpecialRemarks = *in.SpecialRemarks
	}
	if in.Status != nil {
		next, err := s.machine.Transition(res.Status, *in.Status)
		if err != nil {
			return model.Reservation{}, invalidFieldError("status", "one of pending, confirmed, declined, cancelled")
		}
		res.Status = next
	}

	updated, err := s.store.Update(ctx, res)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Reservation{}, ErrNotFound
	}
	return updated, err
}

// SetStatus runs the requested status through the status machine and
// persists the result.  ErrNotFound when the ID is absent; a
// *ValidationError (leaving the stored status untouched) when the
// value is outside the enumeration.
func (s *ReservationService) SetStatus(ctx context.Context, id uint64, status string) (model.Reservation, error) {
	res, err := s.Get(ctx, id)
	if err != nil {
		return model.Reservation{}, err
	}
	next, err := s.machine.Transition(res.Status, status)
	if err != nil {
		return model.Reservation{}, invalidFieldError("status", "one of pending, confirmed, declined, cancelled")
	}
	res.Status = next
	updated, err := s.store.Update(ctx, res)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Reservation{}, ErrNotFound
	}
	return updated, err
}

// Delete removes a reservation for good.  ErrNotFound when the ID is
// absent, so deleting twice fails the second time.
func (s *ReservationService) Delete(ctx context.Context, id uint64) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
