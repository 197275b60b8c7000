package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ilnabucco/restaurant-reservation/internal/model"
)

// ReservationRepo provides CRUD operations for reservations.  Dates
// and times are selected back as formatted strings (YYYY-MM-DD and
// HH:MM) so that the rest of the application never deals with driver
// time types for the DATE and TIME columns.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

const reservationCols = `id, name, email,
	DATE_FORMAT(reservation_date, '%Y-%m-%d'),
	TIME_FORMAT(reservation_time, '%H:%i'),
	adults, children, special_remarks, status, created_at`

func scanReservation(row interface{ Scan(...any) error }) (model.Reservation, error) {
	var res model.Reservation
	err := row.Scan(&res.ID, &res.Name, &res.Email, &res.Date, &res.Time,
		&res.Adults, &res.Children, &res.SpecialRemarks, &res.Status, &res.CreatedAt)
	return res, err
}

// Create inserts a new reservation and reads the full row back so the
// generated ID and creation timestamp are populated on the result.
func (r *ReservationRepo) Create(ctx context.Context, res model.Reservation) (model.Reservation, error) {
	const q = `INSERT INTO reservations
		(name, email, reservation_date, reservation_time, adults, children, special_remarks, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	out, err := r.db.ExecContext(ctx, q, res.Name, res.Email, res.Date, res.Time,
		res.Adults, res.Children, res.SpecialRemarks, res.Status)
	if err != nil {
		return model.Reservation{}, err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return model.Reservation{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID returns a single reservation.  sql.ErrNoRows is returned
// when no row with that ID exists.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (model.Reservation, error) {
	const q = `SELECT ` + reservationCols + ` FROM reservations WHERE id = ?`
	return scanReservation(r.db.QueryRowContext(ctx, q, id))
}

// ListFilter narrows the result of List.  Empty fields are ignored.
type ListFilter struct {
	Date   string // exact calendar date, YYYY-MM-DD
	Status string // exact status match
}

// List returns all reservations matching the filter, ordered by date
// ascending then time ascending.  No pagination: the restaurant is a
// single low-volume location.
func (r *ReservationRepo) List(ctx context.Context, f ListFilter) ([]model.Reservation, error) {
	q := `SELECT ` + reservationCols + ` FROM reservations`
	var conds []string
	var args []any
	if f.Date != "" {
		conds = append(conds, "reservation_date = ?")
		args = append(args, f.Date)
	}
	if f.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, f.Status)
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY reservation_date ASC, reservation_time ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// Update overwrites every mutable column of an existing reservation.
// Partial-update merging happens in the service layer; by the time a
// row reaches this method it is complete.  sql.ErrNoRows is returned
// when the ID does not exist.
func (r *ReservationRepo) Update(ctx context.Context, res model.Reservation) (model.Reservation, error) {
	const q = `UPDATE reservations SET
		name = ?, email = ?, reservation_date = ?, reservation_time = ?,
		adults = ?, children = ?, special_remarks = ?, status = ?
		WHERE id = ?`
	out, err := r.db.ExecContext(ctx, q, res.Name, res.Email, res.Date, res.Time,
		res.Adults, res.Children, res.SpecialRemarks, res.Status, res.ID)
	if err != nil {
		return model.Reservation{}, err
	}
	if n, err := out.RowsAffected(); err == nil && n == 0 {
		// RowsAffected is 0 both for a missing row and for a no-op
		// write; disambiguate with a read.
		if _, getErr := r.GetByID(ctx, res.ID); getErr != nil {
			return model.Reservation{}, getErr
		}
	}
	return r.GetByID(ctx, res.ID)
}

// Delete removes a reservation.  sql.ErrNoRows is returned when the
// ID does not exist, which makes a second delete of the same ID fail.
func (r *ReservationRepo) Delete(ctx context.Context, id uint64) error {
	out, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := out.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountByStatus returns the number of reservations per status.  Used
// by the dashboard.
func (r *ReservationRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM reservations GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// ListBetween returns reservations with date >= from and date < to,
// ordered by date then time.  Bounds are YYYY-MM-DD strings.
func (r *ReservationRepo) ListBetween(ctx context.Context, from, to string) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationCols + ` FROM reservations
		WHERE reservation_date >= ? AND reservation_date < ?
		ORDER BY reservation_date ASC, reservation_time ASC`
	rows, err := r.db.QueryContext(ctx, q, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, res)
	}
	return list, rows.Err()
}
