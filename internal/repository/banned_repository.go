package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ilnabucco/restaurant-reservation/internal/model"
)

// BannedCustomerRepo persists the denylist.  Emails are stored
// lowercase with a unique constraint, so the same address can only be
// banned once.
type BannedCustomerRepo struct {
	db *sql.DB
}

// NewBannedCustomerRepo returns a new BannedCustomerRepo bound to the given database.
func NewBannedCustomerRepo(db *sql.DB) *BannedCustomerRepo { return &BannedCustomerRepo{db: db} }

// IsBanned reports whether the normalized email is on the denylist.
func (r *BannedCustomerRepo) IsBanned(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM banned_customers WHERE email = ? LIMIT 1`, email).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns all denylist entries, newest first.
func (r *BannedCustomerRepo) List(ctx context.Context) ([]model.BannedCustomer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, reason, created_at FROM banned_customers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.BannedCustomer, 0)
	for rows.Next() {
		var b model.BannedCustomer
		var reason sql.NullString
		if err := rows.Scan(&b.ID, &b.Email, &reason, &b.CreatedAt); err != nil {
			return nil, err
		}
		if reason.Valid {
			v := reason.String
			b.Reason = &v
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Create adds an email to the denylist.  ErrConflict is returned when
// the email is already banned (MySQL duplicate-key error 1062).
func (r *BannedCustomerRepo) Create(ctx context.Context, email string, reason *string) (model.BannedCustomer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	out, err := r.db.ExecContext(ctx,
		`INSERT INTO banned_customers (email, reason) VALUES (?, ?)`, email, reason)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.BannedCustomer{}, ErrConflict
		}
		return model.BannedCustomer{}, err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return model.BannedCustomer{}, err
	}
	var b model.BannedCustomer
	var nullReason sql.NullString
	err = r.db.QueryRowContext(ctx,
		`SELECT id, email, reason, created_at FROM banned_customers WHERE id = ?`, id).
		Scan(&b.ID, &b.Email, &nullReason, &b.CreatedAt)
	if err != nil {
		return model.BannedCustomer{}, err
	}
	if nullReason.Valid {
		v := nullReason.String
		b.Reason = &v
	}
	return b, nil
}

// Delete removes a denylist entry by ID (unban).  sql.ErrNoRows is
// returned when the ID does not exist.
func (r *BannedCustomerRepo) Delete(ctx context.Context, id uint64) error {
	out, err := r.db.ExecContext(ctx, `DELETE FROM banned_customers WHERE id = ?`, id)
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
