package repository

import (
	"context"
	"database/sql"

	"github.com/ilnabucco/restaurant-reservation/internal/model"
)

// ContactRequestRepo persists messages from the public contact form.
type ContactRequestRepo struct {
	db *sql.DB
}

// NewContactRequestRepo returns a new ContactRequestRepo bound to the given database.
func NewContactRequestRepo(db *sql.DB) *ContactRequestRepo { return &ContactRequestRepo{db: db} }

func scanRequest(row interface{ Scan(...any) error }) (model.ContactRequest, error) {
	var req model.ContactRequest
	var phone sql.NullString
	err := row.Scan(&req.ID, &req.Name, &req.Email, &phone, &req.Message, &req.CreatedAt)
	if err != nil {
		return model.ContactRequest{}, err
	}
	if phone.Valid {
		v := phone.String
		req.Phone = &v
	}
	return req, nil
}

// Create stores a new contact request and returns it with the
// generated ID and timestamp.
func (r *ContactRequestRepo) Create(ctx context.Context, req model.ContactRequest) (model.ContactRequest, error) {
	out, err := r.db.ExecContext(ctx,
		`INSERT INTO requests (name, email, phone, message) VALUES (?, ?, ?, ?)`,
		req.Name, req.Email, req.Phone, req.Message)
	if err != nil {
		return model.ContactRequest{}, err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return model.ContactRequest{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID returns a single contact request, sql.ErrNoRows when absent.
func (r *ContactRequestRepo) GetByID(ctx context.Context, id uint64) (model.ContactRequest, error) {
	return scanRequest(r.db.QueryRowContext(ctx,
		`SELECT id, name, email, phone, message, created_at FROM requests WHERE id = ?`, id))
}

// List returns all contact requests, newest first.
func (r *ContactRequestRepo) List(ctx context.Context) ([]model.ContactRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, phone, message, created_at FROM requests ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.ContactRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

// ListRecent returns up to limit requests created within the last
// given number of days, newest first.  Used by the dashboard.
func (r *ContactRequestRepo) ListRecent(ctx context.Context, days, limit int) ([]model.ContactRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, phone, message, created_at FROM requests
		 WHERE created_at >= DATE_SUB(NOW(), INTERVAL ? DAY)
		 ORDER BY created_at DESC LIMIT ?`, days, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.ContactRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

// Delete removes a contact request, sql.ErrNoRows when absent.
func (r *ContactRequestRepo) Delete(ctx context.Context, id uint64) error {
	out, err := r.db.ExecContext(ctx, `DELETE FROM requests WHERE id = ?`, id)
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
