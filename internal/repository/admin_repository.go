package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ilnabucco/restaurant-reservation/internal/model"
)

// AdminRepo persists back-office accounts.  Password hashes are
// produced by the caller; this repository never sees a plain password.
type AdminRepo struct {
	db *sql.DB
}

// NewAdminRepo returns a new AdminRepo bound to the given database.
func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{db: db} }

const adminCols = `id, name, email, password_hash, role, created_at`

func scanAdmin(row interface{ Scan(...any) error }) (model.Admin, error) {
	var a model.Admin
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt)
	return a, err
}

// GetByEmail fetches an admin by normalized email, sql.ErrNoRows when absent.
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (model.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return scanAdmin(r.db.QueryRowContext(ctx,
		`SELECT `+adminCols+` FROM admins WHERE email = ? LIMIT 1`, email))
}

// GetByID fetches an admin by ID, sql.ErrNoRows when absent.
func (r *AdminRepo) GetByID(ctx context.Context, id uint64) (model.Admin, error) {
	return scanAdmin(r.db.QueryRowContext(ctx,
		`SELECT `+adminCols+` FROM admins WHERE id = ?`, id))
}

// List returns all admin accounts, newest first.
func (r *AdminRepo) List(ctx context.Context) ([]model.Admin, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+adminCols+` FROM admins ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.Admin, 0)
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Create inserts a new admin.  ErrConflict is returned when the email
// is already registered.
func (r *AdminRepo) Create(ctx context.Context, a model.Admin) (model.Admin, error) {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	out, err := r.db.ExecContext(ctx,
		`INSERT INTO admins (name, email, password_hash, role) VALUES (?, ?, ?, ?)`,
		a.Name, a.Email, a.PasswordHash, a.Role)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.Admin{}, ErrConflict
		}
		return model.Admin{}, err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return model.Admin{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// Update overwrites name, email and role of an existing admin.
// sql.ErrNoRows is returned when the ID does not exist, ErrConflict
// when the new email collides with another account.
func (r *AdminRepo) Update(ctx context.Context, a model.Admin) (model.Admin, error) {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	if _, err := r.GetByID(ctx, a.ID); err != nil {
		return model.Admin{}, err
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE admins SET name = ?, email = ?, role = ? WHERE id = ?`,
		a.Name, a.Email, a.Role, a.ID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.Admin{}, ErrConflict
		}
		return model.Admin{}, err
	}
	return r.GetByID(ctx, a.ID)
}

// UpdatePassword replaces the stored password hash.
func (r *AdminRepo) UpdatePassword(ctx context.Context, id uint64, hash string) error {
	out, err := r.db.ExecContext(ctx,
		`UPDATE admins SET password_hash = ? WHERE id = ?`, hash, id)
	if err != nil {
		return err
	}
	if n, err := out.RowsAffected(); err == nil && n == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
	}
	return nil
}

// Delete removes an admin account, sql.ErrNoRows when absent.
func (r *AdminRepo) Delete(ctx context.Context, id uint64) error {
	out, err := r.db.ExecContext(ctx, `DELETE FROM admins WHERE id = ?`, id)
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
