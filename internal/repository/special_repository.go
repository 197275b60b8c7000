package repository

import (
	"context"
	"database/sql"

	"github.com/ilnabucco/restaurant-reservation/internal/model"
)

// SpecialRepo persists the three shapes of seasonal specials: combos
// (two prices), mains (single price) and custom items.
type SpecialRepo struct {
	db *sql.DB
}

// NewSpecialRepo returns a new SpecialRepo bound to the given database.
func NewSpecialRepo(db *sql.DB) *SpecialRepo { return &SpecialRepo{db: db} }

// ----- combos -----

func (r *SpecialRepo) getCombo(ctx context.Context, id uint64) (model.SpecialCombo, error) {
	var c model.SpecialCombo
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, entree_price, full_price, available FROM special_combos WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.EntreePrice, &c.FullPrice, &c.Available)
	return c, err
}

// ListCombos returns combos ordered by name.  When availableOnly is
// set, hidden combos are filtered out (public view).
func (r *SpecialRepo) ListCombos(ctx context.Context, availableOnly bool) ([]model.SpecialCombo, error) {
	q := `SELECT id, name, entree_price, full_price, available FROM special_combos`
	if availableOnly {
		q += ` WHERE available = TRUE`
	}
	q += ` ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.SpecialCombo, 0)
	for rows.Next() {
		var c model.SpecialCombo
		if err := rows.Scan(&c.ID, &c.Name, &c.EntreePrice, &c.FullPrice, &c.Available); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CreateCombo inserts a combo and returns it.
func (r *SpecialRepo) CreateCombo(ctx context.Context, c model.SpecialCombo) (model.SpecialCombo, error) {
	out, err := r.db.ExecContext(ctx,
		`INSERT INTO special_combos (name, entree_price, full_price, available) VALUES (?, ?, ?, ?)`,
		c.Name, c.EntreePrice, c.FullPrice, c.Available)
	if err != nil {
		return model.SpecialCombo{}, err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return model.SpecialCombo{}, err
	}
	return r.getCombo(ctx, uint64(id))
}

// UpdateCombo overwrites a combo, sql.ErrNoRows when absent.
func (r *SpecialRepo) UpdateCombo(ctx context.Context, c model.SpecialCombo) (model.SpecialCombo, error) {
	if _, err := r.getCombo(ctx, c.ID); err != nil {
		return model.SpecialCombo{}, err
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE special_combos SET name = ?, entree_price = ?, full_price = ?, available = ? WHERE id = ?`,
		c.Name, c.EntreePrice, c.FullPrice, c.Available, c.ID)
	if err != nil {
		return model.SpecialCombo{}, err
	}
	return r.getCombo(ctx, c.ID)
}

// DeleteCombo removes a combo, sql.ErrNoRows when absent.
func (r *SpecialRepo) DeleteCombo(ctx context.Context, id uint64) error {
	return r.deleteFrom(ctx, "special_combos", id)
}

// ----- mains -----

func (r *SpecialRepo) getMain(ctx context.Context, id uint64) (model.SpecialMain, error) {
	var m model.SpecialMain
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, price, available FROM special_mains WHERE id = ?`, id).
		Scan(&m.ID, &m.Name, &m.Price, &m.Available)
	return m, err
}

// ListMains returns mains ordered by name, optionally available only.
func (r *SpecialRepo) ListMains(ctx context.Context, availableOnly bool) ([]model.SpecialMain, error) {
	q := `SELECT id, name, price, available FROM special_mains`
	if availableOnly {
		q += ` WHERE available = TRUE`
	}
	q += ` ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.SpecialMain, 0)
	for rows.Next() {
		var m model.SpecialMain
		if err := rows.Scan(&m.ID, &m.Name, &m.Price, &m.Available); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// CreateMain inserts a main and returns it.
func (r *SpecialRepo) CreateMain(ctx context.Context, m model.SpecialMain) (model.SpecialMain, error) {
	out, err := r.db.ExecContext(ctx,
		`INSERT INTO special_mains (name, price, available) VALUES (?, ?, ?)`, m.Name, m.Price, m.Available)
	if err != nil {
		return model.SpecialMain{}, err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return model.SpecialMain{}, err
	}
	return r.getMain(ctx, uint64(id))
}

// UpdateMain overwrites a main, sql.ErrNoRows when absent.
func (r *SpecialRepo) UpdateMain(ctx context.Context, m model.SpecialMain) (model.SpecialMain, error) {
	if _, err := r.getMain(ctx, m.ID); err != nil {
		return model.SpecialMain{}, err
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE special_mains SET name = ?, price = ?, available = ? WHERE id = ?`,
		m.Name, m.Price, m.Available, m.ID)
	if err != nil {
		return model.SpecialMain{}, err
	}
	return r.getMain(ctx, m.ID)
}

// DeleteMain removes a main, sql.ErrNoRows when absent.
func (r *SpecialRepo) DeleteMain(ctx context.Context, id uint64) error {
	return r.deleteFrom(ctx, "special_mains", id)
}

// ----- customs -----

func (r *SpecialRepo) getCustom(ctx context.Context, id uint64) (model.SpecialCustom, error) {
	var c model.SpecialCustom
	var desc sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, price, available FROM special_customs WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &desc, &c.Price, &c.Available)
	if err != nil {
		return model.SpecialCustom{}, err
	}
	if desc.Valid {
		v := desc.String
		c.Description = &v
	}
	return c, nil
}

// ListCustoms returns custom items ordered by name, optionally
// available only.
func (r *SpecialRepo) ListCustoms(ctx context.Context, availableOnly bool) ([]model.SpecialCustom, error) {
	q := `SELECT id, name, description, price, available FROM special_customs`
	if availableOnly {
		q += ` WHERE available = TRUE`
	}
	q += ` ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.SpecialCustom, 0)
	for rows.Next() {
		var c model.SpecialCustom
		var desc sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &desc, &c.Price, &c.Available); err != nil {
			return nil, err
		}
		if desc.Valid {
			v := desc.String
			c.Description = &v
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CreateCustom inserts a custom item and returns it.
func (r *SpecialRepo) CreateCustom(ctx context.Context, c model.SpecialCustom) (model.SpecialCustom, error) {
	out, err := r.db.ExecContext(ctx,
		`INSERT INTO special_customs (name, description, price, available) VALUES (?, ?, ?, ?)`,
		c.Name, c.Description, c.Price, c.Available)
	if err != nil {
		return model.SpecialCustom{}, err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return model.SpecialCustom{}, err
	}
	return r.getCustom(ctx, uint64(id))
}

// UpdateCustom overwrites a custom item, sql.ErrNoRows when absent.
func (r *SpecialRepo) UpdateCustom(ctx context.Context, c model.SpecialCustom) (model.SpecialCustom, error) {
	if _, err := r.getCustom(ctx, c.ID); err != nil {
		return model.SpecialCustom{}, err
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE special_customs SET name = ?, description = ?, price = ?, available = ? WHERE id = ?`,
		c.Name, c.Description, c.Price, c.Available, c.ID)
	if err != nil {
		return model.SpecialCustom{}, err
	}
	return r.getCustom(ctx, c.ID)
}

// DeleteCustom removes a custom item, sql.ErrNoRows when absent.
func (r *SpecialRepo) DeleteCustom(ctx context.Context, id uint64) error {
	return r.deleteFrom(ctx, "special_customs", id)
}

func (r *SpecialRepo) deleteFrom(ctx context.Context, table string, id uint64) error {
	out, err := r.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
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
