package repository

import (
	"context"
	"database/sql"

	"github.com/ilnabucco/restaurant-reservation/internal/model"
)

// MenuRepo persists menu categories and items.  The public menu is a
// join of the two filtered to available items.
type MenuRepo struct {
	db *sql.DB
}

// NewMenuRepo returns a new MenuRepo bound to the given database.
func NewMenuRepo(db *sql.DB) *MenuRepo { return &MenuRepo{db: db} }

func scanMenuCategory(row interface{ Scan(...any) error }) (model.MenuCategory, error) {
	var c model.MenuCategory
	var note sql.NullString
	if err := row.Scan(&c.ID, &c.Name, &note, &c.Order); err != nil {
		return model.MenuCategory{}, err
	}
	if note.Valid {
		v := note.String
		c.Note = &v
	}
	return c, nil
}

// ListCategories returns all menu categories in display order.
func (r *MenuRepo) ListCategories(ctx context.Context) ([]model.MenuCategory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, note, sort_order FROM menu_categories ORDER BY sort_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.MenuCategory, 0)
	for rows.Next() {
		c, err := scanMenuCategory(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CreateCategory inserts a category and returns it.
func (r *MenuRepo) CreateCategory(ctx context.Context, c model.MenuCategory) (model.MenuCategory, error) {
	out, err := r.db.ExecContext(ctx,
		`INSERT INTO menu_categories (name, note, sort_order) VALUES (?, ?, ?)`,
		c.Name, c.Note, c.Order)
	if err != nil {
		return model.MenuCategory{}, err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return model.MenuCategory{}, err
	}
	return scanMenuCategory(r.db.QueryRowContext(ctx,
		`SELECT id, name, note, sort_order FROM menu_categories WHERE id = ?`, id))
}

// UpdateCategory overwrites a category, sql.ErrNoRows when absent.
func (r *MenuRepo) UpdateCategory(ctx context.Context, c model.MenuCategory) (model.MenuCategory, error) {
	if _, err := scanMenuCategory(r.db.QueryRowContext(ctx,
		`SELECT id, name, note, sort_order FROM menu_categories WHERE id = ?`, c.ID)); err != nil {
		return model.MenuCategory{}, err
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE menu_categories SET name = ?, note = ?, sort_order = ? WHERE id = ?`,
		c.Name, c.Note, c.Order, c.ID)
	if err != nil {
		return model.MenuCategory{}, err
	}
	return scanMenuCategory(r.db.QueryRowContext(ctx,
		`SELECT id, name, note, sort_order FROM menu_categories WHERE id = ?`, c.ID))
}

// DeleteCategory removes a category, sql.ErrNoRows when absent.
// Items of the category are removed by the ON DELETE CASCADE
// constraint.
func (r *MenuRepo) DeleteCategory(ctx context.Context, id uint64) error {
	out, err := r.db.ExecContext(ctx, `DELETE FROM menu_categories WHERE id = ?`, id)
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

// MenuItemRow is a menu item joined with its category name, used by
// the admin items listing.
type MenuItemRow struct {
	model.MenuItem
	CategoryName string
}

// ListItems returns all menu items with their category names, ordered
// by name.
func (r *MenuRepo) ListItems(ctx context.Context) ([]MenuItemRow, error) {
	const q = `SELECT i.id, i.category_id, i.name, i.price, i.available, c.name
		FROM menu_items i
		JOIN menu_categories c ON c.id = i.category_id
		ORDER BY i.name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]MenuItemRow, 0)
	for rows.Next() {
		var it MenuItemRow
		if err := rows.Scan(&it.ID, &it.CategoryID, &it.Name, &it.Price, &it.Available, &it.CategoryName); err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// ListAvailableByCategory returns available items of one category,
// ordered by name.  Used to assemble the public menu.
func (r *MenuRepo) ListAvailableByCategory(ctx context.Context, categoryID uint64) ([]model.MenuItem, error) {
	const q = `SELECT id, category_id, name, price, available FROM menu_items
		WHERE category_id = ? AND available = TRUE ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.MenuItem, 0)
	for rows.Next() {
		var it model.MenuItem
		if err := rows.Scan(&it.ID, &it.CategoryID, &it.Name, &it.Price, &it.Available); err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// CountAvailableItems returns the number of available menu items.
func (r *MenuRepo) CountAvailableItems(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM menu_items WHERE available = TRUE`).Scan(&n)
	return n, err
}

func (r *MenuRepo) getItem(ctx context.Context, id uint64) (model.MenuItem, error) {
	var it model.MenuItem
	err := r.db.QueryRowContext(ctx,
		`SELECT id, category_id, name, price, available FROM menu_items WHERE id = ?`, id).
		Scan(&it.ID, &it.CategoryID, &it.Name, &it.Price, &it.Available)
	return it, err
}

// CreateItem inserts a menu item and returns it.
func (r *MenuRepo) CreateItem(ctx context.Context, it model.MenuItem) (model.MenuItem, error) {
	out, err := r.db.ExecContext(ctx,
		`INSERT INTO menu_items (category_id, name, price, available) VALUES (?, ?, ?, ?)`,
		it.CategoryID, it.Name, it.Price, it.Available)
	if err != nil {
		return model.MenuItem{}, err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return model.MenuItem{}, err
	}
	return r.getItem(ctx, uint64(id))
}

// UpdateItem overwrites a menu item, sql.ErrNoRows when absent.
func (r *MenuRepo) UpdateItem(ctx context.Context, it model.MenuItem) (model.MenuItem, error) {
	if _, err := r.getItem(ctx, it.ID); err != nil {
		return model.MenuItem{}, err
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE menu_items SET category_id = ?, name = ?, price = ?, available = ? WHERE id = ?`,
		it.CategoryID, it.Name, it.Price, it.Available, it.ID)
	if err != nil {
		return model.MenuItem{}, err
	}
	return r.getItem(ctx, it.ID)
}

// DeleteItem removes a menu item, sql.ErrNoRows when absent.
func (r *MenuRepo) DeleteItem(ctx context.Context, id uint64) error {
	out, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = ?`, id)
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
