package repository

import (
	"context"
	"database/sql"

	"github.com/ilnabucco/restaurant-reservation/internal/model"
)

// WineRepo persists wine categories and the wine list.
type WineRepo struct {
	db *sql.DB
}

// NewWineRepo returns a new WineRepo bound to the given database.
func NewWineRepo(db *sql.DB) *WineRepo { return &WineRepo{db: db} }

const wineCols = `id, category_id, name, country, glass_price,
	pitcher_25cl, pitcher_50cl, pitcher_1l, half_bottle, full_bottle, available`

func scanWine(row interface{ Scan(...any) error }) (model.Wine, error) {
	var w model.Wine
	var country sql.NullString
	var glass, p25, p50, p1l, half, full sql.NullFloat64
	err := row.Scan(&w.ID, &w.CategoryID, &w.Name, &country,
		&glass, &p25, &p50, &p1l, &half, &full, &w.Available)
	if err != nil {
		return model.Wine{}, err
	}
	if country.Valid {
		v := country.String
		w.Country = &v
	}
	setPrice := func(dst **float64, src sql.NullFloat64) {
		if src.Valid {
			v := src.Float64
			*dst = &v
		}
	}
	setPrice(&w.GlassPrice, glass)
	setPrice(&w.Pitcher25cl, p25)
	setPrice(&w.Pitcher50cl, p50)
	setPrice(&w.Pitcher1l, p1l)
	setPrice(&w.HalfBottle, half)
	setPrice(&w.FullBottle, full)
	return w, nil
}

// ListCategories returns all wine categories in display order.
func (r *WineRepo) ListCategories(ctx context.Context) ([]model.WineCategory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, name_en, sort_order FROM wine_categories ORDER BY sort_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.WineCategory, 0)
	for rows.Next() {
		var c model.WineCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.NameEn, &c.Order); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CreateCategory inserts a wine category and returns it.
func (r *WineRepo) CreateCategory(ctx context.Context, c model.WineCategory) (model.WineCategory, error) {
	out, err := r.db.ExecContext(ctx,
		`INSERT INTO wine_categories (name, name_en, sort_order) VALUES (?, ?, ?)`,
		c.Name, c.NameEn, c.Order)
	if err != nil {
		return model.WineCategory{}, err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return model.WineCategory{}, err
	}
	var created model.WineCategory
	err = r.db.QueryRowContext(ctx,
		`SELECT id, name, name_en, sort_order FROM wine_categories WHERE id = ?`, id).
		Scan(&created.ID, &created.Name, &created.NameEn, &created.Order)
	return created, err
}

// ListAvailableByCategory returns available wines of one category
// ordered by country then name, matching the printed list layout.
func (r *WineRepo) ListAvailableByCategory(ctx context.Context, categoryID uint64) ([]model.Wine, error) {
	const q = `SELECT ` + wineCols + ` FROM wines
		WHERE category_id = ? AND available = TRUE
		ORDER BY country ASC, name ASC`
	rows, err := r.db.QueryContext(ctx, q, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.Wine, 0)
	for rows.Next() {
		w, err := scanWine(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// WineRow is a wine joined with its category name, used by the admin
// items listing.
type WineRow struct {
	model.Wine
	CategoryName string
}

// ListAll returns every wine with its category name, ordered by
// category position, country and name.
func (r *WineRepo) ListAll(ctx context.Context) ([]WineRow, error) {
	const q = `SELECT w.id, w.category_id, w.name, w.country, w.glass_price,
			w.pitcher_25cl, w.pitcher_50cl, w.pitcher_1l, w.half_bottle, w.full_bottle,
			w.available, c.name
		FROM wines w
		JOIN wine_categories c ON c.id = w.category_id
		ORDER BY c.sort_order ASC, w.country ASC, w.name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]WineRow, 0)
	for rows.Next() {
		var wr WineRow
		var country sql.NullString
		var glass, p25, p50, p1l, half, full sql.NullFloat64
		if err := rows.Scan(&wr.ID, &wr.CategoryID, &wr.Name, &country,
			&glass, &p25, &p50, &p1l, &half, &full, &wr.Available, &wr.CategoryName); err != nil {
			return nil, err
		}
		if country.Valid {
			v := country.String
			wr.Country = &v
		}
		setPrice := func(dst **float64, src sql.NullFloat64) {
			if src.Valid {
				v := src.Float64
				*dst = &v
			}
		}
		setPrice(&wr.GlassPrice, glass)
		setPrice(&wr.Pitcher25cl, p25)
		setPrice(&wr.Pitcher50cl, p50)
		setPrice(&wr.Pitcher1l, p1l)
		setPrice(&wr.HalfBottle, half)
		setPrice(&wr.FullBottle, full)
		list = append(list, wr)
	}
	return list, rows.Err()
}

func (r *WineRepo) getWine(ctx context.Context, id uint64) (model.Wine, error) {
	return scanWine(r.db.QueryRowContext(ctx,
		`SELECT `+wineCols+` FROM wines WHERE id = ?`, id))
}

// Create inserts a wine and returns it.
func (r *WineRepo) Create(ctx context.Context, w model.Wine) (model.Wine, error) {
	const q = `INSERT INTO wines (category_id, name, country, glass_price,
		pitcher_25cl, pitcher_50cl, pitcher_1l, half_bottle, full_bottle, available)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	out, err := r.db.ExecContext(ctx, q, w.CategoryID, w.Name, w.Country,
		w.GlassPrice, w.Pitcher25cl, w.Pitcher50cl, w.Pitcher1l, w.HalfBottle, w.FullBottle, w.Available)
	if err != nil {
		return model.Wine{}, err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return model.Wine{}, err
	}
	return r.getWine(ctx, uint64(id))
}

// Update overwrites a wine, sql.ErrNoRows when absent.
func (r *WineRepo) Update(ctx context.Context, w model.Wine) (model.Wine, error) {
	if _, err := r.getWine(ctx, w.ID); err != nil {
		return model.Wine{}, err
	}
	const q = `UPDATE wines SET category_id = ?, name = ?, country = ?, glass_price = ?,
		pitcher_25cl = ?, pitcher_50cl = ?, pitcher_1l = ?, half_bottle = ?, full_bottle = ?,
		available = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, w.CategoryID, w.Name, w.Country, w.GlassPrice,
		w.Pitcher25cl, w.Pitcher50cl, w.Pitcher1l, w.HalfBottle, w.FullBottle, w.Available, w.ID)
	if err != nil {
		return model.Wine{}, err
	}
	return r.getWine(ctx, w.ID)
}

// Delete removes a wine, sql.ErrNoRows when absent.
func (r *WineRepo) Delete(ctx context.Context, id uint64) error {
	out, err := r.db.ExecContext(ctx, `DELETE FROM wines WHERE id = ?`, id)
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
