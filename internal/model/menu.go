package model

// MenuCategory groups menu items for display.  The Order column
// controls the position of the category on the printed card.
//
// Fields:
//  ID    – primary key identifier.
//  Name  – category heading (e.g. "Les entrées").
//  Note  – optional note shown under the heading (nullable).
//  Order – ascending sort position.
type MenuCategory struct {
	ID    uint64  // menu_categories.id
	Name  string  // menu_categories.name
	Note  *string // menu_categories.note (nullable)
	Order int     // menu_categories.sort_order
}

// MenuItem is a single dish with its price.  Items flagged as not
// available stay in the database but are hidden from the public menu.
//
// Fields:
//  ID         – primary key identifier.
//  CategoryID – owning category.
//  Name       – dish name.
//  Price      – price in euros, stored as DECIMAL.
//  Available  – whether the dish shows on the public menu.
type MenuItem struct {
	ID         uint64  // menu_items.id
	CategoryID uint64  // menu_items.category_id
	Name       string  // menu_items.name
	Price      float64 // menu_items.price
	Available  bool    // menu_items.available
}
