package model

// WineCategory groups wines on the wine list (house selection, white,
// rosé, red).  NameEn is a stable machine key used by the front end.
//
// Fields:
//  ID     – primary key identifier.
//  Name   – displayed category name (e.g. "Les vins blancs").
//  NameEn – machine key (house, white, rose, red).
//  Order  – ascending sort position.
type WineCategory struct {
	ID     uint64 // wine_categories.id
	Name   string // wine_categories.name
	NameEn string // wine_categories.name_en
	Order  int    // wine_categories.sort_order
}

// Wine is a single entry on the wine list.  House wines carry glass
// and pitcher prices; premium wines carry bottle prices.  All price
// columns are nullable and the populated set decides how the wine is
// presented to the public.
//
// Fields:
//  ID          – primary key identifier.
//  CategoryID  – owning wine category.
//  Name        – wine name including domain and vintage.
//  Country     – country of origin (nullable).
//  GlassPrice  – price per glass (house format, nullable).
//  Pitcher25cl – 25cl pitcher price (nullable).
//  Pitcher50cl – 50cl pitcher price (nullable).
//  Pitcher1l   – 1l pitcher price (nullable).
//  HalfBottle  – 37.5cl bottle price (premium format, nullable).
//  FullBottle  – 75cl bottle price (nullable).
//  Available   – whether the wine shows on the public list.
type Wine struct {
	ID          uint64   // wines.id
	CategoryID  uint64   // wines.category_id
	Name        string   // wines.name
	Country     *string  // wines.country (nullable)
	GlassPrice  *float64 // wines.glass_price (nullable)
	Pitcher25cl *float64 // wines.pitcher_25cl (nullable)
	Pitcher50cl *float64 // wines.pitcher_50cl (nullable)
	Pitcher1l   *float64 // wines.pitcher_1l (nullable)
	HalfBottle  *float64 // wines.half_bottle (nullable)
	FullBottle  *float64 // wines.full_bottle (nullable)
	Available   bool     // wines.available
}
