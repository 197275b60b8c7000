package model

// SpecialCombo is a seasonal dish offered at two prices: as a
// starter-sized entrée or as a full plate.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – dish name.
//  EntreePrice – price when served as an entrée.
//  FullPrice   – price when served as a main.
//  Available   – whether the combo shows on the public specials page.
type SpecialCombo struct {
	ID          uint64  // special_combos.id
	Name        string  // special_combos.name
	EntreePrice float64 // special_combos.entree_price
	FullPrice   float64 // special_combos.full_price
	Available   bool    // special_combos.available
}

// SpecialMain is a seasonal main dish with a single price.
type SpecialMain struct {
	ID        uint64  // special_mains.id
	Name      string  // special_mains.name
	Price     float64 // special_mains.price
	Available bool    // special_mains.available
}

// SpecialCustom is a flexible seasonal item with an optional
// description, used for anything that does not fit the other shapes.
type SpecialCustom struct {
	ID          uint64  // special_customs.id
	Name        string  // special_customs.name
	Description *string // special_customs.description (nullable)
	Price       float64 // special_customs.price
	Available   bool    // special_customs.available
}
