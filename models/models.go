package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// 1. Independent tables (no foreign keys)
		&Location{},
		&Category{},
		&User{},

		// 2. Tables with single dependencies
		&Store{}, // depends on: Location

		// 3. Tables depending on Store
		&StoreCategory{}, // depends on: Store, Category
		&BusinessHour{},  // depends on: Store
		&Food{},          // depends on: Store

		// 4. Leaf tables
		&Review{}, // depends on: User, Food
	}
}
