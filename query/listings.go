package query

// StoreFilter holds the optional store listing filters. Empty string means
// the filter is not applied. Numeric-looking values are passed through as
// bound parameters; PostgreSQL reports malformed ones as a query error.
type StoreFilter struct {
	Search     string
	LocationID string
	CategoryID string
	SortBy     string
}

// FoodFilter holds the optional food listing filters.
type FoodFilter struct {
	Search   string
	StoreID  string
	MinPrice string
	MaxPrice string
	SortBy   string
}

var storeSorts = map[string]string{
	"name":            "s.store_name ASC",
	"rating_desc":     "avg_rating DESC",
	"rating_asc":      "avg_rating ASC",
	"food_count_desc": "food_count DESC",
	"food_count_asc":  "food_count ASC",
}

var foodSorts = map[string]string{
	"price_asc":   "f.price ASC",
	"price_desc":  "f.price DESC",
	"rating_desc": "avg_rating DESC",
	"rating_asc":  "avg_rating ASC",
}

// Export sorts select a column name rather than a value, so the allowed map
// doubles as the identifier allow-list.
var exportSorts = map[string]string{
	"food_name": "food_name",
	"price":     "price",
	"calories":  "calories",
}

// StoreList builds the store listing query. The LEFT JOIN chain keeps stores
// with no location, foods, reviews or categories in the result; grouping by
// store and location collapses the join fan-out to one row per store.
func StoreList(f StoreFilter) *Builder {
	b := New(`
		SELECT s.store_id, s.store_name, l.name AS location_name,
		       COALESCE(AVG(r.rating), 0) AS avg_rating,
		       COUNT(DISTINCT f.food_id) AS food_count
		FROM stores s
		LEFT JOIN locations l ON s.location_id = l.location_id
		LEFT JOIN foods f ON s.store_id = f.store_id
		LEFT JOIN reviews r ON f.food_id = r.food_id
		LEFT JOIN store_categories sc ON s.store_id = sc.store_id`)

	if f.Search != "" {
		b.Where("s.store_name ILIKE ?", "%"+f.Search+"%")
	}
	if f.LocationID != "" {
		b.Where("s.location_id = ?", f.LocationID)
	}
	if f.CategoryID != "" {
		b.Where("sc.category_id = ?", f.CategoryID)
	}

	return b.
		GroupBy("s.store_id, s.store_name, l.name").
		Sort(f.SortBy, storeSorts, "s.store_id ASC")
}

// FoodList builds the food listing query: one row per food with its store
// name and average rating (0 when unreviewed).
func FoodList(f FoodFilter) *Builder {
	b := New(`
		SELECT f.food_id, f.food_name, f.price, f.calories, f.store_id,
		       s.store_name,
		       COALESCE(AVG(r.rating), 0) AS avg_rating
		FROM foods f
		JOIN stores s ON f.store_id = s.store_id
		LEFT JOIN reviews r ON f.food_id = r.food_id`)

	applyFoodFilters(b, f)

	return b.
		GroupBy("f.food_id, f.food_name, f.price, f.calories, f.store_id, s.store_name").
		Sort(f.SortBy, foodSorts, "f.food_name ASC")
}

// FoodExport builds the CSV export query. It reuses the food listing filters
// but sorts by a bare allow-listed column, falling back to food_id.
func FoodExport(f FoodFilter) *Builder {
	b := New(`
		SELECT f.food_id, f.food_name, f.price, f.calories, s.store_name
		FROM foods f
		JOIN stores s ON f.store_id = s.store_id`)

	applyFoodFilters(b, f)

	return b.Sort(f.SortBy, exportSorts, "food_id")
}

func applyFoodFilters(b *Builder, f FoodFilter) {
	if f.Search != "" {
		b.Where("f.food_name ILIKE ?", "%"+f.Search+"%")
	}
	if f.StoreID != "" {
		b.Where("f.store_id = ?", f.StoreID)
	}
	if f.MinPrice != "" {
		b.Where("f.price >= ?", f.MinPrice)
	}
	if f.MaxPrice != "" {
		b.Where("f.price <= ?", f.MaxPrice)
	}
}
