package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreListNoFilters(t *testing.T) {
	b := StoreList(StoreFilter{SortBy: "name"})

	sql := b.SQL()
	assert.NotContains(t, sql, "WHERE")
	assert.Contains(t, sql, "LEFT JOIN locations l")
	assert.Contains(t, sql, "LEFT JOIN foods f")
	assert.Contains(t, sql, "LEFT JOIN reviews r")
	assert.Contains(t, sql, "LEFT JOIN store_categories sc")
	assert.Contains(t, sql, "COALESCE(AVG(r.rating), 0)")
	assert.Contains(t, sql, "COUNT(DISTINCT f.food_id)")
	assert.Contains(t, sql, "GROUP BY s.store_id, s.store_name, l.name")
	assert.Contains(t, sql, "ORDER BY s.store_name ASC")
	assert.Empty(t, b.Args())
}

func TestStoreListAllFiltersCombineWithAnd(t *testing.T) {
	b := StoreList(StoreFilter{
		Search:     "noodle",
		LocationID: "2",
		CategoryID: "5",
		SortBy:     "rating_desc",
	})

	sql := b.SQL()
	assert.Contains(t, sql, "s.store_name ILIKE $1")
	assert.Contains(t, sql, "s.location_id = $2")
	assert.Contains(t, sql, "sc.category_id = $3")
	assert.Contains(t, sql, "ORDER BY avg_rating DESC")
	assert.Equal(t, []interface{}{"%noodle%", "2", "5"}, b.Args())
}

func TestStoreListSortSelectors(t *testing.T) {
	cases := map[string]string{
		"name":            "ORDER BY s.store_name ASC",
		"rating_desc":     "ORDER BY avg_rating DESC",
		"rating_asc":      "ORDER BY avg_rating ASC",
		"food_count_desc": "ORDER BY food_count DESC",
		"food_count_asc":  "ORDER BY food_count ASC",
		"bogus":           "ORDER BY s.store_id ASC",
		"":                "ORDER BY s.store_id ASC",
	}

	for sortBy, want := range cases {
		sql := StoreList(StoreFilter{SortBy: sortBy}).SQL()
		assert.Contains(t, sql, want, "sort_by=%q", sortBy)
	}
}

func TestFoodListDefaults(t *testing.T) {
	b := FoodList(FoodFilter{})

	sql := b.SQL()
	assert.NotContains(t, sql, "WHERE")
	assert.Contains(t, sql, "JOIN stores s ON f.store_id = s.store_id")
	assert.Contains(t, sql, "LEFT JOIN reviews r")
	assert.Contains(t, sql, "ORDER BY f.food_name ASC")
	assert.Empty(t, b.Args())
}

func TestFoodListPriceBounds(t *testing.T) {
	b := FoodList(FoodFilter{MinPrice: "10", MaxPrice: "20"})

	sql := b.SQL()
	assert.Contains(t, sql, "f.price >= $1")
	assert.Contains(t, sql, "f.price <= $2")
	assert.Equal(t, []interface{}{"10", "20"}, b.Args())
}

func TestFoodListSortSelectors(t *testing.T) {
	cases := map[string]string{
		"price_asc":   "ORDER BY f.price ASC",
		"price_desc":  "ORDER BY f.price DESC",
		"rating_desc": "ORDER BY avg_rating DESC",
		"rating_asc":  "ORDER BY avg_rating ASC",
		"whatever":    "ORDER BY f.food_name ASC",
	}

	for sortBy, want := range cases {
		sql := FoodList(FoodFilter{SortBy: sortBy}).SQL()
		assert.Contains(t, sql, want, "sort_by=%q", sortBy)
	}
}

func TestFoodListSearchAndStore(t *testing.T) {
	b := FoodList(FoodFilter{Search: "rice", StoreID: "3"})

	sql := b.SQL()
	assert.Contains(t, sql, "f.food_name ILIKE $1")
	assert.Contains(t, sql, "f.store_id = $2")
	assert.Equal(t, []interface{}{"%rice%", "3"}, b.Args())
}

func TestFoodExportAllowListedSortColumns(t *testing.T) {
	for _, col := range []string{"food_name", "price", "calories"} {
		sql := FoodExport(FoodFilter{SortBy: col}).SQL()
		assert.True(t, strings.HasSuffix(sql, "ORDER BY "+col), "sort_by=%q got %q", col, sql)
	}
}

func TestFoodExportUnknownSortFallsBackToID(t *testing.T) {
	for _, sortBy := range []string{"", "store_name", "price; DROP TABLE foods"} {
		sql := FoodExport(FoodFilter{SortBy: sortBy}).SQL()
		assert.True(t, strings.HasSuffix(sql, "ORDER BY food_id"), "sort_by=%q got %q", sortBy, sql)
		assert.NotContains(t, sql, "DROP TABLE")
	}
}

func TestFoodExportReusesListingFilters(t *testing.T) {
	b := FoodExport(FoodFilter{Search: "tea", StoreID: "1", MinPrice: "5", MaxPrice: "60"})

	sql := b.SQL()
	assert.Contains(t, sql, "f.food_name ILIKE $1")
	assert.Contains(t, sql, "f.store_id = $2")
	assert.Contains(t, sql, "f.price >= $3")
	assert.Contains(t, sql, "f.price <= $4")
	assert.NotContains(t, sql, "GROUP BY")
	assert.Equal(t, []interface{}{"%tea%", "1", "5", "60"}, b.Args())
}
