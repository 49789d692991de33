package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderNoPredicates(t *testing.T) {
	b := New("SELECT * FROM users")

	assert.Equal(t, "SELECT * FROM users", b.SQL())
	assert.Empty(t, b.Args())
}

func TestBuilderNumbersPlaceholders(t *testing.T) {
	b := New("SELECT * FROM foods f").
		Where("f.food_name ILIKE ?", "%tea%").
		Where("f.price >= ?", "10").
		Where("f.price <= ?", "20")

	sql := b.SQL()
	assert.Contains(t, sql, "WHERE f.food_name ILIKE $1 AND f.price >= $2 AND f.price <= $3")
	assert.Equal(t, []interface{}{"%tea%", "10", "20"}, b.Args())
}

func TestBuilderPredicateOrderMatchesArgOrder(t *testing.T) {
	b := New("SELECT 1").
		Where("a = ?", "first").
		Where("b = ? AND c = ?", "second", "third")

	assert.Contains(t, b.SQL(), "a = $1 AND b = $2 AND c = $3")
	assert.Equal(t, []interface{}{"first", "second", "third"}, b.Args())
}

func TestBuilderGroupByAndOrderBy(t *testing.T) {
	b := New("SELECT s.store_id FROM stores s").
		GroupBy("s.store_id").
		Sort("name", map[string]string{"name": "s.store_name ASC"}, "s.store_id ASC")

	sql := b.SQL()
	assert.Contains(t, sql, "GROUP BY s.store_id")
	assert.Contains(t, sql, "ORDER BY s.store_name ASC")
}

func TestBuilderSortFallsBackForUnknownKey(t *testing.T) {
	allowed := map[string]string{"price_asc": "f.price ASC"}

	b := New("SELECT 1").Sort("price_asc; DROP TABLE foods", allowed, "f.food_id ASC")

	assert.Contains(t, b.SQL(), "ORDER BY f.food_id ASC")
	assert.NotContains(t, b.SQL(), "DROP TABLE")
}

func TestBuilderSortEmptyKeyUsesFallback(t *testing.T) {
	b := New("SELECT 1").Sort("", map[string]string{"name": "x"}, "id ASC")

	assert.Contains(t, b.SQL(), "ORDER BY id ASC")
}
