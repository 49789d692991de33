package database

import (
	"fmt"
	"log"
	"strings"

	"github.com/teddylu0219/database-final-project-2025/models"
	"gorm.io/gorm"
)

// AutoMigrate creates all tables, then wires foreign keys and indexes.
func AutoMigrate(db *gorm.DB) error {
	log.Println("Starting GORM AutoMigrate...")

	allModels := models.AllModels()

	// First pass: create all tables without foreign keys
	log.Println("Creating tables...")
	migrator := db.Migrator()

	for _, model := range allModels {
		tableName := migrator.CurrentDatabase()
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err == nil {
			tableName = stmt.Schema.Table
		}

		if !migrator.HasTable(model) {
			if err := migrator.CreateTable(model); err != nil {
				log.Printf("  ⚠ Warning: Could not create table %s: %v", tableName, err)
				continue
			}
			log.Printf("  ✓ Created table: %s", tableName)
		} else {
			log.Printf("  ✓ Table already exists: %s", tableName)
		}
	}

	// Second pass: foreign key constraints with explicit delete policies
	log.Println("Creating foreign key constraints...")
	if err := CreateForeignKeys(db); err != nil {
		log.Printf("Warning: Some foreign keys could not be created: %v", err)
	}

	log.Println("Creating indexes...")
	if err := CreateIndexes(db); err != nil {
		log.Printf("Warning: Some indexes could not be created: %v", err)
	}

	log.Println("GORM AutoMigrate completed successfully")
	return nil
}

// CreateForeignKeys creates all foreign key constraints.
//
// Delete policy: a store takes its foods, hours and category links with it,
// and a food takes its reviews; removing a location keeps its stores but
// clears their location_id.
func CreateForeignKeys(db *gorm.DB) error {
	foreignKeys := []struct {
		table     string
		name      string
		column    string
		refTable  string
		refColumn string
		onDelete  string
	}{
		{"stores", "fk_stores_location", "location_id", "locations", "location_id", "SET NULL"},

		{"store_categories", "fk_store_categories_store", "store_id", "stores", "store_id", "CASCADE"},
		{"store_categories", "fk_store_categories_category", "category_id", "categories", "category_id", "CASCADE"},

		{"business_hours", "fk_business_hours_store", "store_id", "stores", "store_id", "CASCADE"},

		{"foods", "fk_foods_store", "store_id", "stores", "store_id", "CASCADE"},

		{"reviews", "fk_reviews_user", "user_id", "users", "user_id", "CASCADE"},
		{"reviews", "fk_reviews_food", "food_id", "foods", "food_id", "CASCADE"},
	}

	for _, fk := range foreignKeys {
		// Check if foreign key already exists
		var count int64
		db.Raw(`
			SELECT COUNT(*) FROM information_schema.table_constraints
			WHERE constraint_type = 'FOREIGN KEY'
			AND table_name = ?
			AND constraint_name = ?
		`, fk.table, fk.name).Scan(&count)

		if count > 0 {
			log.Printf("  ✓ Foreign key already exists: %s", fk.name)
			continue
		}

		query := fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s(%s) ON DELETE %s",
			fk.table, fk.name, fk.column, fk.refTable, fk.refColumn, fk.onDelete,
		)

		if err := db.Exec(query).Error; err != nil {
			log.Printf("  ⚠ Failed to create foreign key %s: %v", fk.name, err)
		} else {
			log.Printf("  ✓ Created foreign key: %s", fk.name)
		}
	}

	return nil
}

// CreateIndexes creates performance indexes
func CreateIndexes(db *gorm.DB) error {
	indexes := []struct {
		name  string
		query string
	}{
		{"idx_stores_location", "CREATE INDEX IF NOT EXISTS idx_stores_location ON stores(location_id)"},
		{"idx_foods_store", "CREATE INDEX IF NOT EXISTS idx_foods_store ON foods(store_id)"},
		{"idx_foods_price", "CREATE INDEX IF NOT EXISTS idx_foods_price ON foods(price)"},
		{"idx_reviews_food", "CREATE INDEX IF NOT EXISTS idx_reviews_food ON reviews(food_id)"},
		{"idx_reviews_user", "CREATE INDEX IF NOT EXISTS idx_reviews_user ON reviews(user_id)"},
		{"idx_reviews_timestamp", "CREATE INDEX IF NOT EXISTS idx_reviews_timestamp ON reviews(timestamp)"},
		{"idx_store_categories_category", "CREATE INDEX IF NOT EXISTS idx_store_categories_category ON store_categories(category_id)"},
	}

	successCount := 0
	for _, idx := range indexes {
		if err := db.Exec(idx.query).Error; err != nil {
			if !strings.Contains(err.Error(), "already exists") {
				log.Printf("  ⚠ Failed to create index %s: %v", idx.name, err)
			}
		} else {
			log.Printf("  ✓ Created index: %s", idx.name)
			successCount++
		}
	}

	if successCount > 0 {
		log.Printf("Successfully created %d indexes", successCount)
	}

	return nil
}
