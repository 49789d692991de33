package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/teddylu0219/database-final-project-2025/database"
	"github.com/teddylu0219/database-final-project-2025/models"
	"github.com/teddylu0219/database-final-project-2025/query"
)

// StoreRow is one row of the store listing: the store with its location and
// review/menu aggregates.
type StoreRow struct {
	StoreID      uint    `json:"store_id"`
	StoreName    string  `json:"store_name"`
	LocationName *string `json:"location_name"`
	AvgRating    float64 `json:"avg_rating"`
	FoodCount    int64   `json:"food_count"`
}

// StoreList displays all stores with search and filter functionality
func StoreList(c *fiber.Ctx) error {
	db := database.GetDB()

	filter := query.StoreFilter{
		Search:     c.Query("search"),
		LocationID: c.Query("location_id"),
		CategoryID: c.Query("category_id"),
		SortBy:     c.Query("sort_by", "name"),
	}

	b := query.StoreList(filter)

	var stores []StoreRow
	if err := db.Raw(b.SQL(), b.Args()...).Scan(&stores).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).Render("pages/500", fiber.Map{
			"Title":  "Error",
			"Active": "",
			"Error": "Unable to load stores: " + err.Error(),
			"Code":  500,
		}, "layouts/base")
	}

	// Dropdown options for the filter form
	var locations []models.Location
	db.Raw("SELECT * FROM locations ORDER BY name").Scan(&locations)

	var categories []models.Category
	db.Raw("SELECT * FROM categories ORDER BY category_name").Scan(&categories)

	return c.Render("pages/stores/list", fiber.Map{
		"Title":            "店家列表",
		"Active":           "stores",
		"Stores":           stores,
		"Locations":        locations,
		"Categories":       categories,
		"SearchQuery":      filter.Search,
		"SelectedLocation": filter.LocationID,
		"SelectedCategory": filter.CategoryID,
		"SortBy":           filter.SortBy,
		"Notice":           c.Query("notice"),
		"SQLQueries":       c.Locals("SQLQueries"),
		"TotalSQLQueries":  c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// StoreDetail shows store details including hours, menu and recent reviews
func StoreDetail(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var store struct {
		models.Store
		LocationName *string
	}

	result := db.Raw(`
		SELECT s.*, l.name AS location_name
		FROM stores s
		LEFT JOIN locations l ON s.location_id = l.location_id
		WHERE s.store_id = ?
	`, id).Scan(&store)

	if result.Error != nil {
		return redirectWithNotice(c, "/stores", "Store not found")
	}
	if result.RowsAffected == 0 {
		return redirectWithNotice(c, "/stores", "Store not found")
	}

	var hours []models.BusinessHour
	db.Raw(`
		SELECT * FROM business_hours
		WHERE store_id = ?
		ORDER BY day_of_week, no
	`, id).Scan(&hours)

	var storeCategories []string
	db.Raw(`
		SELECT c.category_name
		FROM store_categories sc
		JOIN categories c ON sc.category_id = c.category_id
		WHERE sc.store_id = ?
	`, id).Scan(&storeCategories)

	var foods []struct {
		models.Food
		AvgRating   float64
		ReviewCount int64
	}
	db.Raw(`
		SELECT f.*,
		       COALESCE(AVG(r.rating), 0) AS avg_rating,
		       COUNT(r.review_id) AS review_count
		FROM foods f
		LEFT JOIN reviews r ON f.food_id = r.food_id
		WHERE f.store_id = ?
		GROUP BY f.food_id
		ORDER BY f.food_name
	`, id).Scan(&foods)

	var reviews []struct {
		models.Review
		UserName string
		FoodName string
	}
	db.Raw(`
		SELECT r.*, u.name AS user_name, f.food_name
		FROM reviews r
		JOIN users u ON r.user_id = u.user_id
		JOIN foods f ON r.food_id = f.food_id
		WHERE f.store_id = ?
		ORDER BY r.timestamp DESC
		LIMIT 20
	`, id).Scan(&reviews)

	// Users for the review form
	var users []models.User
	db.Raw("SELECT * FROM users ORDER BY name").Scan(&users)

	return c.Render("pages/stores/detail", fiber.Map{
		"Title":           store.StoreName,
		"Active":          "stores",
		"Store":           store,
		"Hours":           hours,
		"StoreCategories": storeCategories,
		"Foods":           foods,
		"Reviews":         reviews,
		"Users":           users,
		"Notice":          c.Query("notice"),
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// StoreNew shows the form to create a new store
func StoreNew(c *fiber.Ctx) error {
	db := database.GetDB()

	var locations []models.Location
	db.Raw("SELECT * FROM locations ORDER BY name").Scan(&locations)

	return c.Render("pages/stores/create", fiber.Map{
		"Title":           "新增店家",
		"Active":          "stores",
		"Locations":       locations,
		"Notice":          c.Query("notice"),
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// StoreCreate creates a new store
func StoreCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	form := parseStoreForm(c)
	if err := form.Validate(); err != nil {
		return redirectWithNotice(c, "/stores/create", err.Error())
	}

	err := db.Exec(`
		INSERT INTO stores (store_name, location_id)
		VALUES (?, ?)
	`, form.StoreName, nullable(form.LocationID)).Error

	if err != nil {
		return redirectWithNotice(c, "/stores/create", "Error creating store: "+err.Error())
	}

	return redirectWithNotice(c, "/stores", "Store created successfully")
}

// StoreEdit shows the form to edit a store
func StoreEdit(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var store models.Store
	result := db.Raw("SELECT * FROM stores WHERE store_id = ?", id).Scan(&store)
	if result.Error != nil || result.RowsAffected == 0 {
		return redirectWithNotice(c, "/stores", "Store not found")
	}

	var locations []models.Location
	db.Raw("SELECT * FROM locations ORDER BY name").Scan(&locations)

	return c.Render("pages/stores/edit", fiber.Map{
		"Title":           "編輯店家",
		"Active":          "stores",
		"Store":           store,
		"Locations":       locations,
		"Notice":          c.Query("notice"),
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// StoreUpdate updates a store
func StoreUpdate(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	form := parseStoreForm(c)
	if err := form.Validate(); err != nil {
		return redirectWithNotice(c, "/stores/"+id+"/edit", err.Error())
	}

	err := db.Exec(`
		UPDATE stores
		SET store_name = ?, location_id = ?
		WHERE store_id = ?
	`, form.StoreName, nullable(form.LocationID), id).Error

	if err != nil {
		return redirectWithNotice(c, "/stores/"+id+"/edit", "Error updating store: "+err.Error())
	}

	return redirectWithNotice(c, "/stores/"+id, "Store updated successfully")
}

// StoreDelete deletes a store. The schema cascades the delete to the
// store's foods, hours, category links and those foods' reviews; deleting
// an id that no longer exists simply affects zero rows.
func StoreDelete(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	if err := db.Exec("DELETE FROM stores WHERE store_id = ?", id).Error; err != nil {
		return redirectWithNotice(c, "/stores", "Error deleting store: "+err.Error())
	}

	return redirectWithNotice(c, "/stores", "Store deleted successfully")
}
