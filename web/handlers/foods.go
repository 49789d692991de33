package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/teddylu0219/database-final-project-2025/database"
	"github.com/teddylu0219/database-final-project-2025/models"
	"github.com/teddylu0219/database-final-project-2025/query"
)

// FoodRow is one row of the food listing: the food with its store name and
// average rating (0 when unreviewed).
type FoodRow struct {
	FoodID    uint    `json:"food_id"`
	FoodName  string  `json:"food_name"`
	Price     float64 `json:"price"`
	Calories  *int    `json:"calories"`
	StoreID   uint    `json:"store_id"`
	StoreName string  `json:"store_name"`
	AvgRating float64 `json:"avg_rating"`
}

// FoodList displays all foods with search and filter functionality
func FoodList(c *fiber.Ctx) error {
	db := database.GetDB()

	filter := query.FoodFilter{
		Search:   c.Query("search"),
		StoreID:  c.Query("store_id"),
		MinPrice: c.Query("min_price"),
		MaxPrice: c.Query("max_price"),
		SortBy:   c.Query("sort_by", "id"),
	}

	b := query.FoodList(filter)

	var foods []FoodRow
	if err := db.Raw(b.SQL(), b.Args()...).Scan(&foods).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).Render("pages/500", fiber.Map{
			"Title":  "Error",
			"Active": "",
			"Error": "Unable to load foods: " + err.Error(),
			"Code":  500,
		}, "layouts/base")
	}

	// Store dropdown for the filter form
	var stores []models.Store
	db.Raw("SELECT * FROM stores ORDER BY store_name").Scan(&stores)

	return c.Render("pages/foods/list", fiber.Map{
		"Title":           "美食列表",
		"Active":          "foods",
		"Foods":           foods,
		"Stores":          stores,
		"SearchQuery":     filter.Search,
		"SelectedStore":   filter.StoreID,
		"MinPrice":        filter.MinPrice,
		"MaxPrice":        filter.MaxPrice,
		"SortBy":          filter.SortBy,
		"Notice":          c.Query("notice"),
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// FoodCreate creates a new food item
func FoodCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	form := parseFoodCreateForm(c)
	if err := form.Validate(); err != nil {
		return backWithNotice(c, "/foods", err.Error())
	}

	err := db.Exec(`
		INSERT INTO foods (food_name, price, calories, store_id)
		VALUES (?, ?, ?, ?)
	`, form.FoodName, form.Price, nullable(form.Calories), form.StoreID).Error

	if err != nil {
		return backWithNotice(c, "/foods", "Error creating food item: "+err.Error())
	}

	return backWithNotice(c, "/foods", "Food item created successfully")
}

// FoodUpdate updates a food item
func FoodUpdate(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	form := parseFoodEditForm(c)
	if err := form.Validate(); err != nil {
		return backWithNotice(c, "/foods", err.Error())
	}

	err := db.Exec(`
		UPDATE foods
		SET food_name = ?, price = ?, calories = ?
		WHERE food_id = ?
	`, form.FoodName, form.Price, nullable(form.Calories), id).Error

	if err != nil {
		return backWithNotice(c, "/foods", "Error updating food item: "+err.Error())
	}

	return backWithNotice(c, "/foods", "Food item updated successfully")
}

// FoodDelete deletes a food item and, via the schema, its reviews
func FoodDelete(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	if err := db.Exec("DELETE FROM foods WHERE food_id = ?", id).Error; err != nil {
		return backWithNotice(c, "/foods", "Error deleting food item: "+err.Error())
	}

	return backWithNotice(c, "/foods", "Food item deleted successfully")
}
