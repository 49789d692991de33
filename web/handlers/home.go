package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/teddylu0219/database-final-project-2025/database"
)

// HomePage handles the home page
func HomePage(c *fiber.Ctx) error {
	db := database.GetDB()

	var stats struct {
		TotalStores  int64
		TotalFoods   int64
		TotalReviews int64
		TotalUsers   int64
	}

	db.Raw("SELECT COUNT(*) FROM stores").Scan(&stats.TotalStores)
	db.Raw("SELECT COUNT(*) FROM foods").Scan(&stats.TotalFoods)
	db.Raw("SELECT COUNT(*) FROM reviews").Scan(&stats.TotalReviews)
	db.Raw("SELECT COUNT(*) FROM users").Scan(&stats.TotalUsers)

	// Highest rated foods across the whole dataset
	var topFoods []struct {
		FoodID    uint
		FoodName  string
		StoreName string
		AvgRating float64
	}
	db.Raw(`
		SELECT f.food_id, f.food_name, s.store_name,
		       COALESCE(AVG(r.rating), 0) AS avg_rating
		FROM foods f
		JOIN stores s ON f.store_id = s.store_id
		JOIN reviews r ON f.food_id = r.food_id
		GROUP BY f.food_id, f.food_name, s.store_name
		ORDER BY avg_rating DESC
		LIMIT 5
	`).Scan(&topFoods)

	// Latest reviews
	var recentReviews []struct {
		ReviewID  uint
		UserName  string
		FoodName  string
		StoreName string
		Rating    *int
		Comment   *string
	}
	db.Raw(`
		SELECT r.review_id, u.name AS user_name, f.food_name, s.store_name,
		       r.rating, r.comment
		FROM reviews r
		JOIN users u ON r.user_id = u.user_id
		JOIN foods f ON r.food_id = f.food_id
		JOIN stores s ON f.store_id = s.store_id
		ORDER BY r.timestamp DESC
		LIMIT 10
	`).Scan(&recentReviews)

	return c.Render("pages/home", fiber.Map{
		"Title":           "校園美食",
		"Active":          "home",
		"TotalStores":     stats.TotalStores,
		"TotalFoods":      stats.TotalFoods,
		"TotalReviews":    stats.TotalReviews,
		"TotalUsers":      stats.TotalUsers,
		"TopFoods":        topFoods,
		"RecentReviews":   recentReviews,
		"Notice":          c.Query("notice"),
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// GetSQLLogs returns SQL logs as JSON
func GetSQLLogs(c *fiber.Ctx) error {
	queries := database.SQLLogger.GetRecentQueries(20)
	return c.JSON(queries)
}

// ClearSQLLogs clears all SQL logs
func ClearSQLLogs(c *fiber.Ctx) error {
	database.SQLLogger.Clear()
	return c.SendStatus(fiber.StatusOK)
}
