package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/teddylu0219/database-final-project-2025/database"
)

// ReviewCreate creates a new review. The timestamp column defaults to the
// insertion time.
func ReviewCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	form := parseReviewForm(c)
	if err := form.Validate(); err != nil {
		return backWithNotice(c, "/", err.Error())
	}

	err := db.Exec(`
		INSERT INTO reviews (rating, cp_value, healthy, fullness, comment, user_id, food_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		nullable(form.Rating),
		nullable(form.CPValue),
		nullable(form.Healthy),
		nullable(form.Fullness),
		nullable(form.Comment),
		form.UserID,
		form.FoodID,
	).Error

	if err != nil {
		return backWithNotice(c, "/", "Error creating review: "+err.Error())
	}

	return backWithNotice(c, "/", "Review created successfully")
}

// ReviewDelete deletes a review
func ReviewDelete(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	if err := db.Exec("DELETE FROM reviews WHERE review_id = ?", id).Error; err != nil {
		return backWithNotice(c, "/", "Error deleting review: "+err.Error())
	}

	return backWithNotice(c, "/", "Review deleted successfully")
}
