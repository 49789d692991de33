package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Form fields stay strings all the way to the database: values are bound as
// parameters and PostgreSQL does the numeric conversion, so a malformed
// number surfaces as a storage error rather than being silently coerced.

// StoreForm carries the store create/edit fields.
type StoreForm struct {
	StoreName  string `validate:"required"`
	LocationID string
}

func parseStoreForm(c *fiber.Ctx) StoreForm {
	return StoreForm{
		StoreName:  strings.TrimSpace(c.FormValue("store_name")),
		LocationID: strings.TrimSpace(c.FormValue("location_id")),
	}
}

// Validate checks required fields before any database call.
func (f StoreForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return errors.New("Store name is required")
	}
	return nil
}

// FoodCreateForm carries the food create fields.
type FoodCreateForm struct {
	FoodName string `validate:"required"`
	Price    string `validate:"required"`
	Calories string
	StoreID  string `validate:"required"`
}

func parseFoodCreateForm(c *fiber.Ctx) FoodCreateForm {
	return FoodCreateForm{
		FoodName: strings.TrimSpace(c.FormValue("food_name")),
		Price:    strings.TrimSpace(c.FormValue("price")),
		Calories: strings.TrimSpace(c.FormValue("calories")),
		StoreID:  strings.TrimSpace(c.FormValue("store_id")),
	}
}

func (f FoodCreateForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return errors.New("Food name, price, and store are required")
	}
	return nil
}

// FoodEditForm carries the food edit fields; the store cannot be changed.
type FoodEditForm struct {
	FoodName string `validate:"required"`
	Price    string `validate:"required"`
	Calories string
}

func parseFoodEditForm(c *fiber.Ctx) FoodEditForm {
	return FoodEditForm{
		FoodName: strings.TrimSpace(c.FormValue("food_name")),
		Price:    strings.TrimSpace(c.FormValue("price")),
		Calories: strings.TrimSpace(c.FormValue("calories")),
	}
}

func (f FoodEditForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return errors.New("Food name and price are required")
	}
	return nil
}

// ReviewForm carries the review create fields. Every score is optional.
type ReviewForm struct {
	Rating   string
	CPValue  string
	Healthy  string
	Fullness string
	Comment  string
	UserID   string `validate:"required"`
	FoodID   string `validate:"required"`
}

func parseReviewForm(c *fiber.Ctx) ReviewForm {
	return ReviewForm{
		Rating:   strings.TrimSpace(c.FormValue("rating")),
		CPValue:  strings.TrimSpace(c.FormValue("cp_value")),
		Healthy:  strings.TrimSpace(c.FormValue("healthy")),
		Fullness: strings.TrimSpace(c.FormValue("fullness")),
		Comment:  strings.TrimSpace(c.FormValue("comment")),
		UserID:   strings.TrimSpace(c.FormValue("user_id")),
		FoodID:   strings.TrimSpace(c.FormValue("food_id")),
	}
}

func (f ReviewForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return errors.New("User and food are required")
	}
	return nil
}

// nullable turns a blank optional field into NULL.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
