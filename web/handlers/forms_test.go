package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreFormValidate(t *testing.T) {
	assert.NoError(t, StoreForm{StoreName: "阿婆滷味"}.Validate())

	err := StoreForm{StoreName: ""}.Validate()
	assert.EqualError(t, err, "Store name is required")

	// Location is optional
	assert.NoError(t, StoreForm{StoreName: "清心茶坊", LocationID: ""}.Validate())
}

func TestFoodCreateFormValidate(t *testing.T) {
	valid := FoodCreateForm{FoodName: "蛋餅", Price: "35", StoreID: "6"}
	assert.NoError(t, valid.Validate())

	for _, form := range []FoodCreateForm{
		{Price: "35", StoreID: "6"},
		{FoodName: "蛋餅", StoreID: "6"},
		{FoodName: "蛋餅", Price: "35"},
	} {
		err := form.Validate()
		assert.EqualError(t, err, "Food name, price, and store are required")
	}

	// Calories are optional
	assert.NoError(t, FoodCreateForm{FoodName: "蛋餅", Price: "35", StoreID: "6", Calories: ""}.Validate())
}

func TestFoodEditFormValidate(t *testing.T) {
	assert.NoError(t, FoodEditForm{FoodName: "蛋餅", Price: "40"}.Validate())

	err := FoodEditForm{FoodName: "蛋餅"}.Validate()
	assert.EqualError(t, err, "Food name and price are required")
}

func TestReviewFormValidate(t *testing.T) {
	// All score fields optional, only user and food required
	assert.NoError(t, ReviewForm{UserID: "1", FoodID: "2"}.Validate())

	for _, form := range []ReviewForm{
		{FoodID: "2", Rating: "5"},
		{UserID: "1", Comment: "好吃"},
	} {
		err := form.Validate()
		assert.EqualError(t, err, "User and food are required")
	}
}

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable(""))
	assert.Equal(t, "450", nullable("450"))
}
