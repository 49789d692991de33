package models

// Food represents foods table
type Food struct {
	FoodID   uint    `gorm:"primaryKey;column:food_id" json:"food_id"`
	FoodName string  `gorm:"type:varchar(200);not null" json:"food_name"`
	Price    float64 `gorm:"type:numeric(10,2);not null" json:"price"`
	Calories *int    `json:"calories,omitempty"`
	StoreID  uint    `gorm:"not null" json:"store_id"`

	// Relationships
	Store Store `gorm:"foreignKey:StoreID" json:"store,omitempty"`
}

// TableName specifies the table name for Food
func (Food) TableName() string {
	return "foods"
}
