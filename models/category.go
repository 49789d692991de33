package models

// Category represents categories table
type Category struct {
	CategoryID   uint   `gorm:"primaryKey;column:category_id" json:"category_id"`
	CategoryName string `gorm:"type:varchar(100);not null" json:"category_name"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}

// StoreCategory represents the store_categories junction table
type StoreCategory struct {
	StoreID    uint `gorm:"primaryKey;column:store_id" json:"store_id"`
	CategoryID uint `gorm:"primaryKey;column:category_id" json:"category_id"`
}

// TableName specifies the table name for StoreCategory
func (StoreCategory) TableName() string {
	return "store_categories"
}
