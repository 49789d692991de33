package models

// Store represents stores table
type Store struct {
	StoreID    uint   `gorm:"primaryKey;column:store_id" json:"store_id"`
	StoreName  string `gorm:"type:varchar(200);not null" json:"store_name"`
	LocationID *uint  `json:"location_id,omitempty"`

	// Relationships
	Location *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

// TableName specifies the table name for Store
func (Store) TableName() string {
	return "stores"
}
