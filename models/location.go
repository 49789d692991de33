package models

// Location represents locations table
type Location struct {
	LocationID uint   `gorm:"primaryKey;column:location_id" json:"location_id"`
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
}

// TableName specifies the table name for Location
func (Location) TableName() string {
	return "locations"
}
