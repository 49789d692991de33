package models

// BusinessHour represents business_hours table. A store may have several
// entries per weekday; "no" is the sequence number that keeps them apart.
type BusinessHour struct {
	StoreID   uint   `gorm:"primaryKey;column:store_id" json:"store_id"`
	DayOfWeek int    `gorm:"primaryKey;column:day_of_week" json:"day_of_week"`
	No        int    `gorm:"primaryKey;column:no" json:"no"`
	OpenTime  string `gorm:"column:open_time;type:varchar(5);not null" json:"open_time"`
	CloseTime string `gorm:"column:close_time;type:varchar(5);not null" json:"close_time"`
}

// TableName specifies the table name for BusinessHour
func (BusinessHour) TableName() string {
	return "business_hours"
}
