package models

// User represents users table
type User struct {
	UserID uint   `gorm:"primaryKey;column:user_id" json:"user_id"`
	Name   string `gorm:"type:varchar(100);not null" json:"name"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
