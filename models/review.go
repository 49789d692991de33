package models

import "time"

// Review represents reviews table. All score columns are optional; the
// reviewer may leave any of them blank.
type Review struct {
	ReviewID  uint      `gorm:"primaryKey;column:review_id" json:"review_id"`
	Rating    *int      `json:"rating,omitempty"`
	CPValue   *int      `gorm:"column:cp_value" json:"cp_value,omitempty"`
	Healthy   *int      `json:"healthy,omitempty"`
	Fullness  *int      `json:"fullness,omitempty"`
	Comment   *string   `gorm:"type:text" json:"comment,omitempty"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	FoodID    uint      `gorm:"not null" json:"food_id"`
	Timestamp time.Time `gorm:"column:timestamp;not null;default:CURRENT_TIMESTAMP" json:"timestamp"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Food Food `gorm:"foreignKey:FoodID" json:"food,omitempty"`
}

// TableName specifies the table name for Review
func (Review) TableName() string {
	return "reviews"
}
