package models

import "time"

type Feedback struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint `gorm:"not null;index" json:"user_id"`
	ProfileID uint `gorm:"not null;index" json:"profile_id"`

	Content string `gorm:"size:1000;not null" json:"content"`
	Rating  int    `gorm:"not null" json:"rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
