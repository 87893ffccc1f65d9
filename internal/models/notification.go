package models

import "time"

// Notification rows are append-only; produced as side effects of booking
// and availability transitions.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID  uint   `gorm:"not null;index" json:"user_id"`
	Message string `gorm:"size:500;not null" json:"message"`
	IsRead  bool   `gorm:"default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
