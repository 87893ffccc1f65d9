package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	// ProfileID is the professional's Profile. All operations address a
	// professional by this key.
	ProfileID uint    `gorm:"not null;index" json:"profile_id"`
	Profile   Profile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profile"`

	Time   time.Time `gorm:"not null;index" json:"time"`
	Status string    `gorm:"size:20;default:'Pending'" json:"status"`
	Notes  string    `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
