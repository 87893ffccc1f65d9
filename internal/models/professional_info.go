package models

import "time"

// ProfessionalInfo marks a Profile as bookable.
type ProfessionalInfo struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProfileID uint `gorm:"uniqueIndex;not null" json:"profile_id"`

	// Weekly availability template kept as an opaque JSON blob.
	Availability string `gorm:"type:text;default:'{}'" json:"availability"`

	RealTimeStatus *RealTimeStatus `json:"real_time_status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
