package models

import "time"

// RealTimeStatus is the manual availability override for a professional.
// Created lazily on the first availability write; at most one per
// ProfessionalInfo.
type RealTimeStatus struct {
	ID                 uint `gorm:"primaryKey" json:"id"`
	ProfessionalInfoID uint `gorm:"uniqueIndex;not null" json:"professional_info_id"`

	IsAvailable     bool    `json:"is_available"`
	CurrentActivity *string `gorm:"size:255" json:"current_activity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
