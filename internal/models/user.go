package models

import "time"

const (
	RoleUser         = "User"
	RoleProfessional = "Professional"
	RoleAdmin        = "Admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'User'" json:"role"`

	Profile *Profile `json:"profile,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
