package models

import (
	"time"
)

// User is an account that may own at most one Blog. Superusers pass every
// ownership check.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"type:text;not null;uniqueIndex"`
	Email        *string   `json:"email,omitempty" gorm:"type:text;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"type:text;not null"`
	IsSuperuser  bool      `json:"is_superuser" gorm:"not null;default:false"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Blog *Blog `json:"blog,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
