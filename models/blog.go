package models

import (
	"time"
)

// Blog belongs to exactly one User. The owner never changes after creation.
type Blog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"type:text;not null;uniqueIndex"`
	Description string    `json:"description" gorm:"type:text;not null"`
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE"`
}
