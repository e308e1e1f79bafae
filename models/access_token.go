package models

import (
	"time"
)

// AccessToken is the single opaque bearer credential of a user. The unique
// index on UserID enforces get-or-create semantics under concurrent logins.
type AccessToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex"`
	Token     string    `json:"token" gorm:"type:text;not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
