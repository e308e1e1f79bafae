package models

import (
	"time"
)

// Post belongs to exactly one Blog. Ownership is always derived from the
// blog, never supplied by the client.
type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	BlogID      uint      `json:"blog_id" gorm:"not null;index"`
	PublishedAt time.Time `json:"published_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at"`

	Blog *Blog `json:"blog,omitempty" gorm:"foreignKey:BlogID"`
	Tags []Tag `json:"tags,omitempty" gorm:"many2many:post_tags"`
}
