package models

// Tag is a shared vocabulary entry. Tags have no owner and may be attached
// to posts across any blog.
type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:text;not null;uniqueIndex"`

	Posts []Post `json:"posts,omitempty" gorm:"many2many:post_tags"`
}
