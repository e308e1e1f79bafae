package database

import (
	"errors"
	"strings"

	"github.com/avalero/blog-backend/models"
	"gorm.io/gorm"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindAll returns all tags
func (r *TagRepo) FindAll() ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Find(&tags).Error
	return tags, err
}

// FindByID returns a tag by id, or nil if no such tag exists
func (r *TagRepo) FindByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindByName returns tags whose name contains the given string,
// case-insensitively
func (r *TagRepo) FindByName(name string) ([]*models.Tag, error) {
	var tags []*models.Tag
	pattern := "%" + strings.ToLower(name) + "%"
	err := r.db.Where("LOWER(name) LIKE ?", pattern).Find(&tags).Error
	return tags, err
}

// FindByPostID returns the tags attached to a post
func (r *TagRepo) FindByPostID(postID uint) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Where("post_tags.post_id = ?", postID).
		Find(&tags).Error
	return tags, err
}

// FindByNameAndPostID returns the tags of a post whose name contains the
// given string, case-insensitively
func (r *TagRepo) FindByNameAndPostID(name string, postID uint) ([]*models.Tag, error) {
	var tags []*models.Tag
	pattern := "%" + strings.ToLower(name) + "%"
	err := r.db.Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Where("post_tags.post_id = ? AND LOWER(tags.name) LIKE ?", postID, pattern).
		Find(&tags).Error
	return tags, err
}

// FindPostsByTagID returns the posts a tag is attached to
func (r *TagRepo) FindPostsByTagID(tagID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.Preload("Blog").Preload("Tags").
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id = ?", tagID).
		Find(&posts).Error
	return posts, err
}

// ExistsByName reports whether a tag already uses the exact name
func (r *TagRepo) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Tag{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// Add inserts a new tag
func (r *TagRepo) Add(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// Update updates an existing tag
func (r *TagRepo) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

// Delete removes a tag and its post associations
func (r *TagRepo) Delete(id uint) error {
	return r.db.Select("Posts").Delete(&models.Tag{ID: id}).Error
}
