package database

import (
	"errors"
	"strings"

	"github.com/avalero/blog-backend/models"
	"gorm.io/gorm"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// FindAll returns all posts with blog and tags preloaded
func (r *PostRepo) FindAll() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.Preload("Blog").Preload("Tags").Find(&posts).Error
	return posts, err
}

// FindByID returns a post by id, or nil if no such post exists. The blog is
// preloaded because every edit check walks post -> blog -> owner.
func (r *PostRepo) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Blog").Preload("Tags").First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByBlogID returns the posts of a single blog
func (r *PostRepo) FindByBlogID(blogID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.Preload("Blog").Preload("Tags").Where("blog_id = ?", blogID).Find(&posts).Error
	return posts, err
}

// FindByOwnerID returns the posts belonging to the blog owned by the user
func (r *PostRepo) FindByOwnerID(userID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.Preload("Blog").Preload("Tags").
		Joins("JOIN blogs ON blogs.id = posts.blog_id").
		Where("blogs.user_id = ?", userID).
		Find(&posts).Error
	return posts, err
}

// FindByTitle returns posts whose title contains the given string,
// case-insensitively
func (r *PostRepo) FindByTitle(title string) ([]*models.Post, error) {
	var posts []*models.Post
	pattern := "%" + strings.ToLower(title) + "%"
	err := r.db.Preload("Blog").Preload("Tags").Where("LOWER(title) LIKE ?", pattern).Find(&posts).Error
	return posts, err
}

// FindByExactTitle returns the first post with exactly this title, or nil
func (r *PostRepo) FindByExactTitle(title string) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Blog").Preload("Tags").Where("title = ?", title).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new post
func (r *PostRepo) Add(post *models.Post) error {
	return r.db.Create(post).Error
}

// Update updates an existing post
func (r *PostRepo) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete removes a post by id
func (r *PostRepo) Delete(id uint) error {
	return r.db.Select("Tags").Delete(&models.Post{ID: id}).Error
}

// AddTag attaches a tag to a post. Attaching an already attached tag is a
// no-op.
func (r *PostRepo) AddTag(post *models.Post, tag *models.Tag) error {
	return r.db.Model(post).Association("Tags").Append(tag)
}

// RemoveTag detaches a tag from a post
func (r *PostRepo) RemoveTag(post *models.Post, tag *models.Tag) error {
	return r.db.Model(post).Association("Tags").Delete(tag)
}
