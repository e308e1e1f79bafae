package database

import (
	"errors"
	"strings"

	"github.com/avalero/blog-backend/models"
	"gorm.io/gorm"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// FindAll returns all blogs with their owners
func (r *BlogRepo) FindAll() ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.Preload("User").Find(&blogs).Error
	return blogs, err
}

// FindByID returns a blog by id, or nil if no such blog exists
func (r *BlogRepo) FindByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Preload("User").First(&blog, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindByUserID returns the blog owned by the user, or nil if they have none
func (r *BlogRepo) FindByUserID(userID uint) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Preload("User").Where("user_id = ?", userID).First(&blog).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindByTitle returns blogs whose title contains the given string,
// case-insensitively
func (r *BlogRepo) FindByTitle(title string) ([]*models.Blog, error) {
	var blogs []*models.Blog
	pattern := "%" + strings.ToLower(title) + "%"
	err := r.db.Preload("User").Where("LOWER(title) LIKE ?", pattern).Find(&blogs).Error
	return blogs, err
}

// ExistsByTitle reports whether any blog already uses the exact title
func (r *BlogRepo) ExistsByTitle(title string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Blog{}).Where("title = ?", title).Count(&count).Error
	return count > 0, err
}

// Exists reports whether a blog with the id exists
func (r *BlogRepo) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Blog{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Add inserts a new blog
func (r *BlogRepo) Add(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

// Update updates an existing blog
func (r *BlogRepo) Update(blog *models.Blog) error {
	return r.db.Save(blog).Error
}

// Delete removes a blog and all of its posts
func (r *BlogRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Blog{}, id).Error
	})
}
