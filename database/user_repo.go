package database

import (
	"errors"

	"github.com/avalero/blog-backend/models"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindAll returns all users
func (r *UserRepo) FindAll() ([]*models.User, error) {
	var users []*models.User
	err := r.db.Find(&users).Error
	return users, err
}

// FindByID returns a user by id, or nil if no such user exists
func (r *UserRepo) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername returns a user by username, or nil if no such user exists
func (r *UserRepo) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail reports whether any user has the given email
func (r *UserRepo) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Add inserts a new user
func (r *UserRepo) Add(user *models.User) error {
	return r.db.Create(user).Error
}

// Update updates an existing user
func (r *UserRepo) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes a user by id. Owned blog, posts and token go with it.
func (r *UserRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var blog models.Blog
		err := tx.Where("user_id = ?", id).First(&blog).Error
		if err == nil {
			if err := tx.Where("blog_id = ?", blog.ID).Delete(&models.Post{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&blog).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.AccessToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}
