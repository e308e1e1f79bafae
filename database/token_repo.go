package database

import (
	"errors"

	"github.com/avalero/blog-backend/models"
	"gorm.io/gorm"
)

type TokenRepo struct {
	db *gorm.DB
}

func NewTokenRepo(db *gorm.DB) *TokenRepo {
	return &TokenRepo{db}
}

// FindByUserID returns the user's token, or nil if they have none
func (r *TokenRepo) FindByUserID(userID uint) (*models.AccessToken, error) {
	var token models.AccessToken
	err := r.db.Where("user_id = ?", userID).First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// FindByToken returns the stored token matching the opaque value with its
// user preloaded, or nil if the value is unknown
func (r *TokenRepo) FindByToken(value string) (*models.AccessToken, error) {
	var token models.AccessToken
	err := r.db.Preload("User").Where("token = ?", value).First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// Add inserts a new token. The unique index on user_id makes concurrent
// duplicate logins fail here instead of storing two tokens.
func (r *TokenRepo) Add(token *models.AccessToken) error {
	return r.db.Create(token).Error
}

// DeleteByUserID removes the user's token and reports whether one existed
func (r *TokenRepo) DeleteByUserID(userID uint) (bool, error) {
	res := r.db.Where("user_id = ?", userID).Delete(&models.AccessToken{})
	return res.RowsAffected > 0, res.Error
}
