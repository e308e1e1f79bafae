package database

import (
	"github.com/avalero/blog-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	db        *gorm.DB
	userRepo  *UserRepo
	blogRepo  *BlogRepo
	postRepo  *PostRepo
	tagRepo   *TagRepo
	tokenRepo *TokenRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:        db,
		userRepo:  NewUserRepo(db),
		blogRepo:  NewBlogRepo(db),
		postRepo:  NewPostRepo(db),
		tagRepo:   NewTagRepo(db),
		tokenRepo: NewTokenRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) TokenRepo() *TokenRepo {
	return d.tokenRepo
}

// Transaction runs fn against a Database bound to a single transaction.
// Multi-step writes (auto-provisioning a blog before its first post) go
// through here so a failing step rolls back the whole unit.
func (d Database) Transaction(fn func(tx Database) error) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// RunMigration keeps the schema in sync with the model set.
func RunMigration(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Blog{},
		&models.Post{},
		&models.Tag{},
		&models.AccessToken{},
	)
}
