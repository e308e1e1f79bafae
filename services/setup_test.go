package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avalero/blog-backend/auth"
	"github.com/avalero/blog-backend/database"
	"github.com/avalero/blog-backend/models"
)

func newTestDB(t *testing.T) database.Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(gdb))

	return database.New(gdb)
}

func newAuthService(t *testing.T, db database.Database) *auth.Service {
	t.Helper()
	return auth.NewService(db, []byte("test-signing-key"))
}

func createTestUser(t *testing.T, db database.Database, username string, superuser bool) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		IsSuperuser:  superuser,
		IsActive:     true,
	}
	require.NoError(t, db.UserRepo().Add(user))
	return user
}

func createTestBlog(t *testing.T, db database.Database, owner *models.User, title string) *models.Blog {
	t.Helper()

	blog := &models.Blog{Title: title, Description: "Blog personal", UserID: owner.ID}
	require.NoError(t, db.BlogRepo().Add(blog))
	return blog
}

func createTestPost(t *testing.T, db database.Database, blog *models.Blog, title string) *models.Post {
	t.Helper()

	post := &models.Post{Title: title, Content: "Contenido de prueba", BlogID: blog.ID}
	require.NoError(t, db.PostRepo().Add(post))
	return post
}
