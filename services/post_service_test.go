package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avalero/blog-backend/errs"
)

func TestPostServiceCreateProvisionsBlog(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	owner := createTestUser(t, db, "alvaro", false)

	post, err := svc.Create(owner, "Primera entrada", "Hola mundo")
	require.NoError(t, err)
	assert.Equal(t, "Primera entrada", post.Title)

	blog, err := db.BlogRepo().FindByUserID(owner.ID)
	require.NoError(t, err)
	require.NotNil(t, blog)
	assert.Equal(t, "Blog de alvaro", blog.Title)
	assert.Equal(t, "Blog personal", blog.Description)
	assert.Equal(t, blog.ID, post.BlogID)

	// The second post reuses the provisioned blog.
	second, err := svc.Create(owner, "Segunda entrada", "Más contenido")
	require.NoError(t, err)
	assert.Equal(t, blog.ID, second.BlogID)

	blogs, err := db.BlogRepo().FindAll()
	require.NoError(t, err)
	assert.Len(t, blogs, 1)
}

func TestPostServiceCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	owner := createTestUser(t, db, "alvaro", false)

	_, err := svc.Create(nil, "Primera entrada", "Hola")
	require.Error(t, err)
	assert.True(t, errs.IsAuthenticationRequired(err))

	_, err = svc.Create(owner, "abc", "Hola")
	require.Error(t, err)
	assert.Equal(t, "Post title must be at least 5 characters long", err.Error())

	_, err = svc.Create(owner, "   ", "Hola")
	require.Error(t, err)
	assert.Equal(t, "Title is required", err.Error())

	_, err = svc.Create(owner, "Primera entrada", "")
	require.Error(t, err)
	assert.Equal(t, "Content is required", err.Error())
}

func TestPostServiceListByBlog(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	owner := createTestUser(t, db, "alvaro", false)
	blog := createTestBlog(t, db, owner, "Blog de Alvaro")
	createTestPost(t, db, blog, "Primera entrada")
	createTestPost(t, db, blog, "Segunda entrada")

	posts, err := svc.ListByBlog(blog.ID)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	// A nonexistent blog id is a client error, not an empty result.
	_, err = svc.ListByBlog(9999)
	require.Error(t, err)
	assert.True(t, errs.IsBadRequest(err))
	assert.Equal(t, "Invalid blog ID", err.Error())
}

func TestPostServiceListForOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	owner := createTestUser(t, db, "alvaro", false)
	other := createTestUser(t, db, "lucia", false)
	super := createTestUser(t, db, "admin", true)

	blog := createTestBlog(t, db, owner, "Blog de Alvaro")
	otherBlog := createTestBlog(t, db, other, "Blog de Lucia")
	createTestPost(t, db, blog, "Entrada de alvaro")
	createTestPost(t, db, otherBlog, "Entrada de lucia")

	_, err := svc.ListForOwner(nil)
	require.Error(t, err)
	assert.True(t, errs.IsAuthenticationRequired(err))

	posts, err := svc.ListForOwner(owner)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Entrada de alvaro", posts[0].Title)

	posts, err = svc.ListForOwner(super)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestPostServiceByUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	owner := createTestUser(t, db, "alvaro", false)
	viewer := createTestUser(t, db, "lucia", false)
	blog := createTestBlog(t, db, owner, "Blog de Alvaro")
	createTestPost(t, db, blog, "Primera entrada")

	_, err := svc.ByUser(nil, owner.ID)
	require.Error(t, err)
	assert.True(t, errs.IsAuthenticationRequired(err))

	posts, err := svc.ByUser(viewer, owner.ID)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestPostServiceUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	owner := createTestUser(t, db, "alvaro", false)
	other := createTestUser(t, db, "lucia", false)
	super := createTestUser(t, db, "admin", true)
	blog := createTestBlog(t, db, owner, "Blog de Alvaro")
	post := createTestPost(t, db, blog, "Primera entrada")

	t.Run("owner can update", func(t *testing.T) {
		updated, err := svc.Update(owner, post.ID, "Entrada revisada", "Nuevo contenido")
		require.NoError(t, err)
		assert.Equal(t, "Entrada revisada", updated.Title)
		assert.Equal(t, "Nuevo contenido", updated.Content)
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		_, err := svc.Update(other, post.ID, "Entrada ajena", "x")
		require.Error(t, err)
		assert.True(t, errs.IsPermissionDenied(err))
		assert.Equal(t, "You are not allowed to edit this post", err.Error())
	})

	t.Run("superuser bypasses ownership", func(t *testing.T) {
		updated, err := svc.Update(super, post.ID, "Entrada moderada", "Contenido moderado")
		require.NoError(t, err)
		assert.Equal(t, "Entrada moderada", updated.Title)
	})

	t.Run("unknown post", func(t *testing.T) {
		_, err := svc.Update(owner, 9999, "Titulo valido", "x")
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
		assert.Equal(t, "Post not found", err.Error())
	})
}

func TestPostServiceDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	owner := createTestUser(t, db, "alvaro", false)
	other := createTestUser(t, db, "lucia", false)
	blog := createTestBlog(t, db, owner, "Blog de Alvaro")
	post := createTestPost(t, db, blog, "Primera entrada")

	err := svc.Delete(other, post.ID)
	require.Error(t, err)
	assert.Equal(t, "You are not allowed to delete this post", err.Error())

	require.NoError(t, svc.Delete(owner, post.ID))

	_, err = svc.Get(post.ID)
	assert.True(t, errs.IsNotFound(err))
}
