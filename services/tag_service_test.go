package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avalero/blog-backend/errs"
)

func TestTagServiceCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)
	user := createTestUser(t, db, "alvaro", false)

	t.Run("requires authentication", func(t *testing.T) {
		_, err := svc.Create(nil, "cocina")
		require.Error(t, err)
		assert.True(t, errs.IsAuthenticationRequired(err))
	})

	t.Run("rejects short name", func(t *testing.T) {
		_, err := svc.Create(user, "a")
		require.Error(t, err)
		assert.Equal(t, "Tag name must be at least 2 characters long", err.Error())
	})

	t.Run("rejects invalid characters", func(t *testing.T) {
		_, err := svc.Create(user, "co<ina")
		require.Error(t, err)
		assert.Equal(t, "Tag name contains invalid characters", err.Error())
	})

	t.Run("any authenticated user may create", func(t *testing.T) {
		tag, err := svc.Create(user, "cocina")
		require.NoError(t, err)
		assert.Equal(t, "cocina", tag.Name)
	})

	t.Run("unique name", func(t *testing.T) {
		_, err := svc.Create(user, "cocina")
		require.Error(t, err)
		assert.Equal(t, "Tag name already exists", err.Error())
	})
}

func TestTagServiceUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)
	creator := createTestUser(t, db, "alvaro", false)
	other := createTestUser(t, db, "lucia", false)

	tag, err := svc.Create(creator, "cocina")
	require.NoError(t, err)

	// Tags have no owner: a different authenticated user may rename and
	// delete them.
	renamed, err := svc.Update(other, tag.ID, "recetas")
	require.NoError(t, err)
	assert.Equal(t, "recetas", renamed.Name)

	require.NoError(t, svc.Delete(other, tag.ID))

	_, err = svc.Get(tag.ID)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
	assert.Equal(t, "Tag not found", err.Error())
}

func TestTagServiceAttachDetach(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)
	owner := createTestUser(t, db, "alvaro", false)
	other := createTestUser(t, db, "lucia", false)
	super := createTestUser(t, db, "admin", true)
	blog := createTestBlog(t, db, owner, "Blog de Alvaro")
	post := createTestPost(t, db, blog, "Primera entrada")

	tag, err := svc.Create(owner, "cocina")
	require.NoError(t, err)

	t.Run("requires authentication", func(t *testing.T) {
		_, _, err := svc.AddToPost(nil, post.ID, tag.ID)
		require.Error(t, err)
		assert.True(t, errs.IsAuthenticationRequired(err))
	})

	t.Run("non-owner may not attach", func(t *testing.T) {
		_, _, err := svc.AddToPost(other, post.ID, tag.ID)
		require.Error(t, err)
		assert.True(t, errs.IsPermissionDenied(err))
		assert.Equal(t, "You are not allowed to modify this post", err.Error())
	})

	t.Run("owner attaches", func(t *testing.T) {
		got, gotTag, err := svc.AddToPost(owner, post.ID, tag.ID)
		require.NoError(t, err)
		assert.Equal(t, tag.ID, gotTag.ID)
		require.Len(t, got.Tags, 1)
		assert.Equal(t, "cocina", got.Tags[0].Name)
	})

	t.Run("unknown pair", func(t *testing.T) {
		_, _, err := svc.AddToPost(owner, post.ID, 9999)
		require.Error(t, err)
		assert.Equal(t, "Post or Tag not found", err.Error())
	})

	t.Run("superuser detaches", func(t *testing.T) {
		got, _, err := svc.RemoveFromPost(super, post.ID, tag.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Tags)

		// Detaching never deletes the tag itself.
		kept, err := svc.Get(tag.ID)
		require.NoError(t, err)
		assert.Equal(t, "cocina", kept.Name)
	})
}

func TestTagServiceQueries(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)
	owner := createTestUser(t, db, "alvaro", false)
	blog := createTestBlog(t, db, owner, "Blog de Alvaro")
	post := createTestPost(t, db, blog, "Primera entrada")
	otherPost := createTestPost(t, db, blog, "Segunda entrada")

	cocina, err := svc.Create(owner, "cocina")
	require.NoError(t, err)
	viajes, err := svc.Create(owner, "viajes")
	require.NoError(t, err)

	_, _, err = svc.AddToPost(owner, post.ID, cocina.ID)
	require.NoError(t, err)
	_, _, err = svc.AddToPost(owner, post.ID, viajes.ID)
	require.NoError(t, err)
	_, _, err = svc.AddToPost(owner, otherPost.ID, viajes.ID)
	require.NoError(t, err)

	t.Run("by name substring", func(t *testing.T) {
		tags, err := svc.ByName("coc")
		require.NoError(t, err)
		require.Len(t, tags, 1)
		assert.Equal(t, "cocina", tags[0].Name)
	})

	t.Run("by post", func(t *testing.T) {
		tags, err := svc.ByPost(post.ID)
		require.NoError(t, err)
		assert.Len(t, tags, 2)

		_, err = svc.ByPost(9999)
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("by post title", func(t *testing.T) {
		tags, err := svc.ByPostTitle("Primera entrada")
		require.NoError(t, err)
		assert.Len(t, tags, 2)

		_, err = svc.ByPostTitle("No existe")
		require.Error(t, err)
		assert.Equal(t, "Post not found", err.Error())
	})

	t.Run("by name and post", func(t *testing.T) {
		tags, err := svc.ByNameAndPost("via", post.ID)
		require.NoError(t, err)
		require.Len(t, tags, 1)
		assert.Equal(t, "viajes", tags[0].Name)
	})

	t.Run("by name and post title", func(t *testing.T) {
		tags, err := svc.ByNameAndPostTitle("cocina", "Segunda entrada")
		require.NoError(t, err)
		assert.Empty(t, tags)
	})

	t.Run("posts by tag", func(t *testing.T) {
		posts, err := svc.PostsByTag(viajes.ID)
		require.NoError(t, err)
		assert.Len(t, posts, 2)

		_, err = svc.PostsByTag(9999)
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
	})
}

func TestTagServiceListAll(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)
	user := createTestUser(t, db, "alvaro", false)

	for _, name := range []string{"cocina", "viajes", "tecnología"} {
		_, err := svc.Create(user, name)
		require.NoError(t, err)
	}

	tags, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, tags, 3)

	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	assert.ElementsMatch(t, []string{"cocina", "viajes", "tecnología"}, names)
}
