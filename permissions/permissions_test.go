package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avalero/blog-backend/models"
)

func TestIsSuperuser(t *testing.T) {
	assert.False(t, IsSuperuser(nil))
	assert.False(t, IsSuperuser(&models.User{ID: 1}))
	assert.True(t, IsSuperuser(&models.User{ID: 1, IsSuperuser: true}))
}

func TestIsBlogOwner(t *testing.T) {
	owner := &models.User{ID: 1}
	other := &models.User{ID: 2}
	blog := &models.Blog{ID: 10, UserID: 1}

	assert.True(t, IsBlogOwner(owner, blog))
	assert.False(t, IsBlogOwner(other, blog))
	assert.False(t, IsBlogOwner(nil, blog))
	assert.False(t, IsBlogOwner(owner, nil))
}

func TestCanViewPost(t *testing.T) {
	assert.True(t, CanViewPost(nil, nil))
	assert.True(t, CanViewPost(&models.User{ID: 1}, &models.Post{ID: 1}))
}

func TestCanEditBlog(t *testing.T) {
	owner := &models.User{ID: 1}
	other := &models.User{ID: 2}
	super := &models.User{ID: 3, IsSuperuser: true}
	blog := &models.Blog{ID: 10, UserID: 1}

	tests := []struct {
		name string
		user *models.User
		blog *models.Blog
		want bool
	}{
		{"anonymous", nil, blog, false},
		{"owner", owner, blog, true},
		{"other user", other, blog, false},
		{"superuser", super, blog, true},
		{"superuser without blog", super, nil, true},
		{"owner without blog", owner, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanEditBlog(tt.user, tt.blog))
		})
	}
}

func TestCanAddPost(t *testing.T) {
	owner := &models.User{ID: 1}
	other := &models.User{ID: 2}
	super := &models.User{ID: 3, IsSuperuser: true}
	blog := &models.Blog{ID: 10, UserID: 1}

	assert.True(t, CanAddPost(owner, blog))
	assert.False(t, CanAddPost(other, blog))
	assert.True(t, CanAddPost(super, blog))
	assert.False(t, CanAddPost(nil, blog))
}

func TestCanEditPost(t *testing.T) {
	owner := &models.User{ID: 1}
	other := &models.User{ID: 2}
	super := &models.User{ID: 3, IsSuperuser: true}
	blog := &models.Blog{ID: 10, UserID: 1}
	post := &models.Post{ID: 100, BlogID: 10, Blog: blog}

	tests := []struct {
		name string
		user *models.User
		post *models.Post
		want bool
	}{
		{"anonymous", nil, post, false},
		{"owner of the blog", owner, post, true},
		{"other user", other, post, false},
		{"superuser", super, post, true},
		{"superuser nil post", super, nil, true},
		{"owner nil post", owner, nil, false},
		{"post without blog loaded", owner, &models.Post{ID: 101, BlogID: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanEditPost(tt.user, tt.post))
		})
	}
}
