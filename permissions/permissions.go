// Package permissions holds the ownership predicate shared by every API
// surface. The functions are pure: they never touch the store and never
// raise; callers translate a false result into whatever denial their
// transport speaks.
package permissions

import (
	"github.com/avalero/blog-backend/models"
)

func IsSuperuser(user *models.User) bool {
	return user != nil && user.IsSuperuser
}

func IsBlogOwner(user *models.User, blog *models.Blog) bool {
	return user != nil && blog != nil && user.ID == blog.UserID
}

// CanViewPost: reading is unrestricted, anonymous included.
func CanViewPost(_ *models.User, _ *models.Post) bool {
	return true
}

func CanAddPost(user *models.User, blog *models.Blog) bool {
	return IsSuperuser(user) || IsBlogOwner(user, blog)
}

func CanEditBlog(user *models.User, blog *models.Blog) bool {
	return IsSuperuser(user) || IsBlogOwner(user, blog)
}

// CanEditPost requires post.Blog to be populated; editing a post is exactly
// editing its blog.
func CanEditPost(user *models.User, post *models.Post) bool {
	if IsSuperuser(user) {
		return true
	}
	if post == nil {
		return false
	}
	return IsBlogOwner(user, post.Blog)
}
