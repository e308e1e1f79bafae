package services

import (
	"fmt"
	"strings"

	"github.com/avalero/blog-backend/database"
	"github.com/avalero/blog-backend/errs"
	"github.com/avalero/blog-backend/models"
	"github.com/avalero/blog-backend/permissions"
)

// PostService owns every post operation. Post ownership is always derived
// from the acting user's blog; a client-supplied blog id is never trusted.
type PostService struct {
	db database.Database
}

func NewPostService(db database.Database) *PostService {
	return &PostService{db: db}
}

// List returns all posts. Public API listing is unscoped: reading is free
// for everyone.
func (s *PostService) List() ([]*models.Post, error) {
	posts, err := s.db.PostRepo().FindAll()
	return posts, errs.Wrap(err, "Error fetching posts")
}

// ListByBlog returns the posts of one blog. A nonexistent blog id is a
// client error, uniformly on both surfaces.
func (s *PostService) ListByBlog(blogID uint) ([]*models.Post, error) {
	exists, err := s.db.BlogRepo().Exists(blogID)
	if err != nil {
		return nil, errs.Wrap(err, "Error fetching posts")
	}
	if !exists {
		return nil, errs.NewBadRequestError("Invalid blog ID")
	}
	posts, err := s.db.PostRepo().FindByBlogID(blogID)
	return posts, errs.Wrap(err, "Error fetching posts")
}

// ListForOwner is the admin-style scoped listing: non-superusers see only
// the posts of their own blog, superusers see everything.
func (s *PostService) ListForOwner(actor *models.User) ([]*models.Post, error) {
	if actor == nil {
		return nil, errs.NewAuthenticationRequiredError("You are not authenticated")
	}
	if actor.IsSuperuser {
		return s.List()
	}
	posts, err := s.db.PostRepo().FindByOwnerID(actor.ID)
	return posts, errs.Wrap(err, "Error fetching posts")
}

func (s *PostService) Get(id uint) (*models.Post, error) {
	post, err := s.db.PostRepo().FindByID(id)
	if err != nil {
		return nil, errs.Wrap(err, "Error fetching post")
	}
	if post == nil {
		return nil, errs.NewNotFoundError("Post not found")
	}
	return post, nil
}

func (s *PostService) ByTitle(title string) ([]*models.Post, error) {
	posts, err := s.db.PostRepo().FindByTitle(title)
	return posts, errs.Wrap(err, "Error fetching posts")
}

// ByUser lists the posts of the given user's blog. Unlike the other post
// queries this one requires an authenticated caller.
func (s *PostService) ByUser(actor *models.User, userID uint) ([]*models.Post, error) {
	if actor == nil {
		return nil, errs.NewAuthenticationRequiredError("You are not authenticated")
	}
	posts, err := s.db.PostRepo().FindByOwnerID(userID)
	return posts, errs.Wrap(err, "Error fetching posts")
}

// Create attaches a new post to the acting user's blog, provisioning the
// blog first if they have none. Both steps run in one transaction.
func (s *PostService) Create(actor *models.User, title, content string) (*models.Post, error) {
	if actor == nil {
		return nil, errs.NewAuthenticationRequiredError("You are not authenticated")
	}
	if err := validatePostTitle(title); err != nil {
		return nil, err
	}
	if err := requireText(content, "Content is required", "content"); err != nil {
		return nil, err
	}

	var post *models.Post
	err := s.db.Transaction(func(tx database.Database) error {
		blog, err := tx.BlogRepo().FindByUserID(actor.ID)
		if err != nil {
			return err
		}
		if blog == nil {
			blog = &models.Blog{
				Title:       fmt.Sprintf("Blog de %s", actor.Username),
				Description: "Blog personal",
				UserID:      actor.ID,
			}
			if err := tx.BlogRepo().Add(blog); err != nil {
				return err
			}
		}
		post = &models.Post{
			Title:   strings.TrimSpace(title),
			Content: content,
			BlogID:  blog.ID,
		}
		return tx.PostRepo().Add(post)
	})
	if err != nil {
		return nil, errs.Wrap(err, "Error creating post")
	}
	return s.Get(post.ID)
}

func (s *PostService) Update(actor *models.User, id uint, title, content string) (*models.Post, error) {
	if actor == nil {
		return nil, errs.NewAuthenticationRequiredError("You are not authenticated")
	}

	post, err := s.db.PostRepo().FindByID(id)
	if err != nil {
		return nil, errs.Wrap(err, "Error updating post")
	}
	if post == nil {
		return nil, errs.NewNotFoundError("Post not found")
	}
	if !permissions.CanEditPost(actor, post) {
		return nil, errs.NewPermissionDeniedError("You are not allowed to edit this post")
	}

	if err := validatePostTitle(title); err != nil {
		return nil, err
	}
	if err := requireText(content, "Content is required", "content"); err != nil {
		return nil, err
	}

	post.Title = strings.TrimSpace(title)
	post.Content = content
	if err := s.db.PostRepo().Update(post); err != nil {
		return nil, errs.Wrap(err, "Error updating post")
	}
	return s.Get(post.ID)
}

func (s *PostService) Delete(actor *models.User, id uint) error {
	if actor == nil {
		return errs.NewAuthenticationRequiredError("You are not authenticated")
	}

	post, err := s.db.PostRepo().FindByID(id)
	if err != nil {
		return errs.Wrap(err, "Error deleting post")
	}
	if post == nil {
		return errs.NewNotFoundError("Post not found")
	}
	if !permissions.CanEditPost(actor, post) {
		return errs.NewPermissionDeniedError("You are not allowed to delete this post")
	}

	return errs.Wrap(s.db.PostRepo().Delete(id), "Error deleting post")
}
