package services

import (
	"strings"

	"github.com/avalero/blog-backend/database"
	"github.com/avalero/blog-backend/errs"
	"github.com/avalero/blog-backend/models"
	"github.com/avalero/blog-backend/permissions"
)

// BlogService owns every blog operation for both API surfaces. All
// validation, existence and ownership checks happen here so REST and
// GraphQL can only differ in presentation.
type BlogService struct {
	db database.Database
}

func NewBlogService(db database.Database) *BlogService {
	return &BlogService{db: db}
}

func (s *BlogService) List() ([]*models.Blog, error) {
	blogs, err := s.db.BlogRepo().FindAll()
	return blogs, errs.Wrap(err, "Error fetching blogs")
}

func (s *BlogService) Get(id uint) (*models.Blog, error) {
	blog, err := s.db.BlogRepo().FindByID(id)
	if err != nil {
		return nil, errs.Wrap(err, "Error fetching blog")
	}
	if blog == nil {
		return nil, errs.NewNotFoundError("Blog not found")
	}
	return blog, nil
}

func (s *BlogService) ByUser(userID uint) ([]*models.Blog, error) {
	blog, err := s.db.BlogRepo().FindByUserID(userID)
	if err != nil {
		return nil, errs.Wrap(err, "Error fetching blogs")
	}
	if blog == nil {
		return []*models.Blog{}, nil
	}
	return []*models.Blog{blog}, nil
}

func (s *BlogService) ByTitle(title string) ([]*models.Blog, error) {
	blogs, err := s.db.BlogRepo().FindByTitle(title)
	return blogs, errs.Wrap(err, "Error fetching blogs")
}

func (s *BlogService) Create(actor *models.User, title, description string) (*models.Blog, error) {
	if actor == nil {
		return nil, errs.NewAuthenticationRequiredError("You are not authenticated")
	}
	if err := validateBlogTitle(title); err != nil {
		return nil, err
	}
	if err := requireText(description, "Description is required", "description"); err != nil {
		return nil, err
	}

	existing, err := s.db.BlogRepo().FindByUserID(actor.ID)
	if err != nil {
		return nil, errs.Wrap(err, "Error creating blog")
	}
	if existing != nil {
		return nil, errs.NewBadRequestError("You already have a blog")
	}

	taken, err := s.db.BlogRepo().ExistsByTitle(strings.TrimSpace(title))
	if err != nil {
		return nil, errs.Wrap(err, "Error creating blog")
	}
	if taken {
		return nil, errs.NewBadRequestErrorWithField("Blog title already exists", "title")
	}

	blog := &models.Blog{
		Title:       strings.TrimSpace(title),
		Description: description,
		UserID:      actor.ID,
	}
	if err := s.db.BlogRepo().Add(blog); err != nil {
		return nil, errs.Wrap(err, "Error creating blog")
	}
	return s.Get(blog.ID)
}

func (s *BlogService) Update(actor *models.User, id uint, title, description string) (*models.Blog, error) {
	if actor == nil {
		return nil, errs.NewAuthenticationRequiredError("You are not authenticated")
	}

	blog, err := s.db.BlogRepo().FindByID(id)
	if err != nil {
		return nil, errs.Wrap(err, "Error updating blog")
	}
	if blog == nil {
		return nil, errs.NewNotFoundError("Blog not found")
	}
	if !permissions.CanEditBlog(actor, blog) {
		return nil, errs.NewPermissionDeniedError("You are not allowed to update this blog")
	}

	if err := validateBlogTitle(title); err != nil {
		return nil, err
	}
	if err := requireText(description, "Description is required", "description"); err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(title)
	if trimmed != blog.Title {
		taken, err := s.db.BlogRepo().ExistsByTitle(trimmed)
		if err != nil {
			return nil, errs.Wrap(err, "Error updating blog")
		}
		if taken {
			return nil, errs.NewBadRequestErrorWithField("Blog title already exists", "title")
		}
	}

	blog.Title = trimmed
	blog.Description = description
	if err := s.db.BlogRepo().Update(blog); err != nil {
		return nil, errs.Wrap(err, "Error updating blog")
	}
	return s.Get(blog.ID)
}

func (s *BlogService) Delete(actor *models.User, id uint) error {
	if actor == nil {
		return errs.NewAuthenticationRequiredError("You are not authenticated")
	}

	blog, err := s.db.BlogRepo().FindByID(id)
	if err != nil {
		return errs.Wrap(err, "Error deleting blog")
	}
	if blog == nil {
		return errs.NewNotFoundError("Blog not found")
	}
	if !permissions.CanEditBlog(actor, blog) {
		return errs.NewPermissionDeniedError("You are not allowed to delete this blog")
	}

	return errs.Wrap(s.db.BlogRepo().Delete(id), "Error deleting blog")
}
