package services

import (
	"strings"

	"github.com/avalero/blog-backend/database"
	"github.com/avalero/blog-backend/errs"
	"github.com/avalero/blog-backend/models"
	"github.com/avalero/blog-backend/permissions"
)

// TagService owns the shared tag vocabulary. Tags have no owner: any
// authenticated user may create, rename or delete any tag. Attaching or
// detaching a tag to a post, by contrast, requires edit rights on that
// post.
type TagService struct {
	db database.Database
}

func NewTagService(db database.Database) *TagService {
	return &TagService{db: db}
}

func (s *TagService) List() ([]*models.Tag, error) {
	tags, err := s.db.TagRepo().FindAll()
	return tags, errs.Wrap(err, "Error fetching tags")
}

func (s *TagService) Get(id uint) (*models.Tag, error) {
	tag, err := s.db.TagRepo().FindByID(id)
	if err != nil {
		return nil, errs.Wrap(err, "Error fetching tags")
	}
	if tag == nil {
		return nil, errs.NewNotFoundError("Tag not found")
	}
	return tag, nil
}

func (s *TagService) ByName(name string) ([]*models.Tag, error) {
	tags, err := s.db.TagRepo().FindByName(name)
	return tags, errs.Wrap(err, "Error filtering tags")
}

func (s *TagService) ByPost(postID uint) ([]*models.Tag, error) {
	if _, err := s.requirePost(postID); err != nil {
		return nil, err
	}
	tags, err := s.db.TagRepo().FindByPostID(postID)
	return tags, errs.Wrap(err, "Error filtering tags")
}

func (s *TagService) ByPostTitle(title string) ([]*models.Tag, error) {
	post, err := s.db.PostRepo().FindByExactTitle(title)
	if err != nil {
		return nil, errs.Wrap(err, "Error filtering tags")
	}
	if post == nil {
		return nil, errs.NewNotFoundError("Post not found")
	}
	tags, err := s.db.TagRepo().FindByPostID(post.ID)
	return tags, errs.Wrap(err, "Error filtering tags")
}

func (s *TagService) ByNameAndPost(name string, postID uint) ([]*models.Tag, error) {
	if _, err := s.requirePost(postID); err != nil {
		return nil, err
	}
	tags, err := s.db.TagRepo().FindByNameAndPostID(name, postID)
	return tags, errs.Wrap(err, "Error filtering tags")
}

func (s *TagService) ByNameAndPostTitle(name, title string) ([]*models.Tag, error) {
	post, err := s.db.PostRepo().FindByExactTitle(title)
	if err != nil {
		return nil, errs.Wrap(err, "Error filtering tags")
	}
	if post == nil {
		return nil, errs.NewNotFoundError("Post not found")
	}
	tags, err := s.db.TagRepo().FindByNameAndPostID(name, post.ID)
	return tags, errs.Wrap(err, "Error filtering tags")
}

func (s *TagService) PostsByTag(tagID uint) ([]*models.Post, error) {
	tag, err := s.db.TagRepo().FindByID(tagID)
	if err != nil {
		return nil, errs.Wrap(err, "Error fetching tags")
	}
	if tag == nil {
		return nil, errs.NewNotFoundError("Tag not found")
	}
	posts, err := s.db.TagRepo().FindPostsByTagID(tagID)
	return posts, errs.Wrap(err, "Error fetching tags")
}

func (s *TagService) Create(actor *models.User, name string) (*models.Tag, error) {
	if actor == nil {
		return nil, errs.NewAuthenticationRequiredError("You are not authenticated")
	}
	if err := validateTagName(name); err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(name)
	taken, err := s.db.TagRepo().ExistsByName(trimmed)
	if err != nil {
		return nil, errs.Wrap(err, "Error creating tag")
	}
	if taken {
		return nil, errs.NewBadRequestErrorWithField("Tag name already exists", "name")
	}

	tag := &models.Tag{Name: trimmed}
	if err := s.db.TagRepo().Add(tag); err != nil {
		return nil, errs.Wrap(err, "Error creating tag")
	}
	return tag, nil
}

func (s *TagService) Update(actor *models.User, id uint, name string) (*models.Tag, error) {
	if actor == nil {
		return nil, errs.NewAuthenticationRequiredError("You are not authenticated")
	}

	tag, err := s.db.TagRepo().FindByID(id)
	if err != nil {
		return nil, errs.Wrap(err, "Error updating tag")
	}
	if tag == nil {
		return nil, errs.NewNotFoundError("Tag not found")
	}

	if err := validateTagName(name); err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(name)
	if trimmed != tag.Name {
		taken, err := s.db.TagRepo().ExistsByName(trimmed)
		if err != nil {
			return nil, errs.Wrap(err, "Error updating tag")
		}
		if taken {
			return nil, errs.NewBadRequestErrorWithField("Tag name already exists", "name")
		}
	}

	tag.Name = trimmed
	if err := s.db.TagRepo().Update(tag); err != nil {
		return nil, errs.Wrap(err, "Error updating tag")
	}
	return tag, nil
}

func (s *TagService) Delete(actor *models.User, id uint) error {
	if actor == nil {
		return errs.NewAuthenticationRequiredError("You are not authenticated")
	}

	tag, err := s.db.TagRepo().FindByID(id)
	if err != nil {
		return errs.Wrap(err, "Error deleting tag")
	}
	if tag == nil {
		return errs.NewNotFoundError("Tag not found")
	}

	return errs.Wrap(s.db.TagRepo().Delete(id), "Error deleting tag")
}

// AddToPost attaches a tag to a post on behalf of the actor.
func (s *TagService) AddToPost(actor *models.User, postID, tagID uint) (*models.Post, *models.Tag, error) {
	post, tag, err := s.postAndTagForModify(actor, postID, tagID, "Error adding tag to post")
	if err != nil {
		return nil, nil, err
	}
	if err := s.db.PostRepo().AddTag(post, tag); err != nil {
		return nil, nil, errs.Wrap(err, "Error adding tag to post")
	}
	post, err = s.db.PostRepo().FindByID(postID)
	if err != nil {
		return nil, nil, errs.Wrap(err, "Error adding tag to post")
	}
	return post, tag, nil
}

// RemoveFromPost detaches a tag from a post on behalf of the actor.
func (s *TagService) RemoveFromPost(actor *models.User, postID, tagID uint) (*models.Post, *models.Tag, error) {
	post, tag, err := s.postAndTagForModify(actor, postID, tagID, "Error removing tag from post")
	if err != nil {
		return nil, nil, err
	}
	if err := s.db.PostRepo().RemoveTag(post, tag); err != nil {
		return nil, nil, errs.Wrap(err, "Error removing tag from post")
	}
	post, err = s.db.PostRepo().FindByID(postID)
	if err != nil {
		return nil, nil, errs.Wrap(err, "Error removing tag from post")
	}
	return post, tag, nil
}

func (s *TagService) postAndTagForModify(actor *models.User, postID, tagID uint, prefix string) (*models.Post, *models.Tag, error) {
	if actor == nil {
		return nil, nil, errs.NewAuthenticationRequiredError("You are not authenticated")
	}

	post, err := s.db.PostRepo().FindByID(postID)
	if err != nil {
		return nil, nil, errs.Wrap(err, prefix)
	}
	tag, err := s.db.TagRepo().FindByID(tagID)
	if err != nil {
		return nil, nil, errs.Wrap(err, prefix)
	}
	if post == nil || tag == nil {
		return nil, nil, errs.NewNotFoundError("Post or Tag not found")
	}
	if !permissions.CanEditPost(actor, post) {
		return nil, nil, errs.NewPermissionDeniedError("You are not allowed to modify this post")
	}
	return post, tag, nil
}

func (s *TagService) requirePost(postID uint) (*models.Post, error) {
	post, err := s.db.PostRepo().FindByID(postID)
	if err != nil {
		return nil, errs.Wrap(err, "Error filtering tags")
	}
	if post == nil {
		return nil, errs.NewNotFoundError("Post not found")
	}
	return post, nil
}
