package services

import (
	"regexp"
	"strings"

	"github.com/avalero/blog-backend/errs"
)

// Shared restricted character set for blog titles and tag names.
var nameCharset = regexp.MustCompile(`^[a-zA-Z0-9\s\-_áéíóúñÁÉÍÓÚÑ]+$`)

func validateBlogTitle(title string) *errs.ApiErr {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewBadRequestErrorWithField("Title is required", "title")
	}
	if len([]rune(title)) < 5 {
		return errs.NewBadRequestErrorWithField("Blog title must be at least 5 characters long", "title")
	}
	if !nameCharset.MatchString(title) {
		return errs.NewBadRequestErrorWithField("Blog title contains invalid characters", "title")
	}
	return nil
}

func validatePostTitle(title string) *errs.ApiErr {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewBadRequestErrorWithField("Title is required", "title")
	}
	if len([]rune(title)) < 5 {
		return errs.NewBadRequestErrorWithField("Post title must be at least 5 characters long", "title")
	}
	return nil
}

func validateTagName(name string) *errs.ApiErr {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewBadRequestErrorWithField("Tag name is required", "name")
	}
	if len([]rune(name)) < 2 {
		return errs.NewBadRequestErrorWithField("Tag name must be at least 2 characters long", "name")
	}
	if !nameCharset.MatchString(name) {
		return errs.NewBadRequestErrorWithField("Tag name contains invalid characters", "name")
	}
	return nil
}

func requireText(value, message, field string) *errs.ApiErr {
	if strings.TrimSpace(value) == "" {
		return errs.NewBadRequestErrorWithField(message, field)
	}
	return nil
}
