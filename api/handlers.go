package api

import (
	"github.com/avalero/blog-backend/auth"
	"github.com/avalero/blog-backend/database"
	"github.com/avalero/blog-backend/services"
)

type routeHandlers struct {
	authHandler authHandler
	blogHandler blogHandler
	postHandler postHandler
	tagHandler  tagHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, authService *auth.Service) *routeHandlers {
	return &routeHandlers{
		authHandler: newAuthHandler(services.NewAccountService(db, authService)),
		blogHandler: newBlogHandler(services.NewBlogService(db)),
		postHandler: newPostHandler(services.NewPostService(db)),
		tagHandler:  newTagHandler(services.NewTagService(db)),
	}
}
