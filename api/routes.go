package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every REST endpoint. Read endpoints are public; write
// endpoints require an authenticated actor. The actor-resolving middleware
// runs on every route so a provided token always reaches the handlers.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, graphHandler http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.withActor)

		// Public reads
		r.Get("/blogs", handlers.blogHandler.getAllBlogs())
		r.Get("/blogs/{blogID}", handlers.blogHandler.getBlog())
		r.Get("/posts", handlers.postHandler.getAllPosts())
		r.Get("/posts/{postID}", handlers.postHandler.getPost())
		r.Get("/tags", handlers.tagHandler.getAllTags())
		r.Get("/tags/{tagID}", handlers.tagHandler.getTag())

		// Account endpoints
		r.Post("/auth/register", handlers.authHandler.register())
		r.Post("/auth/login", handlers.authHandler.login())

		// GraphQL resolves the actor the same way; per-field checks happen
		// in the service layer.
		if graphHandler != nil {
			r.Handle("/graphql", graphHandler)
		}

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.requireAuth)

			r.Post("/auth/logout", handlers.authHandler.logout())
			r.Get("/auth/me", handlers.authHandler.me())

			r.Post("/blogs", handlers.blogHandler.createBlog())
			r.Put("/blogs/{blogID}", handlers.blogHandler.updateBlog())
			r.Patch("/blogs/{blogID}", handlers.blogHandler.updateBlog())
			r.Delete("/blogs/{blogID}", handlers.blogHandler.deleteBlog())

			r.Get("/posts/mine", handlers.postHandler.getMyPosts())
			r.Post("/posts", handlers.postHandler.createPost())
			r.Put("/posts/{postID}", handlers.postHandler.updatePost())
			r.Patch("/posts/{postID}", handlers.postHandler.updatePost())
			r.Delete("/posts/{postID}", handlers.postHandler.deletePost())

			r.Post("/tags", handlers.tagHandler.createTag())
			r.Put("/tags/{tagID}", handlers.tagHandler.updateTag())
			r.Patch("/tags/{tagID}", handlers.tagHandler.updateTag())
			r.Delete("/tags/{tagID}", handlers.tagHandler.deleteTag())

			r.Post("/posts/{postID}/tags/{tagID}", handlers.tagHandler.addTagToPost())
			r.Delete("/posts/{postID}/tags/{tagID}", handlers.tagHandler.removeTagFromPost())
		})
	})
}
