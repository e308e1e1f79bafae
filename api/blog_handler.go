package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avalero/blog-backend/services"
)

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	blogs     *services.BlogService
}

func newBlogHandler(blogs *services.BlogService) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		blogs:     blogs,
	}
}

func (h blogHandler) getAllBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.blogs.List()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, blogs)
	}
}

func (h blogHandler) getBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "blogID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blog, err := h.blogs.Get(id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, blog)
	}
}

func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req blogRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		actor := actorFromCtx(r.Context())
		blog, err := h.blogs.Create(actor, req.Title, req.Description)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, blog)
	}
}

func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "blogID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req blogRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		actor := actorFromCtx(r.Context())
		blog, err := h.blogs.Update(actor, id, req.Title, req.Description)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, blog)
	}
}

func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "blogID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		actor := actorFromCtx(r.Context())
		if err := h.blogs.Delete(actor, id); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Blog deleted successfully",
		})
	}
}
