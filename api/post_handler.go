package api

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avalero/blog-backend/errs"
	"github.com/avalero/blog-backend/services"
)

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	posts     *services.PostService
}

func newPostHandler(posts *services.PostService) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(logger),
		logger:    logger,
		posts:     posts,
	}
}

// getAllPosts lists every post, optionally narrowed to one blog via the
// blog_id query parameter. An unparsable or unknown blog_id is rejected
// rather than treated as an empty filter.
func (h postHandler) getAllPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawBlogID := r.URL.Query().Get("blog_id")
		if rawBlogID != "" {
			blogID, err := strconv.ParseUint(rawBlogID, 10, 64)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("Invalid blog ID"))
				return
			}

			posts, err := h.posts.ListByBlog(uint(blogID))
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}

			h.responder.WriteJSON(w, http.StatusOK, posts)
			return
		}

		posts, err := h.posts.List()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, posts)
	}
}

// getMyPosts lists the posts the actor may edit: all posts for a superuser,
// otherwise the posts of the actor's own blog.
func (h postHandler) getMyPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := actorFromCtx(r.Context())

		posts, err := h.posts.ListForOwner(actor)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, posts)
	}
}

func (h postHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.posts.Get(id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, post)
	}
}

func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req postRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		actor := actorFromCtx(r.Context())
		post, err := h.posts.Create(actor, req.Title, req.Content)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, post)
	}
}

func (h postHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req postRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		actor := actorFromCtx(r.Context())
		post, err := h.posts.Update(actor, id, req.Title, req.Content)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, post)
	}
}

func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		actor := actorFromCtx(r.Context())
		if err := h.posts.Delete(actor, id); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Post deleted successfully",
		})
	}
}
