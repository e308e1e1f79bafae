package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avalero/blog-backend/services"
)

type tagHandler struct {
	responder Responder
	logger    zerolog.Logger
	tags      *services.TagService
}

func newTagHandler(tags *services.TagService) tagHandler {
	logger := log.With().Str("handlerName", "tagHandler").Logger()

	return tagHandler{
		responder: NewResponder(logger),
		logger:    logger,
		tags:      tags,
	}
}

func (h tagHandler) getAllTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.tags.List()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, tags)
	}
}

func (h tagHandler) getTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "tagID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tag, err := h.tags.Get(id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, tag)
	}
}

func (h tagHandler) createTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tagRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		actor := actorFromCtx(r.Context())
		tag, err := h.tags.Create(actor, req.Name)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, tag)
	}
}

func (h tagHandler) updateTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "tagID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req tagRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		actor := actorFromCtx(r.Context())
		tag, err := h.tags.Update(actor, id, req.Name)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, tag)
	}
}

func (h tagHandler) deleteTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "tagID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		actor := actorFromCtx(r.Context())
		if err := h.tags.Delete(actor, id); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Tag deleted successfully",
		})
	}
}

func (h tagHandler) addTagToPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := pathID(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		tagID, err := pathID(r, "tagID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		actor := actorFromCtx(r.Context())
		post, tag, err := h.tags.AddToPost(actor, postID, tagID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{
			"post":    post,
			"tag":     tag,
			"message": "Tag added to post successfully",
		})
	}
}

func (h tagHandler) removeTagFromPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := pathID(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		tagID, err := pathID(r, "tagID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		actor := actorFromCtx(r.Context())
		post, tag, err := h.tags.RemoveFromPost(actor, postID, tagID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{
			"post":    post,
			"tag":     tag,
			"message": "Tag removed from post successfully",
		})
	}
}
