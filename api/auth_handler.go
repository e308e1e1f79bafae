package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avalero/blog-backend/services"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	accounts  *services.AccountService
}

func newAuthHandler(accounts *services.AccountService) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		accounts:  accounts,
	}
}

func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, token, err := h.accounts.Register(req.Username, req.Password, req.PasswordConfirm, req.Email)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, map[string]any{
			"user":    user,
			"token":   token,
			"message": "User created successfully",
		})
	}
}

func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, token, err := h.accounts.Login(req.Username, req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{
			"user":    user,
			"token":   token,
			"message": "Login successful",
		})
	}
}

func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := actorFromCtx(r.Context())

		if err := h.accounts.Logout(actor); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Logout successful",
		})
	}
}

func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := h.accounts.Me(actorFromCtx(r.Context()))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, user)
	}
}
