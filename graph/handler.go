package graph

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avalero/blog-backend/auth"
	"github.com/avalero/blog-backend/database"
	"github.com/avalero/blog-backend/errs"
)

type graphRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

type Handler struct {
	schema graphql.Schema
	auth   *auth.Service
	logger zerolog.Logger
}

// NewHandler builds the schema and returns the HTTP endpoint serving it.
// The bearer token is resolved once per request; resolvers read the actor
// from the context.
func NewHandler(db database.Database, authService *auth.Service) (*Handler, error) {
	schema, err := NewSchema(NewResolver(db, authService))
	if err != nil {
		return nil, err
	}

	return &Handler{
		schema: schema,
		auth:   authService,
		logger: log.With().Str("handlerName", "graphHandler").Logger(),
	}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req graphRequest

	switch r.Method {
	case http.MethodGet:
		req.Query = r.URL.Query().Get("query")
		req.OperationName = r.URL.Query().Get("operationName")
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeErrors(w, http.StatusBadRequest, errs.NewBadRequestError("Invalid request body"))
			return
		}
	default:
		h.writeErrors(w, http.StatusMethodNotAllowed, errs.NewBadRequestError("Method not allowed"))
		return
	}

	ctx := r.Context()
	if header := r.Header.Get("Authorization"); header != "" {
		actor, err := h.auth.ResolveBearer(header)
		if err != nil {
			var apiErr *errs.ApiErr
			if !errors.As(err, &apiErr) {
				apiErr = errs.NewInternalErrorWithCause(err.Error(), err)
			}
			h.writeErrors(w, apiErr.StatusCode, apiErr)
			return
		}
		ctx = ctxWithActor(ctx, actor)
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	})

	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("error writing graphql response")
	}
}

// writeErrors emits a GraphQL-shaped error body for failures that happen
// before execution starts.
func (h *Handler) writeErrors(w http.ResponseWriter, status int, apiErr *errs.ApiErr) {
	h.writeJSON(w, status, map[string]any{
		"errors": []map[string]any{
			{
				"message": apiErr.Message,
				"extensions": map[string]any{
					"code": apiErr.Code,
				},
			},
		},
	})
}
