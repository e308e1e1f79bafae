package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/avalero/blog-backend/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError translates an error into the shared payload shape
// {error, message, code}. Internal errors are logged with full detail and
// surfaced generically.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		apiErr = errs.NewInternalErrorWithCause(err.Error(), err)
	}

	if apiErr.StatusCode >= 500 {
		r.logger.Error().Str("code", apiErr.Code).Msg(apiErr.GetFullError())
		r.WriteJSON(w, apiErr.StatusCode, map[string]any{
			"error":   apiErr.Category(),
			"message": "An unexpected error occurred.",
			"code":    errs.CodeInternal,
		})
		return
	}

	response := map[string]any{
		"error":   apiErr.Category(),
		"message": apiErr.Message,
		"code":    apiErr.Code,
	}
	if apiErr.Field != "" {
		response["field"] = apiErr.Field
	}

	r.WriteJSON(w, apiErr.StatusCode, response)
}
