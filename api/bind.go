package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/avalero/blog-backend/errs"
)

var validate = validator.New()

// decodeAndValidate decodes the JSON body into dst and runs struct-tag
// validation on it.
func decodeAndValidate(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return errs.NewBadRequestError("Invalid request body")
	}

	if err := validate.Struct(dst); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			field := strings.ToLower(fieldErrs[0].Field())
			return errs.NewBadRequestErrorWithField("Invalid value for "+field, field)
		}
		return errs.NewBadRequestError("Invalid request body")
	}

	return nil
}

// pathID parses a numeric chi URL parameter.
func pathID(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("Invalid " + name)
	}
	return uint(id), nil
}
