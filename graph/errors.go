package graph

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/avalero/blog-backend/errs"
)

// resolverError carries the machine-readable code into the GraphQL error
// extensions while keeping the human message as the error text.
type resolverError struct {
	apiErr *errs.ApiErr
}

func (e resolverError) Error() string {
	return e.apiErr.Message
}

func (e resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": e.apiErr.Code,
	}
}

// asResolverError converts any error into one safe to hand to the GraphQL
// engine. Internal errors are logged server-side and surfaced generically.
func asResolverError(err error) error {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		apiErr = errs.NewInternalErrorWithCause(err.Error(), err)
	}

	if apiErr.StatusCode >= 500 {
		log.Error().Str("code", apiErr.Code).Msg(apiErr.GetFullError())
		return resolverError{errs.NewInternalError("An unexpected error occurred.")}
	}

	return resolverError{apiErr}
}
