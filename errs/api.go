package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine codes carried to clients on both API surfaces.
const (
	CodeBadRequest             = "bad_request"
	CodeAuthenticationRequired = "authentication_required"
	CodeInvalidCredentials     = "invalid_credentials"
	CodeInvalidToken           = "invalid_token"
	CodePermissionDenied       = "permission_denied"
	CodeNotFound               = "not_found"
	CodeInternal               = "internal_server_error"
)

// Common error sentinel values
var (
	ErrBadRequest             = errors.New("bad request")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidToken           = errors.New("invalid token")
	ErrPermissionDenied       = errors.New("permission denied")
	ErrNotFound               = errors.New("not found")
	ErrInternal               = errors.New("internal server error")
)

type ApiErr struct {
	StatusCode int
	Code       string
	err        error
	Message    string // Human-readable message surfaced to the caller
	Field      string // Field that caused the error (for validation errors)
	Cause      error  // The underlying cause of the error
}

// implements error interface. this allows us to pass an instance of ApiErr
// as an argument of type `error`
func (e *ApiErr) Error() string {
	return e.Message
}

// GetFullError returns a recursive error message including all causes
func (e *ApiErr) GetFullError() string {
	msg := e.Message
	if e.Cause != nil {
		var apiErr *ApiErr
		if errors.As(e.Cause, &apiErr) {
			msg = fmt.Sprintf("%s -> %s", msg, apiErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}

// Category returns the human error category for the status code, e.g.
// "Bad Request" for 400.
func (e *ApiErr) Category() string {
	switch {
	case e.StatusCode == http.StatusBadRequest:
		return "Bad Request"
	case e.StatusCode == http.StatusUnauthorized:
		return "Unauthorized"
	case e.StatusCode == http.StatusForbidden:
		return "Forbidden"
	case e.StatusCode == http.StatusNotFound:
		return "Not Found"
	case e.StatusCode >= 500:
		return "Internal Server Error"
	default:
		return "Error"
	}
}

func NewBadRequestError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, Code: CodeBadRequest, err: ErrBadRequest, Message: message}
}

func NewBadRequestErrorWithField(message, field string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, Code: CodeBadRequest, err: ErrBadRequest, Message: message, Field: field}
}

func NewAuthenticationRequiredError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, Code: CodeAuthenticationRequired, err: ErrAuthenticationRequired, Message: message}
}

func NewInvalidCredentialsError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, Code: CodeInvalidCredentials, err: ErrInvalidCredentials, Message: message}
}

func NewInvalidTokenError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, Code: CodeInvalidToken, err: ErrInvalidToken, Message: message}
}

func NewPermissionDeniedError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusForbidden, Code: CodePermissionDenied, err: ErrPermissionDenied, Message: message}
}

func NewNotFoundError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, Code: CodeNotFound, err: ErrNotFound, Message: message}
}

func NewInternalError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusInternalServerError, Code: CodeInternal, err: ErrInternal, Message: message}
}

func NewInternalErrorWithCause(message string, cause error) *ApiErr {
	return &ApiErr{StatusCode: http.StatusInternalServerError, Code: CodeInternal, err: ErrInternal, Message: message, Cause: cause}
}

func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

func IsAuthenticationRequired(err error) bool {
	return errors.Is(err, ErrAuthenticationRequired)
}

func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsInvalidToken(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}

func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}

// Wrap is the catch-all translation boundary. Typed API errors propagate
// unchanged; anything else becomes an internal error carrying the
// contextual prefix, e.g. "Error creating blog: <cause>".
func Wrap(err error, prefix string) error {
	if err == nil {
		return nil
	}
	var apiErr *ApiErr
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewInternalErrorWithCause(fmt.Sprintf("%s: %v", prefix, err), err)
}
