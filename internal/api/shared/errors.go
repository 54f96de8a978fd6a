package shared

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an API error.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindAuth
	KindUpstream
	KindForbidden
	KindConflict
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindAuth:
		return "auth"
	case KindUpstream:
		return "upstream"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	case KindInternal:
		return "internal"
	}
	return "unknown"
}

// Envelope codes shared across endpoints. Endpoint-specific codes 1 and 2 are
// declared next to their handlers.
const (
	CodeLoginFailed  = 4
	CodeForbidden    = 6
	CodeConflict     = 7
	CodeNotFound     = 8
	CodeInvalidParam = 9

	CodeAuthMissing = 401
	CodeAuthInvalid = 402
	CodeAuthExpired = 403

	CodeInternal = 500
	CodeUpstream = 502
)

// Error is an API error with a stable envelope code.
type Error struct {
	Kind    Kind
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%d): %s: %v", e.Kind, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s (%d): %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Envelope renders the error arm.
func (e *Error) Envelope() Envelope { return Failure(e.Code, e.Message) }

// HTTPStatus is 200 for every business error. Only internal failures leave the
// envelope channel and surface as 500.
func (e *Error) HTTPStatus() int {
	if e.Kind == KindInternal {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}

// Validation builds a caller-fault error.
func Validation(code int, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

// NotFound builds an error for a referenced entity that does not exist.
func NotFound(code int, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

// Auth builds a credential error.
func Auth(code int, message string) *Error {
	return &Error{Kind: KindAuth, Code: code, Message: message}
}

// Upstream wraps a failure of an external collaborator.
func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Code: CodeUpstream, Message: message, Err: err}
}

// Forbidden builds an ownership-denied error.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Code: CodeForbidden, Message: message}
}

// Conflict builds a duplicate-entity error.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Code: CodeConflict, Message: message}
}

// Internal wraps an unexpected failure. The cause is logged, never sent.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: "internal server error", Err: err}
}

// AsError returns err as *Error, treating anything untyped as internal.
func AsError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal(err)
}
