package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// Kind classifies an application error into one of the closed failure
// categories the HTTP layer knows how to translate.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindAuthorization
	KindConflict
	KindConnectivity
	KindQuery
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindAuthorization:
		return "authorization"
	case KindConflict:
		return "conflict"
	case KindConnectivity:
		return "connectivity"
	case KindQuery:
		return "query"
	default:
		return "internal"
	}
}

// Error is the typed error carried from services up to controllers.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports bad or missing input.
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports a missing resource.
func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

// Authorization reports a caller acting outside its permissions.
func Authorization(format string, args ...interface{}) *Error {
	return &Error{Kind: KindAuthorization, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a state that rejects the requested change, such as an
// illegal status transition or a duplicate unique value.
func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Connectivity wraps a failure to reach the data store.
func Connectivity(err error) *Error {
	return &Error{Kind: KindConnectivity, Message: "data store unreachable", Err: err}
}

// Query wraps a data store failure during statement execution.
func Query(err error) *Error {
	return &Error{Kind: KindQuery, Message: "data store query failed", Err: err}
}

// Internal wraps an unexpected failure.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// FromGorm converts a GORM error into a typed error. Record-not-found maps
// to NotFound for the named resource, duplicate keys map to Conflict, and
// everything else is treated as a query failure.
func FromGorm(err error, resource string) *Error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(resource)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Conflict("%s already exists", resource)
	default:
		return Query(err)
	}
}

// KindOf extracts the Kind from an error chain. Untyped errors are internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error to the status code the API contract prescribes.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthorization:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the safe, client-facing message for an error.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal error"
}

// IsNotFound reports whether the error chain contains a not-found error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsValidation reports whether the error chain contains a validation error.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}
