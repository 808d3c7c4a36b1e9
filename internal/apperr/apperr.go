// Package apperr defines the error taxonomy shared by services and handlers.
//
// Errors are tagged with an oops code; handlers translate the code into an
// HTTP status without knowing which layer produced the error.
package apperr

import (
	"net/http"

	"github.com/samber/oops"
)

// Error codes.
const (
	CodeValidation   = "VALIDATION"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL"
)

// Validation reports malformed input.
func Validation(format string, args ...any) error {
	return oops.Code(CodeValidation).Errorf(format, args...)
}

// Invalid tags err as a validation failure.
func Invalid(err error) error {
	return oops.Code(CodeValidation).Wrap(err)
}

// NotFound tags err as a missing resource.
func NotFound(err error) error {
	return oops.Code(CodeNotFound).Wrap(err)
}

// Conflict tags err as a uniqueness violation.
func Conflict(err error) error {
	return oops.Code(CodeConflict).Wrap(err)
}

// Unauthorized tags err as a rejected credential.
func Unauthorized(err error) error {
	return oops.Code(CodeUnauthorized).Wrap(err)
}

// Forbidden tags err as a missing or rejected bearer token.
func Forbidden(err error) error {
	return oops.Code(CodeForbidden).Wrap(err)
}

// Internal tags err as a storage or infrastructure failure.
func Internal(err error, msg string) error {
	return oops.Code(CodeInternal).Wrapf(err, "%s", msg)
}

// Status maps err to an HTTP status code. Untagged errors are internal.
func Status(err error) int {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch oopsErr.Code() {
	case CodeValidation, CodeConflict:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return false
	}
	return oopsErr.Code() == code
}
