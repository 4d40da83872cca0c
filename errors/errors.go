package errors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error is the API error returned by services and repositories. Status maps
// directly onto the HTTP status the handler responds with. Fields is only
// populated for validation failures.
type Error struct {
	Message string            `json:"message"`
	Status  int               `json:"status"`
	Fields  map[string]string `json:"fields,omitempty"`
}

var (
	ErrNotFound            = New("not found", http.StatusNotFound)
	ErrForbidden           = New("forbidden", http.StatusForbidden)
	ErrConflict            = New("conflict", http.StatusConflict)
	ErrBadRequest          = New("bad request", http.StatusBadRequest)
	ErrUnauthorized        = New("unauthorized", http.StatusUnauthorized)
	ErrInternalServerError = New("internal server error", http.StatusInternalServerError)
)

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		pairs := make([]string, 0, len(e.Fields))
		for field, msg := range e.Fields {
			pairs = append(pairs, fmt.Sprintf("%s: %s", field, msg))
		}
		return fmt.Sprintf("%s (%s)", e.Message, strings.Join(pairs, "; "))
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func New(message string, status int) *Error {
	return &Error{
		Message: message,
		Status:  status,
	}
}

// Forbidden returns a 403 error carrying the reason the check failed.
func Forbidden(reason string) *Error {
	return New(reason, http.StatusForbidden)
}

func NotFound(what string) *Error {
	return New(what+" not found", http.StatusNotFound)
}

func Conflict(reason string) *Error {
	return New(reason, http.StatusConflict)
}

// StorageFailure hides the underlying storage error from the caller.
func StorageFailure() *Error {
	return New("storage failure", http.StatusInternalServerError)
}

// ValidationFailed builds a 422 error from a field -> message map.
func ValidationFailed(fields map[string]string) *Error {
	return &Error{
		Message: "validation failed",
		Status:  http.StatusUnprocessableEntity,
		Fields:  fields,
	}
}

// FieldError is a convenience for single-field validation failures.
func FieldError(field, message string) *Error {
	return ValidationFailed(map[string]string{field: message})
}

// FromBindingError converts gin binding errors (validator.ValidationErrors
// underneath) into a ValidationFailed error with one message per field.
func FromBindingError(err error) *Error {
	validatorErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return New(err.Error(), http.StatusBadRequest)
	}

	fields := make(map[string]string, len(validatorErrs))
	for _, fe := range validatorErrs {
		fields[strings.ToLower(fe.Field())] = messageForTag(fe)
	}
	return ValidationFailed(fields)
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must have at least %s items or characters", fe.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s items or characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed on %s validation", fe.Tag())
	}
}
