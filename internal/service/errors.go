// Package service holds the reservation business rules: input
// validation, the denylist guard, the status machine and the
// orchestration between them and the record store.  It raises typed
// errors and leaves HTTP mapping to the handler layer.
package service

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when no record exists for the requested ID.
// Handlers translate it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailBanned is returned when a reservation or contact request is
// attempted with a denylisted email.  Nothing is persisted.  Handlers
// translate it into an HTTP 403 response.
var ErrEmailBanned = errors.New("email is banned")

// ErrInvalidStatus is returned by the status machine when a requested
// status is not one of the enumerated values.
var ErrInvalidStatus = errors.New("invalid status")

// ValidationError reports missing or malformed input fields.  The
// Fields slice names every offending field so the client can highlight
// them; the message is what ends up in the HTTP error body.
type ValidationError struct {
	Fields  []string
	message string
}

func (e *ValidationError) Error() string { return e.message }

// requiredError builds a ValidationError for missing fields, phrased
// the way the public site expects ("name, email, date and time are
// required").
func requiredError(fields ...string) *ValidationError {
	var msg string
	switch len(fields) {
	case 1:
		msg = fields[0] + " is required"
	default:
		msg = strings.Join(fields[:len(fields)-1], ", ") + " and " + fields[len(fields)-1] + " are required"
	}
	return &ValidationError{Fields: fields, message: msg}
}

// invalidFieldError builds a ValidationError for a syntactically
// malformed field.
func invalidFieldError(field, hint string) *ValidationError {
	return &ValidationError{Fields: []string{field}, message: field + " must be " + hint}
}
