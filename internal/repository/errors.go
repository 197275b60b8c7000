// Package repository implements the persistence layer on top of
// database/sql.  Sentinel errors defined here let handlers and the
// service layer distinguish failure scenarios without inspecting
// driver-specific error strings.  Not-found is signalled with
// sql.ErrNoRows throughout, following the convention of the standard
// library.
package repository

import "errors"

// ErrConflict is returned when an insert or update violates a unique
// constraint, such as banning an email that is already banned or
// registering an admin with an existing email.  Handlers translate
// this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")
