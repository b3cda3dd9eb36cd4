// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrForbidden indicates that the current user is not
// authorized to perform an operation on a resource owned by
// someone else, while ErrDuplicateBooking signals that the unique
// (event_id, artist_id) constraint rejected a second offer for the
// same artist and event.
package repository

import "errors"

// ErrEmailExists is returned when a registration hits the unique
// constraint on users.email. Handlers should translate this into an
// HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

// ErrDuplicateBooking is returned when an offer already exists for the
// same (event, artist) pair. Handlers should translate this into an
// HTTP 409 response rather than a generic 500.
var ErrDuplicateBooking = errors.New("booking already exists for event and artist")

// ErrForbidden is returned when the caller attempts an operation
// on a resource they do not own. Handlers should translate this
// into an HTTP 403 response, or a 404 where existence must not be
// leaked.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidTransition is returned when a status change is not a legal
// edge of the event or booking state machine. Handlers should translate
// this into an HTTP 400 response.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrNoFields is returned when a partial update contains none of the
// updatable fields after filtering. Handlers should translate this into
// an HTTP 400 response.
var ErrNoFields = errors.New("no valid fields to update")
