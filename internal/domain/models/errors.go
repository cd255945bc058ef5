// internal/domain/models/errors.go
package models

import "errors"

// Sentinel errors shared by the stores, policies, and feature handlers.
// Wrap them with fmt.Errorf("%w: ...") so callers can classify with
// errors.Is while still carrying a useful message.

// ErrNotFound is returned when a trip, album, media item, or an embedded
// segment/stay does not exist. Handlers map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails shape or business-rule
// validation (missing field, bad enum value, malformed ID, cover image
// that is not a photo in the album). Handlers map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when an operation would break a structural
// invariant: creating a second default album for the same item, or
// deleting the only album of an item. Handlers map this to HTTP 400.
var ErrConflict = errors.New("conflict")
