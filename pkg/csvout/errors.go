package csvout

import "errors"

// ErrIOFailure wraps any failure to open, write, flush or close the destination.
var ErrIOFailure = errors.New("i/o failure")
