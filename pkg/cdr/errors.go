package cdr

import "errors"

// Sentinel errors for common error conditions
var (
	// Generation errors
	ErrInvalidRange = errors.New("invalid range: start bound must be before end bound")
	ErrEmptyCatalog = errors.New("tower catalog is empty")

	// Catalog errors
	ErrInvalidCatalog = errors.New("invalid tower catalog")
	ErrUnknownCatalog = errors.New("unknown tower catalog")
)
