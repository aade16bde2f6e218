package models

import "errors"

// Workflow error taxonomy. Handlers map these to HTTP responses; everything
// else is treated as a store failure and surfaces as a 500.
var (
	ErrUnauthorized    = errors.New("caller lacks the required role")
	ErrNotFound        = errors.New("not found")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrNotAvailable    = errors.New("batch is not available for this action")
	ErrMissingPrice    = errors.New("price per kg is not set")
	ErrValidation      = errors.New("validation failed")
)
