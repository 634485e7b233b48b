package models

import "errors"

// ValidationError marks a client-fault request: missing or malformed fields.
// Controllers translate it to a 400 response with the message as-is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(msg string) error { return &ValidationError{Msg: msg} }

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")

	// ErrInsufficientStock is reported by the inventory adjuster when the
	// conditional decrement matches no document because stock < quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
)
