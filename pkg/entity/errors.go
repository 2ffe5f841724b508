package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is returned when a value is outside its legal domain, such
// as an unknown enum token or a non-finite number.
var ErrInvalidValue = errors.New("invalid value")

// ValueError describes a rejected value and the entity it was meant for.
type ValueError struct {
	Entity string // Entity tag (e.g., "polygon", "pad")
	Err    error  // Validation failure, usually ozzo validation.Errors
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Entity, ErrInvalidValue, e.Err)
}

// Unwrap exposes both ErrInvalidValue and the underlying validation error.
func (e *ValueError) Unwrap() []error {
	return []error{ErrInvalidValue, e.Err}
}

func invalid(entity string, err error) error {
	if err == nil {
		return nil
	}
	return &ValueError{Entity: entity, Err: err}
}
