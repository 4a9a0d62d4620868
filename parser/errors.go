package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSeparator means one of the first four fields was not followed
	// by a separator.
	ErrMissingSeparator = errors.New("missing field separator")
	// ErrTrailingField means a separator was found after the last field.
	ErrTrailingField = errors.New("unexpected field after the last one")
)

// FieldError reports which field of a line could not be parsed.
type FieldError struct {
	// Field is the 1-based position of the field on the line.
	Field int
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %d (%s): %v", e.Field, fieldNames[e.Field-1], e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
