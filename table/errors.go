package table

import (
	"errors"
	"fmt"
)

// ErrInputFormat is matched by every *FormatError.
var ErrInputFormat = errors.New("table: malformed input")

// FormatError locates a problem in the input text.
// Column is 1-based over fields; 0 means the whole line.
type FormatError struct {
	Line   int
	Column int
	Err    error
}

func (e *FormatError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("table: line %d, field %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("table: line %d: %v", e.Line, e.Err)
}

// Unwrap exposes both ErrInputFormat and the underlying cause.
func (e *FormatError) Unwrap() []error { return []error{ErrInputFormat, e.Err} }
