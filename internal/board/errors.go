package board

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnNotFound indicates a referenced column is absent from the board.
	ErrColumnNotFound = errors.New("column not found")
	// ErrMissingField indicates CardBuilder.Build was called without a required field.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidStatus indicates a status marker outside "x" and " ".
	ErrInvalidStatus = errors.New("invalid status character")
	// ErrCardBeforeColumn indicates a card line appeared before any column heading.
	ErrCardBeforeColumn = errors.New("card appears before any column heading")
	// ErrMalformedLine indicates a line that resembles a structural production
	// but does not match it.
	ErrMalformedLine = errors.New("malformed line")
)

// ParseError reports a parse failure at a specific line of the document.
// It wraps one of the sentinel error kinds so callers can test the cause
// with errors.Is while still seeing the offending position.
type ParseError struct {
	Line     int    // 1-based line number in the input
	Expected string // what the grammar expected at that position, if known
	Err      error  // underlying kind
}

func (e *ParseError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("line %d: %v, expected %s", e.Line, e.Err, e.Expected)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error kind.
func (e *ParseError) Unwrap() error { return e.Err }
