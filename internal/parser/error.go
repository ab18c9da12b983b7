package parser

import "fmt"

// Error represents a parse failure with the byte index of the cursor at the
// point of failure. Index is always within [0, len(input)].
type Error struct {
	Message string
	Index   int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("ParseError: %s (at index %d)", e.Message, e.Index)
}
