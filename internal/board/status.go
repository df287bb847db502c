package board

import "fmt"

// Status is a card's completion marker. The zero value is Incomplete,
// which is also the default for cards built without an explicit status.
type Status int

const (
	// Incomplete marks a card that still needs doing. Encoded as a single space.
	Incomplete Status = iota
	// Done marks a finished card. Encoded as "x".
	Done
)

// String returns the single-character document encoding of the status.
func (s Status) String() string {
	if s == Done {
		return "x"
	}
	return " "
}

// ParseStatus parses the single-character document encoding of a status.
// Anything other than "x" or " " fails with ErrInvalidStatus.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "x":
		return Done, nil
	case " ":
		return Incomplete, nil
	default:
		return Incomplete, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}
