package naming

import "errors"

var (
	// ErrMalformedName indicates a string that is not a structural or legacy name.
	ErrMalformedName = errors.New("naming: malformed name")

	// ErrIndexOutOfRange indicates a variant index outside [0, 2^n·n!).
	ErrIndexOutOfRange = errors.New("naming: variant index out of range")
)
