package constellation

import "errors"

var (
	// ErrEmptyFamily indicates a Base without a family prefix (e.g. "psk_4").
	ErrEmptyFamily = errors.New("constellation: family name must be non-empty")

	// ErrBadMeta indicates non-positive rotational symmetry, dimensionality, or sector count.
	ErrBadMeta = errors.New("constellation: metadata values must be > 0")

	// ErrNilBase indicates a nil *Base passed to NewDerived.
	ErrNilBase = errors.New("constellation: base is nil")

	// ErrSymbolRange indicates a point index or symbol outside [0, Len()).
	ErrSymbolRange = errors.New("constellation: index out of range")
)
