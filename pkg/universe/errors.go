package universe

import "errors"

var (
	// ErrInvalidDimensions is returned when a grid would be empty or its cell
	// count would not fit a uint32 index.
	ErrInvalidDimensions = errors.New("universe: invalid dimensions")
	// ErrOutOfBounds is returned by checked accessors for coordinates outside the grid.
	ErrOutOfBounds = errors.New("universe: coordinates out of bounds")
	// ErrInvalidState is returned when restoring from a State that does not
	// describe a well-formed grid.
	ErrInvalidState = errors.New("universe: invalid state")
	// ErrInvalidPattern is returned by FromRows for empty or ragged input.
	ErrInvalidPattern = errors.New("universe: invalid pattern")
)
