package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNegativeCost indicates a cell with a cost below zero.
	ErrNegativeCost = errors.New("grid: cell costs must be non-negative")
	// ErrMalformedGrid indicates textual input that is not a rectangle of ASCII digits.
	ErrMalformedGrid = errors.New("grid: malformed digit grid")
)
