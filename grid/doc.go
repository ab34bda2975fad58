// Package grid provides the immutable cost grid a constrained walk travels over,
// and the adapter that builds one from rows of ASCII digits.
//
// What:
//
//   - Grid wraps a rectangular [][]int of non-negative per-cell costs.
//   - Position addresses a cell by (Row, Col); row 0 is the top row,
//     column 0 the leftmost column.
//   - ParseDigits / Read / LoadFile turn "2413432311323"-style rows into a Grid.
//   - Overlay renders a path on top of the digits with ^ > v < arrows.
//
// Why:
//
//   - The search engine only ever borrows a Grid read-only, so a single Grid can
//     be shared by any number of concurrent searches.
//
// Complexity:
//
//   - NewGrid / ParseDigits: O(W×H) time and memory (deep copy).
//   - Cost, InBounds, Step, Index: O(1).
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost:   a cell cost is below zero.
//   - ErrMalformedGrid:  textual input is ragged or contains a non-digit.
package grid
