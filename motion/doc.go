// Package motion encodes the movement rules of a constrained grid walk.
//
// A walk arrives at every cell with a history: the direction it is facing and
// how many cells it has already travelled in that direction without turning.
// That history is a State. A Policy decides, from a State and a candidate
// Direction, whether the next step is legal and which State it produces.
//
// What:
//
//   - Direction: one of Up, Right, Down, Left, with Reverse/turn relations.
//   - State:     Initial (no move yet) or Moving{direction, run}.
//   - Policy:    MinRun cells before a turn (or a stop) is allowed,
//     MaxRun cells before a turn becomes mandatory. Reversal is never legal.
//
// Why:
//
//   - Every puzzle variant ("at most three in a row", "at least four, at most
//     ten") is one Policy value, so the search engine never changes.
//
// Complexity:
//
//   - Next, CanStop: O(1), no allocation.
//
// Errors:
//
//   - ErrBadPolicy: MinRun < 1 or MaxRun < MinRun.
package motion
