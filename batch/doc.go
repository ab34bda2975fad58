// Package batch runs many independent searches concurrently.
//
// Every search.Solve call owns its frontier and cost map, and only reads its
// grid, so separate queries need no coordination: Run hands them to a bounded
// pool of goroutines and collects one Answer per Query in input order. Queries
// may share a *grid.Grid as long as nothing mutates it meanwhile.
//
// A query whose goal is unreachable, or whose inputs are invalid, yields an
// Answer carrying that error; it does not stop the other queries. Only the
// caller's context can abort the batch as a whole.
package batch
