// Package assignment solves the rectangular linear assignment problem:
// given an n×m cost matrix with n ≤ m, pick one distinct column for every
// row so that the summed cost is minimal.
//
// Three algorithms share one entry point, Solve:
//
//   - JonkerVolgenant (default): shortest augmenting paths with row and
//     column potentials over the dense matrix, one row at a time.
//     Complexity O(n²·m), memory O(n + m).
//   - ShortestPathHeap: the same primal-dual scheme, but each augmenting
//     path is found by Dijkstra over reduced costs with a binary heap.
//     Complexity O(n·m·log m).
//   - Exhaustive: enumerates every injective mapping. Reference oracle for
//     small inputs only; refuses instances above Options.ExhaustiveLimit.
//
// Costs must be finite and non-negative. Rows are never left unmatched;
// surplus columns simply stay free. Every algorithm is deterministic: the
// same matrix always yields the same Result. JonkerVolgenant and Exhaustive
// prefer the lowest column index among equally good choices.
//
// Use this package when every row must be matched and the instance fits in
// memory as a dense matrix (hundreds to a few thousand rows).
package assignment
