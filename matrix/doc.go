// Package matrix provides the dense cost-matrix storage used by the
// assignment pipeline.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     return errors instead of panicking.
//   - A numeric policy that rejects NaN and ±Inf on Set, so a cost matrix
//     built through the public surface is finite by construction.
//   - Central validators (ValidateNotNil, ValidateFinite, ValidateNonNegative,
//     ValidateWide) shared by the builder and the solver.
//
// Rows are students and columns are topics throughout the module; the
// matrix itself is agnostic of that meaning.
//
// All errors are package sentinels (see errors.go) matched with errors.Is.
package matrix
