package assignment

import "errors"

// Sentinel errors returned by Solve and Verify.
var (
	// ErrNilMatrix indicates that a nil cost matrix was passed.
	ErrNilMatrix = errors.New("assignment: cost matrix is nil")

	// ErrShape indicates more rows than columns: some row would stay unmatched.
	ErrShape = errors.New("assignment: more rows than columns")

	// ErrNumeric indicates a NaN or ±Inf cost.
	ErrNumeric = errors.New("assignment: non-finite cost")

	// ErrNegativeCost indicates a cost below zero.
	ErrNegativeCost = errors.New("assignment: negative cost")

	// ErrUnknownAlgorithm indicates an Algorithm value Solve does not know.
	ErrUnknownAlgorithm = errors.New("assignment: unknown algorithm")

	// ErrTooLarge indicates an instance too large for the Exhaustive oracle.
	ErrTooLarge = errors.New("assignment: instance too large for exhaustive search")

	// ErrInvalidAssignment indicates a Result that is not an injective
	// row→column mapping covering every row of the matrix.
	ErrInvalidAssignment = errors.New("assignment: invalid assignment")
)
