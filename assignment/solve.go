// Package assignment - unified dispatcher for assignment solvers.
//
// This file provides the canonical entry point:
//
//   - Solve: validate the cost matrix once, snapshot it into a flat
//     row-major slice, route to the requested algorithm, then total the cost.
//
// Design principles:
//   - Fail fast: shape and numeric problems surface before any search.
//   - Pure: the input matrix is only read; results own fresh slices.
//   - Strict sentinels: only errors from errors.go, wrapped with context.
package assignment

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/topicassign/matrix"
)

// costs is a read-only row-major snapshot of an n×m cost matrix.
type costs struct {
	n, m int
	data []float64
}

func (c *costs) at(i, j int) float64 { return c.data[i*c.m+j] }

// Solve computes a minimum-cost assignment of every row of cost to a
// distinct column.
//
// Contracts:
//   - cost must be non-nil with Rows() ≤ Cols().
//   - every entry finite and ≥ 0.
//
// Errors (validation order): ErrNilMatrix, ErrShape, ErrNumeric,
// ErrNegativeCost, then ErrUnknownAlgorithm / ErrTooLarge from dispatch.
// On error the returned Result is zero; no partial mapping is exposed.
//
// Complexity: validation O(n·m); search per algorithm (see doc.go).
func Solve(cost matrix.Matrix, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	c, err := snapshot(cost)
	if err != nil {
		return Result{}, err
	}

	var assign []int
	switch o.Algorithm {
	case JonkerVolgenant:
		assign = solveJV(c, o.Logger)
	case ShortestPathHeap:
		assign = solveHeap(c, o.Logger)
	case Exhaustive:
		if assign, err = solveExhaustive(c, o.ExhaustiveLimit); err != nil {
			return Result{}, err
		}
	default:
		return Result{}, fmt.Errorf("algorithm %d: %w", o.Algorithm, ErrUnknownAlgorithm)
	}

	return Result{
		Assignment: assign,
		Cost:       total(c, assign),
		Algorithm:  o.Algorithm,
	}, nil
}

// snapshot validates cost and copies it into a flat slice so the solvers can
// index without error checks.
func snapshot(cost matrix.Matrix) (*costs, error) {
	if err := matrix.ValidateNotNil(cost); err != nil {
		return nil, ErrNilMatrix
	}
	if err := matrix.ValidateWide(cost); err != nil {
		return nil, fmt.Errorf("%d rows, %d cols: %w", cost.Rows(), cost.Cols(), ErrShape)
	}
	if err := matrix.ValidateFinite(cost); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNumeric, err)
	}
	if err := matrix.ValidateNonNegative(cost); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNegativeCost, err)
	}

	var (
		c    = &costs{n: cost.Rows(), m: cost.Cols()}
		i, j int
		v    float64
		err  error
	)
	c.data = make([]float64, c.n*c.m)
	for i = 0; i < c.n; i++ {
		for j = 0; j < c.m; j++ {
			if v, err = cost.At(i, j); err != nil {
				return nil, errors.Join(ErrNumeric, err)
			}
			c.data[i*c.m+j] = v
		}
	}

	return c, nil
}

// total sums the matched costs in row order.
func total(c *costs, assign []int) float64 {
	var sum float64
	for i, j := range assign {
		sum += c.at(i, j)
	}
	return sum
}
