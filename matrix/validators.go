// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the checks a cost matrix
//    must pass before it reaches the solver.
//  - Return sentinel errors wrapped with the validator tag and, where useful,
//    the offending coordinates.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Element scans run in fixed row-major order, so the first violation
//    reported is always the same one.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps an underlying error with the validator tag and the cell.
func cellErrorf(tag string, i, j int, v float64, err error) error {
	return fmt.Errorf("%s: cell (%d,%d)=%g: %w", tag, i, j, v, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is also rejected.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateWide ensures Cols() >= Rows(), i.e. every row can be matched to a
// distinct column. Assumes m is not nil.
// Complexity: O(1).
func ValidateWide(m Matrix) error {
	if m.Cols() < m.Rows() {
		return fmt.Errorf("ValidateWide: %d rows > %d cols: %w", m.Rows(), m.Cols(), ErrNotWide)
	}

	return nil
}

// ValidateFinite ensures no entry is NaN or ±Inf. Assumes m is not nil.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	return scan(m, "ValidateFinite", func(v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
		return nil
	})
}

// ValidateNonNegative ensures no entry is < 0. NaN is not reported here;
// run ValidateFinite first. Assumes m is not nil.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	return scan(m, "ValidateNonNegative", func(v float64) error {
		if v < 0 {
			return ErrNegative
		}
		return nil
	})
}

// scan applies check to every cell in row-major order and stops at the
// first violation. *Dense is scanned over its flat buffer directly.
func scan(m Matrix, tag string, check func(float64) error) error {
	var (
		r, c = m.Rows(), m.Cols()
		i, j int
		v    float64
		err  error
	)
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v = d.data[i*c+j]
				if err = check(v); err != nil {
					return cellErrorf(tag, i, j, v, err)
				}
			}
		}
		return nil
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf(tag, err)
			}
			if err = check(v); err != nil {
				return cellErrorf(tag, i, j, v, err)
			}
		}
	}

	return nil
}
