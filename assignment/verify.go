package assignment

import (
	"fmt"
	"math"

	"github.com/katalvlaran/topicassign/matrix"
)

// costTol absorbs summation-order drift when comparing a recomputed total
// against Result.Cost.
const costTol = 1e-9

// SameCost reports whether two assignment totals agree up to a relative
// tolerance of 1e-9 (absolute for totals below 1).
func SameCost(a, b float64) bool {
	return math.Abs(a-b) <= costTol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// Verify checks that res is a feasible assignment for cost: one column per
// row, every column in range and used at most once, and res.Cost equal to
// the recomputed total. It does not check optimality.
//
// Errors: the validation sentinels of Solve, or ErrInvalidAssignment.
//
// Complexity: O(n·m) for validation, O(n + m) for the checks.
func Verify(cost matrix.Matrix, res Result) error {
	c, err := snapshot(cost)
	if err != nil {
		return err
	}
	if len(res.Assignment) != c.n {
		return fmt.Errorf("%d rows, %d assigned: %w", c.n, len(res.Assignment), ErrInvalidAssignment)
	}
	owner := make([]int, c.m)
	for j := range owner {
		owner[j] = -1
	}
	for i, j := range res.Assignment {
		if j < 0 || j >= c.m {
			return fmt.Errorf("row %d → column %d out of range: %w", i, j, ErrInvalidAssignment)
		}
		if owner[j] >= 0 {
			return fmt.Errorf("column %d assigned to rows %d and %d: %w", j, owner[j], i, ErrInvalidAssignment)
		}
		owner[j] = i
	}
	if sum := total(c, res.Assignment); !SameCost(sum, res.Cost) {
		return fmt.Errorf("reported cost %g, recomputed %g: %w", res.Cost, sum, ErrInvalidAssignment)
	}

	return nil
}
