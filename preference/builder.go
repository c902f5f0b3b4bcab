package preference

import (
	"fmt"

	"github.com/katalvlaran/topicassign/matrix"
)

// BuildCostMatrix turns t into a dense students × topics cost matrix.
//
// Implementation:
//   - Stage 1: validate options (Penalty in 1..MaxPenalty, known Policy).
//   - Stage 2: reject tables with fewer topics than students (ErrShape);
//     nothing is allocated in that case.
//   - Stage 3: stated rank v ⇒ cost v; absent ⇒ sentinel for the row,
//     computed once per row (per-row) or once per table (global).
//
// Guarantees:
//   - Ranks ≤ MaxStatedRank (NewTable) plus Penalty ≤ MaxPenalty keep every
//     sentinel exact in float64.
//   - Every absent cell costs strictly more than every stated cell of the
//     same row, under both policies.
//   - t is not mutated; every call returns a fresh matrix.
//
// Complexity: O(S·T) time and space.
func BuildCostMatrix(t *Table, opts ...Option) (*matrix.Dense, error) {
	if t == nil {
		return nil, ErrEmptyTable
	}
	o := buildOptions(opts)
	if o.Penalty < 1 || o.Penalty > MaxPenalty {
		return nil, fmt.Errorf("penalty %d: %w", o.Penalty, ErrBadPenalty)
	}
	if o.Policy != SentinelPerRow && o.Policy != SentinelGlobal {
		return nil, ErrUnknownPolicy
	}

	var (
		rows = t.NumStudents()
		cols = t.NumTopics()
	)
	if cols < rows {
		return nil, fmt.Errorf("%d students, %d topics: %w", rows, cols, ErrShape)
	}

	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	var (
		s, j     int
		v        int
		ok       bool
		cell     int64
		sentinel int64
		global   = int64(t.GlobalMaxRank()) + int64(o.Penalty)
	)
	for s = 0; s < rows; s++ {
		sentinel = global
		if o.Policy == SentinelPerRow {
			sentinel = int64(t.MaxRank(s)) + int64(o.Penalty)
		}
		for j = 0; j < cols; j++ {
			cell = sentinel
			if v, ok = t.ranks[s][j].Value(); ok {
				cell = int64(v)
			}
			if err = m.Set(s, j, float64(cell)); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
