package report

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/topicassign/assignment"
	"github.com/katalvlaran/topicassign/matrix"
	"github.com/katalvlaran/topicassign/preference"
)

// Summarize joins t, cost and res into a Summary.
//
// Contracts:
//   - cost is the matrix res was computed from (NumStudents × NumTopics).
//   - res assigns every student exactly once (checked with assignment.Verify).
//
// Errors: ErrMismatch (wrapped) when any of the shapes disagree or res is
// not a valid assignment for cost.
//
// Complexity: O(S + T).
func Summarize(t *preference.Table, cost matrix.Matrix, res assignment.Result) (Summary, error) {
	if t == nil || cost == nil {
		return Summary{}, fmt.Errorf("nil input: %w", ErrMismatch)
	}
	var (
		s  = t.NumStudents()
		tp = t.NumTopics()
	)
	if cost.Rows() != s || cost.Cols() != tp {
		return Summary{}, fmt.Errorf("table %d×%d, costs %d×%d: %w", s, tp, cost.Rows(), cost.Cols(), ErrMismatch)
	}
	if err := assignment.Verify(cost, res); err != nil {
		return Summary{}, fmt.Errorf("%w: %w", ErrMismatch, err)
	}

	var (
		sum    Summary
		costs  = make([]float64, s)
		counts = make(map[int]int)
		i, j   int
		v      float64
		err    error
	)
	sum.Lines = make([]Line, s)
	for i, j = range res.Assignment {
		if v, err = cost.At(i, j); err != nil {
			return Summary{}, err
		}
		rank := t.Rank(i, j)
		sum.Lines[i] = Line{Student: t.Student(i), Topic: t.Topic(j), Rank: rank, Cost: v}
		costs[i] = v
		if r, ok := rank.Value(); ok {
			counts[r]++
		} else {
			sum.Unranked++
		}
	}

	owners := res.ColumnOwners(tp)
	for j = range owners {
		if owners[j] < 0 {
			sum.Free = append(sum.Free, t.Topic(j))
		}
	}

	sum.Total = floats.Sum(costs)
	sum.Mean, sum.StdDev = stat.PopMeanStdDev(costs, nil)
	sum.Worst = floats.Max(costs)

	sum.Histogram = make([]Bucket, 0, len(counts))
	for r, c := range counts {
		sum.Histogram = append(sum.Histogram, Bucket{Rank: r, Count: c})
	}
	sort.Slice(sum.Histogram, func(a, b int) bool { return sum.Histogram[a].Rank < sum.Histogram[b].Rank })

	return sum, nil
}
