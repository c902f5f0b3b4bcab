package assignment_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topicassign/matrix"
)

// dense builds a *matrix.Dense from literal rows or fails the test.
func dense(t testing.TB, rows ...[]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

// randomCosts returns an n×m matrix of integers in [0, maxCost], seeded.
// Small maxCost values produce many ties, which is what we want to stress.
func randomCosts(t testing.TB, rng *rand.Rand, n, m, maxCost int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, m)
		for j := range rows[i] {
			rows[i][j] = float64(rng.Intn(maxCost + 1))
		}
	}
	return dense(t, rows...)
}

// rawMatrix is a Matrix without numeric policy so tests can inject NaN/Inf.
type rawMatrix [][]float64

func (r rawMatrix) Rows() int { return len(r) }
func (r rawMatrix) Cols() int {
	if len(r) == 0 {
		return 0
	}
	return len(r[0])
}
func (r rawMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(r) || j < 0 || j >= len(r[i]) {
		return 0, matrix.ErrOutOfRange
	}
	return r[i][j], nil
}
func (r rawMatrix) Set(i, j int, v float64) error { r[i][j] = v; return nil }
func (r rawMatrix) Clone() matrix.Matrix {
	out := make(rawMatrix, len(r))
	for i := range r {
		out[i] = append([]float64(nil), r[i]...)
	}
	return out
}
