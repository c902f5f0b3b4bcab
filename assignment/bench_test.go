package assignment_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/topicassign/assignment"
)

// BenchmarkSolve measures both polynomial solvers on seeded random matrices
// of increasing size, with a few spare columns as in real seminar tables.
func BenchmarkSolve(b *testing.B) {
	sizes := []struct {
		n, m int
	}{
		{20, 25},
		{100, 110},
		{300, 320},
	}
	for _, sz := range sizes {
		cost := randomCosts(b, rand.New(rand.NewSource(int64(sz.n))), sz.n, sz.m, sz.m)
		for _, algo := range []assignment.Algorithm{assignment.JonkerVolgenant, assignment.ShortestPathHeap} {
			b.Run(fmt.Sprintf("%s/%dx%d", algo, sz.n, sz.m), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := assignment.Solve(cost, assignment.WithAlgorithm(algo)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
