package assignment

import (
	"math"

	"go.uber.org/zap"
)

// solveJV runs the shortest-augmenting-path (Kuhn–Munkres with potentials,
// Jonker–Volgenant style) algorithm directly on the rectangular n×m matrix.
//
// Rows are inserted one at a time. For row i a Dijkstra-like sweep over the
// columns grows an alternating tree using reduced costs c[r][j]−u[r]−v[j];
// each sweep step fixes the cheapest unvisited column and shifts the
// potentials by delta so that tree edges stay tight. The sweep stops at the
// first free column, and the path is flipped along way[].
//
// Arrays are 1-indexed; column 0 is a virtual root holding the new row.
// Among equal deltas the lowest column index wins (strict '<').
//
// Complexity: O(n²·m) time, O(n + m) extra space.
func solveJV(c *costs, log *zap.Logger) []int {
	var (
		n, m = c.n, c.m
		u    = make([]float64, n+1) // row potentials
		v    = make([]float64, m+1) // column potentials
		p    = make([]int, m+1)     // p[j] = row matched to column j (0 = free)
		way  = make([]int, m+1)     // way[j] = previous column on the alternating path
		minv = make([]float64, m+1) // minv[j] = best reduced cost seen for column j
		used = make([]bool, m+1)    // column already in the tree
	)

	var (
		i, j, i0, j0, j1 int
		delta, cur       float64
		steps            int
	)
	for i = 1; i <= n; i++ {
		p[0] = i
		j0 = 0
		for j = 0; j <= m; j++ {
			minv[j] = math.Inf(1)
			used[j] = false
		}
		steps = 0

		for {
			used[j0] = true
			i0 = p[j0]
			delta = math.Inf(1)
			j1 = 0
			for j = 1; j <= m; j++ {
				if used[j] {
					continue
				}
				cur = c.at(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			// n ≤ m guarantees a free column is always reachable, so j1 > 0.
			for j = 0; j <= m; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			steps++
			if p[j0] == 0 {
				break
			}
		}

		// Flip the alternating path ending at free column j0.
		for j0 != 0 {
			j1 = way[j0]
			p[j0] = p[j1]
			j0 = j1
		}

		log.Debug("row augmented",
			zap.String("algorithm", JonkerVolgenant.String()),
			zap.Int("row", i-1),
			zap.Int("sweeps", steps),
		)
	}

	assign := make([]int, n)
	for j = 1; j <= m; j++ {
		if p[j] > 0 {
			assign[p[j]-1] = j - 1
		}
	}

	return assign
}
