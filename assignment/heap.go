package assignment

import (
	"math"

	"go.uber.org/zap"
	priorityqueue "gopkg.in/dnaeon/go-priorityqueue.v1"
)

// solveHeap finds each augmenting path with Dijkstra over reduced costs,
// using a binary min-heap keyed by tentative column distance.
//
// Invariant: c[r][j] − u[r] − v[j] ≥ 0 for every (r, j), with equality on
// matched edges. Non-negative costs make u = v = 0 a valid start.
//
// Per row i0:
//  1. Seed the heap with every column at its reduced cost from i0.
//  2. Pop the closest column. If it is free, it ends the path (distance D).
//     Otherwise continue from its matched row, relaxing the unfinished columns.
//  3. Shift potentials by D − dist for every finished column and its row, so
//     the path becomes tight and the invariant survives.
//  4. Flip the path back to i0 via pred[].
//
// Complexity: O(n·m·log m) time, O(n + m) extra space.
func solveHeap(c *costs, log *zap.Logger) []int {
	var (
		n, m  = c.n, c.m
		u     = make([]float64, n)
		v     = make([]float64, m)
		rowOf = make([]int, m) // column → matched row, −1 if free
		colOf = make([]int, n) // row → matched column, −1 if unmatched
		dist  = make([]float64, m)
		pred  = make([]int, m) // row through which a column was reached
		done  = make([]bool, m)
	)
	for j := range rowOf {
		rowOf[j] = -1
	}
	for i := range colOf {
		colOf[i] = -1
	}

	var (
		i0, j, k, r int
		d, dr, best float64
		sink        int
		scanned     = make([]int, 0, m)
	)
	for i0 = 0; i0 < n; i0++ {
		pq := priorityqueue.New[int, float64](priorityqueue.MinHeap)
		for j = 0; j < m; j++ {
			done[j] = false
			dist[j] = c.at(i0, j) - u[i0] - v[j]
			pred[j] = i0
			pq.Put(j, dist[j])
		}
		scanned = scanned[:0]
		sink = -1
		best = math.Inf(1)

		for pq.Len() > 0 {
			item := pq.Get()
			j = item.Value
			done[j] = true
			if rowOf[j] < 0 {
				sink, best = j, dist[j]
				break
			}
			scanned = append(scanned, j)
			r, dr = rowOf[j], dist[j]
			for k = 0; k < m; k++ {
				if done[k] {
					continue
				}
				d = dr + c.at(r, k) - u[r] - v[k]
				if d < dist[k] {
					dist[k] = d
					pred[k] = r
					pq.Update(k, d)
				}
			}
		}

		// Potentials: the root row moves by best, every finished matched
		// column (and its row) by best − dist.
		u[i0] += best
		for _, j = range scanned {
			d = best - dist[j]
			v[j] -= d
			u[rowOf[j]] += d
		}

		// Flip the alternating path.
		for j = sink; ; {
			r = pred[j]
			k = colOf[r]
			rowOf[j] = r
			colOf[r] = j
			if r == i0 {
				break
			}
			j = k
		}

		log.Debug("row augmented",
			zap.String("algorithm", ShortestPathHeap.String()),
			zap.Int("row", i0),
			zap.Int("scanned", len(scanned)),
			zap.Float64("distance", best),
		)
	}

	return colOf
}
