package assignment

import (
	"fmt"
	"math"
)

// solveExhaustive enumerates injective row→column mappings depth-first,
// trying columns in increasing index order, and keeps the first mapping
// with the strictly lowest cost. Partial sums that already reach the best
// total are cut, which is safe because costs are non-negative.
//
// It refuses instances with more than limit mappings (m!/(m−n)!).
//
// Complexity: O(m!/(m−n)!) worst case; O(n + m) extra space.
func solveExhaustive(c *costs, limit int) ([]int, error) {
	if count, ok := mappings(c.n, c.m, limit); !ok {
		return nil, fmt.Errorf("%d×%d has more than %d mappings (at least %d): %w",
			c.n, c.m, limit, count, ErrTooLarge)
	}

	var (
		cur   = make([]int, c.n)
		best  = make([]int, c.n)
		taken = make([]bool, c.m)
		low   = math.Inf(1)
	)

	var walk func(row int, sum float64)
	walk = func(row int, sum float64) {
		if sum >= low {
			return
		}
		if row == c.n {
			low = sum
			copy(best, cur)
			return
		}
		for j := 0; j < c.m; j++ {
			if taken[j] {
				continue
			}
			taken[j] = true
			cur[row] = j
			walk(row+1, sum+c.at(row, j))
			taken[j] = false
		}
	}
	walk(0, 0)

	return best, nil
}

// mappings returns m·(m−1)·…·(m−n+1), stopping as soon as the product
// exceeds limit; ok is false in that case.
func mappings(n, m, limit int) (count int, ok bool) {
	count = 1
	for k := 0; k < n; k++ {
		count *= m - k
		if count > limit {
			return count, false
		}
	}
	return count, true
}
