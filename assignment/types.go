package assignment

import (
	"go.uber.org/zap"
)

// Algorithm selects the solver used by Solve.
type Algorithm int

const (
	// JonkerVolgenant runs dense shortest augmenting paths with potentials.
	JonkerVolgenant Algorithm = iota

	// ShortestPathHeap runs heap-driven Dijkstra over reduced costs.
	ShortestPathHeap

	// Exhaustive enumerates every injective mapping (oracle, small n only).
	Exhaustive
)

// String returns the short name used on the command line.
func (a Algorithm) String() string {
	switch a {
	case JonkerVolgenant:
		return "jv"
	case ShortestPathHeap:
		return "heap"
	case Exhaustive:
		return "exhaustive"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps "jv" / "heap" / "exhaustive" to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "jv":
		return JonkerVolgenant, nil
	case "heap":
		return ShortestPathHeap, nil
	case "exhaustive":
		return Exhaustive, nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}

// DefaultExhaustiveLimit caps the number of injective mappings Exhaustive
// may enumerate (8 rows over 8 columns is 40320; 8 over 12 is ~2e7).
const DefaultExhaustiveLimit = 5_000_000

// Options configures Solve.
//
// Algorithm       – solver to run (default JonkerVolgenant).
// ExhaustiveLimit – max number of mappings Exhaustive may visit (default 5e6).
// Logger          – receives one debug entry per augmentation; nil ⇒ no-op.
type Options struct {
	Algorithm       Algorithm
	ExhaustiveLimit int
	Logger          *zap.Logger
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the JonkerVolgenant solver with a no-op logger.
func DefaultOptions() Options {
	return Options{
		Algorithm:       JonkerVolgenant,
		ExhaustiveLimit: DefaultExhaustiveLimit,
		Logger:          zap.NewNop(),
	}
}

// WithAlgorithm selects the solver.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithExhaustiveLimit overrides the Exhaustive enumeration cap.
func WithExhaustiveLimit(n int) Option {
	return func(o *Options) {
		o.ExhaustiveLimit = n
	}
}

// WithLogger attaches a logger for augmentation tracing.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Pair is one matched (row, column) edge.
type Pair struct {
	Row int
	Col int
}

// Result holds the outcome of a solver.
type Result struct {
	// Assignment[row] is the column matched to row; len == rows of the matrix.
	Assignment []int

	// Cost is the sum of cost[row][Assignment[row]] over all rows.
	Cost float64

	// Algorithm is the solver that produced the result.
	Algorithm Algorithm
}

// Len returns the number of matched rows.
func (r Result) Len() int { return len(r.Assignment) }

// Pairs returns the matching as (row, column) pairs in row order.
func (r Result) Pairs() []Pair {
	out := make([]Pair, len(r.Assignment))
	for i, j := range r.Assignment {
		out[i] = Pair{Row: i, Col: j}
	}
	return out
}

// ColumnOwners returns, for cols columns, the row matched to each column
// or -1 for a free column.
func (r Result) ColumnOwners(cols int) []int {
	out := make([]int, cols)
	for j := range out {
		out[j] = -1
	}
	for i, j := range r.Assignment {
		if j >= 0 && j < cols {
			out[j] = i
		}
	}
	return out
}
