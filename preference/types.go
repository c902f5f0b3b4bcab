package preference

import "strconv"

// Rank is an optional preference rank. The zero value is Absent.
type Rank struct {
	value  int  // stated rank, meaningful only when stated==true
	stated bool // false ⇒ no preference given
}

// Absent is the rank of a cell the student left blank.
var Absent = Rank{}

// Ranked returns a stated rank v. Positivity is checked by NewTable, not here,
// so loaders can report the offending cell themselves.
func Ranked(v int) Rank { return Rank{value: v, stated: true} }

// Value returns the stated rank and true, or (0, false) when absent.
func (r Rank) Value() (int, bool) { return r.value, r.stated }

// IsAbsent reports whether no rank was stated.
func (r Rank) IsAbsent() bool { return !r.stated }

// String renders the rank, or "-" when absent.
func (r Rank) String() string {
	if !r.stated {
		return "-"
	}
	return strconv.Itoa(r.value)
}

// SentinelPolicy selects how the cost of an absent cell is derived.
type SentinelPolicy int

const (
	// SentinelPerRow uses max stated rank of the student's row + Penalty.
	SentinelPerRow SentinelPolicy = iota

	// SentinelGlobal uses max stated rank of the whole table + Penalty.
	SentinelGlobal
)

// String returns the policy name used on the command line.
func (p SentinelPolicy) String() string {
	switch p {
	case SentinelPerRow:
		return "row"
	case SentinelGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// ParseSentinelPolicy maps "row" / "global" to a SentinelPolicy.
func ParseSentinelPolicy(s string) (SentinelPolicy, error) {
	switch s {
	case "row":
		return SentinelPerRow, nil
	case "global":
		return SentinelGlobal, nil
	default:
		return 0, ErrUnknownPolicy
	}
}

// DefaultPenalty is added to the max stated rank to obtain the sentinel cost.
const DefaultPenalty = 1

// Bounds on stated ranks and on Penalty. Their sum stays far below 2^53, so
// every cost is an exact float64 and the sentinel never wraps around.
const (
	MaxStatedRank = 1 << 30
	MaxPenalty    = 1 << 30
)

// Options configures Validate and BuildCostMatrix.
//
// Policy              – sentinel strategy for absent cells (default SentinelPerRow).
// Penalty             – added to the max stated rank; 1..MaxPenalty (default 1).
// AllowDuplicateRanks – if true, Validate accepts a rank reused within a row.
// RequireContiguous   – if true, Validate requires stated ranks to be 1..k.
type Options struct {
	Policy              SentinelPolicy
	Penalty             int
	AllowDuplicateRanks bool
	RequireContiguous   bool
}

// Option represents a functional option for configuring Options.
type Option func(*Options)

// DefaultOptions returns per-row sentinels with penalty 1, strict rank
// uniqueness and no contiguity requirement.
func DefaultOptions() Options {
	return Options{
		Policy:  SentinelPerRow,
		Penalty: DefaultPenalty,
	}
}

// WithPolicy sets the sentinel policy.
func WithPolicy(p SentinelPolicy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithPenalty sets the sentinel penalty.
func WithPenalty(p int) Option {
	return func(o *Options) {
		o.Penalty = p
	}
}

// WithAllowDuplicateRanks tolerates a rank reused within one student's row;
// both cells then simply carry that cost.
func WithAllowDuplicateRanks() Option {
	return func(o *Options) {
		o.AllowDuplicateRanks = true
	}
}

// WithRequireContiguous requires each student's stated ranks to be 1..k.
func WithRequireContiguous() Option {
	return func(o *Options) {
		o.RequireContiguous = true
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
