package preference

import "fmt"

// Table is an immutable grid of optional ranks: Ranks[s][t] is the rank
// student s gave topic t.
type Table struct {
	students []string
	topics   []string
	ranks    [][]Rank
}

// NewTable validates and copies the inputs into a Table.
//
// Contracts:
//   - len(students) ≥ 1 and len(topics) ≥ 1.
//   - names are non-empty and unique per axis.
//   - len(ranks) == len(students); every row has len(topics) cells.
//   - every stated rank is in 1..MaxStatedRank.
//
// NewTable does not require topics ≥ students: that is a solvability
// constraint checked by BuildCostMatrix, so a loader can still report on
// an unsolvable table.
//
// Complexity: O(S·T).
func NewTable(students, topics []string, ranks [][]Rank) (*Table, error) {
	if len(students) == 0 || len(topics) == 0 {
		return nil, ErrEmptyTable
	}
	if err := checkNames("student", students); err != nil {
		return nil, err
	}
	if err := checkNames("topic", topics); err != nil {
		return nil, err
	}
	if len(ranks) != len(students) {
		return nil, fmt.Errorf("%d rank rows for %d students: %w", len(ranks), len(students), ErrDimensionMismatch)
	}

	t := &Table{
		students: append([]string(nil), students...),
		topics:   append([]string(nil), topics...),
		ranks:    make([][]Rank, len(students)),
	}
	var (
		s, j int
		v    int
		ok   bool
	)
	for s = range ranks {
		if len(ranks[s]) != len(topics) {
			return nil, fmt.Errorf("student %q has %d cells for %d topics: %w",
				students[s], len(ranks[s]), len(topics), ErrDimensionMismatch)
		}
		for j = range ranks[s] {
			if v, ok = ranks[s][j].Value(); !ok {
				continue
			}
			if v < 1 {
				return nil, fmt.Errorf("student %q, topic %q: rank %d: %w",
					students[s], topics[j], v, ErrNonPositiveRank)
			}
			if v > MaxStatedRank {
				return nil, fmt.Errorf("student %q, topic %q: rank %d: %w",
					students[s], topics[j], v, ErrRankTooLarge)
			}
		}
		t.ranks[s] = append([]Rank(nil), ranks[s]...)
	}

	return t, nil
}

// checkNames enforces non-empty, unique names along one axis.
func checkNames(axis string, names []string) error {
	seen := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return fmt.Errorf("%s #%d: %w", axis, i+1, ErrEmptyName)
		}
		if first, ok := seen[name]; ok {
			return fmt.Errorf("%s %q at #%d and #%d: %w", axis, name, first+1, i+1, ErrDuplicateName)
		}
		seen[name] = i
	}
	return nil
}

// NumStudents returns the number of rows.
func (t *Table) NumStudents() int { return len(t.students) }

// NumTopics returns the number of columns.
func (t *Table) NumTopics() int { return len(t.topics) }

// Students returns a copy of the student names in row order.
func (t *Table) Students() []string { return append([]string(nil), t.students...) }

// Topics returns a copy of the topic names in column order.
func (t *Table) Topics() []string { return append([]string(nil), t.topics...) }

// Student returns the name of row s.
func (t *Table) Student(s int) string { return t.students[s] }

// Topic returns the name of column j.
func (t *Table) Topic(j int) string { return t.topics[j] }

// Rank returns the rank student s gave topic j.
// Indices are not checked; callers iterate over NumStudents/NumTopics.
func (t *Table) Rank(s, j int) Rank { return t.ranks[s][j] }

// StatedCount returns how many topics student s ranked.
func (t *Table) StatedCount(s int) int {
	n := 0
	for _, r := range t.ranks[s] {
		if !r.IsAbsent() {
			n++
		}
	}
	return n
}

// MaxRank returns the highest rank stated by student s, or 0 if none.
func (t *Table) MaxRank(s int) int {
	m := 0
	for _, r := range t.ranks[s] {
		if v, ok := r.Value(); ok && v > m {
			m = v
		}
	}
	return m
}

// GlobalMaxRank returns the highest rank stated anywhere, or 0 if none.
func (t *Table) GlobalMaxRank() int {
	m := 0
	for s := range t.ranks {
		if v := t.MaxRank(s); v > m {
			m = v
		}
	}
	return m
}
