package preference

// Validate applies the row-level rank conventions the solver itself does
// not need: rank uniqueness within a student's row (unless
// AllowDuplicateRanks) and, when RequireContiguous is set, ranks forming
// the sequence 1..k.
//
// Rows are checked in table order and the first violation is returned, as a
// *DuplicatePreferenceError or *RankGapError.
//
// Complexity: O(S·T) time, O(T) extra space.
func Validate(t *Table, opts ...Option) error {
	if t == nil {
		return ErrEmptyTable
	}
	o := buildOptions(opts)

	var s int
	for s = 0; s < t.NumStudents(); s++ {
		byRank := t.columnsByRank(s)
		if !o.AllowDuplicateRanks {
			if err := t.checkUnique(s, byRank); err != nil {
				return err
			}
		}
		if o.RequireContiguous {
			if err := t.checkContiguous(s, byRank); err != nil {
				return err
			}
		}
	}

	return nil
}

// columnsByRank groups the columns of row s by stated rank.
func (t *Table) columnsByRank(s int) map[int][]int {
	out := make(map[int][]int)
	for j, r := range t.ranks[s] {
		if v, ok := r.Value(); ok {
			out[v] = append(out[v], j)
		}
	}
	return out
}

// checkUnique reports the lowest rank that student s used more than once,
// so the error is stable regardless of map iteration order.
func (t *Table) checkUnique(s int, byRank map[int][]int) error {
	worst := 0
	for v, cols := range byRank {
		if len(cols) > 1 && (worst == 0 || v < worst) {
			worst = v
		}
	}
	if worst == 0 {
		return nil
	}
	cols := byRank[worst]
	topics := make([]string, len(cols))
	for i, j := range cols {
		topics[i] = t.topics[j]
	}
	return &DuplicatePreferenceError{Student: t.students[s], Rank: worst, Topics: topics}
}

// checkContiguous requires the distinct ranks of row s to be exactly 1..d.
func (t *Table) checkContiguous(s int, byRank map[int][]int) error {
	d := len(byRank)
	for v := 1; v <= d; v++ {
		if _, ok := byRank[v]; !ok {
			return &RankGapError{Student: t.students[s], Missing: v, Stated: d}
		}
	}
	return nil
}
