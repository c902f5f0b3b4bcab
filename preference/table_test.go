package preference_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topicassign/preference"
)

// r is shorthand for preference.Ranked; _a marks an absent cell.
var (
	r  = preference.Ranked
	_a = preference.Absent
)

func TestRank_ZeroValueIsAbsent(t *testing.T) {
	var zero preference.Rank
	assert.True(t, zero.IsAbsent())
	v, ok := zero.Value()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, "-", zero.String())

	assert.Equal(t, "3", r(3).String())
}

func TestNewTable_Valid(t *testing.T) {
	tbl, err := preference.NewTable(
		[]string{"Ann", "Bob"},
		[]string{"T1", "T2", "T3"},
		[][]preference.Rank{{r(1), _a, r(2)}, {_a, r(1), _a}},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.NumStudents())
	assert.Equal(t, 3, tbl.NumTopics())
	assert.Equal(t, "Bob", tbl.Student(1))
	assert.Equal(t, "T3", tbl.Topic(2))
	assert.Equal(t, 2, tbl.StatedCount(0))
	assert.Equal(t, 2, tbl.MaxRank(0))
	assert.Equal(t, 1, tbl.MaxRank(1))
	assert.Equal(t, 2, tbl.GlobalMaxRank())
	assert.True(t, tbl.Rank(1, 0).IsAbsent())
}

func TestNewTable_CopiesInputs(t *testing.T) {
	students := []string{"Ann"}
	row := []preference.Rank{r(1)}
	tbl, err := preference.NewTable(students, []string{"T1"}, [][]preference.Rank{row})
	require.NoError(t, err)

	students[0] = "Changed"
	row[0] = r(9)
	assert.Equal(t, "Ann", tbl.Student(0))
	assert.Equal(t, "1", tbl.Rank(0, 0).String())

	names := tbl.Students()
	names[0] = "Other"
	assert.Equal(t, "Ann", tbl.Student(0))
}

func TestNewTable_Errors(t *testing.T) {
	cases := []struct {
		name     string
		students []string
		topics   []string
		ranks    [][]preference.Rank
		want     error
	}{
		{"no students", nil, []string{"T1"}, nil, preference.ErrEmptyTable},
		{"no topics", []string{"A"}, nil, [][]preference.Rank{{}}, preference.ErrEmptyTable},
		{"empty student", []string{""}, []string{"T1"}, [][]preference.Rank{{r(1)}}, preference.ErrEmptyName},
		{"dup student", []string{"A", "A"}, []string{"T1", "T2"}, [][]preference.Rank{{r(1), _a}, {_a, r(1)}}, preference.ErrDuplicateName},
		{"dup topic", []string{"A"}, []string{"T", "T"}, [][]preference.Rank{{r(1), _a}}, preference.ErrDuplicateName},
		{"row count", []string{"A", "B"}, []string{"T1", "T2"}, [][]preference.Rank{{r(1), _a}}, preference.ErrDimensionMismatch},
		{"ragged row", []string{"A"}, []string{"T1", "T2"}, [][]preference.Rank{{r(1)}}, preference.ErrDimensionMismatch},
		{"zero rank", []string{"A"}, []string{"T1"}, [][]preference.Rank{{r(0)}}, preference.ErrNonPositiveRank},
		{"negative rank", []string{"A"}, []string{"T1"}, [][]preference.Rank{{r(-2)}}, preference.ErrNonPositiveRank},
		{"rank too large", []string{"A"}, []string{"T1"}, [][]preference.Rank{{r(preference.MaxStatedRank + 1)}}, preference.ErrRankTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := preference.NewTable(tc.students, tc.topics, tc.ranks)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewTable_MoreStudentsThanTopicsIsAllowed(t *testing.T) {
	// Shape is a solvability constraint, enforced by BuildCostMatrix.
	_, err := preference.NewTable(
		[]string{"A", "B"},
		[]string{"T1"},
		[][]preference.Rank{{r(1)}, {r(1)}},
	)
	require.NoError(t, err)
}

func TestParseSentinelPolicy(t *testing.T) {
	p, err := preference.ParseSentinelPolicy("row")
	require.NoError(t, err)
	assert.Equal(t, preference.SentinelPerRow, p)

	p, err = preference.ParseSentinelPolicy("global")
	require.NoError(t, err)
	assert.Equal(t, preference.SentinelGlobal, p)
	assert.Equal(t, "global", p.String())

	_, err = preference.ParseSentinelPolicy("median")
	require.ErrorIs(t, err, preference.ErrUnknownPolicy)
}
