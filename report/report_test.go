package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topicassign/assignment"
	"github.com/katalvlaran/topicassign/matrix"
	"github.com/katalvlaran/topicassign/preference"
	"github.com/katalvlaran/topicassign/report"
)

var (
	r  = preference.Ranked
	_a = preference.Absent
)

func build(t *testing.T, students, topics []string, ranks [][]preference.Rank) (*preference.Table, *matrix.Dense) {
	t.Helper()
	tbl, err := preference.NewTable(students, topics, ranks)
	require.NoError(t, err)
	cost, err := preference.BuildCostMatrix(tbl)
	require.NoError(t, err)
	return tbl, cost
}

func TestSummarize_FreeTopicAndStats(t *testing.T) {
	tbl, cost := build(t,
		[]string{"A", "B"},
		[]string{"T1", "T2", "T3"},
		[][]preference.Rank{{r(1), _a, r(2)}, {_a, r(1), r(2)}},
	)
	res, err := assignment.Solve(cost)
	require.NoError(t, err)

	sum, err := report.Summarize(tbl, cost, res)
	require.NoError(t, err)
	require.Len(t, sum.Lines, 2)
	assert.Equal(t, report.Line{Student: "A", Topic: "T1", Rank: r(1), Cost: 1}, sum.Lines[0])
	assert.Equal(t, report.Line{Student: "B", Topic: "T2", Rank: r(1), Cost: 1}, sum.Lines[1])
	assert.Equal(t, []string{"T3"}, sum.Free)
	assert.Equal(t, 2.0, sum.Total)
	assert.Equal(t, 1.0, sum.Mean)
	assert.Zero(t, sum.StdDev)
	assert.Equal(t, 1.0, sum.Worst)
	assert.Zero(t, sum.Unranked)
	assert.Equal(t, []report.Bucket{{Rank: 1, Count: 2}}, sum.Histogram)
}

func TestSummarize_UnrankedPlacement(t *testing.T) {
	tbl, cost := build(t,
		[]string{"Ann", "Bob"},
		[]string{"X", "Y"},
		[][]preference.Rank{{r(1), _a}, {r(1), _a}},
	)
	res := assignment.Result{Assignment: []int{0, 1}, Cost: 3}

	sum, err := report.Summarize(tbl, cost, res)
	require.NoError(t, err)
	assert.True(t, sum.Lines[1].Rank.IsAbsent())
	assert.Equal(t, 2.0, sum.Lines[1].Cost)
	assert.Equal(t, 1, sum.Unranked)
	assert.Equal(t, 1.5, sum.Mean)
	assert.InDelta(t, 0.5, sum.StdDev, 1e-12)
	assert.Empty(t, sum.Free)
}

func TestSummarize_Mismatch(t *testing.T) {
	tbl, cost := build(t,
		[]string{"A", "B"},
		[]string{"T1", "T2"},
		[][]preference.Rank{{r(1), r(2)}, {r(2), r(1)}},
	)
	other, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	cases := map[string]struct {
		cost matrix.Matrix
		res  assignment.Result
	}{
		"shape":      {other, assignment.Result{Assignment: []int{0, 1}, Cost: 0}},
		"short":      {cost, assignment.Result{Assignment: []int{0}, Cost: 1}},
		"shared col": {cost, assignment.Result{Assignment: []int{0, 0}, Cost: 3}},
		"nil costs":  {nil, assignment.Result{}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := report.Summarize(tbl, tc.cost, tc.res)
			require.ErrorIs(t, err, report.ErrMismatch)
		})
	}
}

func TestWrite_Plain(t *testing.T) {
	tbl, cost := build(t,
		[]string{"A", "Bobby"},
		[]string{"T1", "T2", "T3"},
		[][]preference.Rank{{r(1), _a, r(2)}, {_a, r(1), r(2)}},
	)
	sum, err := report.Summarize(tbl, cost, assignment.Result{Assignment: []int{0, 1}, Cost: 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, sum))
	assert.Equal(t, ""+
		"Assignment\n"+
		"A     -> T1 (rank 1)\n"+
		"Bobby -> T2 (rank 1)\n"+
		"Free topics: T3\n"+
		"Total unhappiness: 2\n"+
		"Average unhappiness: 1.00 (std dev 0.00, worst 1)\n"+
		"Ranks received: 1×2\n",
		buf.String())
}

func TestWrite_WarningAndUnranked(t *testing.T) {
	tbl, cost := build(t,
		[]string{"Ann", "Bob"},
		[]string{"X", "Y"},
		[][]preference.Rank{{r(1), _a}, {r(1), _a}},
	)
	sum, err := report.Summarize(tbl, cost, assignment.Result{Assignment: []int{0, 1}, Cost: 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, sum, report.WithWarnAbove(1)))
	out := buf.String()
	assert.Contains(t, out, "Bob -> Y (unranked)\n")
	assert.Contains(t, out, "Ranks received: 1×1 unranked×1\n")
	assert.Contains(t, out, "WARNING: average unhappiness 1.50 is above 1.00")

	buf.Reset()
	require.NoError(t, report.Write(&buf, sum, report.WithWarnAbove(0)))
	assert.NotContains(t, buf.String(), "WARNING")

	buf.Reset()
	require.NoError(t, report.Write(&buf, sum, report.WithStyled(true), report.WithWarnAbove(1)))
	assert.Contains(t, buf.String(), "unranked")
	assert.Contains(t, buf.String(), "WARNING")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_PropagatesWriterError(t *testing.T) {
	require.EqualError(t, report.Write(failingWriter{}, report.Summary{}), "disk full")
}
