package report

import (
	"errors"

	"github.com/katalvlaran/topicassign/preference"
)

// ErrMismatch indicates that table, cost matrix and result disagree in shape.
var ErrMismatch = errors.New("report: table, costs and assignment do not match")

// Line is one student's outcome.
type Line struct {
	Student string
	Topic   string
	Rank    preference.Rank // Absent when the student did not rank Topic
	Cost    float64         // cost the solver used (rank or sentinel)
}

// Bucket counts students who received a topic of a given rank.
type Bucket struct {
	Rank  int
	Count int
}

// Summary aggregates a solved assignment.
type Summary struct {
	Lines     []Line   // one per student, table order
	Free      []string // topics nobody received, table order
	Total     float64  // sum of Line.Cost
	Mean      float64  // population mean of Line.Cost
	StdDev    float64  // population standard deviation of Line.Cost
	Worst     float64  // max Line.Cost
	Unranked  int      // students placed on a topic they did not rank
	Histogram []Bucket // stated-rank counts, ascending rank
}

// DefaultWarnAbove matches the "expected number of stated preferences" of
// the seminar workflow: averaging worse than a third choice is suspicious.
const DefaultWarnAbove = 3.0

// Options configures Write.
//
// Styled    – render headings and warnings with lipgloss styles.
// WarnAbove – warn when Mean > WarnAbove; ≤ 0 disables the warning.
type Options struct {
	Styled    bool
	WarnAbove float64
}

// Option represents a functional option for configuring Write.
type Option func(*Options)

// DefaultOptions returns plain output with the default warning threshold.
func DefaultOptions() Options {
	return Options{WarnAbove: DefaultWarnAbove}
}

// WithStyled toggles lipgloss styling.
func WithStyled(on bool) Option {
	return func(o *Options) {
		o.Styled = on
	}
}

// WithWarnAbove sets the average-unhappiness warning threshold.
func WithWarnAbove(v float64) Option {
	return func(o *Options) {
		o.WarnAbove = v
	}
}
