package preference

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the preference package.
var (
	// ErrEmptyTable indicates a table without students or without topics.
	ErrEmptyTable = errors.New("preference: table has no students or no topics")

	// ErrEmptyName indicates an empty student or topic name.
	ErrEmptyName = errors.New("preference: empty name")

	// ErrDuplicateName indicates a student or topic name that occurs twice.
	ErrDuplicateName = errors.New("preference: duplicate name")

	// ErrDimensionMismatch indicates a rank grid whose shape does not match
	// the student and topic lists.
	ErrDimensionMismatch = errors.New("preference: rank grid does not match names")

	// ErrNonPositiveRank indicates a stated rank below 1.
	ErrNonPositiveRank = errors.New("preference: rank must be >= 1")

	// ErrRankTooLarge indicates a stated rank above MaxStatedRank.
	ErrRankTooLarge = errors.New("preference: rank exceeds MaxStatedRank")

	// ErrShape indicates fewer topics than students; no assignment can
	// give every student a distinct topic.
	ErrShape = errors.New("preference: fewer topics than students")

	// ErrDuplicatePreference indicates a rank used twice in one student's row.
	ErrDuplicatePreference = errors.New("preference: duplicate rank in row")

	// ErrRankGap indicates stated ranks that are not the sequence 1..k.
	ErrRankGap = errors.New("preference: ranks are not a 1..k sequence")

	// ErrBadPenalty indicates a sentinel penalty outside 1..MaxPenalty.
	ErrBadPenalty = errors.New("preference: penalty must be in 1..MaxPenalty")

	// ErrUnknownPolicy indicates an unrecognized SentinelPolicy.
	ErrUnknownPolicy = errors.New("preference: unknown sentinel policy")
)

// DuplicatePreferenceError reports a student who stated the same rank for
// more than one topic.
type DuplicatePreferenceError struct {
	Student string
	Rank    int
	Topics  []string // every topic carrying Rank, in column order
}

func (e *DuplicatePreferenceError) Error() string {
	return fmt.Sprintf("preference: student %q uses rank %d for %d topics %q",
		e.Student, e.Rank, len(e.Topics), e.Topics)
}

// Unwrap lets errors.Is match ErrDuplicatePreference.
func (e *DuplicatePreferenceError) Unwrap() error { return ErrDuplicatePreference }

// RankGapError reports a student whose stated ranks skip a value or do not
// start at 1.
type RankGapError struct {
	Student string
	Missing int // smallest rank in 1..k that was not stated
	Stated  int // k, the number of stated ranks
}

func (e *RankGapError) Error() string {
	return fmt.Sprintf("preference: student %q states %d ranks but rank %d is missing",
		e.Student, e.Stated, e.Missing)
}

// Unwrap lets errors.Is match ErrRankGap.
func (e *RankGapError) Unwrap() error { return ErrRankGap }
