package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/topicassign/preference"
)

const bom = "\ufeff"

// Load opens path and parses it with Read.
func Load(path string, opts ...Option) (*preference.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// Read parses a delimited preference table from r.
//
// Implementation:
//   - Stage 1: header row ⇒ topic names (first cell ignored).
//   - Stage 2: each data row ⇒ student name + one rank cell per topic;
//     the field count must equal the header's.
//   - Stage 3: hand names and ranks to preference.NewTable.
//
// Duplicate names, non-integer cells and ranks below 1 are reported with
// their line and field. Rank uniqueness within a row is not checked here;
// see preference.Validate.
//
// Complexity: O(S·T).
func Read(r io.Reader, opts ...Option) (*preference.Table, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.Comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &FormatError{Line: 1, Err: errors.New("missing header row")}
	}
	if err != nil {
		return nil, csvError(err)
	}
	header[0] = strings.TrimPrefix(header[0], bom)
	if len(header) < 2 {
		return nil, &FormatError{Line: 1, Err: errors.New("header names no topics")}
	}

	topics := make([]string, len(header)-1)
	seenTopic := make(map[string]string, len(topics))
	for j := range topics {
		topics[j] = strings.TrimSpace(header[j+1])
		if err = checkName(topics[j], seenTopic, fmt.Sprintf("field %d", j+2)); err != nil {
			return nil, &FormatError{Line: 1, Column: j + 2, Err: err}
		}
	}

	var (
		students    []string
		ranks       [][]preference.Rank
		seenStudent = make(map[string]string)
		rec         []string
		line        int
	)
	for {
		rec, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		line, _ = cr.FieldPos(0)
		if len(rec) != len(header) {
			return nil, &FormatError{Line: line, Err: fmt.Errorf("%d fields, header has %d", len(rec), len(header))}
		}

		name := strings.TrimSpace(rec[0])
		if err = checkName(name, seenStudent, fmt.Sprintf("line %d", line)); err != nil {
			return nil, &FormatError{Line: line, Column: 1, Err: err}
		}

		row := make([]preference.Rank, len(topics))
		for j := range row {
			if row[j], err = parseRank(rec[j+1]); err != nil {
				return nil, &FormatError{Line: line, Column: j + 2, Err: err}
			}
		}
		students = append(students, name)
		ranks = append(ranks, row)
	}

	if len(students) == 0 {
		return nil, &FormatError{Line: 2, Err: fmt.Errorf("no student rows: %w", preference.ErrEmptyTable)}
	}

	return preference.NewTable(students, topics, ranks)
}

// checkName rejects empty and repeated names; pos locates the occurrence
// and is quoted when the same name shows up again.
func checkName(name string, seen map[string]string, pos string) error {
	if name == "" {
		return preference.ErrEmptyName
	}
	if first, ok := seen[name]; ok {
		return fmt.Errorf("%q already used at %s: %w", name, first, preference.ErrDuplicateName)
	}
	seen[name] = pos
	return nil
}

// parseRank maps "" to Absent and an integer in 1..MaxStatedRank to Ranked.
func parseRank(cell string) (preference.Rank, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return preference.Absent, nil
	}
	v, err := strconv.Atoi(cell)
	if errors.Is(err, strconv.ErrRange) {
		return preference.Absent, fmt.Errorf("rank %s: %w", cell, preference.ErrRankTooLarge)
	}
	if err != nil {
		return preference.Absent, fmt.Errorf("rank %q is not an integer", cell)
	}
	if v < 1 {
		return preference.Absent, fmt.Errorf("rank %d: %w", v, preference.ErrNonPositiveRank)
	}
	if v > preference.MaxStatedRank {
		return preference.Absent, fmt.Errorf("rank %d: %w", v, preference.ErrRankTooLarge)
	}
	return preference.Ranked(v), nil
}

// csvError converts encoding/csv failures into a *FormatError.
func csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &FormatError{Line: pe.Line, Err: pe.Err}
	}
	return fmt.Errorf("table: %w", err)
}
