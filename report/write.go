package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	topicStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6EC4F4"))
	unrankStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F4C56E"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F45E6E"))
)

// painter applies a style only when styling is on.
type painter bool

func (p painter) paint(st lipgloss.Style, s string) string {
	if !p {
		return s
	}
	return st.Render(s)
}

// Write renders s to w.
//
// Layout: one "student -> topic (rank N|unranked)" line per student with
// student names padded to a common width, then free topics, totals, the
// rank histogram and, when Mean > WarnAbove, a warning.
func Write(w io.Writer, s Summary, opts ...Option) error {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	p := painter(o.Styled)

	width := 0
	for _, l := range s.Lines {
		if n := len([]rune(l.Student)); n > width {
			width = n
		}
	}

	var b strings.Builder
	b.WriteString(p.paint(headingStyle, "Assignment"))
	b.WriteByte('\n')
	for _, l := range s.Lines {
		pad := strings.Repeat(" ", width-len([]rune(l.Student)))
		fmt.Fprintf(&b, "%s%s -> %s (%s)\n", l.Student, pad, p.paint(topicStyle, l.Topic), rankLabel(p, l))
	}
	if len(s.Free) > 0 {
		fmt.Fprintf(&b, "Free topics: %s\n", strings.Join(s.Free, ", "))
	}
	fmt.Fprintf(&b, "Total unhappiness: %s\n", strconv.FormatFloat(s.Total, 'g', -1, 64))
	fmt.Fprintf(&b, "Average unhappiness: %.2f (std dev %.2f, worst %s)\n",
		s.Mean, s.StdDev, strconv.FormatFloat(s.Worst, 'g', -1, 64))
	b.WriteString("Ranks received:")
	for _, h := range s.Histogram {
		fmt.Fprintf(&b, " %d×%d", h.Rank, h.Count)
	}
	if s.Unranked > 0 {
		fmt.Fprintf(&b, " unranked×%d", s.Unranked)
	}
	b.WriteByte('\n')
	if o.WarnAbove > 0 && s.Mean > o.WarnAbove {
		b.WriteString(p.paint(warnStyle, fmt.Sprintf(
			"WARNING: average unhappiness %.2f is above %.2f; this indicates a bad solution", s.Mean, o.WarnAbove)))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func rankLabel(p painter, l Line) string {
	if v, ok := l.Rank.Value(); ok {
		return "rank " + strconv.Itoa(v)
	}
	return p.paint(unrankStyle, "unranked")
}
