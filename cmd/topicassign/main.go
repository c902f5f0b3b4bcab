// Command topicassign assigns seminar topics to students from a table of
// ranked preferences, minimizing the total unhappiness (sum of ranks).
//
// Usage:
//
//	topicassign [flags] preferences.csv
//
// The table's first row names the topics, the first column names the
// students, and every other cell is empty (no preference) or a rank 1..n.
// Topics a student left blank cost the student's highest rank plus -penalty,
// so they are used only when needed.
//
// Exit status: 0 on success, 1 when the table cannot be loaded or solved,
// 2 on bad usage.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/katalvlaran/topicassign/assignment"
	"github.com/katalvlaran/topicassign/matrix"
	"github.com/katalvlaran/topicassign/preference"
	"github.com/katalvlaran/topicassign/report"
	"github.com/katalvlaran/topicassign/table"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, styled))
}

// config is the parsed command line.
type config struct {
	path            string
	sep             rune
	penalty         int
	policy          preference.SentinelPolicy
	algo            assignment.Algorithm
	allowDuplicates bool
	contiguous      bool
	warnAbove       float64
	verify          bool
	verbose         bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var (
		cfg    config
		sep    string
		policy string
		algo   string
	)
	flags := flag.NewFlagSet("topicassign", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&sep, "sep", string(table.DefaultComma), "single-character field separator")
	flags.IntVar(&cfg.penalty, "penalty", preference.DefaultPenalty, "cost added above a student's highest rank for topics left blank")
	flags.StringVar(&policy, "policy", preference.SentinelPerRow.String(), "blank-cell cost base: row (student's max rank) or global (table max rank)")
	flags.StringVar(&algo, "algo", assignment.JonkerVolgenant.String(), "solver: jv, heap or exhaustive")
	flags.BoolVar(&cfg.allowDuplicates, "allow-duplicates", false, "accept a rank used twice by the same student")
	flags.BoolVar(&cfg.contiguous, "contiguous", false, "require each student's ranks to be 1..k without gaps")
	flags.Float64Var(&cfg.warnAbove, "warn-above", report.DefaultWarnAbove, "warn when the average unhappiness exceeds this (0 disables)")
	flags.BoolVar(&cfg.verify, "verify", false, "cross-check the result against exhaustive search when small enough")
	flags.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "usage: topicassign [flags] preferences.csv")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return cfg, fmt.Errorf("expected exactly one table path, got %d arguments", flags.NArg())
	}
	cfg.path = flags.Arg(0)

	if utf8.RuneCountInString(sep) != 1 {
		return cfg, fmt.Errorf("-sep must be a single character, got %q", sep)
	}
	cfg.sep, _ = utf8.DecodeRuneInString(sep)

	var err error
	if cfg.policy, err = preference.ParseSentinelPolicy(policy); err != nil {
		return cfg, fmt.Errorf("-policy %q: %w", policy, err)
	}
	if cfg.algo, err = assignment.ParseAlgorithm(algo); err != nil {
		return cfg, fmt.Errorf("-algo %q: %w", algo, err)
	}
	if cfg.penalty < 1 || cfg.penalty > preference.MaxPenalty {
		return cfg, fmt.Errorf("-penalty %d: %w", cfg.penalty, preference.ErrBadPenalty)
	}

	return cfg, nil
}

// newLogger builds a console logger on stderr; debug level with -v.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}

// run executes the command and returns the process exit status.
func run(args []string, stdout, stderr io.Writer, styled bool) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "topicassign:", err)
		return exitUsage
	}

	log := newLogger(stderr, cfg.verbose)
	defer func() { _ = log.Sync() }()

	if err = solve(cfg, stdout, styled, log); err != nil {
		log.Error(describe(err), zap.String("table", cfg.path), zap.Error(err))
		return exitError
	}
	return exitOK
}

// solve loads, validates, builds, solves and reports.
func solve(cfg config, stdout io.Writer, styled bool, log *zap.Logger) error {
	tbl, err := table.Load(cfg.path, table.WithComma(cfg.sep))
	if err != nil {
		return err
	}
	log.Debug("table loaded",
		zap.Int("students", tbl.NumStudents()),
		zap.Int("topics", tbl.NumTopics()),
	)

	popts := []preference.Option{
		preference.WithPolicy(cfg.policy),
		preference.WithPenalty(cfg.penalty),
	}
	if cfg.allowDuplicates {
		popts = append(popts, preference.WithAllowDuplicateRanks())
	}
	if cfg.contiguous {
		popts = append(popts, preference.WithRequireContiguous())
	}
	if err = preference.Validate(tbl, popts...); err != nil {
		return err
	}
	for s := 0; s < tbl.NumStudents(); s++ {
		if tbl.StatedCount(s) == 0 {
			log.Warn("student ranked no topics", zap.String("student", tbl.Student(s)))
		}
	}

	cost, err := preference.BuildCostMatrix(tbl, popts...)
	if err != nil {
		return err
	}

	res, err := assignment.Solve(cost,
		assignment.WithAlgorithm(cfg.algo),
		assignment.WithLogger(log),
	)
	if err != nil {
		return err
	}
	log.Debug("solved", zap.Stringer("algorithm", res.Algorithm), zap.Float64("cost", res.Cost))

	if cfg.verify {
		if err = verify(cost, res, log); err != nil {
			return err
		}
	}

	sum, err := report.Summarize(tbl, cost, res)
	if err != nil {
		return err
	}
	return report.Write(stdout, sum,
		report.WithStyled(styled),
		report.WithWarnAbove(cfg.warnAbove),
	)
}

// errSuboptimal reports a disagreement with the exhaustive oracle.
var errSuboptimal = errors.New("topicassign: result is not optimal")

// verify re-checks feasibility and, when the instance is small enough,
// optimality against exhaustive search.
func verify(cost *matrix.Dense, res assignment.Result, log *zap.Logger) error {
	if err := assignment.Verify(cost, res); err != nil {
		return err
	}
	oracle, err := assignment.Solve(cost, assignment.WithAlgorithm(assignment.Exhaustive))
	if errors.Is(err, assignment.ErrTooLarge) {
		log.Info("skipping exhaustive cross-check", zap.Error(err))
		return nil
	}
	if err != nil {
		return err
	}
	if !assignment.SameCost(oracle.Cost, res.Cost) {
		return fmt.Errorf("%w: cost %g, exhaustive search found %g", errSuboptimal, res.Cost, oracle.Cost)
	}
	log.Info("result verified against exhaustive search", zap.Float64("cost", res.Cost))
	return nil
}

// describe names the failure class for the log line.
func describe(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "missing input file"
	case errors.Is(err, preference.ErrRankTooLarge):
		return "preference rank out of range"
	case errors.Is(err, table.ErrInputFormat):
		return "malformed table"
	case errors.Is(err, preference.ErrDuplicatePreference):
		return "duplicate preference rank"
	case errors.Is(err, preference.ErrRankGap):
		return "preference ranks have gaps"
	case errors.Is(err, preference.ErrShape), errors.Is(err, assignment.ErrShape):
		return "fewer topics than students"
	case errors.Is(err, assignment.ErrNumeric), errors.Is(err, assignment.ErrNegativeCost):
		return "invalid cost values"
	case errors.Is(err, errSuboptimal):
		return "verification failed"
	default:
		return "assignment failed"
	}
}
