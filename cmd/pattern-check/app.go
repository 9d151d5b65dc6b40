package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/Veraticus/pattern-check/pkg/config"
	"github.com/Veraticus/pattern-check/pkg/matcher"
	"github.com/Veraticus/pattern-check/pkg/report"
)

// Exit codes
const (
	exitOK      = 0
	exitError   = 1
	exitInvalid = 2
)

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config   *config.Config
	Matcher  *matcher.Matcher
	Reporter *report.Reporter
}

// NewDependencies compiles the configured pattern and builds a reporter
// writing to out. No output is produced if the pattern does not compile.
func NewDependencies(cfg *config.Config, out io.Writer, color bool) (*Dependencies, error) {
	m, err := matcher.New(cfg.Pattern)
	if err != nil {
		return nil, err
	}
	slog.Debug("Compiled pattern", "pattern", m.Pattern())

	opts := report.Options{
		SuccessMarker: cfg.SuccessMarker,
		FailureMarker: cfg.FailureMarker,
		Color:         color,
	}

	return &Dependencies{
		Config:   cfg,
		Matcher:  m,
		Reporter: report.NewReporter(m, out, opts),
	}, nil
}

// Application represents the main application
type Application struct {
	deps     *Dependencies
	verdicts []report.Verdict
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// Run reports a verdict for every candidate
func (a *Application) Run(candidates []string) error {
	slog.Debug("Checking candidates", "count", len(candidates))

	verdicts, err := a.deps.Reporter.Report(candidates)
	a.verdicts = verdicts
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	slog.Debug("Report complete", "checked", len(verdicts), "all_valid", report.AllValid(verdicts))
	return nil
}

// ExitCode returns the process exit code for the last run
func (a *Application) ExitCode() int {
	if a.deps.Config.Strict && !report.AllValid(a.verdicts) {
		return exitInvalid
	}
	return exitOK
}

// colorEnabled resolves the color mode against whether stdout is a terminal
func colorEnabled(mode string, terminal bool) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return terminal
	}
}

// isTerminal reports whether f is an interactive terminal that understands
// escape sequences
func isTerminal(f *os.File) bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// outputWriter wraps w so ANSI colors render on every platform when color is
// on and w is a file
func outputWriter(w io.Writer, color bool) io.Writer {
	if f, ok := w.(*os.File); ok && color {
		return colorable.NewColorable(f)
	}
	return w
}
