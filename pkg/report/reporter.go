// Package report evaluates candidates against a matcher and writes one
// verdict line per candidate.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/Veraticus/pattern-check/pkg/interfaces"
)

const (
	// DefaultSuccessMarker prefixes lines for candidates that match
	DefaultSuccessMarker = "✓"
	// DefaultFailureMarker prefixes lines for candidates that do not match
	DefaultFailureMarker = "✗"

	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// Verdict is the result of testing one candidate
type Verdict struct {
	Candidate string
	Valid     bool
}

// Options controls line formatting
type Options struct {
	SuccessMarker string
	FailureMarker string
	Color         bool
}

// DefaultOptions returns uncolored options with the default markers
func DefaultOptions() Options {
	return Options{
		SuccessMarker: DefaultSuccessMarker,
		FailureMarker: DefaultFailureMarker,
	}
}

// Reporter writes verdict lines for a sequence of candidates
type Reporter struct {
	matcher interfaces.Matcher
	out     io.Writer
	opts    Options
}

// NewReporter creates a new reporter writing to out
func NewReporter(m interfaces.Matcher, out io.Writer, opts Options) *Reporter {
	if opts.SuccessMarker == "" {
		opts.SuccessMarker = DefaultSuccessMarker
	}
	if opts.FailureMarker == "" {
		opts.FailureMarker = DefaultFailureMarker
	}
	return &Reporter{
		matcher: m,
		out:     out,
		opts:    opts,
	}
}

// Evaluate returns one verdict per candidate, in input order
func (r *Reporter) Evaluate(candidates []string) []Verdict {
	verdicts := make([]Verdict, 0, len(candidates))
	for _, c := range candidates {
		verdicts = append(verdicts, Verdict{
			Candidate: c,
			Valid:     r.matcher.Matches(c),
		})
	}
	return verdicts
}

// Report evaluates candidates and writes one line for each. It returns the
// verdicts it wrote so callers can act on them.
func (r *Reporter) Report(candidates []string) ([]Verdict, error) {
	verdicts := r.Evaluate(candidates)
	for i, v := range verdicts {
		if _, err := io.WriteString(r.out, FormatLine(v, r.opts)+"\n"); err != nil {
			return verdicts[:i], fmt.Errorf("failed to write verdict for %q: %w", v.Candidate, err)
		}
	}
	return verdicts, nil
}

// FormatLine renders a verdict as "<marker> <candidate> is <valid|invalid>".
// Control characters in the candidate are escaped so every verdict stays on
// one line.
func FormatLine(v Verdict, opts Options) string {
	marker, color, word := opts.FailureMarker, ansiRed, "invalid"
	if v.Valid {
		marker, color, word = opts.SuccessMarker, ansiGreen, "valid"
	}
	if opts.Color {
		marker = color + marker + ansiReset
	}
	return fmt.Sprintf("%s %s is %s", marker, escapeControl(v.Candidate), word)
}

// escapeControl replaces control characters with their Go escape sequence
func escapeControl(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) < 0 {
		return s
	}

	var b strings.Builder
	for _, r := range s {
		if !unicode.IsControl(r) {
			b.WriteRune(r)
			continue
		}
		q := strconv.QuoteRune(r)
		b.WriteString(q[1 : len(q)-1])
	}
	return b.String()
}

// AllValid reports whether every verdict passed
func AllValid(verdicts []Verdict) bool {
	for _, v := range verdicts {
		if !v.Valid {
			return false
		}
	}
	return true
}
