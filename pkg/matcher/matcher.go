// Package matcher compiles a single pattern and tests whole strings against it.
package matcher

import (
	"fmt"
	"regexp"
	"regexp/syntax"
)

// PatternCompileError is returned by New when the pattern text is not a valid
// regular expression.
type PatternCompileError struct {
	Pattern string
	Err     error
}

func (e *PatternCompileError) Error() string {
	return fmt.Sprintf("failed to compile pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying regexp/syntax error
func (e *PatternCompileError) Unwrap() error {
	return e.Err
}

// Matcher tests candidates for full-string conformance to a pattern
type Matcher struct {
	pattern string
	regex   *regexp.Regexp
}

// New compiles pattern once. The returned Matcher is read-only and safe for
// concurrent use.
func New(pattern string) (*Matcher, error) {
	// Validate the pattern as written so errors refer to the user's text.
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, &PatternCompileError{Pattern: pattern, Err: err}
	}

	anchored, err := anchor(pattern)
	if err != nil {
		return nil, &PatternCompileError{Pattern: pattern, Err: err}
	}

	return &Matcher{
		pattern: pattern,
		regex:   anchored,
	}, nil
}

// anchor compiles pattern with both ends pinned to the text boundaries. The
// parse tree is wrapped rather than the source text so constructs like \Q
// that run to the end of the pattern keep their meaning.
func anchor(pattern string) (*regexp.Regexp, error) {
	tree, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, err
	}

	wrapped := &syntax.Regexp{
		Op: syntax.OpConcat,
		Sub: []*syntax.Regexp{
			{Op: syntax.OpBeginText},
			tree,
			{Op: syntax.OpEndText},
		},
	}
	return regexp.Compile(wrapped.String())
}

// Matches reports whether the entire candidate conforms to the pattern
func (m *Matcher) Matches(candidate string) bool {
	return m.regex.MatchString(candidate)
}

// Pattern returns the source pattern text
func (m *Matcher) Pattern() string {
	return m.pattern
}
