package matcher

import (
	"errors"
	"regexp"
	"regexp/syntax"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emailPattern = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`

func TestMatcher_Matches(t *testing.T) {
	m, err := New(emailPattern)
	require.NoError(t, err)

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{name: "simple address", candidate: "user@example.com", want: true},
		{name: "missing domain", candidate: "invalid.email@", want: false},
		{name: "multi-level domain", candidate: "another@valid.co.uk", want: true},
		{name: "plus addressing", candidate: "first.last+tag@sub.example.org", want: true},
		{name: "short tld", candidate: "user@example.c", want: false},
		{name: "no at sign", candidate: "example.com", want: false},
		{name: "empty", candidate: "", want: false},
		{name: "embedded in text", candidate: "mail user@example.com now", want: false},
		{name: "trailing newline", candidate: "user@example.com\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Matches(tt.candidate))
		})
	}
}

func TestMatcher_FullStringAnchoring(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		candidate string
		want      bool
	}{
		{name: "unanchored pattern rejects substring", pattern: `\d+`, candidate: "abc123", want: false},
		{name: "unanchored pattern accepts full string", pattern: `\d+`, candidate: "123", want: true},
		{name: "alternation is grouped", pattern: `a|b`, candidate: "ab", want: false},
		{name: "alternation second branch", pattern: `a|b`, candidate: "b", want: true},
		{name: "multiline flag stays scoped", pattern: `(?m)foo`, candidate: "foo\nbar", want: false},
		{name: "empty pattern matches empty string", pattern: ``, candidate: "", want: true},
		{name: "empty pattern rejects text", pattern: ``, candidate: "x", want: false},
		{name: "quoted literal to end", pattern: `\Qa.b`, candidate: "a.b", want: true},
		{name: "quoted literal is not a wildcard", pattern: `\Qa.b`, candidate: "axb", want: false},
		{name: "quoted paren", pattern: `x\Q(`, candidate: "x(", want: true},
		{name: "quoted paren rejects extra text", pattern: `x\Q(`, candidate: "x((", want: false},
		{name: "multi-letter alternation is grouped", pattern: `ab|cd`, candidate: "abcd", want: false},
		{name: "multi-letter alternation branch", pattern: `ab|cd`, candidate: "cd", want: true},
		{name: "case-insensitive flag", pattern: `(?i)abc`, candidate: "ABC", want: true},
		{name: "already anchored pattern", pattern: `^ab$`, candidate: "ab", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Matches(tt.candidate))
		})
	}
}

func TestNew_InvalidPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		code    syntax.ErrorCode
	}{
		{name: "unterminated class", pattern: `[a-z`, code: syntax.ErrMissingBracket},
		{name: "unbalanced paren", pattern: `(abc`, code: syntax.ErrMissingParen},
		{name: "trailing backslash", pattern: `abc\`, code: syntax.ErrTrailingBackslash},
		{name: "bad repetition", pattern: `*abc`, code: syntax.ErrMissingRepeatArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.pattern)
			require.Error(t, err)
			assert.Nil(t, m)

			var compileErr *PatternCompileError
			require.True(t, errors.As(err, &compileErr))
			assert.Equal(t, tt.pattern, compileErr.Pattern)

			var syntaxErr *syntax.Error
			require.True(t, errors.As(err, &syntaxErr))
			assert.Equal(t, tt.code, syntaxErr.Code)
			assert.Contains(t, err.Error(), tt.pattern)
		})
	}
}

func TestNew_AcceptsWhatRegexpAccepts(t *testing.T) {
	patterns := []string{`\Qa.b`, `x\Q(`, `a\Q)$\E`, `(?m)^foo$`, `(?s).*`, `a|b`, ``, emailPattern}

	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			_, stdErr := regexp.Compile(p)
			require.NoError(t, stdErr)

			m, err := New(p)
			require.NoError(t, err)
			assert.Equal(t, p, m.Pattern())
		})
	}
}

func TestMatcher_Deterministic(t *testing.T) {
	m, err := New(emailPattern)
	require.NoError(t, err)
	assert.Equal(t, emailPattern, m.Pattern())

	for i := 0; i < 100; i++ {
		assert.True(t, m.Matches("user@example.com"))
		assert.False(t, m.Matches("invalid.email@"))
	}
}

func TestMatcher_ConcurrentUse(t *testing.T) {
	m, err := New(emailPattern)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if !m.Matches("another@valid.co.uk") {
					t.Error("expected match")
					return
				}
			}
		}()
	}
	wg.Wait()
}
