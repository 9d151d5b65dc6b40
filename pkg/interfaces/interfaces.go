// Package interfaces defines the core interfaces used throughout the application.
package interfaces

// Matcher tests whether a candidate conforms to a pattern.
type Matcher interface {
	Matches(candidate string) bool
}
