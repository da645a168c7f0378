// Package strings holds the few string helpers the platform packages share
package strings

import std "strings"

// IfEmpty is def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) > 0 {
		return in
	}
	return def
}

// MustString panics with "<what> is required" when s is blank
func MustString(s, what string) string {
	if std.TrimSpace(s) == "" {
		panic(what + " is required")
	}
	return s
}

// MustPrefix turns "layoffs", "/layoffs/" or " /layoffs" into "/layoffs".
// A prefix that is only slashes and spaces panics.
func MustPrefix(s string) string {
	s = std.Trim(s, " /")
	if s == "" {
		panic("route prefix is required")
	}
	return "/" + s
}
