// Package fold provides locale independent case folding for fuzzy text matching
// Pipeline order
// 1 drop invalid UTF-8
// 2 Unicode NFC so precomposed and combining forms compare equal
// 3 full Unicode case folding
package fold

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// transformers are not safe for concurrent use, so each call borrows one
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFC, cases.Fold())
	},
}

// Fold returns the folded form of s
func Fold(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Contains reports whether needle is within haystack ignoring case
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}

// Either reports whether a contains b or b contains a, ignoring case
// an empty side is contained in everything
func Either(a, b string) bool {
	fa, fb := Fold(a), Fold(b)
	return strings.Contains(fa, fb) || strings.Contains(fb, fa)
}
