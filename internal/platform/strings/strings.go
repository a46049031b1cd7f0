// Package strings provides name folding and slice helpers shared by lookups
package strings

import (
	std "strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// fold chains are not safe for concurrent use, so each caller borrows one
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,
			runes.Remove(runes.In(unicode.Mn)), // "Mṛgaśirā" -> "Mrgasira"
			cases.Fold(),
			width.Fold,
		)
	},
}

// Key folds a display name into a lookup key: accents, case and width are folded and
// spaces, dashes, underscores, dots and apostrophes are dropped ("Purva Bhadrapada" -> "purvabhadrapada")
func Key(s string) string {
	s = std.TrimSpace(s)
	if s == "" {
		return ""
	}
	tr := foldPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	foldPool.Put(tr)
	if err != nil {
		out = std.ToLower(s)
	}
	return std.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r), r == '-', r == '_', r == '.', r == '\'':
			return -1
		default:
			return r
		}
	}, out)
}

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}
