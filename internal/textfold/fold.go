// Package textfold folds words into the form used by vocabulary lookups.
//
// Folding applies Unicode case folding and NFKC compatibility composition,
// so "Lakh", "LAKH" and fullwidth "１５０" compare equal to "lakh" and "150".
//
// All functions are safe for concurrent use. A new caser is created per
// call because x/text casers keep internal state.
package textfold

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold returns the folded form of s.
func Fold(s string) string {
	if isASCII(s) {
		return strings.ToLower(s)
	}
	return norm.NFKC.String(cases.Fold().String(s))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
