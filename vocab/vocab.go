// Package vocab holds the read-only number vocabulary used by numwords.
//
// The tables cover unit words (zero … ninety), magnitude words in three
// grading families, magnitude abbreviations (k, l, c, cr, m, b), decimal
// and sign markers, filler words that carry no value, and currency subunit
// words. They are parsed once at package initialization from the embedded
// data/vocab.yaml and cannot be modified afterwards.
//
// All lookups expect a folded (lowercase) word; see internal/textfold.
//
// All functions are safe for concurrent use by multiple goroutines.
package vocab

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/w2n-go/word2num/data"
)

// Family identifies the grading system a magnitude word belongs to.
type Family int

const (
	Common     Family = iota // Shared by both systems: hundred, thousand, dozen, k
	SouthAsian               // lakh, lac, crore, l, c, cr
	Western                  // million … decillion, m, b
)

// familyNames maps Family values to the names used in vocab.yaml.
var familyNames = [...]string{
	Common:     "common",
	SouthAsian: "south_asian",
	Western:    "western",
}

// familyFromName maps vocab.yaml names back to Family values.
var familyFromName = map[string]Family{
	"common":      Common,
	"south_asian": SouthAsian,
	"western":     Western,
}

// String returns the name of the family.
func (f Family) String() string {
	if int(f) >= 0 && int(f) < len(familyNames) {
		return familyNames[f]
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Kind classifies a vocabulary entry.
type Kind int

const (
	Unit      Kind = iota // Value word: zero … ninety
	Magnitude             // Scale factor: hundred, lakh, million, k, cr …
	Point                 // Decimal marker: point, decimal, "."
	Sign                  // Sign marker: minus, negative, "-"
	Filler                // Discarded word: a, and, &, rs, rupee, rupees
	Subunit               // Currency subunit: paisa, cent, cents
)

// kindNames maps Kind values to their string names.
var kindNames = [...]string{
	Unit:      "Unit",
	Magnitude: "Magnitude",
	Point:     "Point",
	Sign:      "Sign",
	Filler:    "Filler",
	Subunit:   "Subunit",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Entry is one vocabulary word.
type Entry struct {
	Word   string
	Kind   Kind
	Value  decimal.Decimal // Unit and Magnitude only
	Family Family          // Magnitude only
	Abbrev bool            // Magnitude abbreviation such as "k" or "cr"
}

// String returns a debug representation, e.g. Magnitude("lakh"=100000,south_asian).
func (e Entry) String() string {
	switch e.Kind {
	case Unit:
		return fmt.Sprintf("%s(%q=%s)", e.Kind, e.Word, e.Value)
	case Magnitude:
		return fmt.Sprintf("%s(%q=%s,%s)", e.Kind, e.Word, e.Value, e.Family)
	default:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Word)
	}
}

// tables is populated by init and read-only afterwards.
var tables *vocabulary

func init() {
	v, err := parse(data.Vocabulary)
	if err != nil {
		panic("vocab: embedded vocabulary: " + err.Error())
	}
	tables = v
}

// Lookup returns the entry for word.
func Lookup(word string) (Entry, bool) {
	e, ok := tables.entries[word]
	return e, ok
}

// IsMagnitude reports whether word is a magnitude word or abbreviation.
func IsMagnitude(word string) bool {
	return is(word, Magnitude)
}

// IsAbbreviation reports whether word is a magnitude abbreviation.
func IsAbbreviation(word string) bool {
	e, ok := tables.entries[word]
	return ok && e.Abbrev
}

// IsPoint reports whether word is a decimal marker.
func IsPoint(word string) bool { return is(word, Point) }

// IsSign reports whether word is a sign marker.
func IsSign(word string) bool { return is(word, Sign) }

// IsFiller reports whether word is discarded during normalization.
func IsFiller(word string) bool { return is(word, Filler) }

// IsSubunit reports whether word names a currency subunit.
func IsSubunit(word string) bool { return is(word, Subunit) }

// FamilyOf returns the grading family of a magnitude word.
// The second result is false for words that are not magnitudes.
func FamilyOf(word string) (Family, bool) {
	e, ok := tables.entries[word]
	if !ok || e.Kind != Magnitude {
		return Common, false
	}
	return e.Family, true
}

// Abbreviations returns the magnitude abbreviations, longest first.
// The returned slice is a copy.
func Abbreviations() []string {
	out := make([]string, len(tables.abbrevs))
	copy(out, tables.abbrevs)
	return out
}

// Canonical returns the canonical word for a numeral string,
// e.g. "5" → "five", "100000" → "lakh".
// Aliases and abbreviations are never canonical.
func Canonical(numeral string) (string, bool) {
	w, ok := tables.canonical[numeral]
	return w, ok
}

func is(word string, k Kind) bool {
	e, ok := tables.entries[word]
	return ok && e.Kind == k
}
