// Package numwords finds English number phrases in text and turns them into
// numerals, with South-Asian (lakh, crore) and Western (million, billion)
// magnitude words.
//
// The package works at two levels:
//
//   - ParseValue evaluates a single phrase: "one lakh thirty two thousand"
//     is 132000, "two point three" is 2.3, "ten rupees fifty paisa" is 10.5.
//   - Extract and Convert locate every number phrase in free text and
//     report or replace it: "ordered thirty two dishes" becomes
//     "ordered 32 dishes".
//
// Values are exact decimals, so magnitudes up to decillion (10^33) and
// long decimal tails never lose precision. Format renders a value with no
// exponent and no trailing zeros.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Subunit handling knows "paisa" and "cent"; the first one in a phrase
//     is honored and words after it are ignored.
//   - Magnitude words that double as ordinary English ("score", "gross",
//     "dozen") are converted wherever they extend a number phrase.
//   - A phrase that fails to parse aborts the whole Convert or Extract call.
//   - Input is limited to 1 MiB and a phrase to 1000 words.
package numwords

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Match is a number phrase found in text.
// Start and End are byte offsets; text[Start:End] == Text.
type Match struct {
	Text  string          `json:"text"`
	Start int             `json:"start"`
	End   int             `json:"end"`
	Value decimal.Decimal `json:"value"`
}

func (m Match) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", Format(m.Value), m.Text, m.Start, m.End)
}

// ParseValue evaluates a single number phrase.
// Case, hyphens, filler words ("and", "a", "rupees") and the characters
// "$ , ;" are ignored. Numerals may be mixed with words ("2 lakh", "150k").
//
// Errors wrap one of the package's Err values; unknown words are reported
// as *UnrecognizedWordError.
func ParseValue(phrase string) (decimal.Decimal, error) {
	if err := checkInput(phrase); err != nil {
		return decimal.Zero, err
	}
	return parse(phrase, 0)
}

// Extract returns every number phrase in text, in order.
// Empty text yields no matches. A phrase that fails to parse is returned
// as *RunError and no matches are reported.
func Extract(text string) ([]Match, error) {
	if err := checkInput(text); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	return locate(text)
}

// Convert replaces every number phrase in text with its numeral and leaves
// all other text byte-for-byte intact.
//
//	Convert("bill came out as ten thousand five hundred") // "bill came out as 10500"
func Convert(text string) (string, error) {
	matches, err := Extract(text)
	if err != nil {
		return "", err
	}
	return Replace(text, matches), nil
}

// Replace substitutes each match in text with its numeral. The matches must
// come from Extract(text).
func Replace(text string, matches []Match) string {
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, m := range matches {
		b.WriteString(text[prev:m.Start])
		b.WriteString(Format(m.Value))
		prev = m.End
	}
	b.WriteString(text[prev:])
	return b.String()
}

// Format renders v as a plain numeral: "2003019", "10500.3", "-0.5".
func Format(v decimal.Decimal) string {
	return v.String()
}
