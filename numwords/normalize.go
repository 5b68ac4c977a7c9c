package numwords

import (
	"fmt"
	"strings"

	"github.com/w2n-go/word2num/internal/textfold"
	"github.com/w2n-go/word2num/vocab"
)

// maxPhraseWords bounds the work done for a single phrase.
const maxPhraseWords = 1000

// noise drops characters commonly written inside numbers ("$1,000;") and
// pads "." so the decimal point becomes a token of its own.
var noise = strings.NewReplacer("$", "", ";", "", ",", "", ".", " . ")

// abbreviations is the longest-first list of magnitude abbreviations.
var abbreviations = vocab.Abbreviations()

// normalize turns a raw phrase into parser tokens.
// Filler words are dropped, hyphenated words are split ("thirty-six"), a
// leading "-" becomes a sign token, and an abbreviation attached to digits
// is split off ("150k" → "150", "k").
func normalize(phrase string) ([]string, error) {
	fields := strings.Fields(noise.Replace(textfold.Fold(phrase)))
	if len(fields) > maxPhraseWords {
		return nil, fmt.Errorf("%w: %d words", ErrPhraseTooLong, len(fields))
	}

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		for _, tok := range splitToken(field) {
			if !vocab.IsFiller(tok) {
				tokens = append(tokens, tok)
			}
		}
	}

	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}
	return tokens, nil
}

// splitToken splits one whitespace-separated field into parser tokens.
func splitToken(field string) []string {
	var out []string
	for strings.HasPrefix(field, "-") {
		out = append(out, "-")
		field = field[1:]
	}
	for part := range strings.SplitSeq(field, "-") {
		if part == "" {
			continue
		}
		if digits, abbrev, ok := cutAbbreviation(part); ok {
			out = append(out, digits, abbrev)
			continue
		}
		out = append(out, part)
	}
	return out
}

// cutAbbreviation splits "150k" into "150" and "k".
func cutAbbreviation(s string) (digits, abbrev string, ok bool) {
	for _, ab := range abbreviations {
		if d, found := strings.CutSuffix(s, ab); found && isDigits(d) {
			return d, ab, true
		}
	}
	return "", "", false
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
