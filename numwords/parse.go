package numwords

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/w2n-go/word2num/internal/textfold"
)

// maxInputBytes caps the size of text accepted by every entry point.
const maxInputBytes = 1 << 20

// maxSubunitDepth stops a minor amount from being split again.
const maxSubunitDepth = 1

func checkInput(s string) error {
	if len(s) > maxInputBytes {
		return ErrInputTooLarge
	}
	if !utf8.ValidString(s) {
		return ErrInvalidInput
	}
	return nil
}

// parse evaluates one number phrase. depth counts subunit splits above
// this call.
func parse(phrase string, depth int) (decimal.Decimal, error) {
	phrase = textfold.Fold(phrase)
	if err := checkStandard(phrase); err != nil {
		return decimal.Zero, err
	}

	if depth < maxSubunitDepth {
		if major, minor, ok := splitSubunit(phrase); ok {
			sub, err := parse(minor, depth+1)
			if err != nil {
				return decimal.Zero, err
			}
			sub = sub.Shift(-2)
			if strings.TrimSpace(major) == "" {
				return sub, nil
			}
			v, err := parseAmount(major)
			if err != nil {
				return decimal.Zero, err
			}
			if v.IsNegative() {
				return v.Sub(sub), nil
			}
			return v.Add(sub), nil
		}
	}

	return parseAmount(phrase)
}

// parseAmount runs a phrase without subunits through normalize, atoms and
// assemble.
func parseAmount(phrase string) (decimal.Decimal, error) {
	tokens, err := normalize(phrase)
	if err != nil {
		return decimal.Zero, err
	}
	seq, err := atoms(tokens)
	if err != nil {
		return decimal.Zero, err
	}
	return assemble(seq)
}
