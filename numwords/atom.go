package numwords

import (
	"fmt"
	"iter"

	"github.com/shopspring/decimal"

	"github.com/w2n-go/word2num/vocab"
)

type atomKind int

const (
	numberAtom    atomKind = iota // unit word or literal number
	magnitudeAtom                 // multiplier: hundred, lakh, k
	pointAtom                     // decimal marker
	signAtom                      // negation marker
)

var atomKindNames = [...]string{
	numberAtom:    "Number",
	magnitudeAtom: "Magnitude",
	pointAtom:     "Point",
	signAtom:      "Sign",
}

func (k atomKind) String() string {
	if int(k) < len(atomKindNames) {
		return atomKindNames[k]
	}
	return fmt.Sprintf("atomKind(%d)", int(k))
}

// atom is one classified parser token.
type atom struct {
	kind  atomKind
	value decimal.Decimal
	width int // digits in value's decimal form, numberAtom only
}

func (a atom) String() string {
	switch a.kind {
	case numberAtom, magnitudeAtom:
		return fmt.Sprintf("%s(%s)", a.kind, a.value)
	}
	return a.kind.String()
}

// maxLiteralExp bounds exponent notation in literals ("1e5") so a short
// token cannot expand into an enormous value.
const maxLiteralExp = 64

// atoms validates tokens as a whole and returns a lazy sequence of atoms.
// Marker checks run before any token is classified, so "point point" fails
// with ErrDuplicateDecimal rather than anything else.
func atoms(tokens []string) (iter.Seq2[atom, error], error) {
	var points, signs int
	for _, tok := range tokens {
		switch {
		case vocab.IsPoint(tok):
			points++
		case vocab.IsSign(tok):
			signs++
		}
	}
	switch {
	case points+signs == len(tokens):
		return nil, ErrNoNumberWords
	case points > 1:
		return nil, fmt.Errorf("%w: found %d", ErrDuplicateDecimal, points)
	case signs > 1:
		return nil, fmt.Errorf("%w: found %d", ErrDuplicateSign, signs)
	}

	return func(yield func(atom, error) bool) {
		for _, tok := range tokens {
			a, err := toAtom(tok)
			if !yield(a, err) || err != nil {
				return
			}
		}
	}, nil
}

// toAtom classifies one token by vocabulary, then as a literal number.
func toAtom(tok string) (atom, error) {
	if e, ok := vocab.Lookup(tok); ok {
		switch e.Kind {
		case vocab.Unit:
			return newNumber(e.Value), nil
		case vocab.Magnitude:
			return atom{kind: magnitudeAtom, value: e.Value}, nil
		case vocab.Point:
			return atom{kind: pointAtom}, nil
		case vocab.Sign:
			return atom{kind: signAtom}, nil
		}
	}

	if isDigits(tok) {
		v, err := decimal.NewFromString(tok)
		if err == nil {
			// "05" after a point is two places wide.
			a := newNumber(v)
			a.width = len(tok)
			return a, nil
		}
	}
	if v, err := decimal.NewFromString(tok); err == nil && !v.IsNegative() &&
		v.Exponent() <= maxLiteralExp && v.Exponent() >= -maxLiteralExp {
		return newNumber(v), nil
	}
	return atom{}, &UnrecognizedWordError{Word: tok}
}

func newNumber(v decimal.Decimal) atom {
	return atom{kind: numberAtom, value: v, width: width(v)}
}

// width is the length of v's decimal form: 7 has width 1, 20 width 2,
// 2.5 width 3. Digit literals use their written length instead.
func width(v decimal.Decimal) int {
	return len(v.String())
}
