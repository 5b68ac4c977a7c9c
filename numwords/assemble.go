package numwords

import (
	"iter"
	"strings"

	"github.com/shopspring/decimal"
)

var ten = decimal.NewFromInt(10)

// runningTotal holds the partial sums of a phrase, most significant first.
// It always has at least one slot.
type runningTotal []decimal.Decimal

// assemble folds atoms into a value.
//
// Unit words add into the last slot unless they have the same width as it,
// in which case they open a new slot: "forty two" accumulates to 42 while
// "one one two" becomes the digit sequence 1, 1, 2. A magnitude collapses
// every slot from the first one smaller than it, multiplies, and opens a
// fresh zero slot. After a decimal point each number is shifted right by
// its own width plus the digits already placed.
//
// The result is the positional reading of the slots when every slot is a
// single digit, otherwise their sum.
func assemble(seq iter.Seq2[atom, error]) (decimal.Decimal, error) {
	total := runningTotal{decimal.Zero}
	var exp int32 // zero until a decimal point is seen
	negative := false

	for a, err := range seq {
		if err != nil {
			return decimal.Zero, err
		}
		switch a.kind {
		case signAtom:
			if !total.isZero() {
				return decimal.Zero, ErrMisplacedSign
			}
			negative = true
		case pointAtom:
			exp = -1
		case magnitudeAtom:
			total = total.scale(a.value)
			exp = 0
		case numberAtom:
			switch {
			case exp != 0:
				exp -= int32(a.width - 1)
				total.addToLast(a.value.Shift(exp))
				exp--
			case a.width != width(total.last()):
				total.addToLast(a.value)
			default:
				total = append(total, a.value)
			}
		}
	}

	v := total.reduce()
	if negative {
		v = v.Neg()
	}
	return v, nil
}

func (rt runningTotal) last() decimal.Decimal { return rt[len(rt)-1] }

func (rt runningTotal) addToLast(v decimal.Decimal) {
	rt[len(rt)-1] = rt[len(rt)-1].Add(v)
}

func (rt runningTotal) isZero() bool {
	for _, v := range rt {
		if !v.IsZero() {
			return false
		}
	}
	return true
}

// scale applies magnitude m. A bare magnitude ("hundred") counts as one.
func (rt runningTotal) scale(m decimal.Decimal) runningTotal {
	idx := len(rt) - 1
	for i, v := range rt {
		if v.LessThan(m) {
			idx = i
			break
		}
	}
	sum := decimal.Sum(rt[idx], rt[idx+1:]...)
	if sum.IsZero() {
		sum = decimal.NewFromInt(1)
	}
	return append(rt[:idx], sum.Mul(m), decimal.Zero)
}

func (rt runningTotal) reduce() decimal.Decimal {
	digits, fractional := true, false
	for _, v := range rt {
		if !v.LessThan(ten) {
			digits = false
			break
		}
		if !v.IsInteger() {
			fractional = true
		}
	}
	switch {
	case !digits:
		return decimal.Sum(rt[0], rt[1:]...)
	case fractional:
		acc := decimal.Zero
		for _, v := range rt {
			acc = acc.Mul(ten).Add(v)
		}
		return acc
	}

	var b strings.Builder
	b.Grow(len(rt))
	for _, v := range rt {
		b.WriteByte(byte('0' + v.IntPart()))
	}
	v, _ := decimal.NewFromString(b.String())
	return v
}
