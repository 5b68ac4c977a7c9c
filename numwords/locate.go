package numwords

import (
	"slices"
	"strings"

	"github.com/w2n-go/word2num/internal/textfold"
	"github.com/w2n-go/word2num/tokenizer"
	"github.com/w2n-go/word2num/vocab"
)

type lexClass int

const (
	lexOther     lexClass = iota // breaks a run
	lexValue                     // unit word, numeral or number compound
	lexMagnitude                 // magnitude word
	lexAbbrev                    // magnitude abbreviation standing alone
	lexMarker                    // decimal point or sign word
	lexFiller                    // filler or subunit word
)

// gap describes what separates a lexeme from the one before it.
type gap int

const (
	gapNone  gap = iota // adjacent
	gapSpace            // horizontal whitespace
	gapBreak            // line break or start of text
)

// lexeme is a token prepared for run detection. text is the form handed to
// the parser; start and end locate the original bytes.
type lexeme struct {
	text  string
	start int
	end   int
	class lexClass
	gap   gap
}

// locate finds and evaluates number runs in text.
func locate(text string) ([]Match, error) {
	var matches []Match
	for _, run := range runs(lex(tokenizer.WordTokens(text))) {
		words := make([]string, len(run))
		for i, lx := range run {
			words[i] = lx.text
		}
		start, end := run[0].start, run[len(run)-1].end

		v, err := parse(strings.Join(words, " "), 0)
		if err != nil {
			return nil, &RunError{Text: text[start:end], Start: start, End: end, Err: err}
		}
		matches = append(matches, Match{Text: text[start:end], Start: start, End: end, Value: v})
	}
	return matches, nil
}

// lex classifies tokens. A numeral directly followed by an abbreviation
// ("150k") becomes one lexeme, and so does a "-" that opens a number
// ("-5", "-five").
func lex(tokens []tokenizer.Token) []lexeme {
	out := make([]lexeme, 0, len(tokens)/2+1)
	g := gapBreak
	var sign *lexeme

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Type == tokenizer.Space {
			if strings.ContainsAny(tok.Text, "\n\r\v\f\u2028\u2029") {
				g = gapBreak
			} else if g == gapNone {
				g = gapSpace
			}
			continue
		}

		lx := lexeme{text: tok.Text, start: tok.Start, end: tok.End, gap: g}
		g = gapNone

		switch tok.Type {
		case tokenizer.Number:
			lx.class = lexValue
			lx.text = numeral(tok.Text)
			if i+1 < len(tokens) && tokens[i+1].Type == tokenizer.Word {
				if w := textfold.Fold(tokens[i+1].Text); vocab.IsAbbreviation(w) {
					lx.text = strings.ReplaceAll(tok.Text, ",", "") + w
					lx.end = tokens[i+1].End
					i++
				}
			}
		case tokenizer.Word:
			lx.text = textfold.Fold(tok.Text)
			lx.class = classifyWord(lx.text)
		case tokenizer.Punctuation:
			switch {
			case tok.Text == "-" && lx.gap != gapNone && opensNumber(tokens, i):
				sign = &lx
				continue
			case tok.Text == "&":
				lx.class = lexFiller
			}
		}

		if sign != nil {
			if lx.class == lexValue || lx.class == lexMagnitude {
				lx.text = "-" + lx.text
				lx.start = sign.start
				lx.gap = sign.gap
			} else {
				out = append(out, *sign)
			}
			sign = nil
		}
		out = append(out, lx)
	}
	return out
}

// opensNumber reports whether the "-" at tokens[i] is glued to a following
// number or word.
func opensNumber(tokens []tokenizer.Token, i int) bool {
	if i+1 >= len(tokens) {
		return false
	}
	next := tokens[i+1].Type
	return next == tokenizer.Number || next == tokenizer.Word
}

// numeral prepares a numeric token for the parser. Grouping commas are
// dropped, and an integer with a vocabulary word ("100", "1,00,000") is
// rewritten to that word so it can act as a magnitude.
func numeral(s string) string {
	s = strings.ReplaceAll(s, ",", "")
	if w, ok := vocab.Canonical(s); ok {
		return w
	}
	return s
}

func classifyWord(w string) lexClass {
	if e, ok := vocab.Lookup(w); ok {
		switch e.Kind {
		case vocab.Unit:
			return lexValue
		case vocab.Magnitude:
			if e.Abbrev {
				return lexAbbrev
			}
			return lexMagnitude
		case vocab.Point, vocab.Sign:
			return lexMarker
		default:
			return lexFiller
		}
	}
	if strings.Contains(w, "-") && isNumberCompound(w) {
		return lexValue
	}
	return lexOther
}

// isNumberCompound reports whether every part of a hyphenated word is a
// unit or magnitude word ("thirty-six", "one-hundred").
func isNumberCompound(w string) bool {
	for part := range strings.SplitSeq(w, "-") {
		e, ok := vocab.Lookup(part)
		if !ok || e.Abbrev || (e.Kind != vocab.Unit && e.Kind != vocab.Magnitude) {
			return false
		}
	}
	return true
}

// runs groups lexemes into maximal number runs. A run ends at a line break
// or at any lexeme that is not number-related. Runs without a number are
// dropped, so "a" and "and" on their own are never converted.
func runs(lexemes []lexeme) [][]lexeme {
	var out [][]lexeme
	var cur []lexeme
	flush := func() {
		if r := trimRun(cur); slices.ContainsFunc(r, hasValue) {
			out = append(out, r)
		}
		cur = nil
	}

	for _, lx := range lexemes {
		if len(cur) > 0 && (lx.gap == gapBreak || !extends(cur, lx)) {
			flush()
		}
		if extends(cur, lx) {
			cur = append(cur, lx)
		}
	}
	flush()
	return out
}

// extends reports whether lx can join run.
// An abbreviation counts only right after a number: "5 k", not "vitamin k".
func extends(run []lexeme, lx lexeme) bool {
	switch lx.class {
	case lexValue, lexMagnitude, lexMarker, lexFiller:
		return true
	case lexAbbrev:
		return len(run) > 0 && hasValue(run[len(run)-1])
	}
	return false
}

func hasValue(lx lexeme) bool {
	return lx.class == lexValue || lx.class == lexMagnitude || lx.class == lexAbbrev
}

// trimRun drops connectives from the edges of a run. Currency words stay
// in the run, so "ten thousand rupees" is replaced whole. A leading "a"
// stays ("a hundred").
func trimRun(run []lexeme) []lexeme {
	for len(run) > 0 && isConnective(run[0].text) {
		run = run[1:]
	}
	for len(run) > 0 && (isConnective(run[len(run)-1].text) || run[len(run)-1].text == "a") {
		run = run[:len(run)-1]
	}
	return run
}

func isConnective(w string) bool {
	return w == "and" || w == "&"
}
