package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordTokens splits s into tokens using a rune-by-rune state machine.
// The caller guarantees s is non-empty.
//
// Rule priority (highest first):
//   - URL detection (http:// or https://)
//   - Email detection (backtrack from @)
//   - Number grouping (grouping commas, decimal point, leading-dot decimals)
//   - Hyphen joining (single U+002D between letter/digit)
//   - Apostrophe joining (U+0027, U+2019, U+02BC between letters)
//   - Default unicode classification
func wordTokens(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		if (r == 'h' || r == 'H') && i+7 <= len(s) {
			if end, ok := scanURL(s, i); ok {
				tokens = append(tokens, Token{Text: s[i:end], Start: i, End: end, Type: URL})
				i = end
				continue
			}
		}

		if r == '@' {
			if start, end, ok := scanEmail(s, i); ok {
				tokens = trimTokensForEmail(tokens, start)
				tokens = append(tokens, Token{Text: s[start:end], Start: start, End: end, Type: Email})
				i = end
				continue
			}
		}

		if unicode.IsSpace(r) {
			start := i
			i += size
			for i < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[i:])
				if !unicode.IsSpace(nr) {
					break
				}
				i += ns
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Space})
			continue
		}

		// ".5" is a number only when the dot opens a word.
		if r == '.' && i+1 < len(s) && isDigitByte(s[i+1]) && opensWord(s, i) {
			tok := scanNumber(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		if isDigitByte(s[i]) {
			tok := scanNumber(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		if unicode.IsLetter(r) {
			tok := scanWord(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		if unicode.IsPunct(r) {
			start := i
			i += size
			if r == '-' {
				for i < len(s) && s[i] == '-' {
					i++
				}
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Punctuation})
			continue
		}

		tokens = append(tokens, Token{Text: s[i : i+size], Start: i, End: i + size, Type: Symbol})
		i += size
	}

	return tokens
}

// opensWord reports whether position pos is at the start of s or follows
// whitespace or an opening bracket.
func opensWord(s string, pos int) bool {
	if pos == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(s[:pos])
	return unicode.IsSpace(prev) || prev == '(' || prev == '['
}

// scanNumber reads a number token starting at position pos.
//
// Grouping commas must be followed by exactly two or three digits, which
// accepts both "1,000,000" and "10,00,000". A single decimal point must be
// followed by at least one digit; a trailing "." stays punctuation.
func scanNumber(s string, pos int) Token {
	i := pos

	for i < len(s) && isDigitByte(s[i]) {
		i++
	}

	if lead := i - pos; lead >= 1 && lead <= 3 {
		i = scanGroups(s, i)
	}

	if i < len(s) && s[i] == '.' && i+1 < len(s) && isDigitByte(s[i+1]) {
		i++
		for i < len(s) && isDigitByte(s[i]) {
			i++
		}
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Number}
}

// scanGroups extends a number past grouping commas starting at pos.
// Western grouping uses three-digit groups ("1,000,000"); South-Asian
// grouping uses two-digit groups closed by a three-digit group
// ("10,00,000"). Anything else ends the number before the first comma.
func scanGroups(s string, pos int) int {
	var groups []int
	i := pos
	for i < len(s) && s[i] == ',' {
		n := 0
		for i+1+n < len(s) && isDigitByte(s[i+1+n]) {
			n++
		}
		if n != 2 && n != 3 {
			break
		}
		groups = append(groups, n)
		i += 1 + n
		if n == 3 && len(groups) > 1 && groups[len(groups)-2] == 2 {
			break
		}
	}
	if len(groups) == 0 {
		return pos
	}

	western, southAsian := true, groups[len(groups)-1] == 3
	for k, n := range groups {
		if n != 3 {
			western = false
		}
		if k < len(groups)-1 && n != 2 {
			southAsian = false
		}
	}
	if !western && !southAsian {
		return pos
	}
	return i
}

// scanWord reads a word token starting at position pos.
// A word begins with a letter and may contain digits, single hyphens
// between letters/digits ("thirty-six"), and apostrophes between letters.
func scanWord(s string, pos int) Token {
	i := consumeWordOrDigitRun(s, pos)

	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		if r == '-' {
			next := i + size
			if next < len(s) {
				nr, _ := utf8.DecodeRuneInString(s[next:])
				if unicode.IsLetter(nr) || unicode.IsDigit(nr) {
					i = consumeWordOrDigitRun(s, next)
					continue
				}
			}
			break
		}

		if isApostrophe(r) {
			next := i + size
			if next < len(s) {
				nr, _ := utf8.DecodeRuneInString(s[next:])
				pr, _ := utf8.DecodeLastRuneInString(s[pos:i])
				if unicode.IsLetter(nr) && unicode.IsLetter(pr) {
					i = next
					for i < len(s) {
						lr, ls := utf8.DecodeRuneInString(s[i:])
						if !unicode.IsLetter(lr) {
							break
						}
						i += ls
					}
					continue
				}
			}
			break
		}

		break
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Word}
}

// scanURL checks if s[pos:] starts with http:// or https:// and consumes
// until whitespace or end of string. A single trailing . , ! ? is left out.
func scanURL(s string, pos int) (end int, ok bool) {
	rest := s[pos:]
	var prefixLen int
	switch {
	case len(rest) > 8 && strings.EqualFold(rest[:8], "https://"):
		prefixLen = 8
	case len(rest) > 7 && strings.EqualFold(rest[:7], "http://"):
		prefixLen = 7
	default:
		return 0, false
	}

	end = len(s)
	for j := pos + prefixLen; j < len(s); {
		r, size := utf8.DecodeRuneInString(s[j:])
		if unicode.IsSpace(r) {
			end = j
			break
		}
		j += size
	}

	if end > pos+prefixLen {
		switch s[end-1] {
		case '.', ',', '!', '?':
			end--
		}
	}
	if end <= pos+prefixLen {
		return 0, false
	}
	return end, true
}

// scanEmail detects an email around the @ at position atPos.
// It backtracks to find the local part and scans forward for the domain.
func scanEmail(s string, atPos int) (start, end int, ok bool) {
	start = atPos
	for start > 0 && isEmailLocalByte(s[start-1]) {
		start--
	}
	for start < atPos && s[start] == '.' {
		start++
	}
	if start == atPos {
		return 0, 0, false
	}

	end = atPos + 1
	for end < len(s) && isEmailDomainByte(s[end]) {
		end++
	}
	for end > atPos+1 && s[end-1] == '.' {
		end--
	}

	domain := s[atPos+1 : end]
	lastDot := strings.LastIndexByte(domain, '.')
	if lastDot < 1 {
		return 0, 0, false
	}
	tld := domain[lastDot+1:]
	if len(tld) < 2 || !isAllAlpha(tld) {
		return 0, 0, false
	}
	return start, end, true
}

// trimTokensForEmail removes tokens that overlap the email local part
// starting at emailStart; they were emitted before the @ was seen.
func trimTokensForEmail(tokens []Token, emailStart int) []Token {
	for len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		switch {
		case last.Start >= emailStart:
			tokens = tokens[:len(tokens)-1]
		case last.End > emailStart:
			tokens[len(tokens)-1] = Token{
				Text:  last.Text[:emailStart-last.Start],
				Start: last.Start,
				End:   emailStart,
				Type:  last.Type,
			}
			return tokens
		default:
			return tokens
		}
	}
	return tokens
}

// consumeWordOrDigitRun consumes a contiguous run of letters and digits.
func consumeWordOrDigitRun(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		pos += size
	}
	return pos
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’' || r == 'ʼ'
}

func isEmailLocalByte(c byte) bool {
	return isAlnumByte(c) || c == '.' || c == '_' || c == '%' || c == '+' || c == '-'
}

func isEmailDomainByte(c byte) bool {
	return isAlnumByte(c) || c == '.' || c == '-'
}

func isAlnumByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || isDigitByte(c)
}

// isAllAlpha returns true if every byte in s is an ASCII letter.
func isAllAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
			return false
		}
	}
	return true
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
