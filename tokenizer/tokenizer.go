// Package tokenizer splits text into structured tokens with byte offsets.
//
// The invariant s[t.Start:t.End] == t.Text holds for every token, and
// concatenating all token texts reconstructs the original string. This is
// what lets numwords replace a run of number words in place without
// disturbing the surrounding text.
//
// Numbers are scanned with grouping commas in either Western ("1,000,000")
// or South-Asian ("10,00,000") style and an optional decimal point
// ("2.75", ".5"). A letter directly after digits starts a new Word token,
// so "150k" yields Number("150") followed by Word("k").
//
// All functions are safe for concurrent use by multiple goroutines.
package tokenizer

import "fmt"

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // Alphabetic word (any script), including inner hyphens and apostrophes
	Number                       // Digits, with grouping commas and an optional decimal point
	Punctuation                  // Punctuation marks: . , ! ? : ; ( ) - etc.
	Space                        // Contiguous whitespace (spaces, tabs, newlines)
	Symbol                       // Everything else: currency signs, emoji, math symbols
	URL                          // http:// or https:// prefixed sequences
	Email                        // user@domain.tld sequences
)

// tokenTypeNames maps TokenType values to their string names.
var tokenTypeNames = [...]string{
	Word:        "Word",
	Number:      "Number",
	Punctuation: "Punctuation",
	Space:       "Space",
	Symbol:      "Symbol",
	URL:         "URL",
	Email:       "Email",
}

// String returns the name of the token type.
func (t TokenType) String() string {
	if int(t) >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token represents a unit of text with its position and classification.
type Token struct {
	Text  string    `json:"text"`  // The token text
	Start int       `json:"start"` // Byte offset in the original string (inclusive)
	End   int       `json:"end"`   // Byte offset in the original string (exclusive)
	Type  TokenType `json:"type"`  // Classification of the token
}

// String returns a debug representation, e.g. Word("lakh")[0:4].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// WordTokens splits text into all tokens with metadata.
// The byte offset invariant s[t.Start:t.End] == t.Text holds for every token.
func WordTokens(s string) []Token {
	if s == "" {
		return nil
	}
	return wordTokens(s)
}
