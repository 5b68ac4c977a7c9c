package tokenizer

import (
	"strings"
	"sync"
	"testing"
)

// verifyInvariants checks two invariants that must hold for every tokenization:
//   - Byte offset invariant: input[t.Start:t.End] == t.Text for every token.
//   - Reconstruction invariant: concatenating all token texts reproduces the input.
func verifyInvariants(t *testing.T, input string, tokens []Token) {
	t.Helper()
	for i, tok := range tokens {
		if got := input[tok.Start:tok.End]; got != tok.Text {
			t.Errorf("token %d offset invariant broken: input[%d:%d]=%q, Text=%q",
				i, tok.Start, tok.End, got, tok.Text)
		}
	}
	var buf strings.Builder
	for _, tok := range tokens {
		buf.WriteString(tok.Text)
	}
	if buf.String() != input {
		t.Errorf("reconstruction invariant broken:\ngot:  %q\nwant: %q", buf.String(), input)
	}
}

func TestWordTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		// -- Words --

		{"simple word", "lakh", []Token{
			{Text: "lakh", Start: 0, End: 4, Type: Word},
		}},
		{"two words", "ten thousand", []Token{
			{Text: "ten", Start: 0, End: 3, Type: Word},
			{Text: " ", Start: 3, End: 4, Type: Space},
			{Text: "thousand", Start: 4, End: 12, Type: Word},
		}},
		{"hyphenated number word", "thirty-six", []Token{
			{Text: "thirty-six", Start: 0, End: 10, Type: Word},
		}},
		{"apostrophe joins letters", "o'clock", []Token{
			{Text: "o'clock", Start: 0, End: 7, Type: Word},
		}},

		// -- Numbers --

		{"plain digits", "42", []Token{
			{Text: "42", Start: 0, End: 2, Type: Number},
		}},
		{"western grouping", "1,000,000", []Token{
			{Text: "1,000,000", Start: 0, End: 9, Type: Number},
		}},
		{"south asian grouping", "10,00,000", []Token{
			{Text: "10,00,000", Start: 0, End: 9, Type: Number},
		}},
		{"list is not grouping", "5,10,15", []Token{
			{Text: "5", Start: 0, End: 1, Type: Number},
			{Text: ",", Start: 1, End: 2, Type: Punctuation},
			{Text: "10", Start: 2, End: 4, Type: Number},
			{Text: ",", Start: 4, End: 5, Type: Punctuation},
			{Text: "15", Start: 5, End: 7, Type: Number},
		}},
		{"decimal point", "2.75", []Token{
			{Text: "2.75", Start: 0, End: 4, Type: Number},
		}},
		{"grouping with decimals", "1,250.50", []Token{
			{Text: "1,250.50", Start: 0, End: 8, Type: Number},
		}},
		{"leading dot decimal", ".5", []Token{
			{Text: ".5", Start: 0, End: 2, Type: Number},
		}},
		{"trailing dot is punctuation", "5.", []Token{
			{Text: "5", Start: 0, End: 1, Type: Number},
			{Text: ".", Start: 1, End: 2, Type: Punctuation},
		}},
		{"dot after word is punctuation", "v.5", []Token{
			{Text: "v", Start: 0, End: 1, Type: Word},
			{Text: ".", Start: 1, End: 2, Type: Punctuation},
			{Text: "5", Start: 2, End: 3, Type: Number},
		}},
		{"abbreviation suffix splits", "150k", []Token{
			{Text: "150", Start: 0, End: 3, Type: Number},
			{Text: "k", Start: 3, End: 4, Type: Word},
		}},
		{"sign is separate token", "-5", []Token{
			{Text: "-", Start: 0, End: 1, Type: Punctuation},
			{Text: "5", Start: 1, End: 2, Type: Number},
		}},

		// -- Punctuation and symbols --

		{"double hyphen merges", "ten--five", []Token{
			{Text: "ten", Start: 0, End: 3, Type: Word},
			{Text: "--", Start: 3, End: 5, Type: Punctuation},
			{Text: "five", Start: 5, End: 9, Type: Word},
		}},
		{"dollar sign is symbol", "$5", []Token{
			{Text: "$", Start: 0, End: 1, Type: Symbol},
			{Text: "5", Start: 1, End: 2, Type: Number},
		}},
		{"rupee sign is symbol", "₹5", []Token{
			{Text: "₹", Start: 0, End: 3, Type: Symbol},
			{Text: "5", Start: 3, End: 4, Type: Number},
		}},
		{"multiple spaces merge", "a  \t\n b", []Token{
			{Text: "a", Start: 0, End: 1, Type: Word},
			{Text: "  \t\n ", Start: 1, End: 6, Type: Space},
			{Text: "b", Start: 6, End: 7, Type: Word},
		}},

		// -- URL and email --

		{"https URL keeps digits", "https://example.com/5", []Token{
			{Text: "https://example.com/5", Start: 0, End: 21, Type: URL},
		}},
		{"URL with trailing punctuation stripped", "http://a.in.", []Token{
			{Text: "http://a.in", Start: 0, End: 11, Type: URL},
			{Text: ".", Start: 11, End: 12, Type: Punctuation},
		}},
		{"email with digits", "user5@mail.in", []Token{
			{Text: "user5@mail.in", Start: 0, End: 13, Type: Email},
		}},
		{"bare protocol", "http://", []Token{
			{Text: "http", Start: 0, End: 4, Type: Word},
			{Text: ":", Start: 4, End: 5, Type: Punctuation},
			{Text: "/", Start: 5, End: 6, Type: Punctuation},
			{Text: "/", Start: 6, End: 7, Type: Punctuation},
		}},

		// -- Mixed --

		{"sentence", "Pay Rs. 1,00,000 only.", []Token{
			{Text: "Pay", Start: 0, End: 3, Type: Word},
			{Text: " ", Start: 3, End: 4, Type: Space},
			{Text: "Rs", Start: 4, End: 6, Type: Word},
			{Text: ".", Start: 6, End: 7, Type: Punctuation},
			{Text: " ", Start: 7, End: 8, Type: Space},
			{Text: "1,00,000", Start: 8, End: 16, Type: Number},
			{Text: " ", Start: 16, End: 17, Type: Space},
			{Text: "only", Start: 17, End: 21, Type: Word},
			{Text: ".", Start: 21, End: 22, Type: Punctuation},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordTokens(tt.input)
			verifyInvariants(t, tt.input, got)
			if len(got) != len(tt.want) {
				t.Fatalf("WordTokens(%q) returned %d tokens, want %d:\n got: %v\nwant: %v",
					tt.input, len(got), len(tt.want), got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWordTokensEmpty(t *testing.T) {
	if got := WordTokens(""); got != nil {
		t.Errorf("WordTokens(\"\") = %v, want nil", got)
	}
}

func TestInvariantsOnAwkwardInput(t *testing.T) {
	inputs := []string{
		"\xff\xfe ten",
		"...5...",
		",,,1,,,",
		"----",
		"@@@",
		"a@b",
		"x@y.z1",
		"1,",
		"1,00",
		"http://x",
		"https://",
		"ten-",
		"-ten",
		"'quoted'",
		strings.Repeat("nine ", 200),
	}
	for _, input := range inputs {
		t.Run("", func(t *testing.T) {
			verifyInvariants(t, input, WordTokens(input))
		})
	}
}

func TestTokenTypeString(t *testing.T) {
	cases := map[TokenType]string{
		Word:          "Word",
		Number:        "Number",
		Punctuation:   "Punctuation",
		Space:         "Space",
		Symbol:        "Symbol",
		URL:           "URL",
		Email:         "Email",
		TokenType(99): "TokenType(99)",
	}
	for tt, want := range cases {
		if got := tt.String(); got != want {
			t.Errorf("TokenType(%d).String() = %q, want %q", int(tt), got, want)
		}
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Text: "lakh", Start: 0, End: 4, Type: Word}
	if got, want := tok.String(), `Word("lakh")[0:4]`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestConcurrentSafety(t *testing.T) {
	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			WordTokens("one lakh 1,00,000 https://x.in user@x.in")
		})
	}
	wg.Wait()
}

func BenchmarkWordTokens(b *testing.B) {
	s := strings.Repeat("ordered thirty two dishes for Rs. 1,250.50 only. ", 20)
	for b.Loop() {
		WordTokens(s)
	}
}
