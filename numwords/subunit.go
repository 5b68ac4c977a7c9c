package numwords

import (
	"slices"
	"strings"

	"github.com/w2n-go/word2num/vocab"
)

// subunitSeparators lists, per subunit word, the words that may end the
// major amount: "ten rupees fifty paisa", "ten and fifty cents".
var subunitSeparators = map[string][]string{
	"paisa": {"and", "rupee", "rupees"},
	"cent":  {"and"},
	"cents": {"and"},
}

// anySeparator reports whether w ends a major amount for some subunit.
func anySeparator(w string) bool {
	for _, seps := range subunitSeparators {
		if slices.Contains(seps, w) {
			return true
		}
	}
	return false
}

// splitSubunit splits a folded phrase into its major and minor amounts at
// the first subunit word. A currency word ("rupees") ends the major amount
// at its first occurrence, so "ten rupees and one hundred and five paisa"
// is 10 and 105 paisa. Otherwise the "and" nearest before the subunit word
// wins, so "ten and twenty and fifty cents" splits at the second "and".
// Without a separator the whole prefix is the minor amount ("fifty paisa"),
// provided it holds no separator for another subunit. Words after the
// subunit word are ignored.
func splitSubunit(phrase string) (major, minor string, ok bool) {
	words := strings.Fields(phrase)
	u := slices.IndexFunc(words, vocab.IsSubunit)
	if u <= 0 {
		return "", "", false
	}

	seps := subunitSeparators[words[u]]
	if c := slices.IndexFunc(words[:u], func(w string) bool {
		return w != "and" && slices.Contains(seps, w)
	}); c >= 0 {
		m := c + 1
		for m < u && slices.Contains(seps, words[m]) {
			m++
		}
		return strings.Join(words[:c], " "), strings.Join(words[m:u], " "), true
	}
	for s := u - 1; s >= 0; s-- {
		if slices.Contains(seps, words[s]) {
			return strings.Join(words[:s], " "), strings.Join(words[s+1:u], " "), true
		}
	}

	if slices.ContainsFunc(words[:u], anySeparator) {
		return "", "", false
	}
	return "", strings.Join(words[:u], " "), true
}
