package numwords

import (
	"fmt"
	"strings"

	"github.com/w2n-go/word2num/vocab"
)

// checkStandard rejects a folded phrase that uses both South-Asian
// magnitudes (lakh, crore) and Western ones (million, billion).
func checkStandard(phrase string) error {
	var southAsian, western string
	for _, w := range strings.Fields(phrase) {
		fam, ok := vocab.FamilyOf(w)
		if !ok {
			continue
		}
		switch {
		case fam == vocab.SouthAsian && southAsian == "":
			southAsian = w
		case fam == vocab.Western && western == "":
			western = w
		}
		if southAsian != "" && western != "" {
			return fmt.Errorf("%w: %q and %q", ErrMixedStandard, southAsian, western)
		}
	}
	return nil
}
