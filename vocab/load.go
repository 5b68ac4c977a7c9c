package vocab

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// vocabulary is the parsed form of vocab.yaml.
type vocabulary struct {
	entries   map[string]Entry
	canonical map[string]string // numeral string → canonical word
	abbrevs   []string          // longest first
}

// tableFile mirrors the layout of vocab.yaml.
type tableFile struct {
	Units         []tableEntry `yaml:"units"`
	Magnitudes    []tableEntry `yaml:"magnitudes"`
	Abbreviations []tableEntry `yaml:"abbreviations"`
	Points        []string     `yaml:"points"`
	Signs         []string     `yaml:"signs"`
	Fillers       []string     `yaml:"fillers"`
	Subunits      []string     `yaml:"subunits"`
}

type tableEntry struct {
	Word   string `yaml:"word"`
	Value  string `yaml:"value"`
	Family Family `yaml:"family"`
	Alias  bool   `yaml:"alias"`
}

// UnmarshalYAML decodes a family name (e.g. "south_asian") into a Family.
func (f *Family) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	fam, ok := familyFromName[s]
	if !ok {
		return fmt.Errorf("line %d: unknown family %q", node.Line, s)
	}
	*f = fam
	return nil
}

var one = decimal.NewFromInt(1)

// parse decodes raw YAML into lookup tables.
// Units are registered before magnitudes so that the canonical word for a
// numeral prefers "twelve" over a magnitude with the same value.
func parse(raw []byte) (*vocabulary, error) {
	var tf tableFile
	if err := yaml.Unmarshal(raw, &tf); err != nil {
		return nil, err
	}

	v := &vocabulary{
		entries:   make(map[string]Entry),
		canonical: make(map[string]string),
	}

	for _, te := range tf.Units {
		val, err := decimal.NewFromString(te.Value)
		if err != nil {
			return nil, fmt.Errorf("unit %q: bad value %q", te.Word, te.Value)
		}
		if err := v.add(Entry{Word: te.Word, Kind: Unit, Value: val}); err != nil {
			return nil, err
		}
		if !te.Alias {
			v.setCanonical(val, te.Word)
		}
	}

	addMagnitudes := func(list []tableEntry, abbrev bool) error {
		for _, te := range list {
			val, err := decimal.NewFromString(te.Value)
			if err != nil {
				return fmt.Errorf("magnitude %q: bad value %q", te.Word, te.Value)
			}
			if val.LessThanOrEqual(one) {
				return fmt.Errorf("magnitude %q: value %s must be greater than 1", te.Word, val)
			}
			e := Entry{Word: te.Word, Kind: Magnitude, Value: val, Family: te.Family, Abbrev: abbrev}
			if err := v.add(e); err != nil {
				return err
			}
			if abbrev {
				v.abbrevs = append(v.abbrevs, te.Word)
			} else if !te.Alias {
				v.setCanonical(val, te.Word)
			}
		}
		return nil
	}
	if err := addMagnitudes(tf.Magnitudes, false); err != nil {
		return nil, err
	}
	if err := addMagnitudes(tf.Abbreviations, true); err != nil {
		return nil, err
	}

	for _, group := range []struct {
		words []string
		kind  Kind
	}{
		{tf.Points, Point},
		{tf.Signs, Sign},
		{tf.Fillers, Filler},
		{tf.Subunits, Subunit},
	} {
		for _, w := range group.words {
			if err := v.add(Entry{Word: w, Kind: group.kind}); err != nil {
				return nil, err
			}
		}
	}

	slices.SortStableFunc(v.abbrevs, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	return v, nil
}

func (v *vocabulary) add(e Entry) error {
	if e.Word == "" {
		return fmt.Errorf("empty %s word", e.Kind)
	}
	if prev, ok := v.entries[e.Word]; ok {
		return fmt.Errorf("duplicate word %q (%s and %s)", e.Word, prev.Kind, e.Kind)
	}
	v.entries[e.Word] = e
	return nil
}

// setCanonical records word as the canonical word for val unless an
// earlier entry already claimed it.
func (v *vocabulary) setCanonical(val decimal.Decimal, word string) {
	key := val.String()
	if _, ok := v.canonical[key]; !ok {
		v.canonical[key] = word
	}
}
