package textfold

import "testing"

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"already folded", "lakh", "lakh"},
		{"title case", "Twelve Crore", "twelve crore"},
		{"upper case", "RUPEES", "rupees"},
		{"fullwidth digits", "１５０k", "150k"},
		{"fullwidth letters", "ＴＥＮ", "ten"},
		{"sharp s folds", "STRAßE", "strasse"},
		{"non-breaking space becomes space", "ten\u00a0thousand", "ten thousand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Fold(tt.input); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
