package numwords

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

type goldenCase struct {
	Name   string `json:"name"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

const goldenPath = "../data/golden/numwords.json"

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("golden file not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			got, err := Convert(tc.Input)
			if err != nil {
				t.Fatalf("Convert(%q) error: %v", tc.Input, err)
			}
			if got != tc.Output {
				t.Errorf("Convert(%q)\n got: %q\nwant: %q", tc.Input, got, tc.Output)
			}

			// Converted text has no number words left to convert.
			again, err := Convert(got)
			if err != nil {
				t.Fatalf("Convert(%q) error: %v", got, err)
			}
			if again != got {
				t.Errorf("Convert is not stable: %q → %q", got, again)
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	for i := range cases {
		tc := &cases[i]
		out, err := Convert(tc.Input)
		if err != nil {
			t.Fatalf("Convert(%q) error: %v", tc.Input, err)
		}
		tc.Output = out
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(goldenPath, out, 0644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}

	t.Log("golden file updated, review with: git diff data/golden/numwords.json")
}
