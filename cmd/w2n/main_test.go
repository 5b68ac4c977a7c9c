package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/w2n-go/word2num/numwords"
)

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"args", []string{"ordered", "thirty", "two", "dishes"}, "", "ordered 32 dishes\n"},
		{"stdin", nil, "two point three\n", "2.3\n"},
		{"parse", []string{"-parse", "one lakh thirty two thousand"}, "", "132000\n"},
		{"parse stdin", []string{"-parse"}, "  minus ten and fifty paisa \n", "-10.5\n"},
		{"html", []string{"-html"}, "<p>ten lakh</p>", "<p>1000000</p>"},
		{"html sanitize", []string{"-html", "-sanitize"}, "<p>five</p><script>x()</script>", "<p>5</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			if err := run(tt.args, strings.NewReader(tt.stdin), &out); err != nil {
				t.Fatalf("run(%q) error: %v", tt.args, err)
			}
			if out.String() != tt.want {
				t.Errorf("run(%q) = %q, want %q", tt.args, out.String(), tt.want)
			}
		})
	}
}

func TestRunTable(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := run([]string{"-table", "ten friends ate two point five lakh rupees of food"}, nil, &out); err != nil {
		t.Fatalf("run error: %v", err)
	}
	for _, want := range []string{"PHRASE", "ten", "two point five lakh", "250000", "TOTAL"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("table output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bill.txt")
	if err := os.WriteFile(path, []byte("paid twenty lakh rupees"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := run([]string{"-file", path}, nil, &out); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if out.String() != "paid 2000000" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := run([]string{"-parse", "-"}, nil, &out); !errors.Is(err, numwords.ErrNoNumberWords) {
		t.Errorf("run(-parse -) error = %v, want ErrNoNumberWords", err)
	}
	if err := run([]string{"five minus two"}, nil, &out); !errors.Is(err, numwords.ErrMisplacedSign) {
		t.Errorf("run(five minus two) error = %v, want ErrMisplacedSign", err)
	}
	if err := run([]string{"-file", "a.txt", "ten"}, nil, &out); err == nil {
		t.Error("run with two inputs = nil error")
	}
	if err := run([]string{"-pdf", filepath.Join(t.TempDir(), "missing.pdf")}, nil, &out); err == nil {
		t.Error("run with missing PDF = nil error")
	}
	if err := run([]string{"-nope"}, nil, &out); err == nil {
		t.Error("run with unknown flag = nil error")
	}
}
