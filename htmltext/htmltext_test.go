package htmltext

import (
	"errors"
	"strings"
	"testing"

	"github.com/w2n-go/word2num/numwords"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		opts Options
		want string
	}{
		{
			"paragraph",
			"<p>ordered thirty two dishes</p>",
			Options{},
			"<p>ordered 32 dishes</p>",
		},
		{
			"attributes untouched",
			`<a title="ten" href="/five">ten lakh</a>`,
			Options{},
			`<a title="ten" href="/five">1000000</a>`,
		},
		{
			"script untouched",
			"<p>five</p><script>var ten = 'ten';</script>",
			Options{},
			"<p>5</p><script>var ten = 'ten';</script>",
		},
		{
			"code untouched",
			"<p>two point three</p><code>two point three</code>",
			Options{},
			"<p>2.3</p><code>two point three</code>",
		},
		{
			"split across elements",
			"<p>ten <b>thousand</b></p>",
			Options{},
			"<p>10 <b>1000</b></p>",
		},
		{
			"entities",
			"<p>fish &amp; chips for ten</p>",
			Options{},
			"<p>fish &amp; chips for 10</p>",
		},
		{
			"sanitized",
			`<p onclick="steal()">twenty lakh</p><script>alert(1)</script>`,
			Options{Sanitize: true},
			"<p>2000000</p>",
		},
		{
			"no numbers",
			"<div><em>hello</em> world</div>",
			Options{},
			"<div><em>hello</em> world</div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Convert(tt.src, tt.opts)
			if err != nil {
				t.Fatalf("Convert(%q) error: %v", tt.src, err)
			}
			if got != tt.want {
				t.Errorf("Convert(%q)\n got: %q\nwant: %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestConvertDocument(t *testing.T) {
	t.Parallel()

	src := "<!DOCTYPE html><html><head><title>five</title></head><body><p>one crore</p></body></html>"
	got, err := Convert(src, Options{})
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "<title>5</title>", "<p>10000000</p>"} {
		if !strings.Contains(got, want) {
			t.Errorf("Convert(document) = %q, missing %q", got, want)
		}
	}
}

func TestConvertRunError(t *testing.T) {
	t.Parallel()

	_, err := Convert("<p>ten lakh million</p>", Options{})
	if !errors.Is(err, numwords.ErrMixedStandard) {
		t.Fatalf("error = %v, want ErrMixedStandard", err)
	}
	var re *numwords.RunError
	if !errors.As(err, &re) {
		t.Errorf("error %v does not carry a *numwords.RunError", err)
	}
}
