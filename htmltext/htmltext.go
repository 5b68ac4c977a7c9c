// Package htmltext converts number words inside HTML text while leaving
// markup, attributes and script content untouched.
//
// Each text node is converted on its own, so a phrase split across inline
// elements ("ten <b>thousand</b>") is read as two numbers.
package htmltext

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/w2n-go/word2num/numwords"
)

// Options controls Convert.
type Options struct {
	// Sanitize strips unsafe tags and attributes before conversion, using
	// bluemonday's user-generated-content policy.
	Sanitize bool
}

// Convert replaces number phrases in the text of an HTML document or
// fragment. A fragment is returned as a fragment; a document that carries
// its own <html> or <body> element is returned whole.
func Convert(src string, opts Options) (string, error) {
	if opts.Sanitize {
		src = bluemonday.UGCPolicy().Sanitize(src)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("htmltext: parse: %w", err)
	}

	for _, n := range doc.Nodes {
		if err := convertNode(n); err != nil {
			return "", fmt.Errorf("htmltext: %w", err)
		}
	}

	var out string
	if isDocument(src) {
		out, err = doc.Html()
	} else {
		out, err = doc.Find("body").Html()
	}
	if err != nil {
		return "", fmt.Errorf("htmltext: render: %w", err)
	}
	return out, nil
}

// convertNode rewrites text nodes below n, skipping raw-text elements.
func convertNode(n *html.Node) error {
	switch {
	case n.Type == html.TextNode:
		out, err := numwords.Convert(n.Data)
		if err != nil {
			return err
		}
		n.Data = out
		return nil
	case n.Type == html.ElementNode && skipped(n.DataAtom):
		return nil
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := convertNode(c); err != nil {
			return err
		}
	}
	return nil
}

func skipped(a atom.Atom) bool {
	switch a {
	case atom.Script, atom.Style, atom.Textarea, atom.Pre, atom.Code:
		return true
	}
	return false
}

// isDocument reports whether src spells out its own document structure.
func isDocument(src string) bool {
	head := strings.ToLower(src[:min(len(src), 512)])
	return strings.Contains(head, "<!doctype") ||
		strings.Contains(head, "<html") ||
		strings.Contains(head, "<body")
}
