// Command w2n replaces English number words with numerals.
//
// Text comes from the arguments, from -file or -pdf, or from stdin:
//
//	w2n "bill came out as ten thousand five hundred"
//	w2n -parse "one lakh thirty two thousand"
//	w2n -table -pdf cheque.pdf
//	w2n -html -sanitize < page.html
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/w2n-go/word2num/htmltext"
	"github.com/w2n-go/word2num/numwords"
	"github.com/w2n-go/word2num/pdftext"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("w2n: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

type options struct {
	file     string
	pdf      string
	parse    bool
	table    bool
	html     bool
	sanitize bool
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var opts options
	fs := flag.NewFlagSet("w2n", flag.ContinueOnError)
	fs.StringVar(&opts.file, "file", "", "read text from `path`")
	fs.StringVar(&opts.pdf, "pdf", "", "read text from the PDF at `path`")
	fs.BoolVar(&opts.parse, "parse", false, "treat the input as one number phrase and print its value")
	fs.BoolVar(&opts.table, "table", false, "print the number phrases found as a table")
	fs.BoolVar(&opts.html, "html", false, "treat the input as HTML")
	fs.BoolVar(&opts.sanitize, "sanitize", false, "sanitize HTML input before converting (with -html)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	text, err := readInput(opts, fs.Args(), stdin)
	if err != nil {
		return err
	}

	switch {
	case opts.parse:
		v, err := numwords.ParseValue(strings.TrimSpace(text))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, numwords.Format(v))
		return err

	case opts.table:
		matches, err := numwords.Extract(text)
		if err != nil {
			return err
		}
		printTable(stdout, matches)
		return nil

	case opts.html:
		out, err := htmltext.Convert(text, htmltext.Options{Sanitize: opts.sanitize})
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, out)
		return err
	}

	out, err := numwords.Convert(text)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, out)
	return err
}

func readInput(opts options, args []string, stdin io.Reader) (string, error) {
	sources := 0
	for _, set := range []bool{opts.file != "", opts.pdf != "", len(args) > 0} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return "", errors.New("use only one of -file, -pdf or text arguments")
	}

	switch {
	case opts.pdf != "":
		return pdftext.ReadFile(opts.pdf)
	case opts.file != "":
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case len(args) > 0:
		return strings.Join(args, " ") + "\n", nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func printTable(w io.Writer, matches []numwords.Match) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Phrase", "Start", "End", "Value"})
	for i, m := range matches {
		t.AppendRow(table.Row{i + 1, m.Text, m.Start, m.End, numwords.Format(m.Value)})
	}
	t.AppendFooter(table.Row{"", "Total", "", "", len(matches)})
	t.Render()
}
