// Package pdftext pulls plain text out of PDF files so that amounts written
// in words (cheques, invoices) can be converted.
package pdftext

import (
	"fmt"
	"io"
	"os"
	"strings"

	"rsc.io/pdf"
)

// Extract returns the text of every page, one line per page.
// Text fragments within a page are separated by single spaces.
// Malformed files that make the PDF reader panic are reported as errors.
func Extract(r io.ReaderAt, size int64) (text string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("pdftext: parser panic: %v", recovered)
			text = ""
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("pdftext: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		for k, fragment := range page.Content().Text {
			if k > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(fragment.S)
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// ReadFile opens the PDF at path and extracts its text.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("pdftext: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("pdftext: %w", err)
	}
	return Extract(f, info.Size())
}
