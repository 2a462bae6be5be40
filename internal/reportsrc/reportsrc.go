// Package reportsrc reads score-report text from files, standard input and
// PDF exports.
package reportsrc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxSize bounds the bytes read from any single source.
const MaxSize = 10 << 20

// Stdin is the path that selects standard input.
const Stdin = "-"

var pdfMagic = []byte("%PDF-")

// ErrTooLarge is returned for sources over MaxSize.
var ErrTooLarge = errors.New("report source exceeds size limit")

// ErrNoText is returned for a PDF without extractable text, e.g. a scan.
var ErrNoText = errors.New("no extractable text in PDF")

// ReadFile returns the report text in path. An empty path or "-" reads
// stdin. PDF input is detected by content, so forcePDF is only needed for
// inputs that lack the PDF header.
func ReadFile(path string, stdin io.Reader, forcePDF bool) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == Stdin {
		data, err = readLimited(stdin)
	} else {
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return "", fmt.Errorf("open report: %w", err)
		}
		defer f.Close()
		data, err = readLimited(f)
		forcePDF = forcePDF || strings.EqualFold(filepath.Ext(path), ".pdf")
	}
	if err != nil {
		return "", fmt.Errorf("read report: %w", err)
	}
	return Decode(data, forcePDF)
}

// Decode returns the text of data, extracting it first when data is a PDF.
func Decode(data []byte, forcePDF bool) (string, error) {
	if forcePDF || IsPDF(data) {
		return PDFText(bytes.NewReader(data), int64(len(data)))
	}
	return string(data), nil
}

// IsPDF reports whether data starts with the PDF header.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, pdfMagic)
}

// PDFText extracts the plain text of every page, one page per block.
// Pages that fail to decode are skipped.
func PDFText(r io.ReaderAt, size int64) (text string, err error) {
	// The PDF reader panics on some malformed inputs.
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("parse PDF: %v", p)
		}
	}()

	doc, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("parse PDF: %w", err)
	}

	var b strings.Builder
	for n := 1; n <= doc.NumPage(); n++ {
		page := doc.Page(n)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(pageText)
	}

	if strings.TrimSpace(b.String()) == "" {
		return "", ErrNoText
	}
	return b.String(), nil
}

func readLimited(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, errors.New("no input")
	}
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxSize {
		return nil, ErrTooLarge
	}
	return data, nil
}
