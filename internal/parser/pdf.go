package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/dgallion1/donorscan/internal/document"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser handles PDF files. It uses the Go library and, when enabled,
// falls back to pdftotext if the library cannot read the file.
type PDFParser struct {
	FallbackPdftotext bool
}

func (p *PDFParser) Parse(r io.Reader, name string) (*document.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, decodeErr("pdf", fmt.Errorf("read: %w", err))
	}

	pages, err := extractPDFPages(data)
	if err != nil && p.FallbackPdftotext {
		var fbErr error
		pages, fbErr = extractPdftotext(data)
		if fbErr == nil {
			err = nil
		}
	}
	if err != nil {
		return nil, decodeErr("pdf", err)
	}

	return document.NewPlainText(name, JoinPages(pages)), nil
}

// JoinPages concatenates page texts in page order.
func JoinPages(pages []string) string {
	return strings.Join(pages, "\n")
}

// extractPDFPages returns the plain text of every page in order.
func extractPDFPages(data []byte) ([]string, error) {
	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// extractPdftotext shells out to poppler's pdftotext, which needs a file.
func extractPdftotext(data []byte) ([]string, error) {
	tmp, err := os.CreateTemp("", "donorscan-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	out, err := exec.Command("pdftotext", "-layout", tmpPath, "-").Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	// Form feed separates pages.
	return strings.Split(strings.TrimSuffix(string(out), "\f"), "\f"), nil
}
