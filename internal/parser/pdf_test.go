package parser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dgallion1/donorscan/internal/document"
	"github.com/dgallion1/donorscan/internal/parser/pdftest"
)

func TestExtractPDFPages(t *testing.T) {
	pages, err := extractPDFPages(pdftest.Build("Alice Wu of Acme Co", "Bob Ng"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d: %q", len(pages), pages)
	}
	if !strings.Contains(pages[0], "Alice Wu of Acme Co") {
		t.Errorf("expected page 1 text, got %q", pages[0])
	}
	if !strings.Contains(pages[1], "Bob Ng") {
		t.Errorf("expected page 2 text, got %q", pages[1])
	}
}

func TestPDFParser_PageOrder(t *testing.T) {
	p := &PDFParser{}
	doc, err := p.Parse(bytes.NewReader(pdftest.Build("Alice Wu of Acme Co", "Bob Ng")), "report.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Kind != document.PlainText {
		t.Errorf("expected plain text document, got %s", doc.Kind)
	}
	alice := strings.Index(doc.Text, "Alice Wu")
	bob := strings.Index(doc.Text, "Bob Ng")
	if alice < 0 || bob < 0 || alice > bob {
		t.Errorf("expected Alice Wu before Bob Ng, got %q", doc.Text)
	}
	if got := strings.Join(strings.Fields(doc.Text), " "); got != "Alice Wu of Acme Co Bob Ng" {
		t.Errorf("unexpected text %q", got)
	}
}

func TestPDFParser_EscapedText(t *testing.T) {
	p := &PDFParser{}
	doc, err := p.Parse(bytes.NewReader(pdftest.Build(`Gala (2024) \ Friends`)), "gala.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(doc.Text, `Gala (2024) \ Friends`) {
		t.Errorf("expected unescaped text, got %q", doc.Text)
	}
}

func TestPDFParser_NotAPDF(t *testing.T) {
	p := &PDFParser{}
	_, err := p.Parse(strings.NewReader("this is not a pdf"), "broken.pdf")
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decErr.Format != "pdf" {
		t.Errorf("expected pdf format, got %q", decErr.Format)
	}
}
