package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/dgallion1/donorscan/internal/document"
)

func TestTextParser_ParagraphsKeptApart(t *testing.T) {
	input := "First paragraph line one.\nFirst paragraph line two.\n\n\n\nSecond paragraph.\n   \nThird paragraph."
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "notes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Kind != document.PlainText {
		t.Errorf("expected plain text document, got %v", doc.Kind)
	}
	if doc.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", doc.Title)
	}
	want := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph."
	if doc.Text != want {
		t.Errorf("expected %q, got %q", want, doc.Text)
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	doc, err := (&TextParser{}).Parse(strings.NewReader(""), "empty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != "" {
		t.Errorf("expected empty text, got %q", doc.Text)
	}
}

func TestCSVParser_RowsBecomeLines(t *testing.T) {
	input := "name,amount,city\nJane Smith,$100,Boston\n\"Baker, Tom\",,Austin\nshort\n"
	doc, err := (&CSVParser{}).Parse(strings.NewReader(input), "donors")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "name, amount, city\nJane Smith, $100, Boston\nBaker, Tom, Austin\nshort"
	if doc.Text != want {
		t.Errorf("expected %q, got %q", want, doc.Text)
	}
}

func TestPDFParser_GarbageIsDecodeError(t *testing.T) {
	_, err := (&PDFParser{}).Parse(strings.NewReader("<html>not a pdf</html>"), "report")
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decErr.Format != "pdf" {
		t.Errorf("expected format pdf, got %q", decErr.Format)
	}
}

func TestJoinPages_PageOrder(t *testing.T) {
	got := JoinPages([]string{"Alice Wu", "Bob Ng"})
	if got != "Alice Wu\nBob Ng" {
		t.Errorf("expected pages joined in order, got %q", got)
	}
}

func TestDOCXParser_GarbageIsDecodeError(t *testing.T) {
	_, err := (&DOCXParser{}).Parse(strings.NewReader("not a zip"), "gala")
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}
