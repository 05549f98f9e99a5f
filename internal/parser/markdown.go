package parser

import (
	"bytes"
	"io"

	"github.com/yuin/goldmark"

	"github.com/dgallion1/donorscan/internal/document"
)

// MarkdownParser renders Markdown to HTML with goldmark and parses the
// result, so "## $500 Patrons" headings segment like HTML headings.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, name string) (*document.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, decodeErr("markdown", err)
	}

	var rendered bytes.Buffer
	if err := goldmark.Convert(src, &rendered); err != nil {
		return nil, decodeErr("markdown", err)
	}

	doc, err := (&HTMLParser{}).Parse(&rendered, name)
	if err != nil {
		return nil, decodeErr("markdown", err)
	}
	return doc, nil
}
