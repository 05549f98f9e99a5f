package parser

import (
	"fmt"
	"io"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/dgallion1/donorscan/internal/document"
)

// Parser converts raw document bytes into a Document.
type Parser interface {
	Parse(r io.Reader, name string) (*document.Document, error)
}

// DecodeError reports a document that could not be decoded in its format.
type DecodeError struct {
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeErr(format string, err error) error {
	return &DecodeError{Format: format, Err: err}
}

// Options tune individual parsers.
type Options struct {
	PDFFallbackPdftotext bool
}

// ForURL picks a parser from the URL path extension. Unknown extensions
// fall back to HTML unless the response declared itself a PDF.
func ForURL(rawURL, contentType string, opts Options) Parser {
	switch Extension(rawURL) {
	case ".pdf":
		return &PDFParser{FallbackPdftotext: opts.PDFFallbackPdftotext}
	case ".docx":
		return &DOCXParser{}
	case ".md", ".markdown":
		return &MarkdownParser{}
	case ".txt":
		return &TextParser{}
	case ".csv":
		return &CSVParser{}
	case ".html", ".htm":
		return &HTMLParser{}
	}
	if mt, _, err := mime.ParseMediaType(contentType); err == nil && mt == "application/pdf" {
		return &PDFParser{FallbackPdftotext: opts.PDFFallbackPdftotext}
	}
	return &HTMLParser{}
}

// Extension returns the lower-cased extension of the URL path, ignoring
// query and fragment. Unparseable URLs are treated as bare paths.
func Extension(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	return strings.ToLower(path.Ext(p))
}

// BaseName returns the last path segment of a URL without its extension.
func BaseName(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	base := path.Base(p)
	if base == "/" || base == "." {
		return ""
	}
	return strings.TrimSuffix(base, path.Ext(base))
}
