package fetch

import (
	"bytes"
	"context"
	"io"

	"golang.org/x/net/html/charset"

	"github.com/dgallion1/donorscan/internal/document"
	"github.com/dgallion1/donorscan/internal/parser"
)

// Loader fetches a URL and decodes it into a Document.
type Loader struct {
	Client  *Client
	Options parser.Options
}

// NewLoader returns a Loader over client.
func NewLoader(client *Client, opts parser.Options) *Loader {
	return &Loader{Client: client, Options: opts}
}

// Load retrieves rawURL and parses it by the extension of the requested
// URL path. Errors are *FetchError or *parser.DecodeError.
func (l *Loader) Load(ctx context.Context, rawURL string) (*document.Document, error) {
	resp, err := l.Client.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	p := parser.ForURL(rawURL, resp.ContentType, l.Options)

	var body io.Reader = bytes.NewReader(resp.Body)
	if _, ok := p.(*parser.HTMLParser); ok {
		// Transcode legacy charsets (meta tag or header) to UTF-8.
		r, err := charset.NewReader(body, resp.ContentType)
		if err != nil {
			return nil, &parser.DecodeError{Format: "html", Err: err}
		}
		body = r
	}

	return p.Parse(body, parser.BaseName(rawURL))
}
