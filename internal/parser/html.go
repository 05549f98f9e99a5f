package parser

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/dgallion1/donorscan/internal/document"
)

// nonContent elements never carry visible names.
const nonContent = "script, style, noscript, template, iframe"

// HTMLParser handles HTML pages.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, name string) (*document.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, decodeErr("html", err)
	}
	doc.Find(nonContent).Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = name
	}
	// Drop <head> text so <title> does not leak into block scans.
	doc.Find("head").Remove()

	if len(doc.Nodes) == 0 {
		return document.NewMarkup(title, document.Element("document")), nil
	}
	return document.NewMarkup(title, convert(doc.Nodes[0])), nil
}

// convert materializes an x/net/html tree into a document.Node tree.
// Comments and doctypes are dropped.
func convert(n *html.Node) *document.Node {
	var out *document.Node
	switch n.Type {
	case html.DocumentNode:
		out = document.Element("document")
	case html.ElementNode:
		out = document.Element(n.Data)
	case html.TextNode:
		return document.Text(n.Data)
	default:
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child := convert(c); child != nil {
			out.Append(child)
		}
	}
	return out
}
