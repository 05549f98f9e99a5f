package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/donorscan/internal/document"
	"github.com/fumiama/go-docx"
)

// DOCXParser handles .docx files. Heading-styled paragraphs become h1..h6
// elements and other paragraphs become p elements, all siblings under body,
// so tier headings in a Word document segment like an HTML page.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, name string) (*document.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, decodeErr("docx", fmt.Errorf("read: %w", err))
	}

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, decodeErr("docx", err)
	}

	body := document.Element("body")
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := docxParagraphText(para)
		if text == "" {
			continue
		}
		tag := "p"
		if level := docxHeadingLevel(para); level > 0 {
			tag = fmt.Sprintf("h%d", level)
		}
		body.Append(document.Element(tag, document.Text(text)))
	}

	return document.NewMarkup(name, document.Element("document", body)), nil
}

// docxHeadingLevel maps "Heading1" / "heading 1" style ids to 1..6, and the
// Title style to 1. Other paragraphs return 0.
func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	if style == "title" {
		return 1
	}
	level, ok := strings.CutPrefix(style, "heading")
	if !ok || len(level) != 1 || level[0] < '1' || level[0] > '6' {
		return 0
	}
	return int(level[0] - '0')
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
