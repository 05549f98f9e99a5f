package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/donorscan/internal/document"
)

// TextParser handles plain text files. Blank-line separated paragraphs are
// kept apart with a blank line; the recognizer sees the text as one run.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, name string) (*document.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []string
	var current strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}

	if err := scanner.Err(); err != nil {
		return nil, decodeErr("text", err)
	}

	return document.NewPlainText(name, strings.Join(paragraphs, "\n\n")), nil
}
