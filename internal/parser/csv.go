package parser

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/dgallion1/donorscan/internal/document"
)

// CSVParser handles CSV exports such as donor rolls. Each row becomes one
// line with cells joined by ", " so the recognizer sees every cell.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, name string) (*document.Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, decodeErr("csv", err)
	}

	lines := make([]string, 0, len(records))
	for _, row := range records {
		var cells []string
		for _, cell := range row {
			if c := strings.TrimSpace(cell); c != "" {
				cells = append(cells, c)
			}
		}
		if len(cells) > 0 {
			lines = append(lines, strings.Join(cells, ", "))
		}
	}

	return document.NewPlainText(name, strings.Join(lines, "\n")), nil
}
