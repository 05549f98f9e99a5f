package pipeline

import (
	"context"

	"github.com/dgallion1/donorscan/internal/names"
	"github.com/dgallion1/donorscan/internal/ner"
)

// LegacyResult is the response of the simple entity dump.
type LegacyResult struct {
	Names []string `json:"names"`
}

// ExtractLegacy recognizes the whole normalized document text once. By
// default it returns every PERSON, ORG and GPE span in order, unfiltered
// and with duplicates. With peopleOnly it keeps PERSON spans that pass the
// loose name filter, deduplicated.
func (e *Extractor) ExtractLegacy(ctx context.Context, rawURL string, peopleOnly bool) (*LegacyResult, error) {
	doc, err := e.loader.Load(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	entities, err := e.recognize(ctx, names.Normalize(doc.FullText()))
	if err != nil {
		return nil, err
	}

	out := []string{}
	if !peopleOnly {
		for _, ent := range ner.Keep(entities, ner.Person, ner.Org, ner.GPE) {
			out = append(out, ent.Text)
		}
	} else {
		for _, ent := range ner.Keep(entities, ner.Person) {
			if n := names.Normalize(ent.Text); e.looseFilter.Accept(n) {
				out = append(out, n)
			}
		}
		out = names.Dedupe(out)
	}

	e.log.Info("extracted entities", "url", rawURL, "people_only", peopleOnly, "names", len(out))
	return &LegacyResult{Names: out}, nil
}
