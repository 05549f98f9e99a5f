// Package pipeline runs a single URL through fetch, recognition, filtering
// and tier segmentation, and assembles the response views.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/dgallion1/donorscan/internal/document"
	"github.com/dgallion1/donorscan/internal/names"
	"github.com/dgallion1/donorscan/internal/ner"
	"github.com/dgallion1/donorscan/internal/tiers"
)

// FragmentThreshold is the block length above which text is split into
// delimiter-separated fragments before recognition.
const FragmentThreshold = 30

// BlockTags are the elements whose text is fed to the recognizer.
var BlockTags = document.NewTagSet("p", "article", "section", "div")

// Loader fetches and decodes a URL.
type Loader interface {
	Load(ctx context.Context, rawURL string) (*document.Document, error)
}

// Extractor owns the collaborators of one pipeline. It holds no per-request
// state and is safe for concurrent use.
type Extractor struct {
	loader      Loader
	recognizer  ner.Recognizer
	log         *slog.Logger
	concurrency int

	blockFilter *names.Filter
	looseFilter *names.Filter
	segmenter   *tiers.Segmenter
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithConcurrency bounds parallel recognizer calls per request. Values
// below one mean sequential.
func WithConcurrency(n int) Option {
	return func(e *Extractor) {
		if n < 1 {
			n = 1
		}
		e.concurrency = n
	}
}

// WithBlockFilter overrides the filter applied to block candidates and
// tier sections.
func WithBlockFilter(f *names.Filter) Option {
	return func(e *Extractor) {
		e.blockFilter = f
	}
}

// NewExtractor builds an Extractor. The recognizer's lifecycle belongs to
// the caller.
func NewExtractor(loader Loader, recognizer ner.Recognizer, log *slog.Logger, opts ...Option) *Extractor {
	e := &Extractor{
		loader:      loader,
		recognizer:  recognizer,
		log:         log,
		concurrency: 1,
		blockFilter: names.BlockFilter,
		looseFilter: names.LooseFilter,
	}
	for _, o := range opts {
		o(e)
	}
	e.segmenter = tiers.NewSegmenter(e.blockFilter)
	return e
}

// Extract runs the tiered pipeline on rawURL. Any fetch, decode or
// recognition error aborts the request with no partial result.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (*Result, error) {
	log := e.log.With("url", rawURL)
	start := time.Now()

	doc, err := e.loader.Load(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	var res *Result
	switch doc.Kind {
	case document.Markup:
		res, err = e.extractMarkup(ctx, doc)
	default:
		res, err = e.extractPlainText(ctx, doc)
	}
	if err != nil {
		return nil, err
	}

	log.Info("extracted names",
		"kind", doc.Kind.String(),
		"names", len(res.Names),
		"tiers", res.TieredNames.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// extractPlainText recognizes the whole body once and keeps every PERSON.
func (e *Extractor) extractPlainText(ctx context.Context, doc *document.Document) (*Result, error) {
	entities, err := e.recognize(ctx, names.Normalize(doc.Text))
	if err != nil {
		return nil, err
	}
	var candidates []string
	for _, ent := range ner.Keep(entities, ner.Person) {
		if n := names.Normalize(ent.Text); n != "" {
			candidates = append(candidates, n)
		}
	}
	return Assemble(candidates, tiers.Segmentation{Tiers: tiers.NewMap()}), nil
}

func (e *Extractor) extractMarkup(ctx context.Context, doc *document.Document) (*Result, error) {
	candidates, err := e.collectCandidates(ctx, doc.Root)
	if err != nil {
		return nil, err
	}
	candidates = names.Dedupe(candidates)
	seg := e.segmenter.Segment(doc.Root, candidates)
	return Assemble(candidates, seg), nil
}

// collectCandidates recognizes every block (or its fragments) and keeps
// filtered PERSON spans in traversal order.
func (e *Extractor) collectCandidates(ctx context.Context, root *document.Node) ([]string, error) {
	if root == nil {
		return nil, nil
	}

	var units []string
	for _, block := range root.FindAll(BlockTags) {
		text := names.Normalize(block.Text())
		if text == "" {
			continue
		}
		if utf8.RuneCountInString(text) > FragmentThreshold {
			units = append(units, names.Fragments(text)...)
		} else {
			units = append(units, text)
		}
	}

	results := make([][]ner.Entity, len(units))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, text := range units {
		g.Go(func() error {
			entities, err := e.recognize(gctx, text)
			if err != nil {
				return fmt.Errorf("unit %d: %w", i, err)
			}
			results[i] = entities
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var candidates []string
	for _, entities := range results {
		for _, ent := range ner.Keep(entities, ner.Person) {
			n := names.Normalize(ent.Text)
			if e.blockFilter.Accept(n) {
				candidates = append(candidates, n)
			}
		}
	}
	e.log.Debug("collected candidates", "units", len(units), "candidates", len(candidates))
	return candidates, nil
}

func (e *Extractor) recognize(ctx context.Context, text string) ([]ner.Entity, error) {
	if text == "" {
		return nil, nil
	}
	return e.recognizer.Recognize(ctx, text)
}
