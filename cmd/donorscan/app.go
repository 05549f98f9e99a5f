package main

import (
	"log/slog"

	"github.com/dgallion1/donorscan/internal/config"
	"github.com/dgallion1/donorscan/internal/fetch"
	"github.com/dgallion1/donorscan/internal/ner"
	"github.com/dgallion1/donorscan/internal/parser"
	"github.com/dgallion1/donorscan/internal/pipeline"
)

// app holds the long-lived collaborators built from configuration.
type app struct {
	extractor *pipeline.Extractor
	stats     *ner.Stats
	closers   []func()
}

func newApp(cfg config.Config, log *slog.Logger) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &app{}

	var rec ner.Recognizer
	switch cfg.NERBackend {
	case config.BackendClaude:
		claude := ner.NewClaudeRecognizer(cfg.AnthropicAPIKey, cfg.AnthropicModel,
			ner.WithChunkSize(cfg.NERChunkSize))
		a.closers = append(a.closers, claude.Close)
		rec = claude
		log.Info("using claude recognizer", "model", claude.Model())
	default:
		if cfg.NERModelDir != "" {
			rec = ner.NewProseRecognizer(ner.LoadProseModel(cfg.NERModelDir))
			log.Info("using prose recognizer", "model_dir", cfg.NERModelDir)
		} else {
			rec = ner.NewProseRecognizer(nil)
			log.Info("using prose recognizer", "model_dir", "bundled")
		}
	}

	a.stats = ner.NewStats(cfg.NERBackend, cfg.StatsWindow)
	rec = ner.WithStats(rec, a.stats)

	client := &fetch.Client{
		UserAgent:    cfg.FetchUserAgent,
		Timeout:      cfg.FetchTimeout,
		MaxRedirects: cfg.FetchMaxRedirects,
		MaxBytes:     cfg.MaxDocumentBytes,
	}
	loader := fetch.NewLoader(client, parser.Options{PDFFallbackPdftotext: cfg.PDFFallbackPdftotext})

	a.extractor = pipeline.NewExtractor(loader, rec, log,
		pipeline.WithConcurrency(cfg.RecognizeConcurrency))
	return a, nil
}

func (a *app) Close() {
	for _, c := range a.closers {
		c()
	}
}
