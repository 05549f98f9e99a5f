package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgallion1/donorscan/internal/config"
)

func TestNewApp_InvalidConfig(t *testing.T) {
	log := slog.New(slog.DiscardHandler)

	if _, err := newApp(config.Config{Port: "8080", NERBackend: "spacy"}, log); err == nil {
		t.Error("expected unknown backend to fail")
	}
	if _, err := newApp(config.Config{Port: "8080", NERBackend: config.BackendClaude}, log); err == nil {
		t.Error("expected claude backend without key to fail")
	}
}

func TestNewApp_Claude(t *testing.T) {
	cfg := config.Config{
		Port:            "8080",
		NERBackend:      config.BackendClaude,
		AnthropicAPIKey: "k",
		AnthropicModel:  "m",
	}
	a, err := newApp(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()
	if a.extractor == nil || a.stats == nil {
		t.Error("expected extractor and stats to be built")
	}
	if len(a.closers) != 1 {
		t.Errorf("expected claude client to be closed with the app, got %d closers", len(a.closers))
	}
}

func TestExtractCommand_EmptyDocument(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
	}))
	defer ts.Close()

	t.Setenv("NER_BACKEND", "prose")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"extract", "--log-level", "error", ts.URL + "/empty.txt"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var res map[string]any
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("expected JSON on stdout, got %q: %v", out.String(), err)
	}
	names, ok := res["names"].([]any)
	if !ok || len(names) != 0 {
		t.Errorf("expected empty names array, got %v", res["names"])
	}
}
