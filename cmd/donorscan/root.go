package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "donorscan",
	Short: "Extract donor and sponsor names from web pages and documents",
	Long: `donorscan fetches a URL (HTML, PDF, DOCX, Markdown, text or CSV),
runs named-entity recognition over it and returns the person names found.

On HTML-like documents, headings that carry a price ("$500 Patrons")
partition the names into tiers.

Configuration is read from the environment (PORT, NER_BACKEND,
ANTHROPIC_API_KEY, FETCH_TIMEOUT, ...).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(extractCmd)
}

func newLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})), nil
}
