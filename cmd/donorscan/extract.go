package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/donorscan/internal/config"
)

var (
	extractLegacy     bool
	extractPeopleOnly bool
)

var extractCmd = &cobra.Command{
	Use:   "extract URL",
	Short: "Extract names from one URL and print the JSON result",
	Long: `Run a single extraction and write the response body to stdout.
Logs go to stderr.

Examples:
  donorscan extract https://example.org/donors
  donorscan extract https://example.org/annual-report.pdf
  donorscan extract --legacy --people-only https://example.org/sponsors`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(os.Stderr)
		if err != nil {
			return err
		}

		a, err := newApp(config.Load(), log)
		if err != nil {
			return err
		}
		defer a.Close()

		var out any
		if extractLegacy || extractPeopleOnly {
			out, err = a.extractor.ExtractLegacy(cmd.Context(), args[0], extractPeopleOnly)
		} else {
			out, err = a.extractor.Extract(cmd.Context(), args[0])
		}
		if err != nil {
			log.Error("extraction failed", "url", args[0], "error", err)
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	extractCmd.Flags().BoolVar(&extractLegacy, "legacy", false, "return every PERSON, ORG and GPE entity without tiers")
	extractCmd.Flags().BoolVar(&extractPeopleOnly, "people-only", false, "legacy mode keeping only filtered, deduplicated people")
}
