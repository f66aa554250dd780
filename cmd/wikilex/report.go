package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wikilex/wikilex/internal/config"
	"github.com/wikilex/wikilex/internal/store"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render reports from saved survey data",
		Long: `Report reloads the word lists and counts written by a previous scan and
renders them again, without crawling anything.

Examples:
  # Print the plain-text summary for the last scan
  wikilex report

  # Render a Markdown report and an HTML chart page
  wikilex report --markdown report.md --charts charts.html`,
		Args: cobra.NoArgs,
		RunE: runReportCmd,
	}

	cmd.Flags().StringP("data-dir", "d", "",
		"Directory holding the data files (default: XDG data directory)")
	cmd.Flags().StringP("markdown", "m", "",
		"Also write a Markdown report to the given file")
	cmd.Flags().String("charts", "",
		"Also write an HTML chart report to the given file")
	cmd.Flags().StringP("output", "o", "",
		"Write the plain-text summary to the given file instead of stdout")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	dataDir, err := cmd.Flags().GetString("data-dir")
	if err != nil {
		return err
	}
	if dataDir == "" {
		dataDir = config.DefaultDataDir()
	}

	results, err := store.New(dataDir).Load()
	if err != nil {
		return fmt.Errorf("failed to load survey data from %s: %w", dataDir, err)
	}

	return outputReports(cmd, results)
}
