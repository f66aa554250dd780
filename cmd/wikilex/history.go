package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/wikilex/wikilex/internal/config"
	"github.com/wikilex/wikilex/internal/database"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past survey runs",
		Long: `History lists past survey runs recorded in the run database, newest first.
With --run it shows the per-topic counts of a single run instead.

Examples:
  # List the most recent runs
  wikilex history

  # Show per-topic results for run 3
  wikilex history --run 3`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().StringP("data-dir", "d", "",
		"Directory holding the run history database (default: XDG data directory)")
	cmd.Flags().IntP("limit", "l", config.DefaultHistoryLimit,
		"Maximum number of runs to list")
	cmd.Flags().Int64P("run", "r", 0,
		"Show per-topic results for the given run ID")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	dataDir, err := cmd.Flags().GetString("data-dir")
	if err != nil {
		return err
	}
	if dataDir == "" {
		dataDir = config.DefaultDataDir()
	}

	opts := database.DefaultOptions()
	opts.CreateIfNotExists = false
	db, err := database.Open(dataDir, opts)
	if err != nil {
		return fmt.Errorf("no run history yet (run 'wikilex scan' first): %w", err)
	}
	defer db.Close()

	runID, err := cmd.Flags().GetInt64("run")
	if err != nil {
		return err
	}
	if runID > 0 {
		return showTopicResults(cmd, db, runID)
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	return listRuns(cmd, db, limit)
}

// listRuns prints recorded runs, newest first.
func listRuns(cmd *cobra.Command, db *database.SurveyDB, limit int) error {
	runs, err := db.ListRuns(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-5s %-20s %-10s %-7s %-6s\n", "ID", "STARTED", "DURATION", "TOPICS", "PAGES")
	for _, run := range runs {
		fmt.Fprintf(out, "%-5d %-20s %-10s %-7d %-6d\n",
			run.ID,
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.FinishedAt.Sub(run.StartedAt).Round(time.Second),
			run.TopicCount,
			run.PageCount,
		)
	}
	return nil
}

// showTopicResults prints the per-topic counts of one run.
func showTopicResults(cmd *cobra.Command, db *database.SurveyDB, runID int64) error {
	topics, err := db.TopicResults(cmd.Context(), runID)
	if err != nil {
		return fmt.Errorf("failed to load run %d: %w", runID, err)
	}

	if len(topics) == 0 {
		return fmt.Errorf("run %d not found", runID)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-30s %-8s %-12s\n", "TOPIC", "MATCHES", "TOTAL WORDS")
	for _, tr := range topics {
		fmt.Fprintf(out, "%-30s %-8d %-12d\n", tr.Topic, tr.MatchCount, tr.TotalWordCount)
	}
	return nil
}
