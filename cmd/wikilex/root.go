package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for wikilex.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wikilex",
		Short: "Survey encyclopedia topic pages for domain vocabulary",
		Long: `wikilex crawls a set of topic pages on a MediaWiki-style encyclopedia,
cleans the body and list text of punctuation and citation markers, and
counts occurrences of terms from a fixed domain vocabulary.

Each topic is surveyed one hop deep: the seed page plus every article it
links to. Results are written to flat data files, recorded in a local
history database, and rendered as text summaries and charts.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err == nil {
		return verbose
	}
	if root := cmd.Root(); root != nil {
		if v, err := root.PersistentFlags().GetBool("verbose"); err == nil {
			return v
		}
	}
	return false
}
