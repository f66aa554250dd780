package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/wikilex/wikilex/internal/config"
	"github.com/wikilex/wikilex/internal/database"
	"github.com/wikilex/wikilex/internal/log"
	"github.com/wikilex/wikilex/internal/model"
	"github.com/wikilex/wikilex/internal/pipeline"
	"github.com/wikilex/wikilex/internal/report"
	"github.com/wikilex/wikilex/internal/store"
	"github.com/wikilex/wikilex/internal/survey"
	"github.com/wikilex/wikilex/internal/vocab"
	"github.com/wikilex/wikilex/internal/wiki"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [topic...]",
		Short: "Crawl topic pages and count keyword matches",
		Long: `Scan crawls one encyclopedia page per topic plus every article it links to,
counts how often the built-in keyword vocabulary appears in the text, and
writes the word lists and counts to the data directory.

Topics given as arguments replace the configured topic list. Without
arguments the topics from the configuration file are used, falling back to
the built-in engineering disciplines.

Examples:
  # Survey the default engineering topics
  wikilex scan

  # Survey specific topics
  wikilex scan Naval_architecture Marine_engineering

  # Write a Markdown report next to the plain-text summary
  wikilex scan --markdown report.md

  # Use a custom configuration file
  wikilex scan -c mywikilex.yml

Configuration file (.wikilex.yml) example:
  base_url: https://en.wikipedia.org
  timeout: 60s
  topics:
    - Aerospace_engineering
    - Naval_architecture
  vocabulary:
    - radar
    - sonar`,
		Args: cobra.ArbitraryArgs,
		RunE: runScanCmd,
	}

	// Crawl behavior flags
	cmd.Flags().StringP("base-url", "u", config.DefaultBaseURL,
		"Site root to fetch articles from")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each page request")
	cmd.Flags().StringP("data-dir", "d", "",
		"Directory for data files and the run history database (default: XDG data directory)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .wikilex.yml in current or home directory)")

	// Report flags
	cmd.Flags().StringP("markdown", "m", "",
		"Also write a Markdown report to the given file")
	cmd.Flags().String("charts", "",
		"Also write an HTML chart report to the given file")
	cmd.Flags().StringP("output", "o", "",
		"Write the plain-text summary to the given file instead of stdout")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runScan(ctx, cmd, cfg, logger)
}

// buildConfig creates a Config from cobra command flags and the
// configuration file. Flags take precedence over file values.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	configFlag, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user explicitly named a config file, a missing file is an
	// error. Otherwise a missing file just means defaults.
	configPath := config.FindConfigFile(configFlag)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := file.ApplyTo(cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	} else if configFlag != "" {
		return nil, fmt.Errorf("configuration file not found: %s", configFlag)
	}

	if cmd.Flags().Changed("base-url") {
		if cfg.BaseURL, err = cmd.Flags().GetString("base-url"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("timeout") {
		if cfg.Timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("data-dir") {
		if cfg.DataDir, err = cmd.Flags().GetString("data-dir"); err != nil {
			return nil, err
		}
	}

	// Positional arguments override the configured topic list.
	if len(args) > 0 {
		cfg.Topics = args
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// runScan executes the survey pipeline and renders the reports.
func runScan(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting survey",
		"topics", cfg.Topics,
		"baseURL", cfg.BaseURL,
		"dataDir", cfg.DataDir,
	)

	db, err := database.Open(cfg.DataDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	client := &http.Client{Timeout: cfg.Timeout}
	fetcher := wiki.NewFetcher(client, cfg.BaseURL,
		wiki.WithUserAgent(cfg.UserAgent),
		wiki.WithMaxBodySize(cfg.MaxBodySize),
	)

	vocabulary := vocab.Default()
	if len(cfg.Vocabulary) > 0 {
		vocabulary = vocab.New(cfg.Vocabulary)
	}

	scanner := survey.NewScanner(fetcher, vocabulary, survey.WithLogger(logger))

	// A spinner keeps quiet runs from looking stuck. Verbose runs log to
	// stderr, so the spinner would mangle the output.
	var spin *spinner.Spinner
	onTopic := func(topic string) {
		fmt.Fprintf(os.Stderr, "Surveying %s...\n", topic)
	}
	if !cfg.Verbose {
		spin = spinner.New(spinner.CharSets[9], 100*time.Millisecond,
			spinner.WithWriter(os.Stderr))
		onTopic = func(topic string) {
			spin.Suffix = fmt.Sprintf(" surveying %s", topic)
		}
		spin.Start()
		defer spin.Stop()
	}

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddStep(&pipeline.CrawlStep{Scanner: scanner, OnTopic: onTopic})
	p.AddStep(&pipeline.SaveStep{Store: store.New(cfg.DataDir)})
	p.AddStep(&pipeline.HistoryStep{DB: db})

	run := model.NewRun(cfg.Topics)
	startTime := time.Now()

	if err := p.Execute(ctx, run); err != nil {
		return err
	}

	if spin != nil {
		spin.Stop()
	}
	fmt.Fprintf(os.Stderr, "Survey completed in %s (%d pages)\n\n",
		time.Since(startTime).Round(time.Millisecond), run.PagesScanned)

	return outputReports(cmd, run.Results)
}

// outputReports renders the plain-text summary plus any optional formats.
func outputReports(cmd *cobra.Command, results *model.Results) error {
	markdownPath, err := cmd.Flags().GetString("markdown")
	if err != nil {
		return err
	}
	chartsPath, err := cmd.Flags().GetString("charts")
	if err != nil {
		return err
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	summary := cmd.OutOrStdout()
	if outputPath != "" {
		f, err := createReportFile(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		summary = f
	}

	writers := []report.Writer{report.NewSimpleWriter(summary, report.WithMatchRate(true))}

	if markdownPath != "" {
		f, err := createReportFile(markdownPath)
		if err != nil {
			return err
		}
		defer f.Close()
		writers = append(writers, report.NewMarkdownWriter(f))
	}

	if chartsPath != "" {
		f, err := createReportFile(chartsPath)
		if err != nil {
			return err
		}
		defer f.Close()
		writers = append(writers, report.NewChartsWriter(f))
	}

	_, err = report.NewMultiWriter(writers...).Write(results)
	return err
}

// createReportFile creates a report file, making parent directories as needed.
func createReportFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}
