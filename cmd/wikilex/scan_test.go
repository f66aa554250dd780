package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wikilex/wikilex/internal/config"
)

// TestNewScanCmd tests the scan command creation.
func TestNewScanCmd(t *testing.T) {
	t.Parallel()

	cmd := NewScanCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "scan [topic...]" {
			t.Errorf("expected use 'scan [topic...]', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has long description", func(t *testing.T) {
		t.Parallel()
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("has base-url flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("base-url")
		if flag == nil {
			t.Fatal("expected base-url flag")
		}
		if flag.Shorthand != "u" {
			t.Errorf("expected shorthand 'u', got %q", flag.Shorthand)
		}
		if flag.DefValue != config.DefaultBaseURL {
			t.Errorf("expected default %q, got %q", config.DefaultBaseURL, flag.DefValue)
		}
	})

	t.Run("has timeout flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("timeout")
		if flag == nil {
			t.Fatal("expected timeout flag")
		}
		if flag.Shorthand != "t" {
			t.Errorf("expected shorthand 't', got %q", flag.Shorthand)
		}
	})

	t.Run("has data-dir flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("data-dir")
		if flag == nil {
			t.Fatal("expected data-dir flag")
		}
		if flag.Shorthand != "d" {
			t.Errorf("expected shorthand 'd', got %q", flag.Shorthand)
		}
	})

	t.Run("has config flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("config")
		if flag == nil {
			t.Fatal("expected config flag")
		}
		if flag.Shorthand != "c" {
			t.Errorf("expected shorthand 'c', got %q", flag.Shorthand)
		}
	})

	t.Run("has report flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"markdown", "charts", "output"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %s flag", name)
			}
		}
	})
}

// TestGetVerboseFlag tests the verbose flag retrieval.
func TestGetVerboseFlag(t *testing.T) {
	t.Run("returns false when flag not set", func(t *testing.T) {
		cmd := NewScanCmd()
		if getVerboseFlag(cmd) {
			t.Error("expected false when flag not set")
		}
	})

	t.Run("returns value from parent verbose flag", func(t *testing.T) {
		root := NewRootCmd()
		_ = root.PersistentFlags().Set("verbose", "true")

		scanCmd, _, err := root.Find([]string{"scan"})
		if err != nil {
			t.Fatalf("failed to find scan command: %v", err)
		}

		if !getVerboseFlag(scanCmd) {
			t.Error("expected true from parent verbose flag")
		}
	})
}

// TestBuildConfig tests configuration building from flags.
func TestBuildConfig(t *testing.T) {
	// Keep the working directory free of stray config files.
	t.Chdir(t.TempDir())

	t.Run("builds config with default values", func(t *testing.T) {
		cmd := NewScanCmd()
		cfg, err := buildConfig(cmd, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg == nil {
			t.Fatal("expected non-nil config")
		}
		if cfg.BaseURL != config.DefaultBaseURL {
			t.Errorf("expected base URL %q, got %q", config.DefaultBaseURL, cfg.BaseURL)
		}
		if cfg.Timeout != config.DefaultTimeout {
			t.Errorf("expected timeout %v, got %v", config.DefaultTimeout, cfg.Timeout)
		}
		if len(cfg.Topics) == 0 {
			t.Error("expected default topics")
		}
	})

	t.Run("positional arguments override topics", func(t *testing.T) {
		cmd := NewScanCmd()
		cfg, err := buildConfig(cmd, []string{"Naval_architecture", "Marine_engineering"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"Naval_architecture", "Marine_engineering"}
		if len(cfg.Topics) != len(want) {
			t.Fatalf("expected %d topics, got %d", len(want), len(cfg.Topics))
		}
		for i, topic := range want {
			if cfg.Topics[i] != topic {
				t.Errorf("topic %d: expected %q, got %q", i, topic, cfg.Topics[i])
			}
		}
	})

	t.Run("flags override defaults", func(t *testing.T) {
		cmd := NewScanCmd()
		_ = cmd.Flags().Set("base-url", "https://simple.wikipedia.org")
		_ = cmd.Flags().Set("timeout", "10s")
		_ = cmd.Flags().Set("data-dir", "/tmp/wikilex-test")

		cfg, err := buildConfig(cmd, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.BaseURL != "https://simple.wikipedia.org" {
			t.Errorf("expected overridden base URL, got %q", cfg.BaseURL)
		}
		if cfg.Timeout != 10*time.Second {
			t.Errorf("expected 10s timeout, got %v", cfg.Timeout)
		}
		if cfg.DataDir != "/tmp/wikilex-test" {
			t.Errorf("expected overridden data dir, got %q", cfg.DataDir)
		}
	})

	t.Run("loads values from config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "wikilex.yml")
		content := []byte(`base_url: https://de.wikipedia.org
timeout: 30s
topics:
  - Maschinenbau
vocabulary:
  - panzer
`)
		if err := os.WriteFile(configPath, content, 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cmd := NewScanCmd()
		_ = cmd.Flags().Set("config", configPath)

		cfg, err := buildConfig(cmd, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.BaseURL != "https://de.wikipedia.org" {
			t.Errorf("expected config file base URL, got %q", cfg.BaseURL)
		}
		if cfg.Timeout != 30*time.Second {
			t.Errorf("expected 30s timeout, got %v", cfg.Timeout)
		}
		if len(cfg.Topics) != 1 || cfg.Topics[0] != "Maschinenbau" {
			t.Errorf("expected config file topics, got %v", cfg.Topics)
		}
		if len(cfg.Vocabulary) != 1 || cfg.Vocabulary[0] != "panzer" {
			t.Errorf("expected config file vocabulary, got %v", cfg.Vocabulary)
		}
	})

	t.Run("flags take precedence over config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "wikilex.yml")
		content := []byte("base_url: https://de.wikipedia.org\n")
		if err := os.WriteFile(configPath, content, 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cmd := NewScanCmd()
		_ = cmd.Flags().Set("config", configPath)
		_ = cmd.Flags().Set("base-url", "https://fr.wikipedia.org")

		cfg, err := buildConfig(cmd, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.BaseURL != "https://fr.wikipedia.org" {
			t.Errorf("expected flag to win over config file, got %q", cfg.BaseURL)
		}
	})

	t.Run("errors on missing explicit config file", func(t *testing.T) {
		cmd := NewScanCmd()
		_ = cmd.Flags().Set("config", filepath.Join(t.TempDir(), "nope.yml"))

		if _, err := buildConfig(cmd, nil); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}
