package pipeline

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wikilex/wikilex/internal/database"
	"github.com/wikilex/wikilex/internal/model"
	"github.com/wikilex/wikilex/internal/store"
	"github.com/wikilex/wikilex/internal/survey"
	"github.com/wikilex/wikilex/internal/vocab"
	"github.com/wikilex/wikilex/internal/wiki"
)

// TestPipelineEndToEnd drives crawl, save, and history steps against a
// local test site and verifies the persisted output.
func TestPipelineEndToEnd(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/wiki/Artillery_history", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>Artillery shaped every war.[2]</p></body></html>`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	logger := slog.New(slog.DiscardHandler)
	fetcher := wiki.NewFetcher(server.Client(), server.URL)
	scanner := survey.NewScanner(fetcher, vocab.New([]string{"artillery", "war"}), survey.WithLogger(logger))

	dataDir := t.TempDir()
	st := store.New(dataDir)
	db, err := database.Open(dataDir, database.DefaultOptions())
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	var seen []string
	p := New(WithLogger(logger))
	p.AddStep(&CrawlStep{Scanner: scanner, OnTopic: func(topic string) { seen = append(seen, topic) }})
	p.AddStep(&SaveStep{Store: st})
	p.AddStep(&HistoryStep{DB: db})

	run := model.NewRun([]string{"Artillery_history"})
	if err := p.Execute(context.Background(), run); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(seen) != 1 || seen[0] != "Artillery_history" {
		t.Errorf("unexpected progress callbacks: %v", seen)
	}
	if run.FinishedAt.IsZero() {
		t.Error("expected FinishedAt to be set")
	}
	if run.PagesScanned != 1 {
		t.Errorf("PagesScanned = %d, want 1", run.PagesScanned)
	}

	agg, ok := run.Results.Get("Artillery_history")
	if !ok {
		t.Fatal("expected a result for the topic")
	}
	if agg.MatchCount != 2 {
		t.Errorf("MatchCount = %d, want 2", agg.MatchCount)
	}

	// The saved files round-trip to the in-memory results.
	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !loaded.Equal(run.Results) {
		t.Errorf("persisted results differ:\ngot  %+v\nwant %+v", loaded, run.Results)
	}

	// The run landed in history.
	runs, err := db.ListRuns(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 1 || runs[0].TopicCount != 1 {
		t.Errorf("unexpected history: %+v", runs)
	}
}
