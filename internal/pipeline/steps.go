package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/wikilex/wikilex/internal/database"
	"github.com/wikilex/wikilex/internal/model"
	"github.com/wikilex/wikilex/internal/store"
	"github.com/wikilex/wikilex/internal/survey"
)

// CrawlStep surveys every topic of the run, one topic at a time, and fills
// in the run's results. Topic progress is reported through the optional
// OnTopic callback so the CLI can show progress without the step knowing
// about terminals.
type CrawlStep struct {
	// Scanner performs the per-topic traversal.
	Scanner *survey.Scanner

	// OnTopic, if set, is called with each topic just before it is crawled.
	OnTopic func(topic string)
}

// Name returns the step name.
func (s *CrawlStep) Name() string {
	return "crawl"
}

// Do crawls the run's topics sequentially, summing each topic's seed page
// and one hop of subpages into its aggregate.
func (s *CrawlStep) Do(ctx context.Context, run *model.Run) error {
	for _, topic := range run.Topics {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("crawl interrupted: %w", err)
		}
		if s.OnTopic != nil {
			s.OnTopic(topic)
		}

		agg, pages := s.Scanner.ScanTopic(ctx, topic)
		run.Results.Set(topic, agg)
		run.PagesScanned += pages
	}
	run.FinishedAt = time.Now()
	return nil
}

// SaveStep persists the run's results as the four flat data files.
type SaveStep struct {
	// Store writes the data files.
	Store *store.Store
}

// Name returns the step name.
func (s *SaveStep) Name() string {
	return "save"
}

// Do writes the four data files.
func (s *SaveStep) Do(_ context.Context, run *model.Run) error {
	return s.Store.Save(run.Results)
}

// HistoryStep records the completed run in the survey database.
type HistoryStep struct {
	// DB is the run-history database.
	DB *database.SurveyDB
}

// Name returns the step name.
func (s *HistoryStep) Name() string {
	return "history"
}

// Do inserts the run and its per-topic counts.
func (s *HistoryStep) Do(ctx context.Context, run *model.Run) error {
	_, err := s.DB.RecordRun(ctx, run)
	return err
}
