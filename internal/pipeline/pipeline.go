package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wikilex/wikilex/internal/model"
)

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, each receiving the run state accumulated
// by the previous steps.
//
// Design decision: We use an interface rather than function types because:
//  1. It allows steps to carry configuration state
//  2. It provides a Name() method for logging and debugging
//  3. New stages (extra outputs, notifications) slot in without touching
//     the runner
type Step interface {
	// Do executes the pipeline step, mutating the run state.
	Do(ctx context.Context, run *model.Run) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline executes steps in order against a shared run state.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// continueOnError determines whether to continue executing steps
	// after one fails. If false, the pipeline stops on first error.
	continueOnError bool
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError configures the pipeline to keep executing steps even
// when one fails. The default is to stop, because a failed crawl step
// leaves nothing worth persisting or recording.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// Execute runs every step in order against the run state. With
// continueOnError set, step failures are logged and execution proceeds;
// the first error is still returned after all steps finish.
func (p *Pipeline) Execute(ctx context.Context, run *model.Run) error {
	var firstErr error
	for _, step := range p.steps {
		p.logger.Debug("executing pipeline step", "step", step.Name())

		if err := step.Do(ctx, run); err != nil {
			err = fmt.Errorf("step %s: %w", step.Name(), err)
			if !p.continueOnError {
				return err
			}
			p.logger.Warn("pipeline step failed, continuing", "step", step.Name(), "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
