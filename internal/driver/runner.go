package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/joeycumines/behaviorkit/internal/behavior"
	bt "github.com/joeycumines/go-behaviortree"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name of the default tracer.
const TracerName = "github.com/joeycumines/behaviorkit/internal/driver"

// Run outcomes, as reported in logs, metrics and spans.
const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeCancelled = "cancelled"
	OutcomeExhausted = "exhausted"
)

var (
	// ErrFinished is returned by Step once the root has stopped.
	ErrFinished = errors.New("driver: run already finished")

	// ErrMaxTicks is returned by the tick that spent the tick budget while the
	// root was still running. The root is cancelled before it is returned.
	ErrMaxTicks = errors.New("driver: tick budget exhausted")

	// errDone stops the Ticker once the root reports a terminal status.
	errDone = errors.New("driver: root stopped")
)

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithTracer sets the tracer. The default comes from the global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Runner) {
		if tracer != nil {
			r.tracer = tracer
		}
	}
}

// WithRunID sets the run ID. The default is a random UUID.
func WithRunID(id string) Option {
	return func(r *Runner) {
		if id != "" {
			r.id = id
		}
	}
}

// WithMaxTicks caps the number of ticks; zero means no limit.
func WithMaxTicks(n int) Option {
	return func(r *Runner) { r.maxTicks = max(n, 0) }
}

// Runner drives a single root node.
type Runner struct {
	root     behavior.Node
	id       string
	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
	maxTicks int

	mu      sync.Mutex
	ticks   int
	span    trace.Span
	outcome string
}

// New returns a Runner for root, which must not have been updated yet.
func New(root behavior.Node, opts ...Option) (*Runner, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: driver: root must not be nil", behavior.ErrInvalidArgument)
	}
	if root.State() != behavior.NotStarted {
		return nil, fmt.Errorf("%w: driver: root is %s", behavior.ErrInvalidArgument, root.State())
	}
	r := &Runner{
		root:   root,
		id:     uuid.NewString(),
		logger: slog.New(slog.DiscardHandler),
		tracer: otel.Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("run_id", r.id)
	return r, nil
}

// ID returns the run ID.
func (r *Runner) ID() string { return r.id }

// Ticks returns the number of completed ticks.
func (r *Runner) Ticks() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ticks
}

// Outcome returns the run outcome, or "" while the run is in progress.
func (r *Runner) Outcome() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcome
}

// Step performs exactly one tick. It returns ErrFinished, without ticking,
// once the root has stopped, and ctx.Err() if ctx is already done.
func (r *Runner) Step(ctx context.Context) (behavior.Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.root.Stopped() {
		return r.root.Status(), ErrFinished
	}
	if err := ctx.Err(); err != nil {
		return r.root.Status(), err
	}

	if r.ticks == 0 {
		_, r.span = r.tracer.Start(ctx, "run:"+r.id, trace.WithAttributes(
			attribute.String("behaviorkit.run_id", r.id),
		))
		r.logger.Info("run started", "max_ticks", r.maxTicks)
	}

	start := time.Now()
	status := r.root.Update()
	elapsed := time.Since(start)
	r.ticks++

	if r.metrics != nil {
		r.metrics.Ticks.WithLabelValues(status.String()).Inc()
		r.metrics.TickDuration.Observe(elapsed.Seconds())
	}
	r.span.AddEvent("tick", trace.WithAttributes(
		attribute.Int("behaviorkit.tick", r.ticks),
		attribute.String("behaviorkit.status", status.String()),
	))
	r.logger.Debug("tick", "tick", r.ticks, "status", status, "elapsed", elapsed)

	switch {
	case status == behavior.Success:
		r.finish(OutcomeSuccess)
	case status == behavior.Failure:
		r.finish(OutcomeFailure)
	case r.maxTicks > 0 && r.ticks >= r.maxTicks:
		r.root.Cancel()
		r.finish(OutcomeExhausted)
		return status, ErrMaxTicks
	}
	return status, nil
}

// Cancel aborts the run if the root has not stopped, and reports whether it
// did so.
func (r *Runner) Cancel() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.root.Stopped() {
		return false
	}
	r.root.Cancel()
	r.finish(OutcomeCancelled)
	return true
}

// Run ticks the root every interval until it stops, and returns its final
// status. If ctx is done first, the root is cancelled and ctx's error is
// returned together with the root's last status. A concurrent Cancel also
// ends the run, with context.Canceled.
func (r *Runner) Run(ctx context.Context, interval time.Duration) (behavior.Status, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("%w: driver: interval must be positive, got %s", behavior.ErrInvalidArgument, interval)
	}

	ticker := bt.NewTicker(ctx, interval, bt.New(func([]bt.Node) (bt.Status, error) {
		status, err := r.Step(ctx)
		if err != nil {
			return bt.Failure, err
		}
		if status.Terminal() {
			return bt.Success, errDone
		}
		return bt.Running, nil
	}))
	defer ticker.Stop()
	<-ticker.Done()

	// the ticker goroutine has exited, so nothing else touches the root
	err := ticker.Err()
	switch {
	case errors.Is(err, errDone):
		return r.root.Status(), nil
	case errors.Is(err, ErrMaxTicks):
		return r.root.Status(), err
	case errors.Is(err, ErrFinished) && r.Outcome() == OutcomeCancelled:
		return r.root.Status(), context.Canceled
	}
	r.Cancel()
	if ctxErr := ctx.Err(); ctxErr != nil {
		err = ctxErr
	} else if err == nil {
		err = context.Canceled
	}
	return r.root.Status(), err
}

// finish records the outcome. Callers must hold r.mu.
func (r *Runner) finish(outcome string) {
	r.outcome = outcome
	if r.metrics != nil {
		r.metrics.Runs.WithLabelValues(outcome).Inc()
	}
	if r.span != nil {
		r.span.SetAttributes(
			attribute.String("behaviorkit.outcome", outcome),
			attribute.Int("behaviorkit.ticks", r.ticks),
		)
		switch outcome {
		case OutcomeSuccess:
			r.span.SetStatus(codes.Ok, "")
		default:
			r.span.SetStatus(codes.Error, outcome)
		}
		r.span.End()
		r.span = nil
	}
	level := slog.LevelInfo
	if outcome != OutcomeSuccess {
		level = slog.LevelWarn
	}
	r.logger.Log(context.Background(), level, "run finished", "outcome", outcome, "ticks", r.ticks)
}
