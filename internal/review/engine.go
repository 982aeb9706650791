package review

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency limits parallel rewrites within one report.
const DefaultConcurrency = 4

// Engine runs the review pipeline for one snippet and its comments.
type Engine struct {
	rewriter    Rewriter
	concurrency int
	logger      *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithConcurrency sets how many comments are rewritten at once. Values
// below one mean sequential.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.concurrency = n
	}
}

// WithLogger sets the engine's logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine that rewrites comments with rw.
func NewEngine(rw Rewriter, opts ...Option) *Engine {
	e := &Engine{
		rewriter:    rw,
		concurrency: DefaultConcurrency,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run builds the report. Comments may be processed concurrently, but the
// report lists them in input order, one entry per comment. A failed rewrite
// is recorded on its entry and does not stop the others.
func (e *Engine) Run(ctx context.Context, snippet Snippet, comments []Comment) *Report {
	start := time.Now()
	log := e.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("strategy", e.rewriter.Name()),
	)
	log.Debug("review started",
		zap.String("language", string(snippet.Language)),
		zap.Int("comments", len(comments)))

	positives := ExtractPositiveFeatures(snippet.Code)
	reviews := make([]CommentReview, len(comments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, c := range comments {
		g.Go(func() error {
			ref := FindLineReference(c.Text, snippet.Code)
			rw := e.rewriter.Rewrite(gctx, RewriteRequest{Comment: c, Snippet: snippet})
			if rw.Failed() {
				log.Warn("rewrite failed", zap.Int("index", i), zap.String("failure", rw.Failure))
			}
			reviews[i] = CommentReview{Comment: c, LineRef: ref, Rewrite: rw}
			return nil
		})
	}
	_ = g.Wait() // workers never return an error

	severities := make([]Severity, len(comments))
	for i, c := range comments {
		severities[i] = c.Severity
	}

	report := &Report{
		Snippet:   snippet,
		Positives: positives,
		Comments:  reviews,
		Summary:   Summarize(severities, positives, snippet.Language),
		Strategy:  e.rewriter.Name(),
	}
	log.Info("review complete",
		zap.Int("comments", len(reviews)),
		zap.Int("failures", countFailures(reviews)),
		zap.Duration("elapsed", time.Since(start)))
	return report
}

func countFailures(reviews []CommentReview) int {
	n := 0
	for _, r := range reviews {
		if r.Rewrite.Failed() {
			n++
		}
	}
	return n
}
