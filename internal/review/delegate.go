package review

import (
	"context"
	"strings"
	"time"

	"github.com/dshills/empathic/internal/providers"
	"github.com/dshills/empathic/internal/redact"
)

// Defaults applied by NewDelegatingRewriter.
const (
	DefaultMaxTokens   = 700
	DefaultTemperature = 0.7
	DefaultCallTimeout = 60 * time.Second
)

// DelegateOptions configures a DelegatingRewriter.
type DelegateOptions struct {
	Model         string
	MaxTokens     int
	Temperature   float64
	Timeout       time.Duration
	Style         PromptStyle
	RedactSecrets bool
}

// DelegatingRewriter forwards each comment to a generative text service and
// embeds the answer verbatim.
type DelegatingRewriter struct {
	service  providers.Service
	setupErr error
	opts     DelegateOptions
}

// NewDelegatingRewriter creates a rewriter backed by svc. setupErr is the
// error from constructing svc, if any; when set, no calls are made and every
// rewrite carries it as a failure marker.
func NewDelegatingRewriter(svc providers.Service, setupErr error, opts DelegateOptions) *DelegatingRewriter {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultCallTimeout
	}
	if opts.Style == "" {
		opts.Style = PromptStructured
	}
	if svc == nil && setupErr == nil {
		setupErr = &providers.ConfigurationError{Provider: "none", Message: "no generative service configured"}
	}
	return &DelegatingRewriter{service: svc, setupErr: setupErr, opts: opts}
}

func (d *DelegatingRewriter) Name() string {
	if d.service == nil {
		return "llm"
	}
	return "llm:" + d.service.Name()
}

func (d *DelegatingRewriter) Rewrite(ctx context.Context, req RewriteRequest) RewriteResult {
	if d.setupErr != nil {
		return RewriteResult{Failure: FailureMarker(d.setupErr)}
	}

	code := req.Snippet.Code
	if d.opts.RedactSecrets {
		code = redact.Secrets(code)
	}

	ctx, cancel := context.WithTimeout(ctx, d.opts.Timeout)
	defer cancel()

	text, err := d.service.Generate(ctx, providers.GenerateRequest{
		Prompt:      BuildPrompt(d.opts.Style, req.Comment, code, req.Snippet.Language),
		Model:       d.opts.Model,
		MaxTokens:   d.opts.MaxTokens,
		Temperature: d.opts.Temperature,
	})
	if err != nil {
		return RewriteResult{Failure: FailureMarker(err)}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return RewriteResult{Failure: FailureMarker(&providers.ServiceError{
			Provider: d.service.Name(),
			Kind:     providers.KindMalformed,
			Message:  "empty response",
		})}
	}
	return RewriteResult{Freeform: text}
}

// FailureMarker renders an error as the inline Markdown marker shown in
// place of a rewrite.
func FailureMarker(err error) string {
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	msg = strings.ReplaceAll(msg, "_", "\\_")
	return "_LLM error: " + msg + "_"
}
