package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// GenerateRequest is a single prompt sent to a generative text service.
type GenerateRequest struct {
	Prompt      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// Service is a generative text backend. Generate returns the model's text
// or a *ServiceError.
type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	Name() string
}

// Options configures a backend. APIKey is resolved by the caller; providers
// never read the environment.
type Options struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

const defaultTimeout = 60 * time.Second

// DefaultModel returns the model used when none is configured.
func DefaultModel(provider string) string {
	switch normalize(provider) {
	case "cohere":
		return "command-r-plus"
	case "openai":
		return "gpt-4o-mini"
	case "anthropic":
		return "claude-sonnet-4-20250514"
	case "gemini":
		return "gemini-2.0-flash"
	case "ollama":
		return "llama3.1"
	default:
		return ""
	}
}

// Names lists the supported provider names.
func Names() []string {
	return []string{"cohere", "openai", "anthropic", "gemini", "ollama"}
}

// New creates a provider by name. A missing credential is reported as a
// *ConfigurationError.
func New(provider string, opts Options) (Service, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	var (
		svc Service
		err error
	)
	switch normalize(provider) {
	case "cohere":
		svc, err = NewCohere(opts)
	case "openai":
		svc, err = NewOpenAI(opts)
	case "anthropic":
		svc, err = NewAnthropic(opts)
	case "gemini":
		svc, err = NewGemini(opts)
	case "ollama":
		svc, err = NewOllama(opts)
	default:
		return nil, &ConfigurationError{Provider: provider, Message: fmt.Sprintf("unknown provider: %s", provider)}
	}
	if err != nil {
		// A typed nil pointer would make the interface non-nil.
		return nil, err
	}
	return svc, nil
}

func normalize(provider string) string {
	switch p := strings.ToLower(strings.TrimSpace(provider)); p {
	case "google":
		return "gemini"
	case "lmstudio":
		return "ollama"
	default:
		return p
	}
}

func requireKey(provider string, opts Options) error {
	if opts.APIKey == "" {
		return &ConfigurationError{Provider: provider, Message: "API key is not set"}
	}
	return nil
}

func newHTTPClient(opts Options) *http.Client {
	return &http.Client{Timeout: opts.Timeout}
}
