package providers

import (
	"context"
	"net/http"
	"strings"
)

const (
	defaultAnthropicURL = "https://api.anthropic.com/v1/messages"
	anthropicAPIVersion = "2023-06-01"
)

// Anthropic implements Service for Anthropic's messages API.
type Anthropic struct {
	apiKey     string
	url        string
	maxRetries int
	client     *http.Client
}

// NewAnthropic creates a new Anthropic provider.
func NewAnthropic(opts Options) (*Anthropic, error) {
	if err := requireKey("anthropic", opts); err != nil {
		return nil, err
	}
	url := opts.BaseURL
	if url == "" {
		url = defaultAnthropicURL
	}
	return &Anthropic{
		apiKey:     opts.APIKey,
		url:        url,
		maxRetries: opts.MaxRetries,
		client:     newHTTPClient(opts),
	}, nil
}

func (a *Anthropic) Name() string { return "anthropic" }

func (a *Anthropic) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	body := anthropicRequest{
		Model:       req.Model,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		Messages:    []anthropicMessage{{Role: "user", Content: req.Prompt}},
	}
	if body.MaxTokens == 0 {
		body.MaxTokens = 1024
	}
	headers := map[string]string{
		"x-api-key":         a.apiKey,
		"anthropic-version": anthropicAPIVersion,
	}

	var text string
	err := retryWithBackoff(ctx, a.maxRetries, func() error {
		var result anthropicResponse
		if err := postJSON(ctx, a.client, a.Name(), a.url, headers, body, &result); err != nil {
			return err
		}
		var b strings.Builder
		for _, block := range result.Content {
			if block.Type == "text" {
				b.WriteString(block.Text)
			}
		}
		if b.Len() == 0 {
			return emptyResponse(a.Name(), "text content")
		}
		text = strings.TrimSpace(b.String())
		return nil
	})
	return text, err
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []anthropicBlock `json:"content"`
}

type anthropicBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
