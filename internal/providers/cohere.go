package providers

import (
	"context"
	"net/http"
	"strings"
)

const defaultCohereURL = "https://api.cohere.com/v2/chat"

// Cohere implements Service for Cohere's chat API.
type Cohere struct {
	apiKey     string
	url        string
	maxRetries int
	client     *http.Client
}

// NewCohere creates a new Cohere provider.
func NewCohere(opts Options) (*Cohere, error) {
	if err := requireKey("cohere", opts); err != nil {
		return nil, err
	}
	url := opts.BaseURL
	if url == "" {
		url = defaultCohereURL
	}
	return &Cohere{
		apiKey:     opts.APIKey,
		url:        url,
		maxRetries: opts.MaxRetries,
		client:     newHTTPClient(opts),
	}, nil
}

func (c *Cohere) Name() string { return "cohere" }

func (c *Cohere) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	body := cohereRequest{
		Model:       req.Model,
		Messages:    []cohereMessage{{Role: "user", Content: req.Prompt}},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	headers := map[string]string{"Authorization": "Bearer " + c.apiKey}

	var text string
	err := retryWithBackoff(ctx, c.maxRetries, func() error {
		var result cohereResponse
		if err := postJSON(ctx, c.client, c.Name(), c.url, headers, body, &result); err != nil {
			return err
		}
		var b strings.Builder
		for _, block := range result.Message.Content {
			if block.Type == "text" {
				b.WriteString(block.Text)
			}
		}
		if b.Len() == 0 {
			return emptyResponse(c.Name(), "text content")
		}
		text = strings.TrimSpace(b.String())
		return nil
	})
	return text, err
}

type cohereRequest struct {
	Model       string          `json:"model"`
	Messages    []cohereMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Temperature float64         `json:"temperature"`
}

type cohereMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type cohereResponse struct {
	Message struct {
		Content []cohereBlock `json:"content"`
	} `json:"message"`
}

type cohereBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
