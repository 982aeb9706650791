package providers

import (
	"context"
	"net/http"
	"strings"
)

const defaultOpenAIURL = "https://api.openai.com/v1/chat/completions"

// OpenAI implements Service for OpenAI's chat completions API.
type OpenAI struct {
	name       string
	apiKey     string
	url        string
	maxRetries int
	client     *http.Client
}

// NewOpenAI creates a new OpenAI provider.
func NewOpenAI(opts Options) (*OpenAI, error) {
	if err := requireKey("openai", opts); err != nil {
		return nil, err
	}
	url := opts.BaseURL
	if url == "" {
		url = defaultOpenAIURL
	}
	return &OpenAI{
		name:       "openai",
		apiKey:     opts.APIKey,
		url:        url,
		maxRetries: opts.MaxRetries,
		client:     newHTTPClient(opts),
	}, nil
}

func (o *OpenAI) Name() string { return o.name }

func (o *OpenAI) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	body := openaiRequest{
		Model:       req.Model,
		Messages:    []openaiMessage{{Role: "user", Content: req.Prompt}},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	headers := map[string]string{}
	if o.apiKey != "" {
		headers["Authorization"] = "Bearer " + o.apiKey
	}

	var text string
	err := retryWithBackoff(ctx, o.maxRetries, func() error {
		var result openaiResponse
		if err := postJSON(ctx, o.client, o.name, o.url, headers, body, &result); err != nil {
			return err
		}
		if len(result.Choices) == 0 {
			return emptyResponse(o.name, "choices")
		}
		if result.Choices[0].Message.Content == "" {
			return emptyResponse(o.name, "text content")
		}
		text = strings.TrimSpace(result.Choices[0].Message.Content)
		return nil
	})
	return text, err
}

type openaiRequest struct {
	Model       string          `json:"model"`
	Messages    []openaiMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Temperature float64         `json:"temperature"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiResponse struct {
	Choices []openaiChoice `json:"choices"`
}

type openaiChoice struct {
	Message openaiMessage `json:"message"`
}
