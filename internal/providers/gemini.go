package providers

import (
	"context"
	"errors"
	"math"
	"strings"

	"google.golang.org/genai"
)

// Gemini implements Service with the Google GenAI SDK.
type Gemini struct {
	client     *genai.Client
	maxRetries int
}

// NewGemini creates a new Gemini provider.
func NewGemini(opts Options) (*Gemini, error) {
	if err := requireKey("gemini", opts); err != nil {
		return nil, err
	}
	cc := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: newHTTPClient(opts),
	}
	if opts.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}
	client, err := genai.NewClient(context.Background(), cc)
	if err != nil {
		return nil, &ConfigurationError{Provider: "gemini", Message: "creating client: " + err.Error()}
	}
	return &Gemini{client: client, maxRetries: opts.MaxRetries}, nil
}

func (g *Gemini) Name() string { return "gemini" }

func (g *Gemini) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: clampInt32(req.MaxTokens),
		Temperature:     genai.Ptr(float32(req.Temperature)),
	}

	var text string
	err := retryWithBackoff(ctx, g.maxRetries, func() error {
		resp, err := g.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), cfg)
		if err != nil {
			return classifyGenAIError(err)
		}
		out := strings.TrimSpace(resp.Text())
		if out == "" {
			return emptyResponse(g.Name(), "text content")
		}
		text = out
		return nil
	})
	return text, err
}

func clampInt32(n int) int32 {
	switch {
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < 0:
		return 0
	default:
		return int32(n)
	}
}

func classifyGenAIError(err error) error {
	se := &ServiceError{Provider: "gemini", Kind: KindTransport, Err: err}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		se.StatusCode = apiErr.Code
		se.Message = apiErr.Message
		se.Err = nil
		switch {
		case apiErr.Code == 429:
			se.Kind = KindRateLimit
		case apiErr.Code == 401 || apiErr.Code == 403:
			se.Kind = KindAuth
		case apiErr.Code >= 500:
			se.Kind = KindServer
		default:
			se.Kind = KindAPI
		}
	}
	return se
}
