package providers

import "strings"

const defaultOllamaURL = "http://localhost:11434"

// NewOllama creates a provider for Ollama or LM Studio, both of which speak
// the OpenAI chat completions API. No API key is required.
func NewOllama(opts Options) (*OpenAI, error) {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}

	// Normalize URL: strip trailing /, /v1, /v1/chat/completions
	baseURL = strings.TrimRight(baseURL, "/")
	baseURL = strings.TrimSuffix(baseURL, "/v1/chat/completions")
	baseURL = strings.TrimSuffix(baseURL, "/v1")

	return &OpenAI{
		name:       "ollama",
		apiKey:     opts.APIKey,
		url:        baseURL + "/v1/chat/completions",
		maxRetries: opts.MaxRetries,
		client:     newHTTPClient(opts),
	}, nil
}
