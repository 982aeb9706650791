package review

import (
	"context"
	"strings"
	"sync"

	"github.com/dshills/empathic/internal/providers"
)

// fakeService answers prompts from a function and records every request.
type fakeService struct {
	mu       sync.Mutex
	requests []providers.GenerateRequest
	answer   func(ctx context.Context, req providers.GenerateRequest) (string, error)
}

func (f *fakeService) Name() string { return "fake" }

func (f *fakeService) Generate(ctx context.Context, req providers.GenerateRequest) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.answer(ctx, req)
}

func (f *fakeService) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// failOn returns a service that fails for prompts containing marker.
func failOn(marker string) *fakeService {
	return &fakeService{answer: func(_ context.Context, req providers.GenerateRequest) (string, error) {
		if strings.Contains(req.Prompt, marker) {
			return "", &providers.ServiceError{Provider: "fake", Kind: providers.KindRateLimit, StatusCode: 429, Message: "quota exceeded"}
		}
		return "- **Positive Rephrasing**: rewritten", nil
	}}
}
