package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCohere_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Error("Missing bearer token")
		}
		var body cohereRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if body.Model != "command-r-plus" {
			t.Errorf("Model = %q", body.Model)
		}
		if body.MaxTokens != 700 || body.Temperature != 0.7 {
			t.Errorf("MaxTokens/Temperature = %d/%v, want 700/0.7", body.MaxTokens, body.Temperature)
		}
		if len(body.Messages) != 1 || body.Messages[0].Content != "review this" {
			t.Errorf("Messages = %+v", body.Messages)
		}
		w.Write([]byte(`{"message":{"content":[{"type":"text","text":"  - **Positive Rephrasing**: nice  "}]}}`))
	}))
	defer server.Close()

	c, err := NewCohere(Options{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewCohere: %v", err)
	}
	got, err := c.Generate(context.Background(), GenerateRequest{
		Prompt:      "review this",
		Model:       "command-r-plus",
		MaxTokens:   700,
		Temperature: 0.7,
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if got != "- **Positive Rephrasing**: nice" {
		t.Errorf("Generate = %q", got)
	}
}

func TestCohere_MissingKey(t *testing.T) {
	_, err := NewCohere(Options{})
	if !IsConfigurationError(err) {
		t.Fatalf("Expected configuration error, got: %v", err)
	}
}

func TestCohere_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":{"content":[]}}`))
	}))
	defer server.Close()

	c, _ := NewCohere(Options{APIKey: "k", BaseURL: server.URL})
	_, err := c.Generate(context.Background(), GenerateRequest{Prompt: "p"})
	se, ok := err.(*ServiceError)
	if !ok {
		t.Fatalf("Expected *ServiceError, got %T", err)
	}
	if se.Kind != KindMalformed {
		t.Errorf("Kind = %s, want %s", se.Kind, KindMalformed)
	}
}
