package providers

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGemini_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "gemini-2.0-flash:generateContent"), "path %s", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"gentle rewrite"}]}}]}`))
	}))
	defer server.Close()

	g, err := NewGemini(Options{APIKey: "test-key", BaseURL: server.URL + "/"})
	require.NoError(t, err)

	got, err := g.Generate(context.Background(), GenerateRequest{Prompt: "p", Model: "gemini-2.0-flash", MaxTokens: 700, Temperature: 0.7})
	require.NoError(t, err)
	assert.Equal(t, "gentle rewrite", got)
}

func TestGemini_MissingKey(t *testing.T) {
	_, err := NewGemini(Options{})
	assert.True(t, IsConfigurationError(err))
}

func TestGemini_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	}))
	defer server.Close()

	g, err := NewGemini(Options{APIKey: "bad", BaseURL: server.URL + "/"})
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), GenerateRequest{Prompt: "p", Model: "gemini-2.0-flash"})
	require.Error(t, err)
	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "gemini", se.Provider)
}

func TestClampInt32(t *testing.T) {
	assert.Equal(t, int32(700), clampInt32(700))
	assert.Equal(t, int32(0), clampInt32(-5))
	assert.Equal(t, int32(math.MaxInt32), clampInt32(math.MaxInt32))
	assert.Equal(t, int32(math.MaxInt32), clampInt32(int(math.MaxInt32)+1))
}
