package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_KnownProviders(t *testing.T) {
	for _, name := range []string{"cohere", "openai", "anthropic", "gemini", "google"} {
		svc, err := New(name, Options{APIKey: "key"})
		require.NoError(t, err, name)
		assert.NotEmpty(t, svc.Name())
	}
	svc, err := New("lmstudio", Options{})
	require.NoError(t, err)
	assert.Equal(t, "ollama", svc.Name())
}

func TestNew_MissingCredential(t *testing.T) {
	for _, name := range []string{"cohere", "openai", "anthropic", "gemini"} {
		svc, err := New(name, Options{})
		assert.True(t, IsConfigurationError(err), "%s: %v", name, err)
		assert.Nil(t, svc, "%s: failed construction must return a nil Service", name)
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New("nope", Options{APIKey: "key"})
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.Contains(t, err.Error(), "unknown provider: nope")
}

func TestDefaultModel(t *testing.T) {
	assert.Equal(t, "command-r-plus", DefaultModel("cohere"))
	assert.Equal(t, "gemini-2.0-flash", DefaultModel("google"))
	assert.Empty(t, DefaultModel("nope"))
	for _, n := range Names() {
		assert.NotEmpty(t, DefaultModel(n), n)
	}
}

func TestPostJSON_StatusClassification(t *testing.T) {
	tests := []struct {
		status int
		kind   ErrorKind
	}{
		{http.StatusTooManyRequests, KindRateLimit},
		{http.StatusUnauthorized, KindAuth},
		{http.StatusForbidden, KindAuth},
		{http.StatusBadGateway, KindServer},
		{http.StatusBadRequest, KindAPI},
	}
	for _, tt := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			w.Write([]byte("boom"))
		}))
		var out map[string]any
		err := postJSON(context.Background(), server.Client(), "test", server.URL, nil, map[string]string{}, &out)
		server.Close()

		var se *ServiceError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, tt.kind, se.Kind, "status %d", tt.status)
		assert.Equal(t, tt.status, se.StatusCode)
		assert.Equal(t, "boom", se.Message)
	}
}

func TestPostJSON_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	var out map[string]any
	err := postJSON(context.Background(), server.Client(), "test", server.URL, nil, map[string]string{}, &out)
	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, KindMalformed, se.Kind)
}

func TestPostJSON_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	var out map[string]any
	err := postJSON(context.Background(), http.DefaultClient, "test", url, nil, map[string]string{}, &out)
	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, KindTransport, se.Kind)
}

func TestErrorMessages(t *testing.T) {
	se := &ServiceError{Provider: "cohere", Kind: KindAuth, StatusCode: 401, Message: "bad key"}
	assert.Equal(t, "cohere auth error (status 401): bad key", se.Error())

	wrapped := &ServiceError{Provider: "openai", Kind: KindTransport, Message: "sending request", Err: errors.New("dial tcp")}
	assert.Equal(t, "openai transport error: sending request: dial tcp", wrapped.Error())

	ce := &ConfigurationError{Provider: "cohere", Message: "API key is not set"}
	assert.Equal(t, "cohere configuration error: API key is not set", ce.Error())
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, isRetryable(&ServiceError{Kind: KindAuth}))
	assert.True(t, isRetryable(&ServiceError{Kind: KindRateLimit}))
	assert.True(t, isRetryable(&ServiceError{Kind: KindServer}))
	assert.False(t, isRetryable(&ServiceError{Kind: KindMalformed}))
	assert.False(t, isRetryable(context.Canceled))
}

func TestRetryWithBackoff_SingleAttemptByDefault(t *testing.T) {
	attempts := 0
	err := retryWithBackoff(context.Background(), 0, func() error {
		attempts++
		return &ServiceError{Kind: KindRateLimit}
	})
	assert.Equal(t, 1, attempts)
	assert.Error(t, err)
}

func TestRetryWithBackoff_RetriesRateLimit(t *testing.T) {
	orig := retryBase
	retryBase = time.Millisecond
	defer func() { retryBase = orig }()

	attempts := 0
	err := retryWithBackoff(context.Background(), 2, func() error {
		attempts++
		if attempts < 3 {
			return &ServiceError{Kind: KindRateLimit}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryWithBackoff_NonRetryable(t *testing.T) {
	attempts := 0
	err := retryWithBackoff(context.Background(), 3, func() error {
		attempts++
		return &ServiceError{Kind: KindAuth, Message: "bad"}
	})
	assert.Equal(t, 1, attempts, "auth errors are not retried")
	assert.True(t, IsAuthError(err))
}

func TestRetryWithBackoff_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	err := retryWithBackoff(ctx, 3, func() error {
		return &ServiceError{Kind: KindRateLimit}
	})
	assert.ErrorIs(t, err, context.Canceled)
}
