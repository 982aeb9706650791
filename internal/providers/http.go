package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// postJSON sends body as JSON and decodes a 200 response into out. Non-200
// statuses and transport failures come back as *ServiceError.
func postJSON(ctx context.Context, client *http.Client, provider, url string, headers map[string]string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &ServiceError{Provider: provider, Kind: KindMalformed, Message: "marshaling request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return &ServiceError{Provider: provider, Kind: KindTransport, Message: "creating request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := client.Do(httpReq)
	if err != nil {
		return &ServiceError{Provider: provider, Kind: KindTransport, Message: "sending request", Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return &ServiceError{Provider: provider, Kind: KindTransport, Message: "reading response", Err: err}
	}

	switch code := httpResp.StatusCode; {
	case code == http.StatusOK:
	case code == http.StatusTooManyRequests:
		return &ServiceError{Provider: provider, Kind: KindRateLimit, StatusCode: code, Message: string(respBody)}
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return &ServiceError{Provider: provider, Kind: KindAuth, StatusCode: code, Message: string(respBody)}
	case code >= 500:
		return &ServiceError{Provider: provider, Kind: KindServer, StatusCode: code, Message: string(respBody)}
	default:
		return &ServiceError{Provider: provider, Kind: KindAPI, StatusCode: code, Message: string(respBody)}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &ServiceError{Provider: provider, Kind: KindMalformed, Message: "parsing response", Err: err}
	}
	return nil
}

func emptyResponse(provider, what string) error {
	return &ServiceError{Provider: provider, Kind: KindMalformed, Message: fmt.Sprintf("no %s in response", what)}
}
