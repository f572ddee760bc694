package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is the seam to the external analysis service. It is swapped for a
// stub in handler tests.
type Client interface {
	Analyze(ctx context.Context, content string) (json.RawMessage, error)
}

// Error reports a failed analyzer call. StatusCode is zero when the call
// never produced a response (network failure, timeout).
type Error struct {
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("analyzer returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("analyzer call failed: %v", e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPClient implements Client against a remote analyzer endpoint.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient constructs a relay client for the analyzer at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("ANALYZER_BASE_URL is required")
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPClient{
		baseURL: trimmed,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type analyzeRequest struct {
	Content string `json:"content"`
}

// Analyze posts the extracted text to the analyzer and returns its JSON
// body byte-for-byte. One synchronous call, no retry.
func (c *HTTPClient) Analyze(ctx context.Context, content string) (json.RawMessage, error) {
	payload, err := json.Marshal(analyzeRequest{Content: content})
	if err != nil {
		return nil, &Error{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{StatusCode: resp.StatusCode, Err: fmt.Errorf("analyzer body: %s", truncate(body, 512))}
	}

	return json.RawMessage(body), nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

var _ Client = (*HTTPClient)(nil)
