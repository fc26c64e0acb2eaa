// ABOUTME: Minimal Vapi REST client: one authenticated PATCH to update an
// ABOUTME: assistant, with a client-side timeout and no retries.

package vapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultBaseURL = "https://api.vapi.ai"
	DefaultTimeout = 30 * time.Second
)

// Client talks to the Vapi API with a bearer key.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option adjusts a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API host. Used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTimeout overrides the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient builds a client for the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("vapi: HTTP %d: %s", e.StatusCode, e.Body)
}

// UpdateAssistant PATCHes the assistant configuration and returns the
// updated assistant as the API reports it. The assistant ID must be a UUID;
// that is checked before any network traffic.
func (c *Client) UpdateAssistant(ctx context.Context, assistantID string, cfg *AssistantConfig) (*AssistantConfig, error) {
	if _, err := uuid.Parse(assistantID); err != nil {
		return nil, fmt.Errorf("vapi: invalid assistant id %q: %w", assistantID, err)
	}

	body, err := MarshalConfig(cfg)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch,
		c.baseURL+"/assistant/"+assistantID, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("vapi: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vapi: patch assistant: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("vapi: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: truncate(string(data), 500)}
	}

	var updated AssistantConfig
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, fmt.Errorf("vapi: decode response: %w", err)
	}
	return &updated, nil
}

// MarshalConfig encodes the payload without HTML escaping, keeping the
// Portuguese prompt text readable when printed with --dry-run.
func MarshalConfig(cfg *AssistantConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("vapi: encode payload: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
