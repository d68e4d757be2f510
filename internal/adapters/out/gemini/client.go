// Package gemini implements the text generator port against the Google
// Generative Language API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"carcheck/internal/pkg/errs"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-pro"
	defaultTimeout = 30 * time.Second

	serviceName = "gemini"
)

// Client calls the Generative Language generateContent endpoint. Every call
// is bounded by the configured timeout so report synthesis can never stall
// the submission pipeline.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithModel overrides the model name.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithTimeout bounds each generateContent call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// NewClient creates a Client with the given API key. An empty key is allowed
// at construction time; Generate then fails with a permanent upstream error,
// which the synthesizer translates into the fallback report.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		model:      defaultModel,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate sends the prompt and returns the first candidate's text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errs.NewUpstreamServiceError(serviceName, false,
			errs.NewValueIsRequiredError("api key"))
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", errs.NewUpstreamServiceError(serviceName, false, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", errs.NewUpstreamServiceError(serviceName, false, err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", errs.NewUpstreamServiceError(serviceName, true, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, 1<<20))
	if err != nil {
		return "", errs.NewUpstreamServiceError(serviceName, true, err)
	}

	if response.StatusCode != http.StatusOK {
		return "", errs.NewUpstreamServiceError(serviceName, isTransientStatus(response.StatusCode),
			fmt.Errorf("unexpected status %d: %s", response.StatusCode, body))
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errs.NewUpstreamServiceError(serviceName, false, err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errs.NewUpstreamServiceError(serviceName, false,
			fmt.Errorf("response contains no candidates"))
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// isTransientStatus classifies HTTP statuses for retry purposes: rate
// limiting and server-side failures are worth retrying, client errors
// (bad credential, malformed request) are not.
func isTransientStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
