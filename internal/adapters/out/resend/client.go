// Package resend implements the message sender port against the Resend
// email API.
package resend

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
	defaultBaseURL = "https://api.resend.com"
	defaultTimeout = 15 * time.Second

	serviceName = "resend"
)

// Client sends transactional emails through Resend. Retry policy lives in the
// send queue; the client only classifies failures as transient or permanent.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	from       string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithTimeout bounds each send call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// NewClient creates a Client sending from the given address.
func NewClient(apiKey, from string, opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		from:       from,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// Send delivers one plain-text email and returns the provider message id.
func (c *Client) Send(ctx context.Context, to, subject, body string) (string, error) {
	if c.apiKey == "" {
		return "", errs.NewUpstreamServiceError(serviceName, false,
			errs.NewValueIsRequiredError("api key"))
	}
	if to == "" {
		return "", errs.NewUpstreamServiceError(serviceName, false,
			errs.NewValueIsRequiredError("recipient"))
	}

	payload, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return "", errs.NewUpstreamServiceError(serviceName, false, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return "", errs.NewUpstreamServiceError(serviceName, false, err)
	}
	request.Header.Set("Authorization", "Bearer "+c.apiKey)
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", errs.NewUpstreamServiceError(serviceName, true, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(response.Body, 1<<20))
	if err != nil {
		return "", errs.NewUpstreamServiceError(serviceName, true, err)
	}

	if response.StatusCode != http.StatusOK {
		return "", errs.NewUpstreamServiceError(serviceName, isTransientStatus(response.StatusCode),
			fmt.Errorf("unexpected status %d: %s", response.StatusCode, raw))
	}

	var parsed sendResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", errs.NewUpstreamServiceError(serviceName, false, err)
	}

	return parsed.ID, nil
}

// isTransientStatus classifies HTTP statuses for retry purposes. A rejected
// credential or malformed request will not succeed on retry; rate limiting
// and server-side failures might.
func isTransientStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
