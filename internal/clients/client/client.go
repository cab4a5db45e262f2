package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HttpClient is the minimal surface a concrete client must expose so
// SendRequest can reach its base URL, timeout and underlying http.Client
type HttpClient interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() time.Duration
	GetHttpClient() *http.Client
}

type HttpClientOptions struct {
	Path string
	// TemplatePath is the path with raw values stripped, safe for logs
	// and metric labels
	TemplatePath string
	Headers      map[string]string
	Timeout      time.Duration
}

// SendRequest performs a JSON round trip against the client's base URL.
// A nil input sends no body. Non-2xx responses are returned as errors with
// the response body included; 429 responses are flagged as rate limit
// errors so callers can retry on them.
func SendRequest[I any, O any](
	ctx context.Context,
	c HttpClient,
	method string,
	opts *HttpClientOptions,
	input *I,
) (*O, error) {
	timeout := c.GetDefaultRequestTimeout()
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if input != nil {
		payload, err := json.Marshal(input)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	url := c.GetBaseURL() + opts.Path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", opts.TemplatePath, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.GetHttpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", opts.TemplatePath, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", opts.TemplatePath, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("rate limit exceeded on %s: %s", opts.TemplatePath, string(respBody))
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, opts.TemplatePath, string(respBody))
	}

	var output O
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &output); err != nil {
			return nil, fmt.Errorf("failed to decode response from %s: %w", opts.TemplatePath, err)
		}
	}

	return &output, nil
}
