package perplexica

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

// Client is the upstream search API client.
// The API key travels as a bearer token via an oauth2 static token source.
type Client struct {
	baseURL    string
	transport  *http.Transport
	httpClient *http.Client
}

// New creates a new search API client for baseURL authenticated with apiKey.
func New(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("perplexica: base URL is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("perplexica: API key is required")
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Transport: transport})

	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: apiKey,
		TokenType:   "Bearer",
	}))
	httpClient.Timeout = DefaultTimeout

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		transport:  transport,
		httpClient: httpClient,
	}, nil
}

// SetTimeout bounds every upstream call. Zero keeps the current timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		c.httpClient.Timeout = timeout
	}
}

// CloseIdleConnections releases pooled upstream connections.
func (c *Client) CloseIdleConnections() {
	c.transport.CloseIdleConnections()
}

// Search forwards req to POST {baseURL}/api/search and returns the raw JSON answer.
func (c *Client) Search(ctx context.Context, req SearchRequest) (json.RawMessage, error) {
	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+SearchPath, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(errBody)),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrUnavailable, err)
	}
	if len(data) > maxResponseBytes {
		return nil, fmt.Errorf("%w: response exceeds %d bytes", ErrInvalidResponse, maxResponseBytes)
	}
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidResponse
	}

	return json.RawMessage(data), nil
}
