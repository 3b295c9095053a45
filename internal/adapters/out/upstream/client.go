// Package upstream is the HTTP gateway to the order-management system that
// owns the orders. It implements the status pusher, whose success gates every
// local mutation, and the pushed-order feed the sync job polls.
package upstream

import (
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client talks to the upstream order-management API. One instance serves both
// the push and feed gateways; it is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an upstream API client. baseURL is the API root without a
// trailing slash; apiKey is sent as a bearer token on every request.
func NewClient(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is required")
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
