package northwind

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Querier defines the interface for querying the Northwind API.
// This interface is implemented by *Client and can be used for testing.
type Querier interface {
	QueryCustomers(ctx context.Context, query CustomerQuery) (*Page[Customer], error)
	QueryOrders(ctx context.Context, query OrderQuery) (*Page[Order], error)
	GetCustomerDetails(ctx context.Context, id string) (*CustomerDetails, error)
}

// Ensure Client implements Querier at compile time.
var _ Querier = (*Client)(nil)

// Client talks to the Northwind query HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is the public demo endpoint.
	DefaultBaseURL = "https://uitestapi.occupass.com"

	defaultUserAgent = "freighter/0.1"
	defaultTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given base URL. An empty baseURL uses
// the public demo endpoint; a zero timeout uses the default.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// QueryCustomers retrieves a page of customers matching the query.
func (c *Client) QueryCustomers(ctx context.Context, query CustomerQuery) (*Page[Customer], error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Page[Customer]
	if err := c.post(ctx, "/query/customers", query, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// QueryOrders retrieves a page of orders matching the query.
func (c *Client) QueryOrders(ctx context.Context, query OrderQuery) (*Page[Order], error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Page[Order]
	if err := c.post(ctx, "/query/orders", query, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetCustomerDetails retrieves the full aggregate for one customer: the
// customer record plus every order with its line items.
func (c *Client) GetCustomerDetails(ctx context.Context, id string) (*CustomerDetails, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("customer id required")
	}
	var payload CustomerDetails
	if err := c.do(ctx, http.MethodGet, "/customers/"+url.PathEscape(id), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) post(ctx context.Context, path string, body, dest any) error {
	return c.do(ctx, http.MethodPost, path, body, dest)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
