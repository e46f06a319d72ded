package satsearch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/donaldgifford/satsearch-go/internal/metrics"
)

// APIClient issues requests against one SatSearch endpoint with one set of
// credentials. Instances are built and cached by ClientCache.
type APIClient struct {
	baseURL *url.URL
	headers http.Header
	client  *http.Client
}

// BaseURL returns the endpoint the client is bound to.
func (c *APIClient) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// Header returns a copy of the headers sent with every request.
func (c *APIClient) Header() http.Header {
	return c.headers.Clone()
}

// Get issues a GET for path (relative to the base URL), checks the status
// and passes the body to decode before the response is closed.
func (c *APIClient) Get(ctx context.Context, path string, decode func(io.Reader) error) error {
	u := c.resolve(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	for k, v := range c.headers {
		req.Header[k] = v
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: executing request: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck // best-effort error body
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return decode(resp.Body)
}

// resolve joins path onto the base URL, keeping any path prefix the base
// carries and any query string path carries.
func (c *APIClient) resolve(path string) string {
	base := strings.TrimRight(c.baseURL.String(), "/")
	return base + "/" + strings.TrimLeft(path, "/")
}

// ClientCache hands out one APIClient per distinct Credentials value.
// It never evicts.
type ClientCache struct {
	httpClient *http.Client

	mu      sync.Mutex
	clients map[Credentials]*APIClient
}

// NewClientCache creates an empty cache. Every APIClient it builds shares
// httpClient; nil selects http.DefaultClient.
func NewClientCache(httpClient *http.Client) *ClientCache {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ClientCache{
		httpClient: httpClient,
		clients:    make(map[Credentials]*APIClient),
	}
}

// Get returns the cached client for creds, building it on first use. Equal
// credential values always yield the same *APIClient.
func (c *ClientCache) Get(creds *Credentials) (*APIClient, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if client, ok := c.clients[*creds]; ok {
		return client, nil
	}

	base, err := parseBaseURI(creds.BaseURI)
	if err != nil {
		return nil, err
	}

	headers := http.Header{}
	headers.Set("Accept", "application/json")
	headers.Set("Authorization", "Bearer "+creds.APIToken)
	headers.Set("X-APP-ID", creds.ApplicationToken)

	client := &APIClient{
		baseURL: base,
		headers: headers,
		client:  c.httpClient,
	}
	c.clients[*creds] = client
	metrics.ClientCacheEntries.Inc()

	return client, nil
}

// Len returns the number of cached clients.
func (c *ClientCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.clients)
}
