// Package cms fetches editorial trending sections from the headless CMS and
// resolves each section's keyword into a product row. CMS lookups are
// best-effort: failures degrade to empty sections rather than errors so the
// storefront can always render.
package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bilegt6969/sainto-api/internal/metrics"
)

const backendName = "cms"

// Section is one trending row configured in the CMS.
type Section struct {
	Title   string `json:"title"`
	Keyword string `json:"keyword"`
}

// SectionFetcher fetches the configured trending sections.
type SectionFetcher interface {
	Sections(ctx context.Context, limit int) ([]Section, error)
}

// HTTPClient implements SectionFetcher against the CMS content API.
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// Option configures the HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.client = hc
	}
}

// NewHTTPClient creates a CMS client. token may be empty for public
// datasets.
func NewHTTPClient(baseURL, token string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type sectionsAPIResponse struct {
	Result []Section `json:"result"`
}

// Sections implements SectionFetcher.
func (c *HTTPClient) Sections(ctx context.Context, limit int) ([]Section, error) {
	params := url.Values{}
	params.Set("limit", fmt.Sprint(limit))

	u := c.baseURL + "/sections?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating sections request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(backendName).Inc()

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues(backendName).Inc()
		return nil, fmt.Errorf("executing sections request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading sections response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamErrorsTotal.WithLabelValues(backendName).Inc()
		return nil, fmt.Errorf("CMS returned %d", resp.StatusCode)
	}

	var apiResp sectionsAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parsing sections response: %w", err)
	}

	if limit > 0 && len(apiResp.Result) > limit {
		apiResp.Result = apiResp.Result[:limit]
	}

	return apiResp.Result, nil
}
