// Package currency fetches display-currency exchange rates and converts
// marketplace prices from USD minor units into the configured display
// currency. Rate lookups are best-effort: on any failure the converter
// falls back to a configured rate so product rendering never depends on the
// rate service being up.
package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/bilegt6969/sainto-api/internal/metrics"
)

const backendName = "currency"

// rateCacheSize bounds the cached (base, display) rate pairs. The service
// only ever asks for a handful of currencies.
const rateCacheSize = 16

// failureBackoff is how long the fallback rate is served after a failed
// lookup before another fetch is attempted, so an outage at the rate
// service does not add a failing round trip to every product request.
const failureBackoff = time.Minute

// Converter resolves and caches exchange rates.
type Converter struct {
	rateURL  string
	base     string
	display  string
	fallback float64
	client   *http.Client
	log      *slog.Logger
	cache    *expirable.LRU[string, float64]

	mu          sync.Mutex
	lastFailure time.Time
}

// Option configures the Converter.
type Option func(*Converter)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Converter) {
		c.client = hc
	}
}

// NewConverter creates a Converter. ttl bounds how long a fetched rate is
// served before a refetch.
func NewConverter(rateURL, base, display string, fallback float64, ttl time.Duration, log *slog.Logger, opts ...Option) *Converter {
	c := &Converter{
		rateURL:  rateURL,
		base:     base,
		display:  display,
		fallback: fallback,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cache = expirable.NewLRU[string, float64](rateCacheSize, nil, ttl)
	return c
}

// Display returns the display currency code.
func (c *Converter) Display() string {
	return c.display
}

// Rate returns the multiplier from the base currency to the display
// currency. Failures are logged and degrade to the fallback rate; callers
// never see an error.
func (c *Converter) Rate(ctx context.Context) float64 {
	if rate, ok := c.cache.Get(c.display); ok {
		return rate
	}

	if c.inBackoff() {
		return c.fallback
	}

	rate, err := c.fetchRate(ctx)
	if err != nil {
		c.mu.Lock()
		c.lastFailure = time.Now()
		c.mu.Unlock()
		metrics.CurrencyFallbacksTotal.Inc()
		c.log.Warn("currency rate lookup failed, using fallback",
			"display", c.display,
			"fallback", c.fallback,
			"error", err,
		)
		return c.fallback
	}

	c.mu.Lock()
	c.lastFailure = time.Time{}
	c.mu.Unlock()
	c.cache.Add(c.display, rate)
	return rate
}

// inBackoff reports whether a recent failed lookup should keep the converter
// on the fallback rate instead of refetching.
func (c *Converter) inBackoff() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.lastFailure.IsZero() && time.Since(c.lastFailure) < failureBackoff
}

// Convert turns a price in base-currency minor units into a display-currency
// amount using the current rate.
func (c *Converter) Convert(ctx context.Context, cents int) float64 {
	return float64(cents) / 100 * c.Rate(ctx)
}

// Refresh drops the cached rate and refetches it. Used by the periodic
// refresh job so request paths mostly hit the cache.
func (c *Converter) Refresh(ctx context.Context) {
	rate, err := c.fetchRate(ctx)
	if err != nil {
		c.log.Warn("currency rate refresh failed", "error", err)
		return
	}
	c.mu.Lock()
	c.lastFailure = time.Time{}
	c.mu.Unlock()
	c.cache.Add(c.display, rate)
	metrics.CurrencyRefreshesTotal.Inc()
	c.log.Debug("currency rate refreshed", "display", c.display, "rate", rate)
}

type rateAPIResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

func (c *Converter) fetchRate(ctx context.Context) (float64, error) {
	u := c.rateURL + "/" + c.base

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("creating rate request: %w", err)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(backendName).Inc()

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues(backendName).Inc()
		return 0, fmt.Errorf("executing rate request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("reading rate response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamErrorsTotal.WithLabelValues(backendName).Inc()
		return 0, fmt.Errorf("rate service returned %d", resp.StatusCode)
	}

	var apiResp rateAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return 0, fmt.Errorf("parsing rate response: %w", err)
	}

	rate, ok := apiResp.Rates[c.display]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("rate for %s missing from response", c.display)
	}

	return rate, nil
}
