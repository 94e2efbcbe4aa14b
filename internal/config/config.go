// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Marketplace   MarketplaceConfig   `yaml:"marketplace"`
	Ebay          EbayConfig          `yaml:"ebay"`
	Currency      CurrencyConfig      `yaml:"currency"`
	CMS           CMSConfig           `yaml:"cms"`
	Orders        OrdersConfig        `yaml:"orders"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// MarketplaceConfig defines the primary marketplace search backend settings.
// APIKey is typically supplied via environment substitution; its absence is
// detected at request time and degrades the search endpoints to a 500.
type MarketplaceConfig struct {
	SearchURL string `yaml:"search_url"`
	BrowseURL string `yaml:"browse_url"`
	APIKey    string `yaml:"api_key"`
	PageSize  int    `yaml:"page_size"`
}

// EbayConfig defines eBay API settings. AppID and CertID are supplied via
// environment substitution and checked at request time.
type EbayConfig struct {
	AppID       string          `yaml:"app_id"`
	CertID      string          `yaml:"cert_id"`
	TokenURL    string          `yaml:"token_url"`
	BrowseURL   string          `yaml:"browse_url"`
	Marketplace string          `yaml:"marketplace"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines eBay API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// CurrencyConfig defines the currency-rate service settings. Prices arrive
// from the marketplace in USD minor units and are converted to the display
// currency with the fetched multiplier; FallbackRate is used when the rate
// service is unreachable.
type CurrencyConfig struct {
	RateURL         string        `yaml:"rate_url"`
	Base            string        `yaml:"base"`
	Display         string        `yaml:"display"`
	FallbackRate    float64       `yaml:"fallback_rate"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	CacheTTL        time.Duration `yaml:"cache_ttl"`
}

// CMSConfig defines the headless CMS settings for trending sections.
type CMSConfig struct {
	BaseURL        string `yaml:"base_url"`
	Token          string `yaml:"token"`
	SectionLimit   int    `yaml:"section_limit"`
	ProductsPerRow int    `yaml:"products_per_row"`
}

// OrdersConfig defines order endpoint settings. DiscountCodes is the set of
// accepted discount codes; empty disables discount validation.
type OrdersConfig struct {
	DiscountCodes []string `yaml:"discount_codes"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings for order notifications.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content. Unset credential
	// variables expand to empty strings; handlers detect those at request
	// time rather than failing the load.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyMarketplaceDefaults(&cfg.Marketplace)
	applyEbayDefaults(&cfg.Ebay)
	applyCurrencyDefaults(&cfg.Currency)
	applyCMSDefaults(&cfg.CMS)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyMarketplaceDefaults(m *MarketplaceConfig) {
	if m.SearchURL == "" {
		m.SearchURL = "https://ac.cnstrc.com/search"
	}
	if m.BrowseURL == "" {
		m.BrowseURL = "https://ac.cnstrc.com/browse/group_id"
	}
	if m.PageSize == 0 {
		m.PageSize = 24
	}
}

func applyEbayDefaults(e *EbayConfig) {
	if e.TokenURL == "" {
		e.TokenURL = "https://api.ebay.com/identity/v1/oauth2/token"
	}
	if e.BrowseURL == "" {
		e.BrowseURL = "https://api.ebay.com/buy/browse/v1/item_summary/search"
	}
	if e.Marketplace == "" {
		e.Marketplace = "EBAY_US"
	}
	applyRateLimitDefaults(&e.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 5000
	}
}

func applyCurrencyDefaults(c *CurrencyConfig) {
	if c.RateURL == "" {
		c.RateURL = "https://open.er-api.com/v6/latest"
	}
	if c.Base == "" {
		c.Base = "USD"
	}
	if c.Display == "" {
		c.Display = "MNT"
	}
	if c.FallbackRate == 0 {
		c.FallbackRate = 3450.0
	}
	if c.RefreshInterval == 0 {
		c.RefreshInterval = 6 * time.Hour
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 12 * time.Hour
	}
}

func applyCMSDefaults(c *CMSConfig) {
	if c.SectionLimit == 0 {
		c.SectionLimit = 6
	}
	if c.ProductsPerRow == 0 {
		c.ProductsPerRow = 4
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be 0-65535 (got %d)", cfg.Server.Port))
	}

	if cfg.Marketplace.PageSize < 1 {
		errs = append(errs, fmt.Errorf("marketplace.page_size must be positive"))
	}

	if cfg.Currency.FallbackRate < 0 {
		errs = append(errs, fmt.Errorf("currency.fallback_rate must not be negative"))
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(errs, fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"))
	}

	switch cfg.Logging.Format {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be text or json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
