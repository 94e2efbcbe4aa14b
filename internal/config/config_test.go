package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
marketplace:
  api_key: key_test123
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "key_test123", cfg.Marketplace.APIKey)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
marketplace:
  api_key: key_test123
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, "https://ac.cnstrc.com/search", cfg.Marketplace.SearchURL)
				assert.Equal(t, 24, cfg.Marketplace.PageSize)
				assert.Equal(t, "https://api.ebay.com/identity/v1/oauth2/token", cfg.Ebay.TokenURL)
				assert.Equal(t, "EBAY_US", cfg.Ebay.Marketplace)
				assert.InDelta(t, 5.0, cfg.Ebay.RateLimit.PerSecond, 0.001)
				assert.Equal(t, 10, cfg.Ebay.RateLimit.Burst)
				assert.Equal(t, int64(5000), cfg.Ebay.RateLimit.DailyLimit)
				assert.Equal(t, "USD", cfg.Currency.Base)
				assert.Equal(t, "MNT", cfg.Currency.Display)
				assert.InDelta(t, 3450.0, cfg.Currency.FallbackRate, 0.001)
				assert.Equal(t, 6*time.Hour, cfg.Currency.RefreshInterval)
				assert.Equal(t, 12*time.Hour, cfg.Currency.CacheTTL)
				assert.Equal(t, 6, cfg.CMS.SectionLimit)
				assert.Equal(t, 4, cfg.CMS.ProductsPerRow)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "environment variable substitution",
			yaml: `
marketplace:
  api_key: ${TEST_MARKETPLACE_KEY}
ebay:
  app_id: ${TEST_EBAY_APP_ID}
  cert_id: ${TEST_EBAY_CERT_ID}
`,
			envVars: map[string]string{
				"TEST_MARKETPLACE_KEY": "key_from_env",
				"TEST_EBAY_APP_ID":     "app-from-env",
				"TEST_EBAY_CERT_ID":    "cert-from-env",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "key_from_env", cfg.Marketplace.APIKey)
				assert.Equal(t, "app-from-env", cfg.Ebay.AppID)
				assert.Equal(t, "cert-from-env", cfg.Ebay.CertID)
			},
		},
		{
			name: "unset credential vars expand to empty without failing the load",
			yaml: `
marketplace:
  api_key: ${SAINTO_UNSET_CREDENTIAL_VAR}
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Empty(t, cfg.Marketplace.APIKey)
			},
		},
		{
			name: "explicit values override defaults",
			yaml: `
server:
  port: 9090
marketplace:
  page_size: 48
currency:
  display: USD
  fallback_rate: 1
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 48, cfg.Marketplace.PageSize)
				assert.Equal(t, "USD", cfg.Currency.Display)
				assert.InDelta(t, 1.0, cfg.Currency.FallbackRate, 0.001)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
		{
			name: "invalid port",
			yaml: `
server:
  port: 70000
`,
			wantErr: "server.port must be 0-65535",
		},
		{
			name: "discord enabled without webhook",
			yaml: `
notifications:
  discord:
    enabled: true
`,
			wantErr: "notifications.discord.webhook_url is required",
		},
		{
			name: "invalid logging format",
			yaml: `
logging:
  format: xml
`,
			wantErr: "logging.format must be text or json",
		},
		{
			name: "multiple validation errors joined",
			yaml: `
server:
  port: -1
logging:
  format: xml
`,
			wantErr: "server.port must be 0-65535",
		},
		{
			name:    "invalid yaml",
			yaml:    "server: [not a map",
			wantErr: "parsing config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			cfg, err := Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}
