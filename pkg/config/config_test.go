package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedscope/pkg/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
  base_url: https://news.example.com
fetch:
  timeout: 5s
  max_workers: 8
  limit: 100
  retry_attempts: 3
  retry_delay: 100ms
cache:
  ttl: 5m
extraction:
  enabled: true
  timeout: 20s
sources:
  - name: Bankier
    kind: rss
    url: https://example.com/rss
    feeds: [stocks, economy]
  - name: CryptoAPI
    kind: api
    url: https://api.example.com/news
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		listen, timeout := cfg.GetServerConfig()
		assert.Equal(t, ":9090", listen)
		assert.Equal(t, 45*time.Second, timeout)
		assert.Equal(t, "https://news.example.com", cfg.GetBaseURL())
		assert.Equal(t, 8, cfg.Fetch.MaxWorkers)
		assert.Equal(t, 3, cfg.Fetch.RetryAttempts)
		assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
		assert.True(t, cfg.GetExtractionConfig().Enabled)

		sources := cfg.GetSources()
		require.Len(t, sources, 2)
		assert.Equal(t, domain.SourceRSS, sources[0].Kind)
		assert.Equal(t, []string{"stocks", "economy"}, sources[0].Feeds)
		assert.Equal(t, domain.SourceAPI, sources[1].Kind)
		assert.Empty(t, sources[1].Feeds)
	})

	t.Run("defaults applied", func(t *testing.T) {
		path := writeConfig(t, `
sources:
  - name: OnlySource
    kind: api
    url: https://api.example.com/news
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		listen, timeout := cfg.GetServerConfig()
		assert.Equal(t, ":8080", listen)
		assert.Equal(t, 30*time.Second, timeout)
		assert.Equal(t, 10*time.Second, cfg.Fetch.Timeout)
		assert.Equal(t, 4, cfg.Fetch.MaxWorkers)
		assert.Equal(t, 50, cfg.Fetch.Limit)
		assert.Equal(t, 2, cfg.Fetch.RetryAttempts)
		assert.Equal(t, 250*time.Millisecond, cfg.Fetch.RetryDelay)
		assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, "Feedscope/1.0", cfg.Extraction.UserAgent)
		assert.False(t, cfg.Scheduler.Enabled)
		assert.Equal(t, 90*time.Second, cfg.Scheduler.Interval)
		assert.Equal(t, []string{"all"}, cfg.Scheduler.Feeds)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("FEEDSCOPE_TEST_URL", "https://api.example.com/secret")
		path := writeConfig(t, `
sources:
  - name: EnvSource
    kind: api
    url: ${FEEDSCOPE_TEST_URL}
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/secret", cfg.Sources[0].URL)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/does/not/exist.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, "sources: [unterminated")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("no sources rejected", func(t *testing.T) {
		path := writeConfig(t, "server:\n  listen: ':8080'\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one source")
	})

	t.Run("scheduler section", func(t *testing.T) {
		path := writeConfig(t, `
scheduler:
  enabled: true
  interval: 30s
  feeds: [all, crypto]
sources:
  - name: OnlySource
    kind: api
    url: https://api.example.com/news
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.True(t, cfg.Scheduler.Enabled)
		assert.Equal(t, 30*time.Second, cfg.Scheduler.Interval)
		assert.Equal(t, []string{"all", "crypto"}, cfg.Scheduler.Feeds)
	})

	t.Run("too short scheduler interval rejected", func(t *testing.T) {
		path := writeConfig(t, `
scheduler:
  enabled: true
  interval: 100ms
sources:
  - name: OnlySource
    kind: api
    url: https://api.example.com/news
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scheduler interval")
	})

	t.Run("bad source kind rejected", func(t *testing.T) {
		path := writeConfig(t, `
sources:
  - name: Bad
    kind: ftp
    url: ftp://example.com
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be api or rss")
	})

	t.Run("source without url rejected", func(t *testing.T) {
		path := writeConfig(t, `
sources:
  - name: Bad
    kind: api
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "url is required")
	})
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	assert.NotNil(t, schema)
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	cfg := &Config{}
	cfg.setDefaults()
	cfg.Sources = []SourceConfig{{Name: "s", Kind: "api", URL: "https://example.com"}}
	assert.NoError(t, VerifyAgainstEmbeddedSchema(cfg))

	cfg.Sources[0].URL = ""
	assert.Error(t, VerifyAgainstEmbeddedSchema(cfg))
}
