package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/feedscope/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public base URL used in generated RSS links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Fetch struct {
		Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Per-source fetch timeout"`
		MaxWorkers    int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=4,description=Maximum concurrent upstream fetches"`
		Limit         int           `yaml:"limit" json:"limit" jsonschema:"default=50,description=Maximum items requested per source"`
		RetryAttempts int           `yaml:"retry_attempts" json:"retry_attempts" jsonschema:"default=2,description=Fetch attempts per source including the first"`
		RetryDelay    time.Duration `yaml:"retry_delay" json:"retry_delay" jsonschema:"default=250ms,description=Initial backoff delay between fetch attempts"`
	} `yaml:"fetch" json:"fetch" jsonschema:"description=Upstream fetch configuration"`

	Cache struct {
		TTL time.Duration `yaml:"ttl" json:"ttl" jsonschema:"default=2m,description=Memoization window for aggregated pools; 0 disables caching"`
	} `yaml:"cache" json:"cache" jsonschema:"description=Result cache configuration"`

	Scheduler struct {
		Enabled  bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable periodic pool warming"`
		Interval time.Duration `yaml:"interval" json:"interval" jsonschema:"default=90s,description=Warming interval; should be below cache.ttl to keep pools hot"`
		Feeds    []string      `yaml:"feeds" json:"feeds" jsonschema:"description=Feed types to keep warm; defaults to all"`
	} `yaml:"scheduler" json:"scheduler" jsonschema:"description=Background pool warming"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Optional article content extraction"`

	Sources []SourceConfig `yaml:"sources" json:"sources" jsonschema:"description=Upstream providers"`
}

// SourceConfig describes one upstream provider entry
type SourceConfig struct {
	Name  string   `yaml:"name" json:"name" jsonschema:"required,description=Source display name"`
	Kind  string   `yaml:"kind" json:"kind" jsonschema:"required,enum=api,enum=rss,description=Provider kind"`
	URL   string   `yaml:"url" json:"url" jsonschema:"required,description=Provider endpoint"`
	Feeds []string `yaml:"feeds" json:"feeds" jsonschema:"description=Feed types this source serves; empty means all"`
}

// ExtractionConfig holds content enrichment settings
type ExtractionConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable content extraction for items without a description"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Extraction timeout per article"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Feedscope/1.0,description=User agent for extraction requests"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	if c.Fetch.Timeout == 0 {
		c.Fetch.Timeout = 10 * time.Second
	}
	if c.Fetch.MaxWorkers == 0 {
		c.Fetch.MaxWorkers = 4
	}
	if c.Fetch.Limit == 0 {
		c.Fetch.Limit = 50
	}
	if c.Fetch.RetryAttempts == 0 {
		c.Fetch.RetryAttempts = 2
	}
	if c.Fetch.RetryDelay == 0 {
		c.Fetch.RetryDelay = 250 * time.Millisecond
	}

	if c.Cache.TTL == 0 {
		c.Cache.TTL = 2 * time.Minute
	}

	if c.Scheduler.Interval == 0 {
		c.Scheduler.Interval = 90 * time.Second
	}
	if len(c.Scheduler.Feeds) == 0 {
		c.Scheduler.Feeds = []string{"all"}
	}

	if c.Extraction.Timeout == 0 {
		c.Extraction.Timeout = 15 * time.Second
	}
	if c.Extraction.UserAgent == "" {
		c.Extraction.UserAgent = "Feedscope/1.0"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if len(cfg.Sources) == 0 {
		return fmt.Errorf("at least one source is required")
	}
	for i, src := range cfg.Sources {
		if src.Name == "" {
			return fmt.Errorf("sources[%d].name is required", i)
		}
		if src.URL == "" {
			return fmt.Errorf("sources[%d].url is required", i)
		}
		if src.Kind != string(domain.SourceAPI) && src.Kind != string(domain.SourceRSS) {
			return fmt.Errorf("sources[%d].kind must be api or rss, got %q", i, src.Kind)
		}
	}

	if cfg.Fetch.MaxWorkers < 1 {
		return fmt.Errorf("fetch.max_workers must be at least 1")
	}
	if cfg.Fetch.RetryAttempts < 1 {
		return fmt.Errorf("fetch.retry_attempts must be at least 1")
	}
	if cfg.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must be non-negative")
	}

	if cfg.Scheduler.Enabled && cfg.Scheduler.Interval < time.Second {
		return fmt.Errorf("scheduler interval must be at least 1 second")
	}

	if cfg.Extraction.Enabled && cfg.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBaseURL returns the public base URL for generated links
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}

// GetSources returns the configured upstream sources as domain descriptors
func (c *Config) GetSources() []domain.Source {
	sources := make([]domain.Source, 0, len(c.Sources))
	for _, s := range c.Sources {
		sources = append(sources, domain.Source{
			Name:  s.Name,
			Kind:  domain.SourceKind(s.Kind),
			URL:   s.URL,
			Feeds: s.Feeds,
		})
	}
	return sources
}

// GetExtractionConfig returns content extraction configuration
func (c *Config) GetExtractionConfig() ExtractionConfig {
	return c.Extraction
}
