package dashboard

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// envEChartsCDN overrides the chart assets host (e.g., to point at a CDN or self-hosted bucket).
const envEChartsCDN = "GO_EVENTDASH_ECHARTS_CDN"

// Duration is a time.Duration that reads and writes YAML strings such as "5s".
type Duration struct {
	time.Duration
}

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	if parsed <= 0 {
		return fmt.Errorf("duration %q must be positive", raw)
	}
	d.Duration = parsed
	return nil
}

// MarshalYAML writes the duration string form.
func (d Duration) MarshalYAML() (any, error) {
	return d.Duration.String(), nil
}

// ChartConfig configures the statistics chart.
type ChartConfig struct {
	AssetsHost string   `yaml:"assets_host,omitempty"`
	LightTheme string   `yaml:"light_theme,omitempty"`
	DarkTheme  string   `yaml:"dark_theme,omitempty"`
	Height     string   `yaml:"height,omitempty"`
	CacheTTL   Duration `yaml:"cache_ttl,omitempty"`
}

// Config is the application configuration.
type Config struct {
	Listen             string      `yaml:"listen"`
	BasePath           string      `yaml:"base_path"`
	CarouselInterval   Duration    `yaml:"carousel_interval"`
	SessionIdleTimeout Duration    `yaml:"session_idle_timeout"`
	Chart              ChartConfig `yaml:"chart"`
	Source             string      `yaml:"-"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:             ":9876",
		BasePath:           DefaultDashboardPath,
		CarouselInterval:   Duration{DefaultCarouselInterval},
		SessionIdleTimeout: Duration{DefaultIdleTimeout},
		Chart: ChartConfig{
			Height:   defaultChartHeight,
			CacheTTL: Duration{5 * time.Minute},
		},
	}
}

// LoadConfig reads, validates and decodes a YAML config file. Missing keys
// keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("eventdash: read config %s: %w", path, err)
	}
	cfg, err := DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("eventdash: decode config %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// DecodeConfig validates the document against the config schema and decodes it over the defaults.
func DecodeConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("eventdash: read config: %w", err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("eventdash: parse config: %w", err)
	}
	if raw == nil {
		return nil, errors.New("eventdash: config is empty")
	}
	if err := DefaultConfigValidator().Validate(raw); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("eventdash: parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// WriteConfig writes the config as YAML, creating parent directories.
func WriteConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("eventdash: mkdir %s: %w", filepath.Dir(path), err)
	}
	file, err := os.Create(path) //nolint:gosec
	if err != nil {
		return fmt.Errorf("eventdash: create config %s: %w", path, err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	defer encoder.Close()
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("eventdash: write config: %w", err)
	}
	return nil
}

// ChartAssetsHost returns the configured assets host, respecting GO_EVENTDASH_ECHARTS_CDN if set.
func (c *Config) ChartAssetsHost() string {
	if host := strings.TrimSpace(os.Getenv(envEChartsCDN)); host != "" {
		return ensureTrailingSlash(host)
	}
	return ensureTrailingSlash(c.Chart.AssetsHost)
}

// ServiceOptions maps the config onto service options.
func (c *Config) ServiceOptions() Options {
	chartOpts := []ChartPanelOption{WithChartHeight(c.Chart.Height)}
	if host := c.ChartAssetsHost(); host != "" {
		chartOpts = append(chartOpts, WithChartAssetsHost(host))
	}
	if c.Chart.CacheTTL.Duration > 0 {
		chartOpts = append(chartOpts, WithChartCache(NewChartCache(c.Chart.CacheTTL.Duration)))
	}
	data := DefaultData()
	return Options{
		Data:             data,
		CarouselInterval: c.CarouselInterval.Duration,
		IdleTimeout:      c.SessionIdleTimeout.Duration,
		Theme: ThemeOptions{
			LightChartTheme: c.Chart.LightTheme,
			DarkChartTheme:  c.Chart.DarkTheme,
		},
		Chart: NewChartPanel(data.Chart, chartOpts...),
	}
}

func (c *Config) normalize() {
	c.BasePath = strings.TrimRight(strings.TrimSpace(c.BasePath), "/")
	if c.BasePath == "" {
		c.BasePath = DefaultDashboardPath
	}
	if !strings.HasPrefix(c.BasePath, "/") {
		c.BasePath = "/" + c.BasePath
	}
	if c.Listen == "" {
		c.Listen = DefaultConfig().Listen
	}
}

func ensureTrailingSlash(value string) string {
	if value == "" {
		return ""
	}
	if strings.HasSuffix(value, "/") {
		return value
	}
	return value + "/"
}
