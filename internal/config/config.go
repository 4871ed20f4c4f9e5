// Package config loads ghostmap settings from a YAML or JSON file plus
// key=value overrides given on the command line.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up in the working directory when no file is given.
const DefaultPath = "ghostmap.yaml"

// Strategy and cache backend names.
const (
	StrategyLCM   = "lcm"
	StrategyExact = "exact"

	BackendNone   = "none"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the full application configuration.
type Config struct {
	StepBudget uint64      `mapstructure:"step_budget" yaml:"step_budget" json:"step_budget"`
	Workers    int         `mapstructure:"workers" yaml:"workers" json:"workers"`
	Strategy   string      `mapstructure:"strategy" yaml:"strategy" json:"strategy"`
	Verify     bool        `mapstructure:"verify" yaml:"verify" json:"verify"`
	InputDir   string      `mapstructure:"input_dir" yaml:"input_dir" json:"input_dir"`
	LogLevel   string      `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Cache      CacheConfig `mapstructure:"cache" yaml:"cache" json:"cache"`
	Serve      ServeConfig `mapstructure:"serve" yaml:"serve" json:"serve"`
}

// CacheConfig selects the answer cache.
type CacheConfig struct {
	Backend  string        `mapstructure:"backend" yaml:"backend" json:"backend"`
	Addr     string        `mapstructure:"addr" yaml:"addr" json:"addr"`
	Password string        `mapstructure:"password" yaml:"password" json:"password"`
	DB       int           `mapstructure:"db" yaml:"db" json:"db"`
	Prefix   string        `mapstructure:"prefix" yaml:"prefix" json:"prefix"`
	TTL      time.Duration `mapstructure:"ttl" yaml:"ttl" json:"ttl"`
}

// ServeConfig configures the HTTP API.
type ServeConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr" json:"addr"`
	// Timeout bounds each request; zero keeps the server default.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout" json:"timeout"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Strategy: StrategyLCM,
		InputDir: "inputs",
		LogLevel: "info",
		Cache: CacheConfig{
			Backend: BackendMemory,
			Addr:    "localhost:6379",
		},
		Serve: ServeConfig{
			Addr:    ":8080",
			Timeout: 30 * time.Second,
		},
	}
}

// Load reads path on top of the defaults. A missing file yields the defaults.
// The format is chosen by extension: .json is JSON, anything else YAML.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Apply merges "key=value" overrides into cfg. Nested keys use dots,
// e.g. "cache.backend=redis".
func (c *Config) Apply(overrides []string) error {
	if len(overrides) == 0 {
		return nil
	}

	raw := map[string]any{}
	for _, o := range overrides {
		key, value, ok := strings.Cut(o, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("%w: override %q is not key=value", ErrInvalidConfig, o)
		}
		setPath(raw, strings.Split(key, "."), value)
	}

	if err := decode(raw, c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return c.Validate()
}

// Validate rejects settings no component can honour.
func (c Config) Validate() error {
	var errs []error
	switch c.Strategy {
	case StrategyLCM, StrategyExact:
	default:
		errs = append(errs, fmt.Errorf("unknown strategy %q", c.Strategy))
	}
	switch c.Cache.Backend {
	case BackendNone, BackendMemory, BackendRedis:
	default:
		errs = append(errs, fmt.Errorf("unknown cache backend %q", c.Cache.Backend))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if c.Serve.Timeout < 0 {
		errs = append(errs, fmt.Errorf("serve timeout must not be negative, got %s", c.Serve.Timeout))
	}
	if c.Cache.TTL < 0 {
		errs = append(errs, fmt.Errorf("cache ttl must not be negative, got %s", c.Cache.TTL))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func decode(raw map[string]any, out *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

func setPath(m map[string]any, path []string, value string) {
	for _, p := range path[:len(path)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[p] = next
		}
		m = next
	}
	m[path[len(path)-1]] = value
}
