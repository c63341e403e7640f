// Package config loads the rxdex service configuration from environment
// selected YAML files with ${VAR} expansion.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the rxdex API configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Catalog CatalogConfig `yaml:"catalog"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// CatalogConfig selects and configures the catalog snapshot source.
type CatalogConfig struct {
	Source string            `yaml:"source"` // file, redis (default: file)
	Path   string            `yaml:"path"`   // file source
	Redis  RedisSourceConfig `yaml:"redis"`  // redis source
}

// RedisSourceConfig holds connection settings for the redis catalog source.
type RedisSourceConfig struct {
	Addrs               []string `yaml:"addrs"`
	Username            string   `yaml:"username"`
	Password            string   `yaml:"password"`
	Key                 string   `yaml:"key"`
	ReadinessTimeoutSec int      `yaml:"readiness_timeout_sec"`
}

// SearchConfig holds ranking and pagination settings.
type SearchConfig struct {
	FieldWeights    map[string]float64 `yaml:"field_weights"`
	FuzzyRatio      float64            `yaml:"fuzzy_ratio"`
	DefaultPageSize int                `yaml:"default_page_size"`
	MaxPageSize     int                `yaml:"max_page_size"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Catalog.Source == "" {
		c.Catalog.Source = "file"
	}
	if c.Catalog.Path == "" {
		c.Catalog.Path = filepath.Join("data", "medications.json")
	}
	if c.Catalog.Redis.Key == "" {
		c.Catalog.Redis.Key = "rxdex:catalog"
	}
	if c.Catalog.Redis.ReadinessTimeoutSec <= 0 {
		c.Catalog.Redis.ReadinessTimeoutSec = 10
	}
	if c.Search.FuzzyRatio <= 0 {
		c.Search.FuzzyRatio = 0.2
	}
	if c.Search.DefaultPageSize <= 0 {
		c.Search.DefaultPageSize = 10
	}
	if c.Search.MaxPageSize <= 0 {
		c.Search.MaxPageSize = 100
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Catalog.Source {
	case "file":
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog.path is required for the file source")
		}
	case "redis":
		if len(c.Catalog.Redis.Addrs) == 0 {
			return fmt.Errorf("catalog.redis.addrs is required for the redis source")
		}
	default:
		return fmt.Errorf("catalog.source must be \"file\" or \"redis\", got %q", c.Catalog.Source)
	}
	if c.Search.FuzzyRatio >= 1 {
		return fmt.Errorf("search.fuzzy_ratio must be below 1, got %g", c.Search.FuzzyRatio)
	}
	for field, w := range c.Search.FieldWeights {
		if w < 0 {
			return fmt.Errorf("search.field_weights.%s must be non-negative, got %g", field, w)
		}
	}
	if c.Search.DefaultPageSize > c.Search.MaxPageSize {
		return fmt.Errorf("search.default_page_size %d exceeds max_page_size %d",
			c.Search.DefaultPageSize, c.Search.MaxPageSize)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
