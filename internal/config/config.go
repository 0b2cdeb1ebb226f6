// ABOUTME: Configuration loading and parsing for taskgate
// ABOUTME: Supports YAML files with environment variable expansion

package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete taskgate configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Auth     AuthConfig     `yaml:"auth"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig holds the HTTP listen address
type ServerConfig struct {
	HTTPAddr string `yaml:"http_addr"`
}

// DatabaseConfig holds credential database configuration
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// UpstreamConfig holds the downstream tasks service connection settings.
// RetryMaxAttempts of zero means retry until the service is reachable.
type UpstreamConfig struct {
	Addr             string        `yaml:"addr"`
	RetryInterval    time.Duration `yaml:"-"`
	RetryMaxAttempts int           `yaml:"retry_max_attempts"`

	// Raw string value for YAML unmarshaling
	RetryIntervalRaw string `yaml:"retry_interval"`
}

// AuthConfig holds token signing configuration.
// JWTKey is hex-encoded; when empty a random key is generated at startup
// and tokens do not survive a restart.
type AuthConfig struct {
	JWTKey string `yaml:"jwt_key"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a configuration file from the given path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded.
// Duration strings are parsed into time.Duration values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := parseDurations(&cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// ApplyDefaults fills in values that may be omitted from the config file.
func (c *Config) ApplyDefaults() {
	if c.Server.HTTPAddr == "" {
		c.Server.HTTPAddr = "0.0.0.0:3000"
	}
	if c.Upstream.Addr == "" {
		c.Upstream.Addr = "tasks_service:50051"
	}
	if c.Upstream.RetryInterval == 0 {
		c.Upstream.RetryInterval = time.Second
	}
	if c.Auth.JWTKey == "" {
		c.Auth.JWTKey = os.Getenv("TASKGATE_JWT_KEY")
	}
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Upstream.RetryMaxAttempts < 0 {
		return fmt.Errorf("upstream.retry_max_attempts must not be negative")
	}
	if c.Auth.JWTKey != "" {
		if _, err := hex.DecodeString(c.Auth.JWTKey); err != nil {
			return fmt.Errorf("auth.jwt_key must be hex-encoded: %w", err)
		}
	}
	return nil
}

// SigningKey returns the decoded JWT signing key, or nil when none is configured.
func (c *Config) SigningKey() []byte {
	if c.Auth.JWTKey == "" {
		return nil
	}
	key, err := hex.DecodeString(c.Auth.JWTKey)
	if err != nil {
		// Validate rejects non-hex keys; this path is only reachable on
		// a Config built without Load.
		return nil
	}
	return key
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	var err error

	if cfg.Upstream.RetryIntervalRaw != "" {
		cfg.Upstream.RetryInterval, err = time.ParseDuration(cfg.Upstream.RetryIntervalRaw)
		if err != nil {
			return fmt.Errorf("parsing retry_interval %q: %w", cfg.Upstream.RetryIntervalRaw, err)
		}
	}

	return nil
}
