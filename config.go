package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/parse/cache"
	"github.com/jmgilman/go/parse/logging"
)

// Config holds SDK configuration.
type Config struct {
	// ApplicationID identifies the application. Required.
	ApplicationID string `yaml:"application_id"`
	// ClientKey authenticates the client.
	ClientKey string `yaml:"client_key"`
	// Server is the base URL of the Parse API. Defaults to DefaultServer.
	Server string `yaml:"server"`
	// LogLevel sets the process-wide log level when a client is created.
	// The zero value disables logging; DefaultConfig uses logging.DefaultLevel.
	LogLevel logging.Level `yaml:"log_level"`
	// LocalDatastore marks the local datastore as enabled, which restricts
	// queries to the IgnoreCache policy.
	LocalDatastore bool `yaml:"local_datastore"`
	// Cache configures the query result cache.
	Cache CacheConfig `yaml:"cache"`
}

// CacheConfig configures the query result cache.
type CacheConfig struct {
	// Dir persists cached results under this directory. Empty keeps results in memory.
	Dir          string `yaml:"dir,omitempty"`
	cache.Config `yaml:",inline"`
}

// DefaultConfig returns a configuration with every optional field set to its default.
func DefaultConfig() Config {
	cfg := Config{LogLevel: logging.DefaultLevel}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults applies default values to unset fields in the configuration.
func (c *Config) SetDefaults() {
	if c.Server == "" {
		c.Server = DefaultServer
	}
	c.Cache.SetDefaults()
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ApplicationID) == "" {
		return fmt.Errorf("application id is required")
	}

	u, err := url.Parse(c.Server)
	if err != nil {
		return fmt.Errorf("invalid server URL %q: %w", c.Server, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("server URL must be an absolute http(s) URL, got %q", c.Server)
	}

	if !c.LogLevel.IsValid() {
		return fmt.Errorf("invalid log level %d", c.LogLevel)
	}

	if err := c.Cache.Validate(); err != nil {
		return fmt.Errorf("invalid cache config: %w", err)
	}
	return nil
}

// BaseURL returns the versioned API root, such as "https://api.parse.com/1".
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.Server, "/") + "/" + strconv.Itoa(APIVersion)
}

// Headers returns the identification headers every request must carry.
func (c *Config) Headers() map[string]string {
	headers := map[string]string{
		HeaderApplicationID: c.ApplicationID,
		HeaderClientVersion: ClientVersion,
	}
	if c.ClientKey != "" {
		headers[HeaderClientKey] = c.ClientKey
	}
	return headers
}

// ParseConfig decodes YAML configuration on top of DefaultConfig and validates it.
// Unknown fields are rejected.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig reads and parses the YAML configuration file at path on fs.
func LoadConfig(fs billy.Filesystem, path string) (*Config, error) {
	data, err := util.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as YAML to path on fs.
func SaveConfig(fs billy.Filesystem, path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.WriteFile(fs, path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
