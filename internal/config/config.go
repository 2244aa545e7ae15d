package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the default configuration file name, looked up in the
// working directory.
const ConfigFile = ".moviegraph.yml"

// Environment variables that override file values.
const (
	EnvPort     = "MOVIEGRAPH_PORT"
	EnvSeed     = "MOVIEGRAPH_SEED"
	EnvLogLevel = "MOVIEGRAPH_LOG_LEVEL"
)

var (
	ErrInvalidPort = errors.New("invalid port")
	ErrInvalidPath = errors.New("invalid path")
	ErrInvalidLog  = errors.New("invalid log setting")
)

// LogLevels lists the accepted log levels.
var LogLevels = []string{"debug", "info", "warn", "error"}

// LogFormats lists the accepted log encodings.
var LogFormats = []string{"console", "json"}

// Config holds the moviegraph configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`

	// Seed is the path to a YAML seed file. Empty means the embedded seed.
	Seed string `yaml:"seed,omitempty"`
}

// ServerConfig defines the HTTP endpoint.
type ServerConfig struct {
	Port       int    `yaml:"port"`
	Path       string `yaml:"path"`
	Playground bool   `yaml:"playground"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:       5004,
			Path:       "/graphql",
			Playground: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configuration from path, then applies overrides from a .env
// file and the environment. A missing file yields the defaults; an empty
// path means ConfigFile.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = ConfigFile
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file, keep defaults
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	// .env is optional; variables already set in the environment win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	// Apply defaults for missing values
	if cfg.Server.Path == "" {
		cfg.Server.Path = "/graphql"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidPort, EnvPort, v)
		}
		c.Server.Port = port
	}
	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		c.Seed = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	return nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for values the server cannot use.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: %d (must be 1-65535)", ErrInvalidPort, c.Server.Port)
	}
	if !strings.HasPrefix(c.Server.Path, "/") {
		return fmt.Errorf("%w: %q (must start with /)", ErrInvalidPath, c.Server.Path)
	}
	if !contains(LogLevels, c.Log.Level) {
		return fmt.Errorf("%w: level %q (valid: %s)", ErrInvalidLog, c.Log.Level, strings.Join(LogLevels, ", "))
	}
	if !contains(LogFormats, c.Log.Format) {
		return fmt.Errorf("%w: format %q (valid: %s)", ErrInvalidLog, c.Log.Format, strings.Join(LogFormats, ", "))
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
