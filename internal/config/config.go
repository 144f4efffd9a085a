// Package config loads hamcp settings. Sources are layered, later ones win:
// built-in defaults, a YAML file, environment variables, then command-line
// flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/hamcp/internal/logging"
)

// DefaultAgentURL is where the agent add-on listens on a stock install.
const DefaultAgentURL = "http://homeassistant.local:8099"

// Environment variables read by ApplyEnv.
const (
	EnvAgentURL  = "HA_AGENT_URL"
	EnvAgentKey  = "HA_AGENT_KEY"
	EnvLogLevel  = "HAMCP_LOG_LEVEL"
	EnvLogFormat = "HAMCP_LOG_FORMAT"
	EnvTimeout   = "HAMCP_TIMEOUT"
)

// ErrMissingKey is returned by Validate when no agent key is configured.
var ErrMissingKey = errors.New("agent key is required (set " + EnvAgentKey + ")")

// Config holds all hamcp configuration.
type Config struct {
	Agent  AgentConfig  `yaml:"agent"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

// AgentConfig locates and authenticates the remote agent.
type AgentConfig struct {
	URL     string        `yaml:"url"`
	Key     string        `yaml:"key"`
	Timeout time.Duration `yaml:"timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ServerConfig configures the network transports. stdio ignores it.
type ServerConfig struct {
	Port    int    `yaml:"port"`
	BaseURL string `yaml:"base_url"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Agent: AgentConfig{
			URL:     DefaultAgentURL,
			Timeout: 90 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: string(logging.FormatText),
		},
		Server: ServerConfig{
			Port: 8080,
		},
	}
}

// DefaultSearchPaths returns the locations probed when no file is given.
func DefaultSearchPaths() []string {
	paths := []string{"hamcp.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "hamcp", "config.yaml"))
	}
	return append(paths, "/etc/hamcp/config.yaml")
}

// FindConfig locates a config file. An explicit path must exist. Otherwise
// the first existing default path is returned, or "" when there is none;
// the file is optional.
func FindConfig(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}
	for _, p := range DefaultSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// Load builds a Config from defaults, the file found by FindConfig(explicit)
// and the environment. It does not validate.
func Load(explicit string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	path, err := FindConfig(explicit)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from the environment. Unset or empty variables
// leave the current value in place.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv(EnvAgentURL)); v != "" {
		c.Agent.URL = v
	}
	if v := strings.TrimSpace(getenv(EnvAgentKey)); v != "" {
		c.Agent.Key = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(getenv(EnvLogFormat)); v != "" {
		c.Log.Format = v
	}
	if v := strings.TrimSpace(getenv(EnvTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.Agent.Timeout = d
	}
	return nil
}

// Validate checks that the configuration can start a server.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Agent.Key) == "" {
		return ErrMissingKey
	}
	u, err := url.Parse(c.Agent.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid agent url %q", c.Agent.URL)
	}
	if c.Agent.Timeout <= 0 {
		return fmt.Errorf("agent timeout must be positive, got %s", c.Agent.Timeout)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return err
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}
