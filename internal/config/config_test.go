package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hamcp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultAgentURL, cfg.Agent.URL)
	assert.Equal(t, 90*time.Second, cfg.Agent.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingKey)
}

func TestLoad_Layering(t *testing.T) {
	path := writeConfig(t, `
agent:
  url: http://ha.lan:8099
  key: from-file
  timeout: 30s
log:
  level: debug
server:
  port: 9000
`)

	cfg, err := Load(path, envMap(map[string]string{
		EnvAgentKey: "from-env",
		EnvTimeout:  "2m",
	}))
	require.NoError(t, err)

	assert.Equal(t, "http://ha.lan:8099", cfg.Agent.URL)
	assert.Equal(t, "from-env", cfg.Agent.Key)
	assert.Equal(t, 2*time.Minute, cfg.Agent.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ExpandsEnvInFile(t *testing.T) {
	t.Setenv("HAMCP_TEST_KEY", "expanded")
	path := writeConfig(t, "agent:\n  key: ${HAMCP_TEST_KEY}\n")

	cfg, err := Load(path, envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, "expanded", cfg.Agent.Key)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), envMap(nil))
	assert.ErrorContains(t, err, "config file not found")
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "agent: [unterminated")
	_, err := Load(path, envMap(nil))
	assert.ErrorContains(t, err, "parse config")
}

func TestApplyEnv_BadTimeout(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{EnvTimeout: "soon"}))
	assert.ErrorContains(t, err, EnvTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"ok", func(c *Config) {}, ""},
		{"missing key", func(c *Config) { c.Agent.Key = " " }, "agent key is required"},
		{"bad scheme", func(c *Config) { c.Agent.URL = "ftp://ha" }, "invalid agent url"},
		{"no host", func(c *Config) { c.Agent.URL = "http://" }, "invalid agent url"},
		{"zero timeout", func(c *Config) { c.Agent.Timeout = 0 }, "timeout must be positive"},
		{"bad level", func(c *Config) { c.Log.Level = "chatty" }, "unknown log level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "unknown log format"},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "invalid server port"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Agent.Key = "k"
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
