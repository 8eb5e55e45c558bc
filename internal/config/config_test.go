package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			MaxBodyBytes: 1 << 20,
		},
		Cache: CacheConfig{
			Backend:   "memory",
			RedisAddr: "localhost:6379",
			TTL:       time.Hour,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 60,
			Burst:             10,
		},
		Client: ClientConfig{
			BaseURL: "http://localhost:8080",
			Retries: 2,
			Timeout: 10 * time.Second,
		},
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		env               map[string]string
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name: "no config file uses defaults",
			want: defaultConfig,
		},
		{
			name: "valid config file with custom values",
			configContent: `server:
  port: 9000
  read_timeout: 5s
cache:
  backend: redis
  redis_addr: redis:6379
  ttl: 30m
rate_limit:
  requests_per_minute: 0
client:
  base_url: https://solver.example.com
  retries: 4
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Server.Port = 9000
				cfg.Server.ReadTimeout = 5 * time.Second
				cfg.Cache = CacheConfig{Backend: "redis", RedisAddr: "redis:6379", TTL: 30 * time.Minute}
				cfg.RateLimit.RequestsPerMinute = 0
				cfg.Client.BaseURL = "https://solver.example.com"
				cfg.Client.Retries = 4
				return cfg
			},
		},
		{
			name: "environment overrides file",
			configContent: `server:
  port: 9000
`,
			env: map[string]string{
				"GOSOLVE_SERVER_PORT":   "9191",
				"GOSOLVE_CACHE_BACKEND": "none",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Server.Port = 9191
				cfg.Cache.Backend = "none"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `server:
  port: 9000
  invalid yaml format here [[[
`,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unknown cache backend",
			configContent: `cache:
  backend: memcached
`,
			wantErrorContains: []string{"invalid configuration", "backend must be one of [memory redis none]"},
		},
		{
			name: "out of range port and bad url",
			configContent: `server:
  port: 70000
client:
  base_url: not a url
`,
			wantErrorContains: []string{"invalid configuration", "port", "base_url"},
		},
		{
			name: "redis backend without address",
			configContent: `cache:
  backend: redis
  redis_addr: ""
`,
			wantErrorContains: []string{"invalid configuration", "redis_addr"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("HOME", tempDir)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if tt.configContent != "" {
				err := os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644)
				require.NoError(t, err)
			}

			originalDir, err := os.Getwd()
			require.NoError(t, err)
			defer func() {
				err := os.Chdir(originalDir)
				require.NoError(t, err)
			}()
			err = os.Chdir(tempDir)
			require.NoError(t, err)

			got, err := Load("")

			if len(tt.wantErrorContains) > 0 {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gosolve.yml")
	require.NoError(t, os.WriteFile(path, []byte("rate_limit:\n  burst: 3\n"), 0644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, got.RateLimit.Burst)
	assert.Equal(t, 8080, got.Server.Port)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
