package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	t.Setenv("REPORTS_DATABASE_DSN", "postgres://localhost/bizreport")

	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "bizreport", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "postgres://localhost/bizreport", cfg.Database.DSN)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTP.WriteTimeout)
	assert.True(t, cfg.HTTP.Gzip)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TokenTTL)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestFromViper_EnvOverridesFile(t *testing.T) {
	t.Setenv("REPORTS_HTTP_PORT", "9090")
	t.Setenv("REPORTS_LOG_LEVEL", "debug")

	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
[database]
dsn = "postgres://db/reports"
max_conns = 8

[http]
port = "8081"
gzip = false
`)))

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "postgres://db/reports", cfg.Database.DSN)
	assert.Equal(t, int32(8), cfg.Database.MaxConns)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.False(t, cfg.HTTP.Gzip)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:      AppConfig{Env: "production"},
			Database: DatabaseConfig{DSN: "postgres://x", MaxConns: 4, MinConns: 1},
			JWT:      JWTConfig{Secret: strings.Repeat("s", 32)},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing dsn", mutate: func(c *Config) { c.Database.DSN = "" }, wantErr: "database.dsn is required"},
		{name: "short secret", mutate: func(c *Config) { c.JWT.Secret = "short" }, wantErr: "at least 32 characters"},
		{name: "dev secret in production", mutate: func(c *Config) { c.JWT.Secret = "dev-secret-change-me-please-32chars" }, wantErr: "must be set in production"},
		{name: "min above max", mutate: func(c *Config) { c.Database.MinConns = 10 }, wantErr: "below database.min_conns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
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
