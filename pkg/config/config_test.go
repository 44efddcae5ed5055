package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PREDICTOR_ENDPOINT_URL", "https://models.example.com/invocations")
	t.Setenv("PREDICTOR_TOKEN", "token-from-env")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "bearer", cfg.Predictor.AuthScheme)
	assert.Equal(t, 10*time.Second, cfg.Predictor.Timeout)
	assert.Equal(t, 1, cfg.Predictor.ContactID)
	assert.False(t, cfg.History.Enabled)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 30, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:8080"}, cfg.Server.AllowOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("PREDICTOR_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_REQUESTS", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example.com , ,https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Predictor.Timeout)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 5, cfg.RateLimit.Requests)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.AllowOrigins)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing endpoint",
			env:     map[string]string{"PREDICTOR_ENDPOINT_URL": "", "PREDICTOR_TOKEN": "x"},
			wantErr: "missing predictor endpoint url",
		},
		{
			name:    "missing token",
			env:     map[string]string{"PREDICTOR_ENDPOINT_URL": "http://x", "PREDICTOR_TOKEN": ""},
			wantErr: "missing predictor token",
		},
		{
			name: "basic without credentials",
			env: map[string]string{
				"PREDICTOR_ENDPOINT_URL": "http://x",
				"PREDICTOR_AUTH_SCHEME":  "basic",
			},
			wantErr: "missing predictor basic auth credentials",
		},
		{
			name: "unknown auth scheme",
			env: map[string]string{
				"PREDICTOR_ENDPOINT_URL": "http://x",
				"PREDICTOR_TOKEN":        "x",
				"PREDICTOR_AUTH_SCHEME":  "digest",
			},
			wantErr: "unsupported predictor auth scheme",
		},
		{
			name: "history without jwt secret",
			env: map[string]string{
				"PREDICTOR_ENDPOINT_URL": "http://x",
				"PREDICTOR_TOKEN":        "x",
				"HISTORY_ENABLED":        "true",
				"DB_PASSWORD":            "pw",
			},
			wantErr: "missing jwt secret",
		},
		{
			name: "history without db password",
			env: map[string]string{
				"PREDICTOR_ENDPOINT_URL": "http://x",
				"PREDICTOR_TOKEN":        "x",
				"HISTORY_ENABLED":        "true",
				"JWT_SECRET":             "s",
			},
			wantErr: "missing database password",
		},
		{
			name: "bad timeout",
			env: map[string]string{
				"PREDICTOR_ENDPOINT_URL": "http://x",
				"PREDICTOR_TOKEN":        "x",
				"PREDICTOR_TIMEOUT":      "soon",
			},
			wantErr: "invalid predictor timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"PREDICTOR_AUTH_SCHEME", "PREDICTOR_BASIC_USERNAME", "PREDICTOR_BASIC_PASSWORD", "HISTORY_ENABLED", "JWT_SECRET", "DB_PASSWORD", "PREDICTOR_TIMEOUT"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
