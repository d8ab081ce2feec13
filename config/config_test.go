package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.APIAddr)
	assert.Equal(t, ":3000", cfg.DashboardAddr)
	assert.Equal(t, "http://localhost:8000", cfg.BackendURL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, 128, cfg.EncodingDimensions)
	assert.Equal(t, 1500*time.Millisecond, cfg.FallbackDelay)
	assert.Equal(t, 30*time.Second, cfg.HealthCheckInterval)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Error(t, cfg.RequireDatabase())
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"DATABASE_URL":          "user:pass@tcp(db:3306)/biosecure_db?parseTime=true",
		"BACKEND_URL":           "http://api:8000/",
		"CORS_ALLOWED_ORIGINS":  "http://a.test, ,http://b.test",
		"FACE_ENCODING_DIM":     "0",
		"SUBMIT_FALLBACK_DELAY": "0s",
		"LOG_LEVEL":             "DEBUG",
	}))
	require.NoError(t, err)

	assert.NoError(t, cfg.RequireDatabase())
	assert.Equal(t, "http://api:8000", cfg.BackendURL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, 0, cfg.EncodingDimensions)
	assert.Equal(t, time.Duration(0), cfg.FallbackDelay)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"dimensions":       {"FACE_ENCODING_DIM": "abc"},
		"negative dim":     {"FACE_ENCODING_DIM": "-1"},
		"delay":            {"SUBMIT_FALLBACK_DELAY": "soon"},
		"negative timeout": {"BACKEND_TIMEOUT": "-1s"},
		"zero interval":    {"DB_HEALTH_INTERVAL": "0s"},
		"empty origins":    {"CORS_ALLOWED_ORIGINS": " , "},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(envMap(env))
			assert.Error(t, err)
		})
	}
}
