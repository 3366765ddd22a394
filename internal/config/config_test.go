package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultGeminiModel, cfg.GeminiModel)
	assert.Equal(t, DefaultAnthropicModel, cfg.AnthropicModel)
	assert.Equal(t, DefaultCandidateCacheTTL, cfg.CandidateCacheTTL)
	assert.Equal(t, DefaultRecommendationLimit, cfg.RecommendationLimit)
	assert.Equal(t, DefaultWizardSessionTTL, cfg.WizardSessionTTL)
	assert.True(t, cfg.CORSAllowAll)
	assert.False(t, cfg.Production())
	assert.NotEmpty(t, cfg.DatabaseURL)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"PORT":                 "9090",
		"APP_ENV":              "Production",
		"GEMINI_API_KEY":       " key ",
		"CANDIDATE_CACHE_TTL":  "30s",
		"RECOMMENDATION_LIMIT": "3",
		"CORS_ALLOW_ALL":       "false",
		"WIZARD_SESSION_TTL":   "10m",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Production())
	assert.Equal(t, "key", cfg.GeminiAPIKey)
	assert.Equal(t, 30*time.Second, cfg.CandidateCacheTTL)
	assert.Equal(t, 3, cfg.RecommendationLimit)
	assert.False(t, cfg.CORSAllowAll)
	assert.Equal(t, 10*time.Minute, cfg.WizardSessionTTL)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	bad := []map[string]string{
		{"CANDIDATE_CACHE_TTL": "five minutes"},
		{"RECOMMENDATION_LIMIT": "0"},
		{"RECOMMENDATION_LIMIT": "many"},
		{"CORS_ALLOW_ALL": "sometimes"},
		{"WIZARD_SESSION_TTL": "0s"},
		{"WIZARD_SESSION_TTL": "soon"},
	}
	for _, env := range bad {
		_, err := FromEnv(envOf(env))
		assert.Error(t, err, env)
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600))
	t.Setenv("LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadToleratesMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
