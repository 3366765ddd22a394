package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the API reads from the environment.
type Config struct {
	Port        string
	Env         string
	LogLevel    string
	DatabaseURL string

	GeminiAPIKey string
	GeminiModel  string

	AnthropicAPIKey string
	AnthropicModel  string

	CandidateCacheTTL   time.Duration
	RecommendationLimit int
	CORSAllowAll        bool

	// WizardSessionTTL is how long an untouched widget session is kept.
	WizardSessionTTL time.Duration
}

const (
	DefaultPort                = "8080"
	DefaultGeminiModel         = "gemini-2.5-flash"
	DefaultAnthropicModel      = "claude-3-haiku-20240307"
	DefaultCandidateCacheTTL   = 5 * time.Minute
	DefaultRecommendationLimit = 5
	DefaultWizardSessionTTL    = 30 * time.Minute
	defaultDSN                 = "host=localhost user=postgres password=password dbname=shoreagents port=5432 sslmode=disable"
)

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port:            get("PORT", DefaultPort),
		Env:             get("APP_ENV", "development"),
		LogLevel:        get("LOG_LEVEL", "info"),
		DatabaseURL:     get("DATABASE_URL", defaultDSN),
		GeminiAPIKey:    get("GEMINI_API_KEY", ""),
		GeminiModel:     get("GEMINI_MODEL", DefaultGeminiModel),
		AnthropicAPIKey: get("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  get("ANTHROPIC_MODEL", DefaultAnthropicModel),
	}

	ttl, err := time.ParseDuration(get("CANDIDATE_CACHE_TTL", DefaultCandidateCacheTTL.String()))
	if err != nil || ttl < 0 {
		return Config{}, fmt.Errorf("config: CANDIDATE_CACHE_TTL: invalid duration %q", getenv("CANDIDATE_CACHE_TTL"))
	}
	cfg.CandidateCacheTTL = ttl

	sessionTTL, err := time.ParseDuration(get("WIZARD_SESSION_TTL", DefaultWizardSessionTTL.String()))
	if err != nil || sessionTTL <= 0 {
		return Config{}, fmt.Errorf("config: WIZARD_SESSION_TTL: must be a positive duration, got %q", getenv("WIZARD_SESSION_TTL"))
	}
	cfg.WizardSessionTTL = sessionTTL

	limit, err := strconv.Atoi(get("RECOMMENDATION_LIMIT", strconv.Itoa(DefaultRecommendationLimit)))
	if err != nil || limit < 1 {
		return Config{}, fmt.Errorf("config: RECOMMENDATION_LIMIT: must be a positive integer, got %q", getenv("RECOMMENDATION_LIMIT"))
	}
	cfg.RecommendationLimit = limit

	allowAll, err := strconv.ParseBool(get("CORS_ALLOW_ALL", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("config: CORS_ALLOW_ALL: %w", err)
	}
	cfg.CORSAllowAll = allowAll

	return cfg, nil
}

// Production reports whether APP_ENV is production.
func (c Config) Production() bool {
	return strings.EqualFold(c.Env, "production")
}
