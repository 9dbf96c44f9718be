package infrastructure

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `json:"port"`
	Host string `json:"host"`

	// API auth settings
	APIAuthToken string `json:"-"` // Don't expose in JSON

	// Search provider settings
	NaverBaseURL    string        `json:"naver_base_url"`
	NewsAPIBaseURL  string        `json:"newsapi_base_url"`
	DefaultLanguage string        `json:"default_language"`
	DefaultSource   string        `json:"default_source"`
	ProviderTimeout time.Duration `json:"provider_timeout"`

	// Analysis backend settings
	OpenAIBaseURL    string        `json:"openai_base_url"`
	OpenAIModel      string        `json:"openai_model"`
	AnthropicBaseURL string        `json:"anthropic_base_url"`
	AnthropicModel   string        `json:"anthropic_model"`
	GeminiModel      string        `json:"gemini_model"`
	FallbackSummary  string        `json:"fallback_summary"`
	BackendTimeout   time.Duration `json:"backend_timeout"`

	// Default credentials, overridden per request
	Credentials map[string]string `json:"-"` // Don't expose in JSON

	// Session settings
	SessionIdleTimeout   time.Duration `json:"session_idle_timeout"`
	SessionSweepSchedule string        `json:"session_sweep_schedule"`

	// NATS settings
	NATSURL             string `json:"nats_url"`
	NATSProgressSubject string `json:"nats_progress_subject"`
}

// Credential keys accepted in requests and read from the environment
const (
	CredNaverClientID     = "naver_client_id"
	CredNaverClientSecret = "naver_client_secret"
	CredNewsAPIKey        = "newsapi_key"
	CredOpenAIKey         = "openai_api_key"
	CredAnthropicKey      = "anthropic_api_key"
	CredGeminiKey         = "gemini_api_key"
)

var credentialEnv = map[string]string{
	CredNaverClientID:     "NAVER_CLIENT_ID",
	CredNaverClientSecret: "NAVER_CLIENT_SECRET",
	CredNewsAPIKey:        "NEWSAPI_KEY",
	CredOpenAIKey:         "OPENAI_API_KEY",
	CredAnthropicKey:      "ANTHROPIC_API_KEY",
	CredGeminiKey:         "GEMINI_API_KEY",
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		Host:                 getEnvOrDefault("HOST", "0.0.0.0"),
		APIAuthToken:         getEnvOrDefault("API_AUTH_TOKEN", ""),
		NaverBaseURL:         getEnvOrDefault("NAVER_BASE_URL", "https://openapi.naver.com/v1/search/news.json"),
		NewsAPIBaseURL:       getEnvOrDefault("NEWSAPI_BASE_URL", "https://newsapi.org/v2/everything"),
		DefaultLanguage:      getEnvOrDefault("DEFAULT_LANGUAGE", "ko"),
		DefaultSource:        getEnvOrDefault("DEFAULT_SOURCE", "unknown"),
		ProviderTimeout:      getEnvOrDefaultDuration("PROVIDER_TIMEOUT", 10*time.Second),
		OpenAIBaseURL:        getEnvOrDefault("OPENAI_BASE_URL", ""),
		OpenAIModel:          getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		AnthropicBaseURL:     getEnvOrDefault("ANTHROPIC_BASE_URL", ""),
		AnthropicModel:       getEnvOrDefault("ANTHROPIC_MODEL", "claude-3-haiku-20240307"),
		GeminiModel:          getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		FallbackSummary:      getEnvOrDefault("FALLBACK_SUMMARY", "Unable to generate analysis."),
		BackendTimeout:       getEnvOrDefaultDuration("BACKEND_TIMEOUT", 60*time.Second),
		Credentials:          loadCredentials(),
		SessionIdleTimeout:   getEnvOrDefaultDuration("SESSION_IDLE_TIMEOUT", 2*time.Hour),
		SessionSweepSchedule: getEnvOrDefault("SESSION_SWEEP_SCHEDULE", "*/10 * * * *"),
		NATSURL:              getEnvOrDefault("NATS_URL", ""),
		NATSProgressSubject:  getEnvOrDefault("NATS_PROGRESS_SUBJECT", "news.analysis.progress"),
	}

	return config, config.validate()
}

// validate checks configuration values are usable. Credentials are not
// required here; they may arrive with each request.
func (c *Config) validate() error {
	if c.ProviderTimeout <= 0 {
		return &ConfigError{Field: "PROVIDER_TIMEOUT", Message: "must be positive"}
	}
	if c.BackendTimeout <= 0 {
		return &ConfigError{Field: "BACKEND_TIMEOUT", Message: "must be positive"}
	}
	if c.SessionIdleTimeout <= 0 {
		return &ConfigError{Field: "SESSION_IDLE_TIMEOUT", Message: "must be positive"}
	}
	if _, err := cron.ParseStandard(c.SessionSweepSchedule); err != nil {
		return &ConfigError{Field: "SESSION_SWEEP_SCHEDULE", Message: "invalid cron expression: " + err.Error()}
	}
	if c.FallbackSummary == "" {
		return &ConfigError{Field: "FALLBACK_SUMMARY", Message: "must not be empty"}
	}
	return nil
}

func loadCredentials() map[string]string {
	creds := make(map[string]string, len(credentialEnv))
	for key, env := range credentialEnv {
		if value := os.Getenv(env); value != "" {
			creds[key] = value
		}
	}
	return creds
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default if not set
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvOrDefaultDuration accepts Go durations ("30s") or plain seconds ("30")
func getEnvOrDefaultDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if seconds := getEnvOrDefaultInt(key, -1); seconds >= 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
