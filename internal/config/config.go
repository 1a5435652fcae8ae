package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the console.
type Config struct {
	App      AppConfig
	API      APIConfig
	Realtime RealtimeConfig
	UI       UIConfig
	Logger   LoggerConfig
}

// AppConfig identifies the running application.
type AppConfig struct {
	Name    string
	Env     string
	Version string
}

// APIConfig holds the backend collaborator connection values.
type APIConfig struct {
	BaseURL               string
	Token                 string
	RequestTimeoutSeconds int
}

// RealtimeConfig holds the notification feed connection values.
type RealtimeConfig struct {
	URL     string
	Enabled bool
}

// UIConfig controls list paging and search behavior.
type UIConfig struct {
	DefaultPageSize int
	DebounceMillis  int
}

// LoggerConfig configures logging behavior. The console owns the
// terminal, so logs go to a file rather than stdout.
type LoggerConfig struct {
	Level string
	Path  string
}

// Load reads configuration from environment variables, applying defaults
// where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "ticket-console"),
			Env:     getEnv("APP_ENV", "development"),
			Version: getEnv("APP_VERSION", "dev"),
		},
		API: APIConfig{
			BaseURL:               strings.TrimRight(getEnv("API_BASE_URL", "http://127.0.0.1:5000/api"), "/"),
			Token:                 os.Getenv("API_TOKEN"),
			RequestTimeoutSeconds: getEnvAsInt("API_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Realtime: RealtimeConfig{
			URL:     getEnv("REALTIME_URL", ""),
			Enabled: getEnvAsBool("REALTIME_ENABLED", true),
		},
		UI: UIConfig{
			DefaultPageSize: getEnvAsInt("UI_DEFAULT_PAGE_SIZE", 5),
			DebounceMillis:  getEnvAsInt("UI_SEARCH_DEBOUNCE_MILLIS", 500),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			Path:  getEnv("LOG_PATH", "ticket-console.log"),
		},
	}

	return cfg, nil
}

// RequestTimeout returns the configured request timeout duration.
func (a APIConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Debounce returns the search debounce interval.
func (u UIConfig) Debounce() time.Duration {
	if u.DebounceMillis <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(u.DebounceMillis) * time.Millisecond
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
