// internal/config/config.go

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	Auth        AuthConfig
	Apify       ApifyConfig
	Trend       TrendConfig
	AI          AIConfig
	NATS        NATSConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CorsOrigins     []string
}

// AuthConfig holds session token configuration.
type AuthConfig struct {
	TokenSecret string
	TokenExpiry time.Duration
}

// ApifyConfig holds scraping provider configuration.
type ApifyConfig struct {
	Token   string
	BaseURL string
}

// TrendConfig holds trend acquisition configuration.
type TrendConfig struct {
	PollMaxAttempts int
	PollInterval    time.Duration
	DefaultLimit    int
	EventsTopic     string
}

// AIConfig holds generative model configuration.
type AIConfig struct {
	APIKey string
	APIURL string
	Model  string
}

// NATSConfig holds the optional event bus configuration. An empty URL
// disables publishing.
type NATSConfig struct {
	URL            string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectTimeout time.Duration
}

// Load loads configuration from environment variables, reading a local .env
// file first if one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	config := Config{
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 90*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			CorsOrigins:     getEnvAsSlice("SERVER_CORS_ORIGINS", []string{"*"}),
		},
		Auth: AuthConfig{
			TokenSecret: getEnv("AUTH_TOKEN_SECRET", ""),
			TokenExpiry: getEnvAsDuration("AUTH_TOKEN_EXPIRY", 24*time.Hour),
		},
		Apify: ApifyConfig{
			Token:   getEnv("APIFY_TOKEN", ""),
			BaseURL: getEnv("APIFY_BASE_URL", ""),
		},
		Trend: TrendConfig{
			PollMaxAttempts: getEnvAsInt("TREND_POLL_MAX_ATTEMPTS", 30),
			PollInterval:    getEnvAsDuration("TREND_POLL_INTERVAL", 2*time.Second),
			DefaultLimit:    getEnvAsInt("TREND_DEFAULT_LIMIT", 20),
			EventsTopic:     getEnv("TREND_EVENTS_TOPIC", "trends"),
		},
		AI: AIConfig{
			APIKey: getEnv("ANTHROPIC_API_KEY", ""),
			APIURL: getEnv("ANTHROPIC_API_URL", ""),
			Model:  getEnv("ANTHROPIC_MODEL", ""),
		},
		NATS: NATSConfig{
			URL:            getEnv("NATS_URL", ""),
			MaxReconnects:  getEnvAsInt("NATS_MAX_RECONNECTS", 10),
			ReconnectWait:  getEnvAsDuration("NATS_RECONNECT_WAIT", 1*time.Second),
			ConnectTimeout: getEnvAsDuration("NATS_CONNECT_TIMEOUT", 2*time.Second),
		},
	}

	return config, validate(config)
}

// validate checks if config is valid. A missing token secret is fatal: the
// process must not come up issuing unsigned sessions.
func validate(config Config) error {
	if config.Auth.TokenSecret == "" {
		return fmt.Errorf("AUTH_TOKEN_SECRET must be set")
	}

	if config.Trend.PollMaxAttempts <= 0 {
		return fmt.Errorf("TREND_POLL_MAX_ATTEMPTS must be positive")
	}

	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
