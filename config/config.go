package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the server reads from the environment.
type Config struct {
	Env   string
	Port  string
	Auth  AuthConfig
	Redis RedisConfig

	CORSOrigins         []string
	IssueRateLimit      int
	LocationDetectDelay time.Duration
	SeedSampleData      bool
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	Domain    string
}

type RedisConfig struct {
	Address     string
	Password    string
	QueuePrefix string
}

func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

const devJWTSecret = "civic-reporter-dev-secret"

// Load reads an optional .env file and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}

	cfg := Config{
		Env:  getEnv("GO_ENV", "development"),
		Port: getEnv("PORT", "8080"),
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", devJWTSecret),
			TokenTTL:  getEnvDuration("TOKEN_TTL", 72*time.Hour),
			Domain:    os.Getenv("DOMAIN"),
		},
		Redis: RedisConfig{
			Address:     os.Getenv("REDIS_ADDRESS"),
			Password:    os.Getenv("REDIS_PASSWORD"),
			QueuePrefix: getEnv("REDIS_QUEUE_FOR_ISSUE_LIMIT", "issue_limit"),
		},
		CORSOrigins:         splitList(getEnv("CORS_ORIGINS", "*")),
		IssueRateLimit:      getEnvInt("ISSUE_RATE_LIMIT", 20),
		LocationDetectDelay: getEnvDuration("LOCATION_DETECT_DELAY", 2*time.Second),
		SeedSampleData:      getEnvBool("SEED_SAMPLE_DATA", true),
	}

	if cfg.IsProduction() && cfg.Auth.JWTSecret == devJWTSecret {
		slog.Warn("JWT_SECRET is not set, using the development secret")
	}
	return cfg
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
