package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	MetricsPort string

	Database DatabaseConfig
	Firebase FirebaseConfig
	Session  SessionConfig
	Logging  LoggingConfig

	SearchStateSecret  string
	MaintenanceToken   string
	LoginRatePerMinute int
	LoginRateBurst     int
}

type DatabaseConfig struct {
	PostgresUrl     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	RunMigrations   bool
}

type FirebaseConfig struct {
	CredentialsPath string
	APIKey          string
}

type SessionConfig struct {
	CookieName   string
	CookieSecure bool
	TTL          time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads the configuration from the environment, after loading a .env file when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
		Database: DatabaseConfig{
			PostgresUrl:     getEnv("POSTGRES_URL", ""),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			RunMigrations:   getEnvBool("DB_RUN_MIGRATIONS", true),
		},
		Firebase: FirebaseConfig{
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase_credentials.json"),
			APIKey:          getEnv("FIREBASE_API_KEY", ""),
		},
		Session: SessionConfig{
			CookieName:   getEnv("SESSION_COOKIE_NAME", "localflow_session"),
			CookieSecure: getEnvBool("SESSION_COOKIE_SECURE", true),
			TTL:          getEnvDuration("SESSION_TTL", 5*24*time.Hour),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		SearchStateSecret:  getEnv("SEARCH_STATE_SECRET", ""),
		MaintenanceToken:   getEnv("MAINTENANCE_TOKEN", ""),
		LoginRatePerMinute: getEnvInt("LOGIN_RATE_PER_MINUTE", 20),
		LoginRateBurst:     getEnvInt("LOGIN_RATE_BURST", 5),
	}
}

// IsProduction reports whether ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.Database.PostgresUrl == "" {
		return fmt.Errorf("POSTGRES_URL environment variable not set")
	}
	if c.Firebase.APIKey == "" {
		return fmt.Errorf("FIREBASE_API_KEY environment variable not set")
	}
	if c.IsProduction() && c.SearchStateSecret == "" {
		return fmt.Errorf("SEARCH_STATE_SECRET is required in production")
	}
	if c.Session.TTL < 5*time.Minute || c.Session.TTL > 14*24*time.Hour {
		return fmt.Errorf("SESSION_TTL must be between 5m and 336h, got %s", c.Session.TTL)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
