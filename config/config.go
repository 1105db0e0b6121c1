package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ReportSourceFeed  = "feed"
	ReportSourceStore = "store"
)

type Config struct {
	// HTTP server
	Port string

	// Mongo
	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	// Remote feed
	FeedURL     string
	FeedTimeout time.Duration

	// ReportSource selects where the report routes read transactions from.
	ReportSource  string
	ImportOnStart bool

	LogLevel  string
	LogFormat string
}

// Load reads .env when present and builds the configuration from the
// environment. Unset variables fall back to the defaults.
func Load() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		Port: getEnv("PORT", "3000"),

		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getEnv("MONGO_DATABASE", "InterviewSpecs"),
		MongoCollection: getEnv("MONGO_COLLECTION", "transactions"),

		FeedURL:     getEnv("FEED_URL", "https://s3.amazonaws.com/roxiler.com/product_transaction.json"),
		FeedTimeout: getEnvDuration("FEED_TIMEOUT", 30*time.Second),

		ReportSource:  getEnv("REPORT_SOURCE", ReportSourceFeed),
		ImportOnStart: getEnvBool("IMPORT_ON_START", true),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

// Validate returns every configuration problem in a single error.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if !strings.HasPrefix(c.MongoURI, "mongodb://") && !strings.HasPrefix(c.MongoURI, "mongodb+srv://") {
		errs = append(errs, fmt.Sprintf("invalid mongo URI '%s': must start with mongodb:// or mongodb+srv://", c.MongoURI))
	}
	if c.MongoDatabase == "" {
		errs = append(errs, "mongo database name cannot be empty")
	}
	if c.MongoCollection == "" {
		errs = append(errs, "mongo collection name cannot be empty")
	}

	if u, err := url.Parse(c.FeedURL); err != nil {
		errs = append(errs, fmt.Sprintf("invalid feed URL '%s': %v", c.FeedURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, fmt.Sprintf("invalid feed URL scheme '%s': must be http or https", u.Scheme))
	}
	if c.FeedTimeout < 0 {
		errs = append(errs, fmt.Sprintf("invalid feed timeout %v: must not be negative", c.FeedTimeout))
	}

	if c.ReportSource != ReportSourceFeed && c.ReportSource != ReportSourceStore {
		errs = append(errs, fmt.Sprintf("invalid report source '%s': must be %s or %s", c.ReportSource, ReportSourceFeed, ReportSourceStore))
	}

	if c.LogFormat != "json" && c.LogFormat != "console" {
		errs = append(errs, fmt.Sprintf("invalid log format '%s': must be json or console", c.LogFormat))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
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
