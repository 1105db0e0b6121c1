package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "MONGO_URI", "MONGO_DATABASE", "MONGO_COLLECTION",
		"FEED_URL", "FEED_TIMEOUT", "REPORT_SOURCE", "IMPORT_ON_START",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "InterviewSpecs", cfg.MongoDatabase)
	assert.Equal(t, "transactions", cfg.MongoCollection)
	assert.Equal(t, "https://s3.amazonaws.com/roxiler.com/product_transaction.json", cfg.FeedURL)
	assert.Equal(t, 30*time.Second, cfg.FeedTimeout)
	assert.Equal(t, ReportSourceFeed, cfg.ReportSource)
	assert.True(t, cfg.ImportOnStart)
	assert.Equal(t, ":3000", cfg.Addr())
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("MONGO_URI", "mongodb+srv://cluster.example.net")
	t.Setenv("FEED_TIMEOUT", "5s")
	t.Setenv("REPORT_SOURCE", "store")
	t.Setenv("IMPORT_ON_START", "false")
	t.Setenv("LOG_FORMAT", "console")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb+srv://cluster.example.net", cfg.MongoURI)
	assert.Equal(t, 5*time.Second, cfg.FeedTimeout)
	assert.Equal(t, ReportSourceStore, cfg.ReportSource)
	assert.False(t, cfg.ImportOnStart)
	assert.Equal(t, "console", cfg.LogFormat)
	require.NoError(t, cfg.Validate())
}

func TestLoadIgnoresUnparseableValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("FEED_TIMEOUT", "soon")
	t.Setenv("IMPORT_ON_START", "maybe")

	cfg := Load()

	assert.Equal(t, 30*time.Second, cfg.FeedTimeout)
	assert.True(t, cfg.ImportOnStart)
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := &Config{
		Port:            "70000",
		MongoURI:        "postgres://localhost",
		MongoDatabase:   "",
		MongoCollection: "transactions",
		FeedURL:         "ftp://example.com/feed.json",
		ReportSource:    "cache",
		LogFormat:       "xml",
	}

	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "invalid port 70000")
	assert.Contains(t, msg, "invalid mongo URI")
	assert.Contains(t, msg, "mongo database name cannot be empty")
	assert.Contains(t, msg, "invalid feed URL scheme 'ftp'")
	assert.Contains(t, msg, "invalid report source 'cache'")
	assert.Contains(t, msg, "invalid log format 'xml'")
}

func TestValidateRejectsNonNumericPort(t *testing.T) {
	cfg := Load()
	cfg.Port = "http"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port 'http'")
}
