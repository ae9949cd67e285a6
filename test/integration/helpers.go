//go:build integration

package integration

import (
	"os"
	"testing"

	"github.com/astria-api/astria-go/pkg/astria"
	"github.com/astria-api/astria-go/pkg/astria/envconfig"
	"github.com/astria-api/astria-go/pkg/astriaclient"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIKey  string
	TuneID  string
	Verbose bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:  os.Getenv("ASTRIA_API_KEY"),
		TuneID:  os.Getenv("ASTRIA_TEST_TUNE_ID"),
		Verbose: os.Getenv("ASTRIA_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips test if required config is missing.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skip("ASTRIA_API_KEY not set, skipping integration test")
	}
}

// NewClient builds a client from the ASTRIA_* environment.
func (config *TestConfig) NewClient(t *testing.T) astria.Client {
	t.Helper()

	provider, err := envconfig.New("")
	if err != nil {
		t.Fatalf("loading configuration: %v", err)
	}

	client, err := astriaclient.NewWithProvider(&astria.Config{
		Debug:  config.Verbose,
		Logger: testLogger{t: t},
	}, provider)
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}

	return client
}

type testLogger struct {
	t *testing.T
}

func (l testLogger) Debug(msg string, fields map[string]interface{}) { l.t.Log("DEBUG", msg, fields) }
func (l testLogger) Info(msg string, fields map[string]interface{})  { l.t.Log("INFO", msg, fields) }
func (l testLogger) Warn(msg string, fields map[string]interface{})  { l.t.Log("WARN", msg, fields) }
func (l testLogger) Error(msg string, fields map[string]interface{}) { l.t.Log("ERROR", msg, fields) }
