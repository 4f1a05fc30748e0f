package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		if value == "" {
			require.NoError(t, os.Unsetenv(name))
			continue
		}
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		// Restore original environment
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that Load sets the expected default values for
// port, log level, and database name when only the required URI is set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"DROPTASK_DATABASE_URI":     "mongodb://localhost:27017",
		"DROPTASK_DATABASE_NAME":    "",
		"DROPTASK_SERVER_PORT":      "",
		"DROPTASK_SERVER_LOG_LEVEL": "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 5000, cfg.Server.Port, "Default server port should be 5000")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "DropTaskDB", cfg.Database.Name, "Default database name should be 'DropTaskDB'")
}

// TestLoadFromEnv verifies that Load correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"DROPTASK_SERVER_PORT":      "9090",
		"DROPTASK_SERVER_LOG_LEVEL": "debug",
		"DROPTASK_DATABASE_URI":     "mongodb://db.internal:27017",
		"DROPTASK_DATABASE_NAME":    "droptask_test",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.Database.URI)
	assert.Equal(t, "droptask_test", cfg.Database.Name)
}

// TestLoadMissingURI verifies that validation rejects a config without a
// database URI.
func TestLoadMissingURI(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"DROPTASK_DATABASE_URI": "",
	})
	defer cleanup()

	cfg, err := Load()

	require.Error(t, err, "Load() should fail without a database URI")
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid configuration")
}

// TestLoadInvalidLogLevel verifies that an unknown log level fails validation.
func TestLoadInvalidLogLevel(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"DROPTASK_DATABASE_URI":     "mongodb://localhost:27017",
		"DROPTASK_SERVER_LOG_LEVEL": "loud",
	})
	defer cleanup()

	cfg, err := Load()

	require.Error(t, err, "Load() should fail with an unknown log level")
	assert.Nil(t, cfg)
}
