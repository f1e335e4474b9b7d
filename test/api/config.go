/*
Copyright 2026 the GoREST Conformance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/gorest-qa/conformance/pkg/logging"
	"github.com/gorest-qa/conformance/pkg/twin"
)

const (
	DefaultLogDir    = "logs"
	DefaultReportDir = "html-report"
)

var ErrMissingConfiguration = errors.New("missing required configuration")

// TestConfig is read once per run and never mutated afterwards.
type TestConfig struct {
	BaseURL           string
	AuthToken         string
	RequestTimeout    time.Duration
	LogLevel          zapcore.Level
	LogDir            string
	ReportDir         string
	ValidateResponses bool
	UseTwin           bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	level, err := logging.ParseLevel(getWithDefault("LOG_LEVEL", "debug"))
	if err != nil {
		return nil, err
	}

	timeout, err := getDuration("REQUEST_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}

	config := &TestConfig{
		BaseURL:           strings.TrimSuffix(os.Getenv("BASE_URL"), "/"),
		AuthToken:         os.Getenv("GOREST_ACCESS_TOKEN"),
		RequestTimeout:    timeout,
		LogLevel:          level,
		LogDir:            getWithDefault("LOG_DIR", DefaultLogDir),
		ReportDir:         getWithDefault("REPORT_DIR", DefaultReportDir),
		ValidateResponses: getBoolWithDefault("VALIDATE_RESPONSES", true),
		UseTwin:           getBoolWithDefault("GOREST_USE_TWIN", false),
	}

	// The twin supplies both the address and the credential.
	if config.UseTwin && config.AuthToken == "" {
		config.AuthToken = twin.DefaultToken
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// WithBaseURL returns a copy of the configuration pointing at another server.
func (c *TestConfig) WithBaseURL(baseURL string) *TestConfig {
	out := *c
	out.BaseURL = strings.TrimSuffix(baseURL, "/")

	return &out
}

func getWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDuration gets a duration from an environment variable, or the default when unset.
func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}

	return duration, nil
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		".env",          // From the repository root
		"../../../.env", // From test/api/suites directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Already exported variables win over the file.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	if config.BaseURL == "" && !config.UseTwin {
		missing = append(missing, "BASE_URL")
	}

	if config.AuthToken == "" {
		missing = append(missing, "GOREST_ACCESS_TOKEN")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s. Please set these environment variables or add them to a .env file", ErrMissingConfiguration, strings.Join(missing, ", "))
	}

	return nil
}
