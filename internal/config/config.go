package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the ledger CLI.
type Config struct {
	LogLevel string
	Strict   bool
}

// Load reads configuration from environment variables, applies defaults,
// and validates values. It returns an error for any invalid value.
func Load() (*Config, error) {
	logLevel := getStr("LOG_LEVEL", "info")
	if !isValidLogLevel(logLevel) {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %q, must be one of: debug, info, warn, error", logLevel)
	}

	strict, err := getBool("STRICT", false)
	if err != nil {
		return nil, fmt.Errorf("invalid STRICT: %w", err)
	}

	return &Config{
		LogLevel: logLevel,
		Strict:   strict,
	}, nil
}

func getStr(key, defaultVal string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v
}

func getBool(key string, defaultVal bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	return strconv.ParseBool(v)
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
