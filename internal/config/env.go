package config

import (
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

func envString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// envParsed returns defaultValue when key is unset, empty or fails to parse
func envParsed[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := parse(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func envInt(key string, defaultValue int) int {
	return envParsed(key, defaultValue, strconv.Atoi)
}

func envBool(key string, defaultValue bool) bool {
	return envParsed(key, defaultValue, strconv.ParseBool)
}

func envDuration(key string, defaultValue time.Duration) time.Duration {
	return envParsed(key, defaultValue, time.ParseDuration)
}

// envDecimal also rejects values that are not positive; every rewards tunable is a rate or a count
func envDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	d := envParsed(key, decimal.Zero, decimal.NewFromString)
	if !d.IsPositive() {
		return defaultValue
	}
	return d
}
