package config

import (
	"os"
	"strconv"
)

// Environment variables read by the hosts
const (
	EnvConfigDir = "SKYRAID_CONFIG_DIR"
	EnvSaveFile  = "SKYRAID_SAVE_FILE"
	EnvSeed      = "SKYRAID_SEED"
	EnvLogLevel  = "SKYRAID_LOG_LEVEL"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt64 returns the environment variable parsed as an int64,
// or fallback if it is unset or malformed.
func GetEnvInt64(key string, fallback int64) int64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
