package utils

import (
	"log"
	"os"
	"strconv"
)

// GetEnvString returns the environment value for key, or the default when the
// variable is unset.
func GetEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvInt returns the environment value for key parsed as an int. Unset or
// unparseable values fall back to the default; these helpers run before the
// structured logger exists, so parse failures go to the standard logger.
func GetEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error parsing %s: %v, will use default value", key, err)
		return defaultValue
	}
	return intValue
}
