package environment

import (
	"os"
	"strconv"
	"strings"
)

// GetString gets the environment var as a string, an empty value counts as unset
func GetString(varName string, defaultValue string) string {
	val := strings.TrimSpace(os.Getenv(varName))
	if val == "" {
		return defaultValue
	}

	return val
}

// GetInt64 gets the env var as an int
func GetInt64(varName string, defaultValue int64) int64 {
	val, ok := os.LookupEnv(varName)
	if !ok {
		return defaultValue
	}

	iVal, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
	if err != nil {
		return defaultValue
	}

	return iVal
}

// GetBool gets the env var as a boolean, accepting anything strconv.ParseBool does
func GetBool(varName string, defaultValue bool) bool {
	bVal, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(varName)))
	if err != nil {
		return defaultValue
	}

	return bVal
}
