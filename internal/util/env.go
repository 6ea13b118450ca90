package util

import "os"

// Getenv will return an environment variable or a default value
func Getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val != "" {
		return val
	}

	return defaultValue
}

// SetEnv sets an environment variable and returns a function that restores
// the previous value. Intended for tests.
func SetEnv(key, value string) func() {
	prev, found := os.LookupEnv(key)
	_ = os.Setenv(key, value)

	return func() {
		if found {
			_ = os.Setenv(key, prev)
			return
		}

		_ = os.Unsetenv(key)
	}
}
