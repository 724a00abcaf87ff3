package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	return GetEnvsOrSkip(t, key)[0]
}

// GetEnvsOrSkip returns the values of keys in order and skips the test
// unless every one of them is set.
func GetEnvsOrSkip(t *testing.T, keys ...string) []string {
	t.Helper()
	values := make([]string, len(keys))
	var missing []string
	for i, key := range keys {
		values[i] = os.Getenv(key)
		if values[i] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		t.Skipf("Environment variables %v are not set, skipping test", missing)
	}
	return values
}
