package params

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vvka-141/dwgate/pkg/dwgate"
)

var placeholderKeyPattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// IsPlaceholderKey reports whether key is a valid UPPER_SNAKE_CASE placeholder name.
func IsPlaceholderKey(key string) bool {
	return placeholderKeyPattern.MatchString(key)
}

// ParseKeyValuePairs converts a slice of "KEY=value" strings into a map.
//
// Example:
//
//	params, err := ParseKeyValuePairs([]string{"SCHEMA_NAME=RAW", "RETENTION_DAYS=30"})
//	// Returns: map[string]string{"SCHEMA_NAME": "RAW", "RETENTION_DAYS": "30"}
func ParseKeyValuePairs(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("parameter %q is not in KEY=value format (example: --param SCHEMA_NAME=RAW): %w", pair, dwgate.ErrInvalidConfig)
		}

		if key == "" {
			return nil, fmt.Errorf("parameter has empty key: %q: %w", pair, dwgate.ErrInvalidConfig)
		}

		if !IsPlaceholderKey(key) {
			return nil, fmt.Errorf("parameter key %q must be UPPER_SNAKE_CASE: %w", key, dwgate.ErrInvalidConfig)
		}

		result[key] = value
	}

	return result, nil
}
