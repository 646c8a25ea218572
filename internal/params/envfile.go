package params

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// ParseEnvFile parses placeholder bindings in .env format.
//
// Parsing follows godotenv: # comments, blank lines, optional "export"
// prefixes and single or double quoted values are supported. Every key must
// be a valid placeholder key.
func ParseEnvFile(content []byte) (map[string]string, error) {
	result, err := godotenv.Unmarshal(string(content))
	if err != nil {
		return nil, fmt.Errorf("invalid params file: %v: %w", err, dwgate.ErrInvalidConfig)
	}

	for key := range result {
		if !IsPlaceholderKey(key) {
			return nil, fmt.Errorf("params file key %q must be UPPER_SNAKE_CASE: %w", key, dwgate.ErrInvalidConfig)
		}
	}

	return result, nil
}
