package params

import (
	"fmt"
	"maps"

	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// IsBuiltIn reports whether key is bound from EnvironmentConfig and therefore reserved.
func IsBuiltIn(key string) bool {
	switch key {
	case dwgate.PlaceholderDatabase, dwgate.PlaceholderWarehouse, dwgate.PlaceholderRole:
		return true
	default:
		return false
	}
}

// BuildPlaceholders returns the placeholder map for cfg.
//
// The map starts with cfg.Params; each map in overrides is applied on top in
// order, so later maps win. The built-in keys are set last from cfg. Binding a
// built-in key anywhere else is a configuration error.
func BuildPlaceholders(cfg *dwgate.EnvironmentConfig, overrides ...map[string]string) (map[string]string, error) {
	if cfg == nil {
		return nil, fmt.Errorf("environment config is required: %w", dwgate.ErrInvalidConfig)
	}

	result := make(map[string]string, 3+len(cfg.Params))

	layers := append([]map[string]string{cfg.Params}, overrides...)
	for _, layer := range layers {
		for key := range layer {
			if IsBuiltIn(key) {
				return nil, fmt.Errorf("placeholder %q is bound from the environment config and cannot be overridden: %w", key, dwgate.ErrInvalidConfig)
			}
		}
		maps.Copy(result, layer)
	}

	result[dwgate.PlaceholderDatabase] = cfg.Database
	result[dwgate.PlaceholderWarehouse] = cfg.Warehouse
	result[dwgate.PlaceholderRole] = cfg.Role

	return result, nil
}
