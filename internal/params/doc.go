// Package params builds the placeholder map applied to SQL artifacts.
//
// Every deployment binds three built-in placeholders from the environment
// configuration:
//
//   - {DATABASE_NAME}  - EnvironmentConfig.Database
//   - {WAREHOUSE_NAME} - EnvironmentConfig.Warehouse
//   - {ROLE_NAME}      - EnvironmentConfig.Role
//
// Extra keys come from the params section of config/<env>.yml, from a
// --params-file in .env format and from repeated --param KEY=VALUE flags,
// in increasing order of precedence. The built-in keys cannot be rebound.
//
// Placeholder keys are UPPER_SNAKE_CASE: an uppercase letter followed by
// uppercase letters, digits or underscores.
//
// # Example Usage
//
//	cli, err := params.ParseKeyValuePairs([]string{"SCHEMA_NAME=RAW"})
//	placeholders, err := params.BuildPlaceholders(envConfig, cli)
//	// placeholders["DATABASE_NAME"] == envConfig.Database
package params
