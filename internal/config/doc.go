// Package config loads the YAML documents of a dwgate project.
//
// Two documents are read, both relative to the project root:
//
//   - config/<env>.yml: the EnvironmentConfig (database, warehouse, role,
//     optional schema, protected flag and extra placeholder params)
//   - config/data_quality_rules.yml: the RuleSet under a data_quality_checks key
//
// Documents are decoded with gopkg.in/yaml.v3 (unknown keys are rejected) and
// then validated with go-playground/validator. Every problem is reported, not
// just the first, and all errors wrap dwgate.ErrInvalidConfig.
package config
