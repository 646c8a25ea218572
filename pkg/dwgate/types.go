package dwgate

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// EnvironmentConfig is the per-environment document config/<env>.yml.
// It is loaded once per invocation and never mutated afterwards.
type EnvironmentConfig struct {
	Database  string `yaml:"database" validate:"required,identifier"`
	Warehouse string `yaml:"warehouse" validate:"required,identifier"`
	Role      string `yaml:"role" validate:"required,identifier"`

	// Schema optionally qualifies unqualified table names in data-quality checks.
	Schema string `yaml:"schema,omitempty" validate:"omitempty,identifier"`

	// Protected environments require operator approval before deployment.
	Protected bool `yaml:"protected,omitempty"`

	// Params are extra placeholder bindings available to SQL artifacts.
	Params map[string]string `yaml:"params,omitempty" validate:"omitempty,dive,keys,placeholder,endkeys"`
}

// IsKnownEnvironment reports whether env belongs to the closed set of environments.
func IsKnownEnvironment(env string) bool {
	return slices.Contains(Environments, env)
}

// DeploymentConfig contains all parameters needed for a deployment operation.
type DeploymentConfig struct {
	// ProjectPath is the root directory containing config/ and scripts/
	ProjectPath string

	// Environment selects config/<env>.yml and scripts/<env>/
	Environment string

	// Parameters are extra placeholder bindings from the command line.
	// They override EnvironmentConfig.Params but never the built-in keys.
	Parameters map[string]string

	// StrictPlaceholders rejects artifacts that still contain placeholder
	// tokens after substitution.
	StrictPlaceholders bool

	// Timeout bounds the whole deployment. Zero means no limit.
	Timeout time.Duration

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the DeploymentConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *DeploymentConfig) Validate() error {
	var errs []error

	if c.ProjectPath == "" {
		errs = append(errs, fmt.Errorf("ProjectPath is required: %w", ErrInvalidConfig))
	}

	if c.Environment == "" {
		errs = append(errs, fmt.Errorf("Environment is required: %w", ErrUnknownEnvironment))
	} else if !IsKnownEnvironment(c.Environment) {
		errs = append(errs, fmt.Errorf("environment %q is not one of %v: %w", c.Environment, Environments, ErrUnknownEnvironment))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// ValidationConfig contains all parameters needed for a data-quality run.
type ValidationConfig struct {
	// ProjectPath is the root directory containing config/
	ProjectPath string

	// Environment selects config/<env>.yml
	Environment string

	// RulesPath overrides config/data_quality_rules.yml when set.
	RulesPath string

	// Timeout bounds the whole run. Zero means no limit.
	Timeout time.Duration

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the ValidationConfig has all required fields and valid values.
func (c *ValidationConfig) Validate() error {
	var errs []error

	if c.ProjectPath == "" {
		errs = append(errs, fmt.Errorf("ProjectPath is required: %w", ErrInvalidConfig))
	}

	if c.Environment == "" {
		errs = append(errs, fmt.Errorf("Environment is required: %w", ErrUnknownEnvironment))
	} else if !IsKnownEnvironment(c.Environment) {
		errs = append(errs, fmt.Errorf("environment %q is not one of %v: %w", c.Environment, Environments, ErrUnknownEnvironment))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// SQLArtifact is one deployable .sql file.
// All paths use forward slashes.
type SQLArtifact struct {
	Folder       string // one of DeploymentFolders
	Path         string // path as opened on the filesystem
	RelativePath string // path relative to the project root: "scripts/dev/ddl/01_init.sql"
	Content      string // raw, unsubstituted text
	Checksum     string // SHA-256 of the raw content
}

// Statement is a single executable unit split from an artifact.
type Statement struct {
	Index int // 1-based position within the artifact
	SQL   string
}

// DeploymentResult summarizes a successful deployment.
type DeploymentResult struct {
	Environment string
	Folders     int    // folders that contributed at least one artifact
	Files       int    // artifacts executed
	Statements  int    // statements executed
	Fingerprint string // SHA-256 over artifact checksums in execution order
}

// CheckKind identifies one of the three validation families.
type CheckKind string

const (
	CheckNull   CheckKind = "null_checks"
	CheckUnique CheckKind = "unique_checks"
	CheckCount  CheckKind = "count_checks"
)

// CheckKinds is the order in which the validation families run.
var CheckKinds = []CheckKind{CheckNull, CheckUnique, CheckCount}

// NullCheck asserts that none of Columns contain NULL values.
type NullCheck struct {
	Table   string   `yaml:"table" validate:"required,identifier"`
	Columns []string `yaml:"columns" validate:"required,min=1,dive,required,identifier"`
}

// UniqueCheck asserts that every column in Columns holds distinct values.
type UniqueCheck struct {
	Table   string   `yaml:"table" validate:"required,identifier"`
	Columns []string `yaml:"columns" validate:"required,min=1,dive,required,identifier"`
}

// CountCheck asserts that Table holds at least MinCount rows.
type CountCheck struct {
	Table    string `yaml:"table" validate:"required,identifier"`
	MinCount int64  `yaml:"min_count" validate:"gte=0"`
}

// RuleSet groups data-quality rules by kind, each in document order.
type RuleSet struct {
	NullChecks   []NullCheck   `yaml:"null_checks" validate:"dive"`
	UniqueChecks []UniqueCheck `yaml:"unique_checks" validate:"dive"`
	CountChecks  []CountCheck  `yaml:"count_checks" validate:"dive"`
}

// Len returns the total number of rules across all kinds.
func (r *RuleSet) Len() int {
	return len(r.NullChecks) + len(r.UniqueChecks) + len(r.CountChecks)
}

// CheckOutcome is the immutable result of evaluating one check.
// Column is empty for count checks.
type CheckOutcome struct {
	Kind        CheckKind
	Table       string
	Column      string
	Description string
	Passed      bool
}

// ValidationReport holds every outcome of a validation run in evaluation order.
type ValidationReport struct {
	Environment string
	Outcomes    []CheckOutcome
}

// Failures returns the failing outcomes, preserving evaluation order.
func (r *ValidationReport) Failures() []CheckOutcome {
	var failed []CheckOutcome
	for _, o := range r.Outcomes {
		if !o.Passed {
			failed = append(failed, o)
		}
	}
	return failed
}

// Passed reports whether every check succeeded.
func (r *ValidationReport) Passed() bool {
	return len(r.Failures()) == 0
}
