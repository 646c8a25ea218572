package dwgate

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := deployer.Deploy(ctx, config)
//	if errors.Is(err, dwgate.ErrExecutionFailed) {
//	    // a statement failed; earlier statements stay applied
//	}
var (
	// ErrInvalidConfig indicates an environment or rule document is missing or malformed.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownEnvironment indicates the environment selector is outside the closed set.
	ErrUnknownEnvironment = errors.New("unknown environment")

	// ErrConnectionFailed indicates the warehouse session could not be established.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrApprovalDenied indicates the operator denied deployment to a protected environment.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrExecutionFailed indicates a SQL statement or check query failed.
	ErrExecutionFailed = errors.New("execution failed")

	// ErrValidationFailed indicates at least one data-quality check did not pass.
	ErrValidationFailed = errors.New("data quality validation failed")

	// ErrUnsupportedDriver indicates the configured warehouse driver is unknown.
	ErrUnsupportedDriver = errors.New("unsupported warehouse driver")

	// ErrNoRows is returned by Row.Scan when a query produced no row.
	ErrNoRows = errors.New("no rows in result set")
)

// StatementError reports the statement that aborted a deployment.
type StatementError struct {
	Path      string // artifact path relative to the project root
	Index     int    // 1-based position of the statement within its artifact
	Statement string
	Err       error
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("statement %d in %s failed: %v\n  %s",
		e.Index, e.Path, e.Err, Preview(e.Statement, MaxErrorPreviewLength))
}

// Unwrap exposes both the driver error and ErrExecutionFailed to errors.Is.
func (e *StatementError) Unwrap() []error {
	return []error{ErrExecutionFailed, e.Err}
}

// ValidationError carries every failing check of a validation run, in the
// order the checks were evaluated.
type ValidationError struct {
	Environment string
	Failures    []CheckOutcome
}

func (e *ValidationError) Error() string {
	descriptions := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		descriptions[i] = f.Description
	}
	return fmt.Sprintf("%d data quality check(s) failed for %s: %s",
		len(e.Failures), strings.ToUpper(e.Environment), strings.Join(descriptions, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// usageErrorPatterns are prefixes of the errors cobra and pflag produce for
// command-line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUnknownEnvironment):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrUnsupportedDriver):
		return ExitConfigError
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrValidationFailed):
		return ExitValidationFailed
	case errors.Is(err, ErrExecutionFailed):
		return ExitExecutionFailed
	}

	errStr := err.Error()
	for _, p := range usageErrorPatterns {
		if strings.HasPrefix(errStr, p) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

// Preview returns s collapsed to a single line and truncated to max characters.
func Preview(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
