package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// ValidationService implements the Validator interface.
// Thread-Safety: NOT safe for concurrent Validate() calls on the same instance.
type ValidationService struct {
	connector      dwgate.Connector
	configProvider dwgate.ConfigProvider
	logger         dwgate.Logger
	reporter       dwgate.Reporter
}

// NewValidationService creates a new ValidationService. Panics on nil dependencies.
func NewValidationService(
	connector dwgate.Connector,
	configProvider dwgate.ConfigProvider,
	logger dwgate.Logger,
	reporter dwgate.Reporter,
) *ValidationService {
	if connector == nil {
		panic("connector cannot be nil")
	}
	if configProvider == nil {
		panic("configProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if reporter == nil {
		panic("reporter cannot be nil")
	}

	return &ValidationService{
		connector:      connector,
		configProvider: configProvider,
		logger:         logger,
		reporter:       reporter,
	}
}

// Validate runs the null, unique and count passes in that order against one
// session. Failing checks do not stop the run; they are returned together as
// a *dwgate.ValidationError once every check has been evaluated. A query that
// errors aborts the run with dwgate.ErrExecutionFailed.
func (s *ValidationService) Validate(ctx context.Context, config dwgate.ValidationConfig) (*dwgate.ValidationReport, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := withTimeout(ctx, config.Timeout)
	defer cancel()

	env := strings.ToUpper(config.Environment)

	envConfig, err := s.configProvider.LoadEnvironment(config.ProjectPath, config.Environment)
	if err != nil {
		return nil, err
	}

	rulesPath := s.rulesPath(config)
	s.logger.Verbose("Loading data quality rules from %s", rulesPath)
	rules, err := s.configProvider.LoadRules(rulesPath)
	if err != nil {
		return nil, err
	}
	s.logger.Verbose("Loaded %d rule(s)", rules.Len())

	report := &dwgate.ValidationReport{Environment: config.Environment}
	run := &checkRun{
		envConfig: envConfig,
		reporter:  s.reporter,
		report:    report,
	}

	err = withSession(ctx, s.connector, s.logger, func(session dwgate.Session) error {
		run.session = session
		return run.all(ctx, rules)
	})
	if err != nil {
		s.reporter.Summary(false, fmt.Sprintf("Data quality validation for %s environment aborted", env))
		return nil, err
	}

	failures := report.Failures()
	if len(failures) > 0 {
		s.reporter.Section(fmt.Sprintf("%d data quality check(s) failed for %s environment:", len(failures), env))
		for _, f := range failures {
			s.reporter.Fail(f.Description)
		}
		s.reporter.Summary(false, fmt.Sprintf("Data quality validation failed for %s environment", env))
		return report, &dwgate.ValidationError{Environment: config.Environment, Failures: failures}
	}

	s.reporter.Summary(true, fmt.Sprintf("All data quality checks passed for %s environment!", env))
	return report, nil
}

func (s *ValidationService) rulesPath(config dwgate.ValidationConfig) string {
	if config.RulesPath == "" {
		return filepath.Join(config.ProjectPath, dwgate.ConfigDir, dwgate.DefaultRulesFile)
	}
	return config.RulesPath
}

// checkRun evaluates one rule set against one session.
type checkRun struct {
	session   dwgate.Session
	envConfig *dwgate.EnvironmentConfig
	reporter  dwgate.Reporter
	report    *dwgate.ValidationReport
}

func (r *checkRun) all(ctx context.Context, rules *dwgate.RuleSet) error {
	if len(rules.NullChecks) > 0 {
		r.reporter.Section("Null checks")
		for _, rule := range rules.NullChecks {
			for _, column := range rule.Columns {
				if err := r.nullCheck(ctx, rule.Table, column); err != nil {
					return err
				}
			}
		}
	}

	if len(rules.UniqueChecks) > 0 {
		r.reporter.Section("Unique checks")
		for _, rule := range rules.UniqueChecks {
			for _, column := range rule.Columns {
				if err := r.uniqueCheck(ctx, rule.Table, column); err != nil {
					return err
				}
			}
		}
	}

	if len(rules.CountChecks) > 0 {
		r.reporter.Section("Count checks")
		for _, rule := range rules.CountChecks {
			if err := r.countCheck(ctx, rule.Table, rule.MinCount); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *checkRun) nullCheck(ctx context.Context, table, column string) error {
	var nulls int64
	if err := r.scan(ctx, nullCountQuery(r.qualify(table), column), &nulls); err != nil {
		return fmt.Errorf("null check on %s.%s: %w", table, column, err)
	}

	outcome := dwgate.CheckOutcome{Kind: dwgate.CheckNull, Table: table, Column: column, Passed: nulls == 0}
	if outcome.Passed {
		outcome.Description = fmt.Sprintf("%s.%s: No NULL values", table, column)
	} else {
		outcome.Description = fmt.Sprintf("%s.%s: %d NULL values found", table, column, nulls)
	}
	r.record(outcome)
	return nil
}

func (r *checkRun) uniqueCheck(ctx context.Context, table, column string) error {
	var total, distinct int64
	if err := r.scan(ctx, uniqueCountQuery(r.qualify(table), column), &total, &distinct); err != nil {
		return fmt.Errorf("unique check on %s.%s: %w", table, column, err)
	}

	outcome := dwgate.CheckOutcome{Kind: dwgate.CheckUnique, Table: table, Column: column, Passed: total == distinct}
	if outcome.Passed {
		outcome.Description = fmt.Sprintf("%s.%s: All values are unique", table, column)
	} else {
		outcome.Description = fmt.Sprintf("%s.%s: %d duplicate values found", table, column, total-distinct)
	}
	r.record(outcome)
	return nil
}

func (r *checkRun) countCheck(ctx context.Context, table string, minCount int64) error {
	var rows int64
	if err := r.scan(ctx, rowCountQuery(r.qualify(table)), &rows); err != nil {
		return fmt.Errorf("count check on %s: %w", table, err)
	}

	outcome := dwgate.CheckOutcome{Kind: dwgate.CheckCount, Table: table, Passed: rows >= minCount}
	if outcome.Passed {
		outcome.Description = fmt.Sprintf("%s: %d rows (meets minimum requirement)", table, rows)
	} else {
		outcome.Description = fmt.Sprintf("%s: %d rows (minimum %d required)", table, rows, minCount)
	}
	r.record(outcome)
	return nil
}

// scan runs a single-row count query. A query with no row scans as zero.
func (r *checkRun) scan(ctx context.Context, query string, dest ...*int64) error {
	targets := make([]any, len(dest))
	for i, d := range dest {
		targets[i] = d
	}

	err := r.session.QueryRow(ctx, query).Scan(targets...)
	if errors.Is(err, dwgate.ErrNoRows) {
		for _, d := range dest {
			*d = 0
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", dwgate.ErrExecutionFailed, err)
	}
	return nil
}

// record stores the outcome. Passing checks are reported immediately;
// failures are reported together once every pass has run.
func (r *checkRun) record(outcome dwgate.CheckOutcome) {
	r.report.Outcomes = append(r.report.Outcomes, outcome)
	if outcome.Passed {
		r.reporter.Pass(outcome.Description)
	}
}

// qualify prefixes table with the environment database, and with the schema
// when one is configured and table is not already qualified.
func (r *checkRun) qualify(table string) string {
	if r.envConfig.Schema != "" && !strings.Contains(table, ".") {
		return r.envConfig.Database + "." + r.envConfig.Schema + "." + table
	}
	return r.envConfig.Database + "." + table
}

// Verify ValidationService implements the Validator interface at compile time
var _ dwgate.Validator = (*ValidationService)(nil)
