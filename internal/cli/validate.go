package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vvka-141/dwgate/internal/logging"
	"github.com/vvka-141/dwgate/internal/services"
	"github.com/vvka-141/dwgate/internal/ui"
	"github.com/vvka-141/dwgate/pkg/dwgate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run data quality checks against an environment",
	Long: `Validate evaluates the rules of config/data_quality_rules.yml against the
tables of one environment.

Checks run in three passes: null checks, unique checks, then count checks.
A failing check does not stop the run; every failure is listed at the end
and the command exits with code 15. A query that errors (for example a
missing table) aborts the run with code 13.

Validation only reads from the warehouse and never asks for approval.

Rule document:
  data_quality_checks:
    null_checks:   [{table: ORDERS, columns: [ID, CUSTOMER_ID]}]
    unique_checks: [{table: ORDERS, columns: [ID]}]
    count_checks:  [{table: ORDERS, min_count: 100}]

Examples:
  dwgate validate -e dev
  dwgate validate -e prod -C ./warehouse --rules ./checks/nightly.yml`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

type validateFlagValues struct {
	environment, project, rules string
	timeout                     time.Duration
}

var validateFlags validateFlagValues

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFlags.environment, "environment", "e", "",
		"Target environment: dev|prod")
	validateCmd.Flags().StringVarP(&validateFlags.project, "project", "C", ".",
		"Project directory containing config/")
	_ = validateCmd.MarkFlagRequired("environment")
	_ = validateCmd.RegisterFlagCompletionFunc("environment", completeEnvironments)

	validateCmd.Flags().StringVar(&validateFlags.rules, "rules", "",
		"Rule document (default: <project>/config/data_quality_rules.yml)")
	validateCmd.Flags().DurationVar(&validateFlags.timeout, "timeout", 0,
		"Abort validation after this duration (0 = no limit)")
}

func buildValidationConfig(verbose bool) (dwgate.ValidationConfig, error) {
	if err := requireEnvironment(validateFlags.environment); err != nil {
		return dwgate.ValidationConfig{}, err
	}

	return dwgate.ValidationConfig{
		ProjectPath: validateFlags.project,
		Environment: validateFlags.environment,
		RulesPath:   validateFlags.rules,
		Timeout:     validateFlags.timeout,
		Verbose:     verbose,
	}, nil
}

func runValidate(cmd *cobra.Command, _ []string) error {
	verbose := getVerboseFlag(cmd)

	config, err := buildValidationConfig(verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	logger.Verbose("Run ID: %s", newRunID())

	connector, err := newConnector(logger)
	if err != nil {
		return err
	}

	validator := services.NewValidationService(connector, newConfigLoader(), logger, ui.NewConsoleReporter())

	ctx, cancel := signalContext("validation")
	defer cancel()

	if _, err := validator.Validate(ctx, config); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
