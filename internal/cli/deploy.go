package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/vvka-141/dwgate/internal/checksum"
	"github.com/vvka-141/dwgate/internal/config"
	"github.com/vvka-141/dwgate/internal/files/filesystem"
	"github.com/vvka-141/dwgate/internal/files/scanner"
	"github.com/vvka-141/dwgate/internal/logging"
	"github.com/vvka-141/dwgate/internal/params"
	"github.com/vvka-141/dwgate/internal/services"
	"github.com/vvka-141/dwgate/internal/ui"
	"github.com/vvka-141/dwgate/pkg/dwgate"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy SQL artifacts to an environment",
	Long: `Deploy executes the SQL artifacts of one environment against the warehouse.

The deploy command:
1. Loads config/<environment>.yml from the project
2. Collects scripts/<environment>/{ddl,stored_procedures,tasks,rbac}/*.sql,
   folders in that order, files in lexical order
3. Substitutes {DATABASE_NAME}, {WAREHOUSE_NAME}, {ROLE_NAME} and extra
   parameters, then splits every file on ';'
4. Asks for approval when the environment is protected
5. Executes every statement in order and stops at the first failure

Statements already executed are not rolled back when a later one fails.

Parameter precedence (later wins): config params < --params-file < --param.
The three built-in keys cannot be overridden.

Examples:
  # Deploy to dev
  dwgate deploy -e dev

  # Deploy another project directory with an extra parameter
  dwgate deploy -e dev -C ./warehouse --param RETENTION_DAYS=30

  # Deploy to a protected environment from CI
  dwgate deploy -e prod --params-file prod.env --strict-placeholders --force`,
	Args: cobra.NoArgs,
	RunE: runDeploy,
}

type deployFlagValues struct {
	environment, project string
	params               []string
	paramsFiles          []string
	strict, force        bool
	timeout              time.Duration
}

var deployFlags deployFlagValues

func init() {
	rootCmd.AddCommand(deployCmd)

	deployCmd.Flags().StringVarP(&deployFlags.environment, "environment", "e", "",
		"Target environment: dev|prod")
	deployCmd.Flags().StringVarP(&deployFlags.project, "project", "C", ".",
		"Project directory containing config/ and scripts/")
	_ = deployCmd.MarkFlagRequired("environment")
	_ = deployCmd.RegisterFlagCompletionFunc("environment", completeEnvironments)

	deployCmd.Flags().StringSliceVar(&deployFlags.params, "param", nil,
		"Extra placeholder as KEY=VALUE (can be specified multiple times)\n"+
			"Example: --param RETENTION_DAYS=30 --param REGION=EU")
	deployCmd.Flags().StringSliceVar(&deployFlags.paramsFiles, "params-file", nil,
		"Load placeholders from .env files (can be specified multiple times)\n"+
			"Later files override earlier ones, CLI --param overrides all")
	deployCmd.Flags().BoolVar(&deployFlags.strict, "strict-placeholders", false,
		"Fail before connecting when a {PLACEHOLDER} token has no value")

	deployCmd.Flags().BoolVar(&deployFlags.force, "force", false,
		"Skip the interactive approval prompt for protected environments\n"+
			"A short countdown is shown instead")
	deployCmd.Flags().DurationVar(&deployFlags.timeout, "timeout", 0,
		"Abort the deployment after this duration (0 = no limit)\n"+
			"Examples: 30s, 5m, 1h30m")
}

// buildDeploymentConfig builds a DeploymentConfig from CLI flags.
func buildDeploymentConfig(fsProvider filesystem.FileSystemProvider, verbose bool) (dwgate.DeploymentConfig, error) {
	if err := requireEnvironment(deployFlags.environment); err != nil {
		return dwgate.DeploymentConfig{}, err
	}

	parameters := make(map[string]string)
	if len(deployFlags.paramsFiles) > 0 {
		fileParams, err := loadParamsFromFiles(fsProvider, deployFlags.paramsFiles, verbose)
		if err != nil {
			return dwgate.DeploymentConfig{}, err
		}
		parameters = fileParams
	}

	cliParams, err := params.ParseKeyValuePairs(deployFlags.params)
	if err != nil {
		return dwgate.DeploymentConfig{}, fmt.Errorf("invalid parameter format: %w", err)
	}
	for k, v := range cliParams {
		parameters[k] = v
	}

	if verbose && len(cliParams) > 0 {
		fmt.Fprintf(os.Stderr, "[VERBOSE] CLI parameters override %d value(s)\n", len(cliParams))
	}

	return dwgate.DeploymentConfig{
		ProjectPath:        deployFlags.project,
		Environment:        deployFlags.environment,
		Parameters:         parameters,
		StrictPlaceholders: deployFlags.strict,
		Timeout:            deployFlags.timeout,
		Verbose:            verbose,
	}, nil
}

func runDeploy(cmd *cobra.Command, _ []string) error {
	verbose := getVerboseFlag(cmd)

	config, err := buildDeploymentConfig(filesystem.NewOSFileSystem(), verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	logger.Verbose("Run ID: %s", newRunID())

	connector, err := newConnector(logger)
	if err != nil {
		return err
	}

	deployer := services.NewDeploymentService(
		connector,
		newConfigLoader(),
		scanner.NewScanner(checksum.New()),
		ui.SelectApprover(deployFlags.force, verbose),
		logger,
		ui.NewConsoleReporter(),
	)

	ctx, cancel := signalContext("deployment")
	defer cancel()

	if _, err := deployer.Deploy(ctx, config); err != nil {
		return fmt.Errorf("deployment failed: %w", err)
	}
	return nil
}

// loadParamsFromFiles loads parameters from multiple .env files using the provided filesystem.
// Later files override earlier ones. Returns merged parameters map.
func loadParamsFromFiles(fsProvider filesystem.FileSystemProvider, paramsFiles []string, verbose bool) (map[string]string, error) {
	parameters := make(map[string]string)

	for _, paramsFile := range paramsFiles {
		if verbose {
			fmt.Fprintf(os.Stderr, "[VERBOSE] Loading parameters from file: %s\n", paramsFile)
		}

		fileContent, err := fsProvider.ReadFile(paramsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read params file '%s': %w (%w)\n\nTip: Verify the path or use --param to set parameters directly:\n  dwgate deploy -e dev --param KEY=value", paramsFile, err, dwgate.ErrInvalidConfig)
		}

		fileParams, err := params.ParseEnvFile(fileContent)
		if err != nil {
			return nil, fmt.Errorf("failed to parse params file '%s': %w\n\nTip: Verify the file format (KEY=VALUE)", paramsFile, err)
		}

		for k, v := range fileParams {
			parameters[k] = v
		}

		if verbose {
			fmt.Fprintf(os.Stderr, "[VERBOSE] Loaded %d parameters from file (total: %d)\n", len(fileParams), len(parameters))
		}
	}

	return parameters, nil
}

// newConfigLoader returns the configuration provider used by both commands.
func newConfigLoader() *config.Loader {
	return config.NewLoader()
}
