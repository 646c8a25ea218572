package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dwgate",
	Short: "Deployment and data-quality gate for cloud data warehouses",
	Long: `dwgate deploys versioned SQL artifacts to a warehouse environment in a fixed
dependency order (ddl, stored_procedures, tasks, rbac) and runs declarative
data-quality checks (null, unique, count) against the deployed tables.

The process exit status is the gate signal for CI pipelines.

Warehouse credentials are read from the process environment; a .env file in
the working directory is loaded first and never overrides variables that are
already set:
  DWGATE_DRIVER        snowflake (default) | postgres | clickhouse
  SNOWFLAKE_USER, SNOWFLAKE_PASSWORD, SNOWFLAKE_ACCOUNT
  SNOWFLAKE_ROLE, SNOWFLAKE_WAREHOUSE (optional)
  DWGATE_DSN           connection string for postgres and clickhouse
  DWGATE_AUTH          password (default) | aws-iam (postgres only)
  AWS_REGION           region for aws-iam

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments, flags or environment)
  3  - Panic or unexpected system error
  10 - Invalid configuration or rule document
  11 - Warehouse connection failed
  12 - Deployment to a protected environment was not approved
  13 - SQL statement or check query failed
  15 - One or more data quality checks failed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
