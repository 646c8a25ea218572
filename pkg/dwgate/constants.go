package dwgate

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Deployment/validation completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing flags, unknown environment)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration or rule documents
	ExitConnectionError  = 11 // Failed to open a warehouse session
	ExitApprovalDenied   = 12 // Operator denied deployment to a protected environment
	ExitExecutionFailed  = 13 // SQL statement or check query failed
	ExitValidationFailed = 15 // One or more data-quality checks failed
)

// Deployment folder names, in the order they are deployed.
const (
	FolderDDL              = "ddl"
	FolderStoredProcedures = "stored_procedures"
	FolderTasks            = "tasks"
	FolderRBAC             = "rbac"
)

// DeploymentFolders is the fixed deployment order. Tables must exist before the
// procedures that reference them, procedures before the tasks that call them, and
// grants come last because they reference all of the above.
var DeploymentFolders = []string{
	FolderDDL,
	FolderStoredProcedures,
	FolderTasks,
	FolderRBAC,
}

// Environments is the closed set of environment selectors accepted by every command.
var Environments = []string{"dev", "prod"}

// Built-in placeholder keys bound from EnvironmentConfig.
const (
	PlaceholderDatabase  = "DATABASE_NAME"
	PlaceholderWarehouse = "WAREHOUSE_NAME"
	PlaceholderRole      = "ROLE_NAME"
)

// Project layout, relative to the project root.
const (
	ConfigDir        = "config"
	ScriptsDir       = "scripts"
	DefaultRulesFile = "data_quality_rules.yml"
	ArtifactExt      = ".sql"
)

const (
	// StatementPreviewLength is the number of characters of a statement echoed
	// to the console before it is executed.
	StatementPreviewLength = 100

	// MaxErrorPreviewLength is the maximum number of characters shown
	// in error messages when previewing a failed statement.
	MaxErrorPreviewLength = 200

	// DefaultForceApprovalCountdown is the countdown duration before force approval proceeds.
	DefaultForceApprovalCountdown = 5 * time.Second
)
