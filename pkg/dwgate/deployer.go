package dwgate

import "context"

// Deployer executes SQL artifact deployments.
type Deployer interface {
	// Deploy executes every artifact of the environment in folder, file and
	// statement order. It stops at the first failing statement.
	Deploy(ctx context.Context, config DeploymentConfig) (*DeploymentResult, error)
}

// Validator runs data-quality checks.
type Validator interface {
	// Validate evaluates every rule and returns the full report. When any
	// check fails the error is a *ValidationError listing all failures.
	Validate(ctx context.Context, config ValidationConfig) (*ValidationReport, error)
}

// ConfigProvider resolves environment and rule documents.
type ConfigProvider interface {
	// LoadEnvironment reads config/<environment>.yml under projectPath.
	LoadEnvironment(projectPath, environment string) (*EnvironmentConfig, error)

	// LoadRules reads a data-quality rule document.
	LoadRules(path string) (*RuleSet, error)
}

// ArtifactScanner discovers the SQL artifacts of an environment.
type ArtifactScanner interface {
	// ScanEnvironment returns the artifacts under scripts/<environment>/ in
	// deployment order: folder order first, then lexical path order.
	ScanEnvironment(projectPath, environment string) ([]SQLArtifact, error)
}
