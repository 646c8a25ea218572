package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/vvka-141/dwgate/internal/checksum"
	"github.com/vvka-141/dwgate/internal/params"
	"github.com/vvka-141/dwgate/internal/preprocessor"
	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// DeploymentService implements the Deployer interface.
// Thread-Safety: NOT safe for concurrent Deploy() calls on the same instance.
type DeploymentService struct {
	connector      dwgate.Connector
	configProvider dwgate.ConfigProvider
	scanner        dwgate.ArtifactScanner
	approver       dwgate.Approver
	logger         dwgate.Logger
	reporter       dwgate.Reporter
}

// NewDeploymentService creates a new DeploymentService with all dependencies injected.
//
// Panics on nil dependencies: these are wiring mistakes that must surface at
// startup. Runtime conditions (configuration, connection, execution) are
// returned as errors.
func NewDeploymentService(
	connector dwgate.Connector,
	configProvider dwgate.ConfigProvider,
	scanner dwgate.ArtifactScanner,
	approver dwgate.Approver,
	logger dwgate.Logger,
	reporter dwgate.Reporter,
) *DeploymentService {
	if connector == nil {
		panic("connector cannot be nil")
	}
	if configProvider == nil {
		panic("configProvider cannot be nil")
	}
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if approver == nil {
		panic("approver cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if reporter == nil {
		panic("reporter cannot be nil")
	}

	return &DeploymentService{
		connector:      connector,
		configProvider: configProvider,
		scanner:        scanner,
		approver:       approver,
		logger:         logger,
		reporter:       reporter,
	}
}

// plannedArtifact is an artifact together with its substituted statements.
type plannedArtifact struct {
	artifact   dwgate.SQLArtifact
	statements []dwgate.Statement
}

// Deploy executes every artifact of the environment in deployment order.
// The first failing statement aborts the run with a *dwgate.StatementError;
// statements already executed stay applied.
func (s *DeploymentService) Deploy(ctx context.Context, config dwgate.DeploymentConfig) (*dwgate.DeploymentResult, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := withTimeout(ctx, config.Timeout)
	defer cancel()

	env := strings.ToUpper(config.Environment)
	s.logger.Verbose("Starting deployment to %s", env)
	s.logger.Verbose("Project path: %s", config.ProjectPath)

	envConfig, err := s.configProvider.LoadEnvironment(config.ProjectPath, config.Environment)
	if err != nil {
		return nil, err
	}

	placeholders, err := params.BuildPlaceholders(envConfig, config.Parameters)
	if err != nil {
		return nil, err
	}
	s.logger.Verbose("Resolved %d placeholder(s)", len(placeholders))

	plan, err := s.buildPlan(config, placeholders)
	if err != nil {
		return nil, err
	}

	if envConfig.Protected {
		if err := s.requestApproval(ctx, config.Environment); err != nil {
			return nil, err
		}
	}

	result := &dwgate.DeploymentResult{
		Environment: config.Environment,
		Fingerprint: planFingerprint(plan),
	}

	err = withSession(ctx, s.connector, s.logger, func(session dwgate.Session) error {
		return s.execute(ctx, session, plan, result)
	})
	if err != nil {
		s.reporter.Summary(false, fmt.Sprintf("%s deployment failed", env))
		return nil, err
	}

	s.reporter.Summary(true, fmt.Sprintf("%s deployment completed successfully!", env))
	s.logger.Verbose("Executed %d statement(s) from %d file(s) in %d folder(s); fingerprint %s",
		result.Statements, result.Files, result.Folders, result.Fingerprint)
	return result, nil
}

// buildPlan scans the artifacts of the environment and turns each into its
// ordered statements. Nothing touches the warehouse here, so every
// configuration problem surfaces before a session is opened.
func (s *DeploymentService) buildPlan(config dwgate.DeploymentConfig, placeholders map[string]string) ([]plannedArtifact, error) {
	artifacts, err := s.scanner.ScanEnvironment(config.ProjectPath, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("failed to scan SQL artifacts: %w", err)
	}
	s.logger.Verbose("Found %d SQL artifact(s)", len(artifacts))

	pipeline := preprocessor.NewPipeline(config.StrictPlaceholders)
	plan := make([]plannedArtifact, 0, len(artifacts))
	for _, artifact := range artifacts {
		statements, err := pipeline.Process(artifact, placeholders)
		if err != nil {
			return nil, err
		}
		plan = append(plan, plannedArtifact{artifact: artifact, statements: statements})
	}
	return plan, nil
}

func (s *DeploymentService) requestApproval(ctx context.Context, environment string) error {
	s.logger.Verbose("%s is protected, requesting approval", strings.ToUpper(environment))

	approved, err := s.approver.RequestApproval(ctx, environment)
	if err != nil {
		return fmt.Errorf("approval request failed: %w", err)
	}
	if !approved {
		return fmt.Errorf("deployment to %s was not confirmed: %w", strings.ToUpper(environment), dwgate.ErrApprovalDenied)
	}
	return nil
}

// execute runs the plan statement by statement and stops at the first error.
func (s *DeploymentService) execute(ctx context.Context, session dwgate.Session, plan []plannedArtifact, result *dwgate.DeploymentResult) error {
	currentFolder := ""
	for _, p := range plan {
		if p.artifact.Folder != currentFolder {
			currentFolder = p.artifact.Folder
			result.Folders++
			s.reporter.Section(fmt.Sprintf("Deploying %s", currentFolder))
		}

		s.reporter.Step("Executing %s", p.artifact.RelativePath)
		for _, stmt := range p.statements {
			s.reporter.Step("  %s", dwgate.Preview(stmt.SQL, dwgate.StatementPreviewLength))

			if err := session.Exec(ctx, stmt.SQL); err != nil {
				s.reporter.Fail(fmt.Sprintf("%s: statement %d failed", p.artifact.RelativePath, stmt.Index))
				return &dwgate.StatementError{
					Path:      p.artifact.RelativePath,
					Index:     stmt.Index,
					Statement: stmt.SQL,
					Err:       err,
				}
			}
			result.Statements++
		}

		result.Files++
		s.reporter.Pass(fmt.Sprintf("%s (%d statement(s))", p.artifact.RelativePath, len(p.statements)))
	}
	return nil
}

func planFingerprint(plan []plannedArtifact) string {
	checksums := make([]string, len(plan))
	for i, p := range plan {
		checksums[i] = p.artifact.Checksum
	}
	return checksum.Fingerprint(checksums)
}

// Verify DeploymentService implements the Deployer interface at compile time
var _ dwgate.Deployer = (*DeploymentService)(nil)
