package testing

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/vvka-141/dwgate/internal/checksum"
	"github.com/vvka-141/dwgate/internal/config"
	"github.com/vvka-141/dwgate/internal/db"
	"github.com/vvka-141/dwgate/internal/files/scanner"
	"github.com/vvka-141/dwgate/internal/logging"
	"github.com/vvka-141/dwgate/internal/services"
	"github.com/vvka-141/dwgate/internal/testinfra"
	"github.com/vvka-141/dwgate/internal/ui"
	"github.com/vvka-141/dwgate/pkg/dwgate"
)

var (
	testContainerOnce sync.Once
	testContainerConn string
	testContainerErr  error
)

func getOrStartTestContainer() (string, error) {
	testContainerOnce.Do(func() {
		ctx := context.Background()
		container, err := testinfra.StartSimplePostgres(ctx)
		if err != nil {
			testContainerErr = err
			return
		}
		testContainerConn = container.ConnString
	})
	return testContainerConn, testContainerErr
}

// GetTestConnectionString returns the test database connection string.
// Priority: DWGATE_TEST_DSN env var > auto-started testcontainer > skip test.
func GetTestConnectionString(t *testing.T) string {
	t.Helper()

	if connString := os.Getenv("DWGATE_TEST_DSN"); connString != "" {
		return connString
	}

	connString, err := getOrStartTestContainer()
	if err != nil {
		t.Skipf("DWGATE_TEST_DSN not set and Docker unavailable: %v", err)
	}
	return connString
}

// SkipIfShort skips the test if running in short mode (-short flag).
func SkipIfShort(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
}

// RequireDatabase combines SkipIfShort and GetTestConnectionString for convenience.
// Returns the test connection string if available, otherwise skips the test.
func RequireDatabase(t *testing.T) string {
	t.Helper()

	SkipIfShort(t)
	return GetTestConnectionString(t)
}

// NewTestDeployer creates a Deployer against the PostgreSQL driver.
// Protected environments are approved without prompting.
func NewTestDeployer(t *testing.T, connString string) dwgate.Deployer {
	t.Helper()

	connector, err := db.NewPostgresConnector(connString, nil)
	if err != nil {
		t.Fatalf("Failed to create connector: %v", err)
	}

	return services.NewDeploymentService(
		connector,
		config.NewLoader(),
		scanner.NewScanner(checksum.New()),
		&ForceApprover{},
		logging.NewNullLogger(),
		ui.NewNullReporter(),
	)
}

// NewTestValidator creates a Validator against the PostgreSQL driver.
func NewTestValidator(t *testing.T, connString string) dwgate.Validator {
	t.Helper()

	connector, err := db.NewPostgresConnector(connString, nil)
	if err != nil {
		t.Fatalf("Failed to create connector: %v", err)
	}

	return services.NewValidationService(connector, config.NewLoader(), logging.NewNullLogger(), ui.NewNullReporter())
}

// ForceApprover is a test approver that always approves.
type ForceApprover struct{}

// RequestApproval always returns true (auto-approves).
func (a *ForceApprover) RequestApproval(ctx context.Context, environment string) (bool, error) {
	return true, nil
}

// WriteProject writes files (relative path -> content) under a fresh
// temporary directory and returns its path.
func WriteProject(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", rel, err)
		}
	}
	return root
}

// CreateTestDB creates a database named dbName and returns a connection
// string pointing at it. The database is dropped when the test ends.
func CreateTestDB(t *testing.T, connString, dbName string) string {
	t.Helper()

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		t.Fatalf("Failed to connect for test DB creation: %v", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbName)); err != nil {
		t.Fatalf("Failed to drop stale test database %s: %v", dbName, err)
	}
	if _, err := conn.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", dbName)); err != nil {
		t.Fatalf("Failed to create test database %s: %v", dbName, err)
	}
	t.Logf("✓ Created test database %s", dbName)

	t.Cleanup(func() { CleanupTestDB(t, connString, dbName) })

	return withDatabase(t, connString, dbName)
}

// CleanupTestDB drops the test database.
// Safe to call multiple times (uses DROP DATABASE IF EXISTS).
func CleanupTestDB(t *testing.T, connString, dbName string) {
	t.Helper()

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		t.Logf("Warning: Failed to connect for cleanup: %v", err)
		return
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, fmt.Sprintf("DROP DATABASE IF EXISTS %s WITH (FORCE)", dbName)); err != nil {
		t.Logf("Warning: Failed to drop test database %s: %v", dbName, err)
	}
}

// withDatabase returns connString with its database replaced by dbName.
// Only URL-style connection strings are supported.
func withDatabase(t *testing.T, connString, dbName string) string {
	t.Helper()

	u, err := url.Parse(connString)
	if err != nil || u.Scheme == "" {
		t.Fatalf("Expected a URL connection string, got %q", connString)
	}
	u.Path = "/" + dbName
	return u.String()
}
