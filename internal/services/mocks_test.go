package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vvka-141/dwgate/pkg/dwgate"
)

type mockConnector struct {
	session  *mockSession
	err      error
	connects int
}

func (m *mockConnector) Connect(_ context.Context) (dwgate.Session, error) {
	m.connects++
	if m.err != nil {
		return nil, m.err
	}
	return m.session, nil
}

// mockSession records executed statements and answers queries from a table
// of canned rows keyed by the exact query text.
type mockSession struct {
	executed []string
	queries  []string
	failOn   int // 1-based Exec call that fails; 0 never fails
	execErr  error
	rows     map[string][]int64
	rowErrs  map[string]error
	closed   int
	closeErr error
}

func newMockSession() *mockSession {
	return &mockSession{
		rows:    map[string][]int64{},
		rowErrs: map[string]error{},
	}
}

func (m *mockSession) Exec(_ context.Context, sql string) error {
	if m.failOn > 0 && len(m.executed)+1 == m.failOn {
		if m.execErr != nil {
			return m.execErr
		}
		return errors.New("SQL compilation error")
	}
	m.executed = append(m.executed, sql)
	return nil
}

func (m *mockSession) QueryRow(_ context.Context, sql string) dwgate.Row {
	m.queries = append(m.queries, sql)
	if err, ok := m.rowErrs[sql]; ok {
		return &mockRow{err: err}
	}
	values, ok := m.rows[sql]
	if !ok {
		return &mockRow{err: dwgate.ErrNoRows}
	}
	return &mockRow{values: values}
}

func (m *mockSession) Close() error {
	m.closed++
	return m.closeErr
}

type mockRow struct {
	values []int64
	err    error
}

func (r *mockRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return fmt.Errorf("expected %d destinations, got %d", len(r.values), len(dest))
	}
	for i, d := range dest {
		p, ok := d.(*int64)
		if !ok {
			return fmt.Errorf("unsupported destination %T", d)
		}
		*p = r.values[i]
	}
	return nil
}

type mockConfigProvider struct {
	env      *dwgate.EnvironmentConfig
	envErr   error
	rules    *dwgate.RuleSet
	rulesErr error

	rulesPath string
}

func (m *mockConfigProvider) LoadEnvironment(_, _ string) (*dwgate.EnvironmentConfig, error) {
	return m.env, m.envErr
}

func (m *mockConfigProvider) LoadRules(path string) (*dwgate.RuleSet, error) {
	m.rulesPath = path
	return m.rules, m.rulesErr
}

type mockScanner struct {
	artifacts []dwgate.SQLArtifact
	err       error
}

func (m *mockScanner) ScanEnvironment(_, _ string) ([]dwgate.SQLArtifact, error) {
	return m.artifacts, m.err
}

type mockApprover struct {
	approved bool
	err      error
	calls    int
}

func (m *mockApprover) RequestApproval(_ context.Context, _ string) (bool, error) {
	m.calls++
	return m.approved, m.err
}

type mockLogger struct{}

func (m *mockLogger) Verbose(_ string, _ ...interface{}) {}
func (m *mockLogger) Info(_ string, _ ...interface{})    {}
func (m *mockLogger) Error(_ string, _ ...interface{})   {}

// recordingReporter keeps every line with a kind prefix.
type recordingReporter struct {
	lines []string
}

func (r *recordingReporter) Section(title string) {
	r.lines = append(r.lines, "section: "+title)
}

func (r *recordingReporter) Step(format string, args ...interface{}) {
	r.lines = append(r.lines, "step: "+strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (r *recordingReporter) Pass(description string) {
	r.lines = append(r.lines, "pass: "+description)
}

func (r *recordingReporter) Fail(description string) {
	r.lines = append(r.lines, "fail: "+description)
}

func (r *recordingReporter) Summary(success bool, message string) {
	r.lines = append(r.lines, fmt.Sprintf("summary(%t): %s", success, message))
}

func (r *recordingReporter) withPrefix(prefix string) []string {
	var out []string
	for _, l := range r.lines {
		if strings.HasPrefix(l, prefix) {
			out = append(out, strings.TrimPrefix(l, prefix))
		}
	}
	return out
}

func testEnvConfig() *dwgate.EnvironmentConfig {
	return &dwgate.EnvironmentConfig{
		Database:  "ANALYTICS",
		Warehouse: "COMPUTE_WH",
		Role:      "DEPLOYER",
	}
}

func artifact(folder, name, content string) dwgate.SQLArtifact {
	rel := "scripts/dev/" + folder + "/" + name
	return dwgate.SQLArtifact{
		Folder:       folder,
		Path:         "/project/" + rel,
		RelativePath: rel,
		Content:      content,
		Checksum:     "sum-" + name,
	}
}
