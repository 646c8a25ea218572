package dwgate_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vvka-141/dwgate/pkg/dwgate"
)

func TestDeploymentConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    dwgate.DeploymentConfig
		errorType error
	}{
		{
			name:   "valid config",
			config: dwgate.DeploymentConfig{ProjectPath: ".", Environment: "dev"},
		},
		{
			name:      "missing project path",
			config:    dwgate.DeploymentConfig{Environment: "dev"},
			errorType: dwgate.ErrInvalidConfig,
		},
		{
			name:      "missing environment",
			config:    dwgate.DeploymentConfig{ProjectPath: "."},
			errorType: dwgate.ErrUnknownEnvironment,
		},
		{
			name:      "unknown environment",
			config:    dwgate.DeploymentConfig{ProjectPath: ".", Environment: "staging"},
			errorType: dwgate.ErrUnknownEnvironment,
		},
		{
			name:      "negative timeout",
			config:    dwgate.DeploymentConfig{ProjectPath: ".", Environment: "prod", Timeout: -time.Second},
			errorType: dwgate.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.errorType == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.errorType) {
				t.Errorf("Validate() = %v, want %v", err, tt.errorType)
			}
		})
	}
}

func TestValidationConfig_Validate(t *testing.T) {
	ok := dwgate.ValidationConfig{ProjectPath: ".", Environment: "prod"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := dwgate.ValidationConfig{Environment: "qa"}
	err := bad.Validate()
	if !errors.Is(err, dwgate.ErrInvalidConfig) || !errors.Is(err, dwgate.ErrUnknownEnvironment) {
		t.Errorf("expected both config and environment errors, got %v", err)
	}
}

func TestIsKnownEnvironment(t *testing.T) {
	for env, want := range map[string]bool{"dev": true, "prod": true, "DEV": false, "": false, "staging": false} {
		if got := dwgate.IsKnownEnvironment(env); got != want {
			t.Errorf("IsKnownEnvironment(%q) = %v, want %v", env, got, want)
		}
	}
}

func TestValidationReport_Failures(t *testing.T) {
	report := dwgate.ValidationReport{
		Outcomes: []dwgate.CheckOutcome{
			{Kind: dwgate.CheckNull, Description: "a", Passed: false},
			{Kind: dwgate.CheckNull, Description: "b", Passed: true},
			{Kind: dwgate.CheckCount, Description: "c", Passed: false},
		},
	}

	failures := report.Failures()
	if len(failures) != 2 || failures[0].Description != "a" || failures[1].Description != "c" {
		t.Errorf("unexpected failures: %+v", failures)
	}
	if report.Passed() {
		t.Error("report with failures should not pass")
	}

	empty := dwgate.ValidationReport{}
	if !empty.Passed() {
		t.Error("empty report should pass")
	}
}

func TestDeploymentFoldersOrder(t *testing.T) {
	want := []string{"ddl", "stored_procedures", "tasks", "rbac"}
	if len(dwgate.DeploymentFolders) != len(want) {
		t.Fatalf("DeploymentFolders = %v", dwgate.DeploymentFolders)
	}
	for i := range want {
		if dwgate.DeploymentFolders[i] != want[i] {
			t.Errorf("DeploymentFolders[%d] = %q, want %q", i, dwgate.DeploymentFolders[i], want[i])
		}
	}
}
