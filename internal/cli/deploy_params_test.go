package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vvka-141/dwgate/internal/files/filesystem"
	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// TestLoadParamsFromFiles tests the params file loading with filesystem abstraction
func TestLoadParamsFromFiles(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]string // filename -> content
		paramsFiles []string          // ordered list of files to load
		expected    map[string]string
		expectError bool
		errorMsg    string
	}{
		{
			name: "Single params file",
			files: map[string]string{
				"/test/prod.env": "RETENTION_DAYS=90\nREGION=EU",
			},
			paramsFiles: []string{"/test/prod.env"},
			expected: map[string]string{
				"RETENTION_DAYS": "90",
				"REGION":         "EU",
			},
		},
		{
			name: "Multiple params files - later overrides earlier",
			files: map[string]string{
				"/test/base.env": "REGION=US\nRETENTION_DAYS=30",
				"/test/prod.env": "REGION=EU",
			},
			paramsFiles: []string{"/test/base.env", "/test/prod.env"},
			expected: map[string]string{
				"REGION":         "EU", // overridden by prod.env
				"RETENTION_DAYS": "30", // from base.env
			},
		},
		{
			name: "File with comments and empty lines",
			files: map[string]string{
				"/test/config.env": "# retention\nRETENTION_DAYS=7\n\n# region\nREGION=APAC",
			},
			paramsFiles: []string{"/test/config.env"},
			expected: map[string]string{
				"RETENTION_DAYS": "7",
				"REGION":         "APAC",
			},
		},
		{
			name:        "Missing file",
			files:       map[string]string{},
			paramsFiles: []string{"/test/missing.env"},
			expectError: true,
			errorMsg:    "failed to read params file",
		},
		{
			name: "Lowercase key is rejected",
			files: map[string]string{
				"/test/bad.env": "region=EU",
			},
			paramsFiles: []string{"/test/bad.env"},
			expectError: true,
			errorMsg:    "failed to parse params file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := filesystem.NewMemoryFileSystem("/")
			for path, content := range tt.files {
				fs.AddFile(path, content)
			}

			result, err := loadParamsFromFiles(fs, tt.paramsFiles, false)

			if tt.expectError {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.errorMsg)
				require.ErrorIs(t, err, dwgate.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, result)
		})
	}
}

func TestBuildDeploymentConfig_ParameterPrecedence(t *testing.T) {
	resetDeployFlags()
	fs := filesystem.NewMemoryFileSystem("/")
	fs.AddFile("/p/base.env", "REGION=US\nRETENTION_DAYS=30")

	deployFlags.environment = "prod"
	deployFlags.project = "/srv/warehouse"
	deployFlags.paramsFiles = []string{"/p/base.env"}
	deployFlags.params = []string{"REGION=EU"}
	deployFlags.strict = true

	cfg, err := buildDeploymentConfig(fs, false)

	require.NoError(t, err)
	require.Equal(t, map[string]string{"REGION": "EU", "RETENTION_DAYS": "30"}, cfg.Parameters)
	require.Equal(t, "/srv/warehouse", cfg.ProjectPath)
	require.Equal(t, "prod", cfg.Environment)
	require.True(t, cfg.StrictPlaceholders)
}
