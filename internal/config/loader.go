package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/dwgate/internal/files/filesystem"
	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// ErrConfigNotFound is returned when a config document does not exist.
// It is always joined with dwgate.ErrInvalidConfig.
var ErrConfigNotFound = errors.New("config file not found")

// environmentExtensions are tried in order when resolving config/<env>.
var environmentExtensions = []string{".yml", ".yaml"}

// ruleDocument is the on-disk shape of the rules file.
type ruleDocument struct {
	DataQualityChecks *ruleSection `yaml:"data_quality_checks" validate:"required"`
}

type ruleSection struct {
	NullChecks   []dwgate.NullCheck   `yaml:"null_checks" validate:"dive"`
	UniqueChecks []dwgate.UniqueCheck `yaml:"unique_checks" validate:"dive"`
	CountChecks  []countRule          `yaml:"count_checks" validate:"dive"`
}

// countRule keeps min_count as a pointer so that a missing value is an
// error rather than a silent zero.
type countRule struct {
	Table    string `yaml:"table" validate:"required,identifier"`
	MinCount *int64 `yaml:"min_count" validate:"required,gte=0"`
}

// Loader reads and validates project documents.
type Loader struct {
	fsProvider filesystem.FileSystemProvider
	validate   *validator.Validate
}

// NewLoader creates a loader over the OS filesystem.
func NewLoader() *Loader {
	return NewLoaderWithFS(filesystem.NewOSFileSystem())
}

// NewLoaderWithFS creates a loader with a custom filesystem provider.
// Panics if fsProvider is nil.
func NewLoaderWithFS(fsProvider filesystem.FileSystemProvider) *Loader {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Loader{
		fsProvider: fsProvider,
		validate:   newValidator(),
	}
}

// EnvironmentPath returns the path config/<environment>.yml under projectPath.
func EnvironmentPath(projectPath, environment string) string {
	return filepath.Join(projectPath, dwgate.ConfigDir, environment+environmentExtensions[0])
}

// RulesPath returns the default rules document path under projectPath.
func RulesPath(projectPath string) string {
	return filepath.Join(projectPath, dwgate.ConfigDir, dwgate.DefaultRulesFile)
}

// LoadEnvironment reads config/<environment>.yml (or .yaml) under projectPath.
func (l *Loader) LoadEnvironment(projectPath, environment string) (*dwgate.EnvironmentConfig, error) {
	if !dwgate.IsKnownEnvironment(environment) {
		return nil, fmt.Errorf("environment %q is not one of %v: %w", environment, dwgate.Environments, dwgate.ErrUnknownEnvironment)
	}

	var (
		data []byte
		path string
		err  error
	)
	for _, ext := range environmentExtensions {
		path = filepath.Join(projectPath, dwgate.ConfigDir, environment+ext)
		data, err = l.fsProvider.ReadFile(path)
		if err == nil || !errors.Is(err, fs.ErrNotExist) {
			break
		}
	}
	if err != nil {
		return nil, readError(EnvironmentPath(projectPath, environment), err)
	}

	var cfg dwgate.EnvironmentConfig
	if err := decodeStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v: %w", path, err, dwgate.ErrInvalidConfig)
	}

	if err := validateDocument(l.validate, path, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadRules reads a data-quality rule document.
func (l *Loader) LoadRules(path string) (*dwgate.RuleSet, error) {
	data, err := l.fsProvider.ReadFile(path)
	if err != nil {
		return nil, readError(path, err)
	}

	var doc ruleDocument
	if err := decodeStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v: %w", path, err, dwgate.ErrInvalidConfig)
	}

	if err := validateDocument(l.validate, path, &doc); err != nil {
		return nil, err
	}

	section := doc.DataQualityChecks
	rules := &dwgate.RuleSet{
		NullChecks:   section.NullChecks,
		UniqueChecks: section.UniqueChecks,
		CountChecks:  make([]dwgate.CountCheck, 0, len(section.CountChecks)),
	}
	for _, c := range section.CountChecks {
		rules.CountChecks = append(rules.CountChecks, dwgate.CountCheck{
			Table:    c.Table,
			MinCount: *c.MinCount,
		})
	}

	return rules, nil
}

func readError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", ErrConfigNotFound, path, dwgate.ErrInvalidConfig)
	}
	return fmt.Errorf("failed to read %s: %v: %w", path, err, dwgate.ErrInvalidConfig)
}

// decodeStrict decodes a single YAML document and rejects unknown keys.
// An empty document is an error.
func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("document is empty")
		}
		return err
	}
	return nil
}

var _ dwgate.ConfigProvider = (*Loader)(nil)
