package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/openkraft/repocheck/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up in the project root.
const FileName = ".repocheck.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .repocheck.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .repocheck.yaml from projectPath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	// Validate before merging so errors point at what the user wrote.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// mergeConfig overlays explicit overrides on top of the defaults.
// Explicit (non-empty) values always win; lists are replaced, not appended.
func mergeConfig(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := base

	if len(override.Renovate.Candidates) > 0 {
		result.Renovate.Candidates = override.Renovate.Candidates
	}
	if len(override.Renovate.RequiredFields) > 0 {
		result.Renovate.RequiredFields = override.Renovate.RequiredFields
	}
	if len(override.Renovate.RecommendedExtends) > 0 {
		result.Renovate.RecommendedExtends = override.Renovate.RecommendedExtends
	}
	result.Renovate.Strict = override.Renovate.Strict

	ls := override.LintSetup
	if len(ls.LintStagedConfigs) > 0 {
		result.LintSetup.LintStagedConfigs = ls.LintStagedConfigs
	}
	if ls.PrettierConfig != "" {
		result.LintSetup.PrettierConfig = ls.PrettierConfig
	}
	if ls.ESLintConfig != "" {
		result.LintSetup.ESLintConfig = ls.ESLintConfig
	}
	if ls.PreCommitHook != "" {
		result.LintSetup.PreCommitHook = ls.PreCommitHook
	}
	if ls.HooksDir != "" {
		result.LintSetup.HooksDir = ls.HooksDir
	}
	if len(ls.Packages) > 0 {
		result.LintSetup.Packages = ls.Packages
	}
	if ls.ESLintProbeFile != "" {
		result.LintSetup.ESLintProbeFile = ls.ESLintProbeFile
	}
	result.LintSetup.SkipCommands = ls.SkipCommands

	return result
}

// Marshal renders cfg as the YAML written by `repocheck init`.
func Marshal(cfg domain.ProjectConfig) ([]byte, error) {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", FileName, err)
	}
	header := "# repocheck configuration\n# Lists replace the built-in defaults; omit a key to keep its default.\n\n"
	return append([]byte(header), body...), nil
}

// Write stores cfg as dir/.repocheck.yaml. The file is replaced atomically so
// a concurrent Load never sees a partial document.
func Write(dir string, cfg domain.ProjectConfig) error {
	content, err := Marshal(cfg)
	if err != nil {
		return err
	}

	pending, err := renameio.NewPendingFile(filepath.Join(dir, FileName), renameio.WithPermissions(0644))
	if err != nil {
		return fmt.Errorf("create pending %s: %w", FileName, err)
	}
	defer pending.Cleanup() //nolint:errcheck

	if _, err := pending.Write(content); err != nil {
		return fmt.Errorf("write %s: %w", FileName, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", FileName, err)
	}
	return nil
}
