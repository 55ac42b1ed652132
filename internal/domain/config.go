package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ProjectConfig holds project-level configuration loaded from .repocheck.yaml.
// Empty lists mean "use the built-in default".
type ProjectConfig struct {
	Renovate  RenovateConfig  `yaml:"renovate"   json:"renovate,omitempty"`
	LintSetup LintSetupConfig `yaml:"lint_setup" json:"lint_setup,omitempty"`
}

// RenovateConfig overrides the Renovate validator's rule lists.
type RenovateConfig struct {
	Candidates         []string `yaml:"candidates"          json:"candidates,omitempty"`
	RequiredFields     []string `yaml:"required_fields"     json:"required_fields,omitempty"`
	RecommendedExtends []string `yaml:"recommended_extends" json:"recommended_extends,omitempty"`
	Strict             bool     `yaml:"strict"              json:"strict,omitempty"`
}

// LintSetupConfig overrides the lint setup checker's file names and probes.
type LintSetupConfig struct {
	LintStagedConfigs []string `yaml:"lint_staged_configs" json:"lint_staged_configs,omitempty"`
	PrettierConfig    string   `yaml:"prettier_config"     json:"prettier_config,omitempty"`
	ESLintConfig      string   `yaml:"eslint_config"       json:"eslint_config,omitempty"`
	PreCommitHook     string   `yaml:"pre_commit_hook"     json:"pre_commit_hook,omitempty"`
	HooksDir          string   `yaml:"hooks_dir"           json:"hooks_dir,omitempty"`
	Packages          []string `yaml:"packages"            json:"packages,omitempty"`
	ESLintProbeFile   string   `yaml:"eslint_probe_file"   json:"eslint_probe_file,omitempty"`
	SkipCommands      bool     `yaml:"skip_commands"       json:"skip_commands,omitempty"`
}

// DefaultConfig returns the built-in configuration with every list filled in.
func DefaultConfig() ProjectConfig {
	rr := DefaultRenovateRules()
	lr := DefaultLintSetupRules()
	return ProjectConfig{
		Renovate: RenovateConfig{
			Candidates:         rr.Candidates,
			RequiredFields:     rr.RequiredFields,
			RecommendedExtends: rr.RecommendedExtends,
		},
		LintSetup: LintSetupConfig{
			LintStagedConfigs: lr.LintStagedConfigs,
			PrettierConfig:    lr.PrettierConfig,
			ESLintConfig:      lr.ESLintConfig,
			PreCommitHook:     lr.PreCommitHook,
			HooksDir:          lr.HooksDir,
			Packages:          lr.Packages,
			ESLintProbeFile:   lr.ESLintProbeFile,
		},
	}
}

// RenovateRules converts the configuration into the validator's rule set.
func (c ProjectConfig) RenovateRules() RenovateRules {
	return RenovateRules{
		Candidates:         cloneStrings(c.Renovate.Candidates),
		RequiredFields:     cloneStrings(c.Renovate.RequiredFields),
		RecommendedExtends: cloneStrings(c.Renovate.RecommendedExtends),
	}
}

// LintSetupRules converts the configuration into the lint setup rule set.
func (c ProjectConfig) LintSetupRules() LintSetupRules {
	rules := DefaultLintSetupRules()
	rules.LintStagedConfigs = cloneStrings(c.LintSetup.LintStagedConfigs)
	rules.PrettierConfig = c.LintSetup.PrettierConfig
	rules.ESLintConfig = c.LintSetup.ESLintConfig
	rules.PreCommitHook = c.LintSetup.PreCommitHook
	rules.HooksDir = c.LintSetup.HooksDir
	rules.Packages = cloneStrings(c.LintSetup.Packages)
	rules.ESLintProbeFile = c.LintSetup.ESLintProbeFile
	rules.SkipCommands = c.LintSetup.SkipCommands
	return rules
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	// 1. every configured path must stay inside the project
	for i, p := range c.Renovate.Candidates {
		if err := validateRelPath(p); err != nil {
			return fmt.Errorf("renovate.candidates[%d]: %w", i, err)
		}
	}
	for i, p := range c.LintSetup.LintStagedConfigs {
		if err := validateRelPath(p); err != nil {
			return fmt.Errorf("lint_setup.lint_staged_configs[%d]: %w", i, err)
		}
	}
	singles := map[string]string{
		"lint_setup.prettier_config":   c.LintSetup.PrettierConfig,
		"lint_setup.eslint_config":     c.LintSetup.ESLintConfig,
		"lint_setup.pre_commit_hook":   c.LintSetup.PreCommitHook,
		"lint_setup.hooks_dir":         c.LintSetup.HooksDir,
		"lint_setup.eslint_probe_file": c.LintSetup.ESLintProbeFile,
	}
	for name, p := range singles {
		if p == "" {
			continue
		}
		if err := validateRelPath(p); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	// 2. field and token names must not be blank
	for i, f := range c.Renovate.RequiredFields {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("renovate.required_fields[%d] must not be empty", i)
		}
	}
	for i, e := range c.Renovate.RecommendedExtends {
		if strings.TrimSpace(e) == "" {
			return fmt.Errorf("renovate.recommended_extends[%d] must not be empty", i)
		}
	}

	// 3. package names are passed to npm as arguments
	for i, p := range c.LintSetup.Packages {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("lint_setup.packages[%d] must not be empty", i)
		}
		if strings.HasPrefix(p, "-") {
			return fmt.Errorf("lint_setup.packages[%d] = %q looks like a flag", i, p)
		}
	}

	return nil
}

func validateRelPath(p string) error {
	if strings.TrimSpace(p) == "" {
		return fmt.Errorf("path must not be empty")
	}
	if filepath.IsAbs(p) || strings.HasPrefix(p, "/") {
		return fmt.Errorf("path %q must be relative to the project root", p)
	}
	clean := filepath.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("path %q escapes the project root", p)
	}
	return nil
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
