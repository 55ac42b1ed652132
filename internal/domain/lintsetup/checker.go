package lintsetup

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/openkraft/repocheck/internal/domain"
)

// PatternGuide describes which tools lint-staged runs for a file pattern.
type PatternGuide struct {
	Label   string
	Pattern string
	Tools   string
}

// UsageSteps returns the follow-up commands printed after a lint setup check.
func UsageSteps() []string {
	return []string{
		"Stage some files: git add .",
		"Test pre-commit: npx lint-staged",
		`Commit changes: git commit -m "Test commit"`,
		`Disable linting: HUSKY_LINT_STAGED_IGNORE=0 git commit -m "Skip linting"`,
	}
}

// PatternGuides returns the file patterns a standard lint-staged setup handles.
func PatternGuides() []PatternGuide {
	return []PatternGuide{
		{Label: "JavaScript/TypeScript", Pattern: "*.{js,jsx,ts,tsx}", Tools: "ESLint + Prettier"},
		{Label: "JSON", Pattern: "*.{json,jsonc}", Tools: "Prettier only"},
		{Label: "Markdown", Pattern: "*.{md,markdown}", Tools: "Prettier only"},
		{Label: "YAML", Pattern: "*.{yml,yaml}", Tools: "Prettier only"},
		{Label: "CSS", Pattern: "*.{css,scss,sass,less}", Tools: "Prettier only"},
		{Label: "HTML", Pattern: "*.{html,htm}", Tools: "Prettier only"},
		{Label: "Config files", Pattern: "*.{rc,config}", Tools: "Prettier only"},
		{Label: "Package files", Pattern: "package.json, pnpm-lock.yaml, etc.", Tools: "Prettier only"},
	}
}

// IsScriptConfig reports whether a lint-staged config must be evaluated by
// node rather than parsed as data.
func IsScriptConfig(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".mjs", ".cjs":
		return true
	}
	return false
}

// MissingConfigFiles lists the required configuration files that were not found.
func MissingConfigFiles(facts domain.LintSetupFacts, rules domain.LintSetupRules) []string {
	var missing []string
	if facts.LintStagedConfig == "" {
		missing = append(missing, lintStagedLabel(rules))
	}
	if !facts.PrettierExists {
		missing = append(missing, rules.PrettierConfig)
	}
	if !facts.ESLintExists {
		missing = append(missing, rules.ESLintConfig)
	}
	return missing
}

// Evaluate turns gathered facts into report results, in the order they are
// presented to the user.
func Evaluate(facts domain.LintSetupFacts, rules domain.LintSetupRules) []domain.CheckResult {
	var results []domain.CheckResult
	results = append(results, CheckConfigFiles(facts, rules)...)
	results = append(results, CheckPreCommitHook(facts, rules)...)
	results = append(results, CheckDependencies(facts.Dependencies, rules))

	// Configuration contents only make sense once the files exist.
	if facts.LintStagedConfig != "" {
		results = append(results, CheckLintStagedConfig(facts))
	}
	if facts.PrettierExists {
		results = append(results, CheckPrettierConfig(facts, rules))
	}
	if facts.ESLintExists {
		results = append(results, CheckESLintConfig(facts.ESLint, rules))
	}
	return results
}

// CheckConfigFiles reports the existence of the lint-staged, Prettier and ESLint configs.
func CheckConfigFiles(facts domain.LintSetupFacts, rules domain.LintSetupRules) []domain.CheckResult {
	lintStaged := domain.CheckResult{Section: domain.SectionConfigFiles, Name: lintStagedLabel(rules)}
	if facts.LintStagedConfig != "" {
		lintStaged.Name = facts.LintStagedConfig
	}

	return []domain.CheckResult{
		existence(lintStaged, facts.LintStagedConfig != ""),
		existence(domain.CheckResult{Section: domain.SectionConfigFiles, Name: rules.PrettierConfig}, facts.PrettierExists),
		existence(domain.CheckResult{Section: domain.SectionConfigFiles, Name: rules.ESLintConfig}, facts.ESLintExists),
	}
}

// CheckPreCommitHook reports whether the pre-commit hook exists, runs
// lint-staged and is wired into git.
func CheckPreCommitHook(facts domain.LintSetupFacts, rules domain.LintSetupRules) []domain.CheckResult {
	results := []domain.CheckResult{
		existence(domain.CheckResult{Section: domain.SectionPreCommit, Name: rules.PreCommitHook}, facts.PreCommitExists),
	}

	if facts.PreCommitExists {
		r := domain.CheckResult{Section: domain.SectionPreCommit, Name: "runsLintStaged"}
		if strings.Contains(facts.PreCommitContent, rules.HookMarker) {
			r.Status = domain.StatusPass
			r.Message = fmt.Sprintf("Pre-commit hook includes %s", rules.HookMarker)
		} else {
			r.Status = domain.StatusFail
			r.Message = fmt.Sprintf("Pre-commit hook does not include %s", rules.HookMarker)
		}
		results = append(results, r)
	}

	results = append(results, checkHooksInstalled(facts, rules))
	return results
}

func checkHooksInstalled(facts domain.LintSetupFacts, rules domain.LintSetupRules) domain.CheckResult {
	r := domain.CheckResult{Section: domain.SectionPreCommit, Name: "hooksInstalled"}
	if !facts.GitRepo {
		r.Status = domain.StatusWarn
		r.Message = "Not a git repository; hooks will not run"
		return r
	}

	if HooksPathPointsTo(facts.HooksPath, rules.HooksDir) {
		r.Status = domain.StatusPass
		r.Message = "Git hooks path is " + facts.HooksPath
		return r
	}

	r.Status = domain.StatusWarn
	if facts.HooksPath == "" {
		r.Message = "core.hooksPath is not set"
	} else {
		r.Message = fmt.Sprintf("core.hooksPath is %s, not %s", facts.HooksPath, rules.HooksDir)
	}
	r.Detail = "Run: npx husky"
	return r
}

// HooksPathPointsTo reports whether hooksPath is hooksDir or a directory
// inside it (husky v9 installs into .husky/_).
func HooksPathPointsTo(hooksPath, hooksDir string) bool {
	if hooksPath == "" || hooksDir == "" {
		return false
	}
	hp := filepath.ToSlash(filepath.Clean(hooksPath))
	hd := filepath.ToSlash(filepath.Clean(hooksDir))
	return hp == hd || strings.HasPrefix(hp, hd+"/")
}

// CheckDependencies reports whether the lint toolchain packages are installed.
func CheckDependencies(outcome domain.CommandOutcome, rules domain.LintSetupRules) domain.CheckResult {
	r := domain.CheckResult{Section: domain.SectionDependencies, Name: strings.Join(rules.Packages, ", ")}
	switch {
	case outcome.Skipped:
		r.Status = domain.StatusInfo
		r.Message = "Dependency check skipped"
	case outcome.Err == nil:
		r.Status = domain.StatusPass
		r.Message = "All required dependencies are installed"
	case errors.Is(outcome.Err, domain.ErrCommandNotFound):
		r.Status = domain.StatusWarn
		r.Message = "npm is not available; cannot verify dependencies"
	default:
		r.Status = domain.StatusFail
		r.Message = "Some dependencies are missing"
		r.Detail = "Run: pnpm install"
	}
	return r
}

// CheckLintStagedConfig reports whether the lint-staged config could be loaded.
func CheckLintStagedConfig(facts domain.LintSetupFacts) domain.CheckResult {
	r := domain.CheckResult{Section: domain.SectionLintStaged, Name: facts.LintStagedConfig}
	outcome := facts.LintStagedOutcome
	switch {
	case outcome.Skipped:
		r.Status = domain.StatusInfo
		r.Message = "lint-staged configuration not evaluated (commands skipped)"
	case outcome.Err == nil:
		r.Status = domain.StatusPass
		r.Message = "lint-staged configuration is valid"
		r.Detail = fmt.Sprintf("%d file pattern(s) configured", len(facts.LintStagedKeys))
	case errors.Is(outcome.Err, domain.ErrCommandNotFound):
		r.Status = domain.StatusWarn
		r.Message = "node is not available; cannot evaluate lint-staged configuration"
	default:
		r.Status = domain.StatusFail
		r.Message = "lint-staged configuration is invalid"
		r.Detail = outcome.Err.Error()
	}
	return r
}

// CheckPrettierConfig reports whether the Prettier config parsed.
func CheckPrettierConfig(facts domain.LintSetupFacts, rules domain.LintSetupRules) domain.CheckResult {
	r := domain.CheckResult{Section: domain.SectionPrettier, Name: rules.PrettierConfig}
	if facts.PrettierErr != nil {
		r.Status = domain.StatusFail
		r.Message = "Prettier configuration is invalid"
		r.Detail = facts.PrettierErr.Error()
		return r
	}
	r.Status = domain.StatusPass
	r.Message = "Prettier configuration is valid"
	r.Detail = fmt.Sprintf("%d setting(s)", len(facts.PrettierSettings))
	return r
}

// CheckESLintConfig reports whether ESLint could resolve its configuration.
func CheckESLintConfig(outcome domain.CommandOutcome, rules domain.LintSetupRules) domain.CheckResult {
	r := domain.CheckResult{Section: domain.SectionESLint, Name: rules.ESLintConfig}
	switch {
	case outcome.Skipped:
		r.Status = domain.StatusInfo
		r.Message = "ESLint check skipped"
	case outcome.Err == nil:
		r.Status = domain.StatusPass
		r.Message = "ESLint configuration is valid"
	case errors.Is(outcome.Err, domain.ErrCommandNotFound):
		r.Status = domain.StatusWarn
		r.Message = "npx is not available; cannot verify ESLint configuration"
	default:
		r.Status = domain.StatusFail
		r.Message = "ESLint configuration has issues"
		r.Detail = outcome.Err.Error()
	}
	return r
}

func existence(r domain.CheckResult, exists bool) domain.CheckResult {
	if exists {
		r.Status = domain.StatusPass
		r.Message = r.Name + " exists"
	} else {
		r.Status = domain.StatusFail
		r.Message = r.Name + " not found"
	}
	return r
}

func lintStagedLabel(rules domain.LintSetupRules) string {
	if len(rules.LintStagedConfigs) == 0 {
		return "lint-staged config"
	}
	return rules.LintStagedConfigs[0]
}
