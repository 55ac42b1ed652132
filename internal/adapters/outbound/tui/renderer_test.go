package tui_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/openkraft/repocheck/internal/adapters/outbound/tui"
	"github.com/openkraft/repocheck/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleRenovateReport() *domain.RenovateReport {
	return &domain.RenovateReport{
		ConfigPath: "/repo/.github/renovate.json",
		RelPath:    ".github/renovate.json",
		Results: []domain.CheckResult{
			{Section: domain.SectionRequiredFields, Name: "extends", Status: domain.StatusFail, Message: "Missing"},
			{Section: domain.SectionRequiredFields, Name: "packageRules", Status: domain.StatusPass, Message: "Present"},
			{Section: domain.SectionPackageRules, Name: "count", Status: domain.StatusInfo, Message: "Package rules count: 2"},
			{Section: domain.SectionSchedule, Name: "schedule", Status: domain.StatusPass,
				Message: "Schedule configured", Detail: `["before 6am"]`},
			{Section: domain.SectionSecurity, Name: "osvVulnerabilityAlerts", Status: domain.StatusWarn,
				Message: "OSV vulnerability alerts: Not enabled"},
		},
		Summary: domain.RenovateSummary{
			ConfigFile:        ".github/renovate.json",
			PackageRulesCount: 2,
			Timezone:          domain.DefaultTimezoneLabel,
		},
	}
}

func TestRenderRenovateReport_LabelsRequiredFields(t *testing.T) {
	output := tui.RenderRenovateReport(sampleRenovateReport())
	assert.Contains(t, output, "Found and parsed config: .github/renovate.json")
	assert.Contains(t, output, "extends: Missing")
	assert.Contains(t, output, "packageRules: Present")
}

func TestRenderRenovateReport_SectionTitles(t *testing.T) {
	output := tui.RenderRenovateReport(sampleRenovateReport())
	assert.Contains(t, output, "Required Fields")
	assert.Contains(t, output, "Package Rules")
	assert.Contains(t, output, "Security")
	assert.NotContains(t, output, "Recommended Extends")
}

func TestRenderRenovateReport_DetailAndSummary(t *testing.T) {
	output := tui.RenderRenovateReport(sampleRenovateReport())
	assert.Contains(t, output, `["before 6am"]`)
	assert.Contains(t, output, "Config file: .github/renovate.json")
	assert.Contains(t, output, "Total extends: 0")
	assert.Contains(t, output, "Package rules: 2")
	assert.Contains(t, output, "Timezone: Default (UTC)")
	assert.Contains(t, output, "Dependency dashboard: Disabled")
}

func TestRenderRenovateReport_GapsAndNextSteps(t *testing.T) {
	output := tui.RenderRenovateReport(sampleRenovateReport())
	assert.Contains(t, output, "1 failed")
	assert.Contains(t, output, "1 warnings")
	assert.Contains(t, output, "Install the Renovate app")
	assert.Contains(t, output, "Review and merge dependency update PRs")
}

func TestRenderRenovateReport_NoIssues(t *testing.T) {
	report := &domain.RenovateReport{
		RelPath: "renovate.json",
		Results: []domain.CheckResult{
			{Section: domain.SectionRequiredFields, Name: "extends", Status: domain.StatusPass, Message: "Present"},
		},
		Summary: domain.RenovateSummary{ConfigFile: "renovate.json", DependencyDashboard: true},
	}
	output := tui.RenderRenovateReport(report)
	assert.Contains(t, output, "No issues found.")
	assert.Contains(t, output, "Dependency dashboard: Enabled")
}

func TestRenderLintSetupReport(t *testing.T) {
	report := &domain.LintSetupReport{
		Root: "/repo",
		Results: []domain.CheckResult{
			{Section: domain.SectionConfigFiles, Name: ".prettierrc", Status: domain.StatusPass, Message: ".prettierrc exists"},
			{Section: domain.SectionESLint, Name: "eslint.config.mjs", Status: domain.StatusFail,
				Message: "ESLint configuration has issues", Detail: "npx: exit status 2"},
		},
		LintStagedPatterns: []string{"*.{js,ts}", "*.md"},
		PrettierSettings:   []domain.Setting{{Key: "semi", Value: "false"}},
	}

	output := tui.RenderLintSetupReport(report)
	assert.Contains(t, output, "Config Files")
	assert.Contains(t, output, "ESLint")
	assert.Contains(t, output, ".prettierrc exists")
	assert.Contains(t, output, "npx: exit status 2")
	assert.Contains(t, output, "(2)")
	assert.Contains(t, output, "*.{js,ts}")
	assert.Contains(t, output, "semi: false")
	assert.Contains(t, output, "Test pre-commit: npx lint-staged")
	assert.Contains(t, output, "ESLint + Prettier")
}

func TestRenderError_NotFoundListsCandidates(t *testing.T) {
	err := fmt.Errorf("validate: %w", &domain.NotFoundError{
		Kind:       "Renovate",
		Candidates: []string{"renovate.json", ".github/renovate.json"},
	})
	output := tui.RenderError(err)
	assert.Contains(t, output, "No Renovate configuration file found")
	assert.Contains(t, output, "renovate.json, .github/renovate.json")
}

func TestRenderError_MissingFiles(t *testing.T) {
	output := tui.RenderError(&domain.MissingFilesError{Files: []string{".prettierrc", "eslint.config.mjs"}})
	assert.Contains(t, output, "Required file(s) not found")
	assert.Contains(t, output, "eslint.config.mjs")
}

func TestRenderError_Generic(t *testing.T) {
	output := tui.RenderError(errors.New("boom"))
	assert.Contains(t, output, "boom")
}
