package domain_test

import (
	"testing"

	"github.com/openkraft/repocheck/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_MatchesDefaultRules(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, domain.DefaultRenovateRules(), cfg.RenovateRules())
	assert.Equal(t, domain.DefaultLintSetupRules(), cfg.LintSetupRules())
	assert.NoError(t, cfg.Validate())
}

func TestRenovateRules_AreCopies(t *testing.T) {
	cfg := domain.DefaultConfig()
	rules := cfg.RenovateRules()
	rules.Candidates[0] = "changed.json"
	assert.Equal(t, "renovate.json", cfg.Renovate.Candidates[0])
}

func TestDefaultRenovateRules_FreshEachCall(t *testing.T) {
	a := domain.DefaultRenovateRules()
	a.RequiredFields[0] = "mutated"
	assert.Equal(t, "extends", domain.DefaultRenovateRules().RequiredFields[0])
}

func TestValidate_RejectsAbsoluteCandidate(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Renovate.Candidates = []string{"/etc/renovate.json"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "renovate.candidates[0]")
}

func TestValidate_RejectsEscapingPath(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.LintSetup.PrettierConfig = "../.prettierrc"
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "escapes the project root")
}

func TestValidate_RejectsBlankRequiredField(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Renovate.RequiredFields = []string{"extends", " "}
	assert.ErrorContains(t, cfg.Validate(), "renovate.required_fields[1]")
}

func TestValidate_RejectsFlagLikePackage(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.LintSetup.Packages = []string{"--global"}
	assert.ErrorContains(t, cfg.Validate(), "looks like a flag")
}

func TestValidate_EmptyConfigIsValid(t *testing.T) {
	assert.NoError(t, domain.ProjectConfig{}.Validate())
}
