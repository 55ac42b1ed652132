package application_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/openkraft/repocheck/internal/adapters/outbound/loader"
	"github.com/openkraft/repocheck/internal/application"
	"github.com/openkraft/repocheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
}

func newRenovateService() *application.RenovateService {
	return application.NewRenovateService(loader.New("Renovate"))
}

func TestRenovateService_NotFound(t *testing.T) {
	dir := t.TempDir()
	rules := domain.DefaultRenovateRules()

	_, err := newRenovateService().Validate(dir, rules)
	require.Error(t, err)

	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	for _, c := range rules.Candidates {
		assert.Contains(t, err.Error(), c)
	}
}

func TestRenovateService_ParseError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "renovate.json", `{"extends": ["config:recommended"],}`)

	_, err := newRenovateService().Validate(dir, domain.DefaultRenovateRules())
	var pe *domain.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "renovate.json", pe.Path)
}

func TestRenovateService_InjectedRules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config/bot.json", `{"extends": ["local>org/presets"], "labels": ["deps"]}`)

	rules := domain.RenovateRules{
		Candidates:         []string{"missing.json", "config/bot.json"},
		RequiredFields:     []string{"labels"},
		RecommendedExtends: []string{"local>org/presets"},
	}
	report, err := newRenovateService().Validate(dir, rules)
	require.NoError(t, err)

	assert.Equal(t, "config/bot.json", report.RelPath)
	assert.Equal(t, "config/bot.json", report.Summary.ConfigFile)
	assert.True(t, report.Passed())

	r, ok := domain.FindResult(report.Results, domain.SectionRecommendedExtends, "local>org/presets")
	require.True(t, ok)
	assert.Equal(t, domain.StatusPass, r.Status)
}

func TestRenovateService_NoCandidates(t *testing.T) {
	_, err := newRenovateService().Validate(t.TempDir(), domain.RenovateRules{})
	assert.ErrorContains(t, err, "no candidate paths")
}

func TestRenovateService_PackageRuleCounts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".github/renovate.json", `{
		"extends": ["config:recommended"],
		"packageRules": [
			{"groupName": "eslint", "automerge": true},
			{"groupName": "types"},
			{"matchUpdateTypes": ["major"]}
		]
	}`)

	report, err := newRenovateService().Validate(dir, domain.DefaultRenovateRules())
	require.NoError(t, err)
	require.NotNil(t, report.PackageRules)
	assert.Equal(t, domain.PackageRuleStats{Total: 3, Grouped: 2, Automerge: 1}, *report.PackageRules)
	assert.Equal(t, 1, report.Summary.ExtendsCount)
}
