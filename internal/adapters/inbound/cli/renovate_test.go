package cli_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/openkraft/repocheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const completeRenovate = `{
  "extends": ["config:recommended", ":dependencyDashboard", ":semanticCommits"],
  "packageRules": [{"groupName": "linters", "automerge": true}],
  "schedule": ["before 6am on monday"],
  "timezone": "Europe/Berlin",
  "dependencyDashboard": true,
  "vulnerabilityAlerts": {"enabled": true},
  "osvVulnerabilityAlerts": true
}`

func TestRenovateCommand_ReportsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "renovate.json", `{"packageRules": []}`)

	out, err := run(t, "renovate", "--path", dir)
	require.NoError(t, err, "advisory gaps are not fatal")
	assert.Contains(t, out, "Found and parsed config: renovate.json")
	assert.Contains(t, out, "extends: Missing")
	assert.Contains(t, out, "No custom schedule configured")
	assert.Contains(t, out, "Timezone: Default (UTC)")
}

func TestRenovateCommand_NoCandidate(t *testing.T) {
	_, err := run(t, "renovate", "--path", t.TempDir())
	require.Error(t, err)

	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Contains(t, err.Error(), "renovate.json, .renovaterc.json, .github/renovate.json")
}

func TestRenovateCommand_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".renovaterc.json", `{"extends": [`)

	_, err := run(t, "renovate", "--path", dir)
	require.Error(t, err)

	var pe *domain.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, err.Error(), ".renovaterc.json")
}

func TestRenovateCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".github/renovate.json", completeRenovate)

	out, err := run(t, "renovate", "--path", dir, "--json")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result), "output should be valid JSON")
	assert.Equal(t, ".github/renovate.json", result["rel_path"])
	assert.Contains(t, result, "results")
	assert.Contains(t, result, "summary")
}

func TestRenovateCommand_StrictFailsOnWarnings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "renovate.json", `{"extends": ["config:recommended"], "packageRules": []}`)

	_, err := run(t, "renovate", "--path", dir, "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict mode")
}

func TestRenovateCommand_StrictFromConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "renovate.json", `{"extends": ["config:recommended"], "packageRules": []}`)
	writeFile(t, dir, ".repocheck.yaml", "renovate:\n  strict: true\n")

	_, err := run(t, "renovate", "--path", dir)
	require.Error(t, err)
}

func TestRenovateCommand_StrictPassesCleanConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "renovate.json", completeRenovate)

	out, err := run(t, "renovate", "--path", dir, "--strict")
	require.NoError(t, err)
	assert.Contains(t, out, "No issues found.")
	assert.Contains(t, out, "Timezone: Europe/Berlin")
}

func TestRenovateCommand_CustomCandidates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config/renovate.json", `{"extends": []}`)
	writeFile(t, dir, ".repocheck.yaml", "renovate:\n  candidates:\n    - config/renovate.json\n  required_fields:\n    - extends\n")

	out, err := run(t, "renovate", "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "extends: Present")
	assert.NotContains(t, out, "packageRules: Missing")
}

func TestRenovateCommand_SummaryPathRelativeToWorkingDir(t *testing.T) {
	parent := t.TempDir()
	writeFile(t, parent, "proj/renovate.json", completeRenovate)
	t.Chdir(parent)

	out, err := run(t, "renovate", "--path", "proj")
	require.NoError(t, err)
	assert.Contains(t, out, "Config file: proj/renovate.json")
	assert.Contains(t, out, "Found and parsed config: renovate.json")
}

func TestRenovateCommand_SummaryPathFromInsideProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".github/renovate.json", completeRenovate)
	t.Chdir(dir)

	out, err := run(t, "renovate")
	require.NoError(t, err)
	assert.Contains(t, out, "Config file: .github/renovate.json")
}

func TestRenovateCommand_NullDocumentIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "renovate.json", `null`)

	out, err := run(t, "renovate", "--path", dir)
	require.Error(t, err)

	var pe *domain.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, err.Error(), "expected a JSON object, got null")
	assert.NotContains(t, out, "Configuration Summary")
}
