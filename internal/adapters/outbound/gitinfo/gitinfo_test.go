package gitinfo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/openkraft/repocheck/internal/adapters/outbound/gitinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return dir, repo
}

func TestGitInfo_IsGitRepo_True(t *testing.T) {
	dir, _ := initRepo(t)

	gi := gitinfo.New()
	assert.True(t, gi.IsGitRepo(dir))
}

func TestGitInfo_IsGitRepo_Subdirectory(t *testing.T) {
	dir, _ := initRepo(t)
	sub := filepath.Join(dir, "packages", "web")
	require.NoError(t, os.MkdirAll(sub, 0755))

	assert.True(t, gitinfo.New().IsGitRepo(sub))
}

func TestGitInfo_IsGitRepo_False(t *testing.T) {
	dir := t.TempDir()
	gi := gitinfo.New()
	assert.False(t, gi.IsGitRepo(dir))
}

func TestGitInfo_HooksPath_Unset(t *testing.T) {
	dir, _ := initRepo(t)

	hp, err := gitinfo.New().HooksPath(dir)
	require.NoError(t, err)
	assert.Empty(t, hp)
}

func TestGitInfo_HooksPath_Set(t *testing.T) {
	dir, repo := initRepo(t)

	cfg, err := repo.Config()
	require.NoError(t, err)
	cfg.Raw.Section("core").SetOption("hooksPath", ".husky/_")
	require.NoError(t, repo.SetConfig(cfg))

	hp, err := gitinfo.New().HooksPath(dir)
	require.NoError(t, err)
	assert.Equal(t, ".husky/_", hp)
}

func TestGitInfo_HooksPath_NotGitRepo(t *testing.T) {
	dir := t.TempDir()
	_, err := gitinfo.New().HooksPath(dir)
	assert.Error(t, err)
}
