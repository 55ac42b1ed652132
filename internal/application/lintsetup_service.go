package application

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openkraft/repocheck/internal/domain"
	"github.com/openkraft/repocheck/internal/domain/lintsetup"
	"github.com/openkraft/repocheck/internal/log"
	"gopkg.in/yaml.v3"
)

// lintStagedKeysScript loads a JS lint-staged config with node and prints
// its top-level keys as a JSON array. The config path is passed as argv[1].
const lintStagedKeysScript = `const { pathToFileURL } = require('node:url');
import(pathToFileURL(process.argv[1]).href).then((m) => {
  const cfg = m.default ?? m;
  const keys = typeof cfg === 'function' ? ['(function)'] : Object.keys(cfg);
  process.stdout.write(JSON.stringify(keys) + '\n');
}).catch((e) => { console.error(e.message); process.exit(1); });`

// LintSetupService gathers facts about a project's lint/format toolchain and
// evaluates them.
type LintSetupService struct {
	git    domain.GitInfo
	runner domain.CommandRunner
}

func NewLintSetupService(git domain.GitInfo, runner domain.CommandRunner) *LintSetupService {
	return &LintSetupService{git: git, runner: runner}
}

// Check inspects projectPath. The report is always returned when the root
// is readable; a *domain.MissingFilesError accompanies it when any of the
// required configuration files is absent.
func (s *LintSetupService) Check(ctx context.Context, projectPath string, rules domain.LintSetupRules) (*domain.LintSetupReport, error) {
	logger := log.WithComponent("lint-setup")

	root, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	if info, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("reading project root: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", root)
	}

	var facts domain.LintSetupFacts

	// 1. Configuration files
	facts.LintStagedConfig = firstExisting(root, rules.LintStagedConfigs)
	facts.PrettierExists = isFile(filepath.Join(root, rules.PrettierConfig))
	facts.ESLintExists = isFile(filepath.Join(root, rules.ESLintConfig))

	// 2. Pre-commit hook
	if data, err := os.ReadFile(filepath.Join(root, rules.PreCommitHook)); err == nil {
		facts.PreCommitExists = true
		facts.PreCommitContent = string(data)
	}

	// 3. Hook installation
	facts.GitRepo = s.git.IsGitRepo(root)
	if facts.GitRepo {
		hp, err := s.git.HooksPath(root)
		if err != nil {
			logger.Debug().Err(err).Msg("reading hooks path")
		}
		facts.HooksPath = hp
	}

	// 4. Installed packages
	if rules.SkipCommands {
		facts.Dependencies.Skipped = true
	} else {
		args := append([]string{"ls"}, rules.Packages...)
		_, err := s.runner.Run(ctx, root, "npm", args...)
		facts.Dependencies.Err = err
		logger.Debug().Err(err).Strs("packages", rules.Packages).Msg("npm ls")
	}

	// 5. lint-staged config contents
	if facts.LintStagedConfig != "" {
		keys, outcome := s.lintStagedKeys(ctx, root, facts.LintStagedConfig, rules.SkipCommands)
		facts.LintStagedKeys = keys
		facts.LintStagedOutcome = outcome
	}

	// 6. Prettier settings
	if facts.PrettierExists {
		facts.PrettierSettings, facts.PrettierErr = readPrettierSettings(filepath.Join(root, rules.PrettierConfig))
	}

	// 7. ESLint resolution
	if facts.ESLintExists {
		if rules.SkipCommands {
			facts.ESLint.Skipped = true
		} else {
			_, err := s.runner.Run(ctx, root, "npx", "eslint", "--print-config", rules.ESLintProbeFile)
			facts.ESLint.Err = err
			logger.Debug().Err(err).Str("probe", rules.ESLintProbeFile).Msg("eslint --print-config")
		}
	}

	report := &domain.LintSetupReport{
		Root:               root,
		Results:            lintsetup.Evaluate(facts, rules),
		LintStagedConfig:   facts.LintStagedConfig,
		LintStagedPatterns: facts.LintStagedKeys,
		PrettierSettings:   facts.PrettierSettings,
	}

	if missing := lintsetup.MissingConfigFiles(facts, rules); len(missing) > 0 {
		return report, &domain.MissingFilesError{Files: missing}
	}
	return report, nil
}

func (s *LintSetupService) lintStagedKeys(ctx context.Context, root, rel string, skipCommands bool) ([]string, domain.CommandOutcome) {
	full := filepath.Join(root, rel)

	if lintsetup.IsScriptConfig(rel) {
		if skipCommands {
			return nil, domain.CommandOutcome{Skipped: true}
		}
		out, err := s.runner.Run(ctx, root, "node", "-e", lintStagedKeysScript, full)
		if err != nil {
			return nil, domain.CommandOutcome{Err: err}
		}
		keys, err := parseKeyList(out)
		return keys, domain.CommandOutcome{Err: err}
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return nil, domain.CommandOutcome{Err: err}
	}
	keys, err := mappingKeys(data)
	return keys, domain.CommandOutcome{Err: err}
}

// parseKeyList reads the last line of out that holds a JSON array. The
// runner merges stderr into out, so node warnings may surround it.
func parseKeyList(out []byte) ([]string, error) {
	lines := strings.Split(string(out), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, "[") {
			continue
		}
		var keys []string
		if err := json.Unmarshal([]byte(line), &keys); err == nil {
			return keys, nil
		}
	}
	return nil, fmt.Errorf("reading node output: no key list in %q", strings.TrimSpace(string(out)))
}

// mappingKeys returns the top-level keys of a YAML or JSON mapping in file order.
func mappingKeys(data []byte) ([]string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("configuration is empty")
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, errors.New("expected a mapping of file patterns to commands")
	}

	m := doc.Content[0]
	keys := make([]string, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		keys = append(keys, m.Content[i].Value)
	}
	return keys, nil
}

func readPrettierSettings(path string) ([]domain.Setting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := domain.ParseDocument(data)
	if err != nil {
		return nil, err
	}
	if doc.Kind() != domain.KindObject {
		return nil, fmt.Errorf("expected a JSON object, got %s", doc.Kind())
	}

	keys := doc.Keys()
	settings := make([]domain.Setting, 0, len(keys))
	for _, k := range keys {
		v, _ := doc.Lookup(k)
		settings = append(settings, domain.Setting{Key: k, Value: v.Text()})
	}
	return settings, nil
}

func firstExisting(root string, candidates []string) string {
	for _, c := range candidates {
		if isFile(filepath.Join(root, filepath.FromSlash(c))) {
			return c
		}
	}
	return ""
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
