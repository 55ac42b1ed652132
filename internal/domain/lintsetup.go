package domain

// Lint setup report sections.
const (
	SectionConfigFiles  = "configFiles"
	SectionPreCommit    = "preCommitHook"
	SectionDependencies = "dependencies"
	SectionLintStaged   = "lintStaged"
	SectionPrettier     = "prettier"
	SectionESLint       = "eslint"
)

// LintSetupRules names the files, packages and commands the lint setup
// checker looks at.
type LintSetupRules struct {
	LintStagedConfigs []string `json:"lint_staged_configs"`
	PrettierConfig    string   `json:"prettier_config"`
	ESLintConfig      string   `json:"eslint_config"`
	PreCommitHook     string   `json:"pre_commit_hook"`
	HookMarker        string   `json:"hook_marker"`
	HooksDir          string   `json:"hooks_dir"`
	Packages          []string `json:"packages"`
	ESLintProbeFile   string   `json:"eslint_probe_file"`
	SkipCommands      bool     `json:"skip_commands"`
}

// DefaultLintSetupRules returns a fresh copy of the built-in lint setup rules.
func DefaultLintSetupRules() LintSetupRules {
	return LintSetupRules{
		LintStagedConfigs: []string{
			".lintstagedrc.js",
			".lintstagedrc.json",
			".lintstagedrc.yaml",
			".lintstagedrc.yml",
			".lintstagedrc",
		},
		PrettierConfig:  ".prettierrc",
		ESLintConfig:    "eslint.config.mjs",
		PreCommitHook:   ".husky/pre-commit",
		HookMarker:      "lint-staged",
		HooksDir:        ".husky",
		Packages:        []string{"lint-staged", "eslint", "prettier"},
		ESLintProbeFile: "src/index.js",
	}
}

// Setting is one key/value pair of a formatter configuration, in file order.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CommandOutcome records how an external probe went.
type CommandOutcome struct {
	Skipped bool
	Err     error
}

// LintSetupFacts is everything the checker gathered from disk, git and
// external commands. Rules in the lintsetup package turn it into results.
type LintSetupFacts struct {
	LintStagedConfig  string
	PrettierExists    bool
	ESLintExists      bool
	PreCommitExists   bool
	PreCommitContent  string
	GitRepo           bool
	HooksPath         string
	Dependencies      CommandOutcome
	LintStagedKeys    []string
	LintStagedOutcome CommandOutcome
	PrettierSettings  []Setting
	PrettierErr       error
	ESLint            CommandOutcome
}

// LintSetupReport is the structured outcome of the lint setup check.
type LintSetupReport struct {
	Root               string        `json:"root"`
	Results            []CheckResult `json:"results"`
	LintStagedConfig   string        `json:"lint_staged_config,omitempty"`
	LintStagedPatterns []string      `json:"lint_staged_patterns,omitempty"`
	PrettierSettings   []Setting     `json:"prettier_settings,omitempty"`
}

// Gaps returns the number of fails and warnings in the report.
func (r *LintSetupReport) Gaps() int { return CountGaps(r.Results) }

// Passed reports whether no check failed.
func (r *LintSetupReport) Passed() bool { return !HasFailure(r.Results) }
