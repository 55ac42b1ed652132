package domain

// Renovate report sections. Names follow the configuration's own key style
// so renderers can humanise them.
const (
	SectionRequiredFields     = "requiredFields"
	SectionRecommendedExtends = "recommendedExtends"
	SectionPackageRules       = "packageRules"
	SectionSchedule           = "schedule"
	SectionSecurity           = "security"
)

// DefaultTimezoneLabel is shown when the configuration sets no timezone.
const DefaultTimezoneLabel = "Default (UTC)"

// RenovateRules is the fixed rule set the validator runs with.
type RenovateRules struct {
	Candidates         []string `json:"candidates"`
	RequiredFields     []string `json:"required_fields"`
	RecommendedExtends []string `json:"recommended_extends"`
}

// DefaultRenovateRules returns a fresh copy of the built-in rule set.
func DefaultRenovateRules() RenovateRules {
	return RenovateRules{
		Candidates: []string{
			"renovate.json",
			".renovaterc.json",
			".github/renovate.json",
		},
		RequiredFields: []string{"extends", "packageRules"},
		RecommendedExtends: []string{
			"config:recommended",
			":dependencyDashboard",
			":semanticCommits",
		},
	}
}

// ResolvedDocument is the first candidate file that exists, parsed.
type ResolvedDocument struct {
	Path     string
	RelPath  string
	Document Value
}

// PackageRuleStats summarises the packageRules array.
type PackageRuleStats struct {
	Total     int `json:"total"`
	Grouped   int `json:"grouped"`
	Automerge int `json:"automerge"`
}

// RenovateSummary is the closing block of the report.
type RenovateSummary struct {
	ConfigFile          string `json:"config_file"`
	ExtendsCount        int    `json:"extends_count"`
	PackageRulesCount   int    `json:"package_rules_count"`
	Timezone            string `json:"timezone"`
	DependencyDashboard bool   `json:"dependency_dashboard"`
}

// RenovateReport is the structured outcome of validating a Renovate config.
type RenovateReport struct {
	ConfigPath   string            `json:"config_path"`
	RelPath      string            `json:"rel_path"`
	Results      []CheckResult     `json:"results"`
	PackageRules *PackageRuleStats `json:"package_rules,omitempty"`
	Summary      RenovateSummary   `json:"summary"`
}

// Gaps returns the number of advisory gaps in the report.
func (r *RenovateReport) Gaps() int { return CountGaps(r.Results) }

// Passed reports whether no check failed. Warnings do not count.
func (r *RenovateReport) Passed() bool { return !HasFailure(r.Results) }
