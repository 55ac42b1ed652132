package renovate

import (
	"fmt"

	"github.com/openkraft/repocheck/internal/domain"
)

// Validate runs every advisory check against a resolved Renovate document
// and assembles the report. It never fails: resolution and parse errors are
// the loader's concern.
func Validate(resolved *domain.ResolvedDocument, rules domain.RenovateRules) *domain.RenovateReport {
	doc := resolved.Document

	report := &domain.RenovateReport{
		ConfigPath: resolved.Path,
		RelPath:    resolved.RelPath,
	}

	report.Results = append(report.Results, CheckRequiredFields(doc, rules.RequiredFields)...)
	report.Results = append(report.Results, CheckRecommendedExtends(doc, rules.RecommendedExtends)...)

	if stats, ok := AnalyzePackageRules(doc); ok {
		report.PackageRules = &stats
		report.Results = append(report.Results, packageRuleResults(stats)...)
	}

	report.Results = append(report.Results, CheckSchedule(doc))
	report.Results = append(report.Results, CheckSecurity(doc)...)
	report.Summary = Summarize(doc, resolved.RelPath)

	return report
}

// CheckRequiredFields reports each required field as present (truthy) or missing.
func CheckRequiredFields(doc domain.Value, fields []string) []domain.CheckResult {
	results := make([]domain.CheckResult, 0, len(fields))
	for _, field := range fields {
		r := domain.CheckResult{Section: domain.SectionRequiredFields, Name: field}
		if doc.Bool(field) {
			r.Status = domain.StatusPass
			r.Message = "Present"
		} else {
			r.Status = domain.StatusFail
			r.Message = "Missing"
		}
		results = append(results, r)
	}
	return results
}

// CheckRecommendedExtends reports whether each recommended preset appears in
// extends. It returns nothing when extends is absent or not an array.
func CheckRecommendedExtends(doc domain.Value, recommended []string) []domain.CheckResult {
	extends, ok := doc.Lookup("extends")
	if !ok || extends.Kind() != domain.KindArray {
		return nil
	}

	results := make([]domain.CheckResult, 0, len(recommended))
	for _, token := range recommended {
		r := domain.CheckResult{Section: domain.SectionRecommendedExtends, Name: token}
		if extends.Contains(token) {
			r.Status = domain.StatusPass
			r.Message = "Included"
		} else {
			r.Status = domain.StatusWarn
			r.Message = "Not included (recommended)"
		}
		results = append(results, r)
	}
	return results
}

// AnalyzePackageRules counts package rules, grouped rules and auto-merge
// rules. The second return is false when packageRules is absent or not an array.
func AnalyzePackageRules(doc domain.Value) (domain.PackageRuleStats, bool) {
	rules, ok := doc.Array("packageRules")
	if !ok {
		return domain.PackageRuleStats{}, false
	}

	stats := domain.PackageRuleStats{Total: len(rules)}
	for _, rule := range rules {
		if rule.Bool("groupName") {
			stats.Grouped++
		}
		if rule.Bool("automerge") {
			stats.Automerge++
		}
	}
	return stats, true
}

func packageRuleResults(stats domain.PackageRuleStats) []domain.CheckResult {
	return []domain.CheckResult{
		{Section: domain.SectionPackageRules, Name: "count", Status: domain.StatusInfo,
			Message: fmt.Sprintf("Package rules count: %d", stats.Total)},
		{Section: domain.SectionPackageRules, Name: "grouped", Status: domain.StatusInfo,
			Message: fmt.Sprintf("Grouped rules: %d", stats.Grouped)},
		{Section: domain.SectionPackageRules, Name: "automerge", Status: domain.StatusInfo,
			Message: fmt.Sprintf("Auto-merge rules: %d", stats.Automerge)},
	}
}

// CheckSchedule reports whether a custom schedule is configured.
func CheckSchedule(doc domain.Value) domain.CheckResult {
	r := domain.CheckResult{Section: domain.SectionSchedule, Name: "schedule"}
	if schedule, ok := doc.Lookup("schedule"); ok && schedule.Truthy() {
		r.Status = domain.StatusPass
		r.Message = "Schedule configured"
		r.Detail = schedule.String()
		return r
	}
	r.Status = domain.StatusWarn
	r.Message = "No custom schedule configured (will use default)"
	return r
}

// CheckSecurity reports the vulnerability alert settings.
func CheckSecurity(doc domain.Value) []domain.CheckResult {
	vuln := domain.CheckResult{Section: domain.SectionSecurity, Name: "vulnerabilityAlerts"}
	if doc.Bool("vulnerabilityAlerts", "enabled") {
		vuln.Status = domain.StatusPass
		vuln.Message = "Vulnerability alerts: Enabled"
	} else {
		vuln.Status = domain.StatusWarn
		vuln.Message = "Vulnerability alerts: Not explicitly enabled"
	}

	osv := domain.CheckResult{Section: domain.SectionSecurity, Name: "osvVulnerabilityAlerts"}
	if doc.Bool("osvVulnerabilityAlerts") {
		osv.Status = domain.StatusPass
		osv.Message = "OSV vulnerability alerts: Enabled"
	} else {
		osv.Status = domain.StatusWarn
		osv.Message = "OSV vulnerability alerts: Not enabled"
	}

	return []domain.CheckResult{vuln, osv}
}

// Summarize builds the closing summary block.
func Summarize(doc domain.Value, relPath string) domain.RenovateSummary {
	s := domain.RenovateSummary{
		ConfigFile:          relPath,
		Timezone:            domain.DefaultTimezoneLabel,
		DependencyDashboard: doc.Bool("dependencyDashboard"),
	}
	if extends, ok := doc.Array("extends"); ok {
		s.ExtendsCount = len(extends)
	}
	if rules, ok := doc.Array("packageRules"); ok {
		s.PackageRulesCount = len(rules)
	}
	if tz, ok := doc.Lookup("timezone"); ok && tz.Truthy() {
		s.Timezone = tz.Text()
	}
	return s
}
