package tui

import (
	"fmt"
	"strings"

	"github.com/openkraft/repocheck/internal/domain"
)

var renovateLabelled = map[string]bool{
	domain.SectionRequiredFields:     true,
	domain.SectionRecommendedExtends: true,
}

// RenderRenovateReport renders a RenovateReport as a styled TUI string.
func RenderRenovateReport(report *domain.RenovateReport) string {
	var b strings.Builder

	header := titleStyle.Render("Renovate configuration") + "\n" +
		dimStyle.Render("Found and parsed config: "+report.RelPath)
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n")

	renderSections(&b, report.Results, renovateLabelled)

	// Summary
	s := report.Summary
	dashboard := "Disabled"
	if s.DependencyDashboard {
		dashboard = "Enabled"
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n", sectionHeaderStyle.Render("Configuration Summary"))
	fmt.Fprintf(&b, "    Config file: %s\n", s.ConfigFile)
	fmt.Fprintf(&b, "    Total extends: %d\n", s.ExtendsCount)
	fmt.Fprintf(&b, "    Package rules: %d\n", s.PackageRulesCount)
	fmt.Fprintf(&b, "    Timezone: %s\n", s.Timezone)
	fmt.Fprintf(&b, "    Dependency dashboard: %s\n", dashboard)

	b.WriteString("\n  " + separatorLine + "\n")
	renderGapsLine(&b, report.Results)

	// Footer
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n", titleStyle.Render("Next steps"))
	b.WriteString("    1. Install the Renovate app on your GitHub repository\n")
	b.WriteString("    2. Monitor the dependency dashboard issue\n")
	b.WriteString("    3. Review and merge dependency update PRs\n")

	return b.String()
}
