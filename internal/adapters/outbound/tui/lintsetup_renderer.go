package tui

import (
	"fmt"
	"strings"

	"github.com/openkraft/repocheck/internal/domain"
	"github.com/openkraft/repocheck/internal/domain/lintsetup"
)

// RenderLintSetupReport renders a LintSetupReport followed by usage guidance.
func RenderLintSetupReport(report *domain.LintSetupReport) string {
	var b strings.Builder

	header := titleStyle.Render("lint-staged setup") + "\n" + dimStyle.Render(report.Root)
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n")

	renderSections(&b, report.Results, nil)

	if len(report.LintStagedPatterns) > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s %s\n",
			sectionHeaderStyle.Render("File patterns configured"),
			dimStyle.Render(fmt.Sprintf("(%d)", len(report.LintStagedPatterns))),
		)
		for _, p := range report.LintStagedPatterns {
			fmt.Fprintf(&b, "    - %s\n", p)
		}
	}

	if len(report.PrettierSettings) > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s\n", sectionHeaderStyle.Render("Prettier settings"))
		for _, s := range report.PrettierSettings {
			fmt.Fprintf(&b, "    - %s: %s\n", s.Key, s.Value)
		}
	}

	b.WriteString("\n  " + separatorLine + "\n")
	renderGapsLine(&b, report.Results)

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n", titleStyle.Render("Usage"))
	for _, step := range lintsetup.UsageSteps() {
		fmt.Fprintf(&b, "    - %s\n", step)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n", titleStyle.Render("File patterns handled"))
	for _, g := range lintsetup.PatternGuides() {
		fmt.Fprintf(&b, "    - %s: %s %s\n", g.Label, g.Pattern, hintStyle.Render("("+g.Tools+")"))
	}

	return b.String()
}
