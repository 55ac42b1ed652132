package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"
	"github.com/openkraft/repocheck/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)

	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
	dimStyle           = lipgloss.NewStyle().Foreground(dim)
	faintStyle         = lipgloss.NewStyle().Foreground(faint)
	passStyle          = lipgloss.NewStyle().Foreground(success)
	failStyle          = lipgloss.NewStyle().Foreground(danger)
	warnStyle          = lipgloss.NewStyle().Foreground(warning)
	infoStyle          = lipgloss.NewStyle().Foreground(info)
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(fg)
	errorTagStyle      = lipgloss.NewStyle().Foreground(danger).Bold(true)
	separatorLine      = faintStyle.Render(strings.Repeat("─", 56))
)

// acronyms keeps well-known names intact when humanising identifiers.
var acronyms = map[string]string{
	"eslint": "ESLint",
	"osv":    "OSV",
	"json":   "JSON",
}

// humanize turns a camelCase identifier into a title ("packageRules" -> "Package Rules").
func humanize(ident string) string {
	words := camelcase.Split(ident)
	for i, w := range words {
		if a, ok := acronyms[strings.ToLower(w)]; ok {
			words[i] = a
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func statusIcon(s domain.Status) string {
	switch s {
	case domain.StatusPass:
		return passStyle.Render("●")
	case domain.StatusWarn:
		return warnStyle.Render("●")
	case domain.StatusFail:
		return failStyle.Render("●")
	default:
		return infoStyle.Render("○")
	}
}

// renderSections writes results grouped by section, keeping first-seen
// section order. Sections listed in labelled prefix each line with the
// result's name.
func renderSections(b *strings.Builder, results []domain.CheckResult, labelled map[string]bool) {
	var order []string
	seen := make(map[string]bool)
	for _, r := range results {
		if !seen[r.Section] {
			seen[r.Section] = true
			order = append(order, r.Section)
		}
	}

	for _, section := range order {
		b.WriteString("\n")
		fmt.Fprintf(b, "  %s\n", sectionHeaderStyle.Render(humanize(section)))
		for _, r := range domain.SectionResults(results, section) {
			renderResult(b, r, labelled[section])
		}
	}
}

func renderResult(b *strings.Builder, r domain.CheckResult, labelled bool) {
	text := r.Message
	if labelled {
		text = r.Name + ": " + r.Message
	}
	line := fmt.Sprintf("    %s %s", statusIcon(r.Status), text)
	if r.Detail != "" {
		line += "  " + dimStyle.Render(r.Detail)
	}
	b.WriteString(line + "\n")
}

func renderGapsLine(b *strings.Builder, results []domain.CheckResult) {
	var fails, warns int
	for _, r := range results {
		switch r.Status {
		case domain.StatusFail:
			fails++
		case domain.StatusWarn:
			warns++
		}
	}
	if fails == 0 && warns == 0 {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
		return
	}
	parts := make([]string, 0, 2)
	if fails > 0 {
		parts = append(parts, failStyle.Render(fmt.Sprintf("%d failed", fails)))
	}
	if warns > 0 {
		parts = append(parts, warnStyle.Render(fmt.Sprintf("%d warnings", warns)))
	}
	b.WriteString("  " + strings.Join(parts, "  ") + "\n")
}

// RenderError renders a fatal error for stderr.
func RenderError(err error) string {
	var b strings.Builder
	tag := errorTagStyle.Render("error")

	var nf *domain.NotFoundError
	var mf *domain.MissingFilesError
	switch {
	case errors.As(err, &nf):
		fmt.Fprintf(&b, "%s No %s configuration file found\n", tag, nf.Kind)
		fmt.Fprintf(&b, "      %s\n", dimStyle.Render("Expected one of: "+strings.Join(nf.Candidates, ", ")))
	case errors.As(err, &mf):
		fmt.Fprintf(&b, "%s Required file(s) not found\n", tag)
		for _, f := range mf.Files {
			fmt.Fprintf(&b, "      %s %s\n", failStyle.Render("●"), f)
		}
	default:
		fmt.Fprintf(&b, "%s %s\n", tag, err.Error())
	}
	return b.String()
}
