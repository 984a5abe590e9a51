package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/innostat/pkg/status"
)

var titler = cases.Title(language.English)

// alertTitles are sections that point at contention or errors.
var alertTitles = map[string]bool{
	TitleThreads:      true,
	TitleTransactions: true,
	TitleFKErrors:     true,
	TitleUnflushed:    true,
}

// Terminal renders the report sections as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
	opts  Options
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int, opts Options) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width, opts: opts}
}

// Render formats the catalog for terminal display.
func (t *Terminal) Render(cat *status.Catalog) string {
	var sb strings.Builder

	sb.WriteString(t.theme.Banner.Render(titler.String(strings.ToLower(ReportTitle))))
	sb.WriteString("\n")
	if t.opts.SourceFile != "" {
		sb.WriteString(t.theme.Muted.Render("source: " + t.opts.SourceFile))
		sb.WriteString("\n")
	}
	sb.WriteString(t.rule())

	for _, s := range Sections(cat, t.opts.logger()) {
		sb.WriteString("\n")
		sb.WriteString(t.renderSection(s))
	}
	return sb.String()
}

func (t *Terminal) renderSection(s Section) string {
	var sb strings.Builder
	sb.WriteString(t.theme.Title.Render(titler.String(strings.ToLower(s.Title))))
	sb.WriteString("\n")

	body := t.theme.Value
	if alertTitles[s.Title] {
		body = t.theme.Alert
	}
	for _, line := range bodyLines(s) {
		label, value, found := strings.Cut(line, ": ")
		if found && !strings.Contains(label, " | ") && lipgloss.Width(label) < 32 {
			sb.WriteString("  " + t.theme.Label.Render(label+":") + " " + body.Render(value) + "\n")
			continue
		}
		sb.WriteString("  " + body.Render(strings.TrimSpace(line)) + "\n")
	}
	return sb.String()
}

func (t *Terminal) rule() string {
	w := t.width
	if w > RuleWidth {
		w = RuleWidth
	}
	return t.theme.Muted.Render(strings.Repeat(t.theme.Rule, w)) + "\n"
}

// bodyLines flattens a section's plain lines, dropping the blank lines the
// plain layout uses for spacing. Thread waits are listed one per line.
func bodyLines(s Section) []string {
	var out []string
	for _, line := range s.Lines {
		parts := []string{line}
		if s.Title == TitleThreads {
			parts = strings.Split(line, " | ")
		}
		for _, p := range parts {
			for _, l := range strings.Split(p, "\n") {
				if strings.TrimSpace(l) != "" {
					out = append(out, l)
				}
			}
		}
	}
	return out
}
