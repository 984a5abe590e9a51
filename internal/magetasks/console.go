package magetasks

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	h1Style      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	h2Style      = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// PrintH1Header prints a top-level header.
func PrintH1Header(title string) {
	rule := strings.Repeat("=", 60)
	fmt.Println()
	fmt.Println(h1Style.Render(rule))
	fmt.Println(h1Style.Render(centered(title, len(rule))))
	fmt.Println(h1Style.Render(rule))
	fmt.Println()
}

// PrintH2Header prints a section header.
func PrintH2Header(title string) {
	fmt.Println()
	fmt.Println(h2Style.Render("=== " + title + " ==="))
}

func PrintSuccess(msg string) { fmt.Println(successStyle.Render("ok   " + msg)) }
func PrintWarning(msg string) { fmt.Println(warnStyle.Render("warn " + msg)) }
func PrintError(msg string)   { fmt.Println(errorStyle.Render("FAIL " + msg)) }

func centered(s string, width int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
