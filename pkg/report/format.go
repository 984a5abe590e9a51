package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Layout constants of the plain report.
const (
	RuleWidth       = 50 // width of header and separator rules
	TitleMaxWidth   = 35 // title text plus both dash runs stays within this
	TitleMaxPadding = 16 // longest dash run on either side of a title
)

// Spacer is the blank gap printed before the report.
func Spacer() string {
	return "\n\n"
}

// Header is a full-width asterisk rule.
func Header() string {
	return strings.Repeat("*", RuleWidth) + "\n"
}

// Separator closes every section: a blank line, an underscore rule, a blank line.
func Separator() string {
	return "\n" + strings.Repeat("_", RuleWidth) + "\n\n"
}

// TitlePadding returns the dash count for a title: the largest n no greater
// than TitleMaxPadding with width(text)+2n <= TitleMaxWidth. Titles wider than
// TitleMaxWidth get no dashes.
func TitlePadding(text string) int {
	n := (TitleMaxWidth - runewidth.StringWidth(text)) / 2
	if n > TitleMaxPadding {
		return TitleMaxPadding
	}
	if n < 0 {
		return 0
	}
	return n
}

// Title centers text between two dash runs and ends with a blank line.
func Title(text string) string {
	dashes := " " + strings.Repeat("-", TitlePadding(text)) + " "
	return dashes + text + dashes + "\n\n"
}
