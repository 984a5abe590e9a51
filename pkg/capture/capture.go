// Package capture acquires raw InnoDB status text from a file, an external
// command, a reader, or a live database connection.
//
// Every source normalizes its output into a Capture: an ordered sequence of
// text chunks that the extraction engine treats as opaque text.
package capture

import (
	"context"
	"strings"
)

// Capture is the raw status text of one run.
type Capture struct {
	Origin string   // e.g. "file:example.txt", "command:mysql", "stdin"
	Chunks []string // per-line or whole-document chunks, in source order
}

// Source produces a Capture. Implementations release any file, pipe, or
// connection they open before Acquire returns, on success and failure alike.
type Source interface {
	Acquire(ctx context.Context) (Capture, error)
}

var newlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Text joins the chunks into the single blob the extraction rules run against.
// Chunks are joined with a space and line breaks become spaces, so phrases that
// span lines in the source read as one run of text.
func (c Capture) Text() string {
	return newlines.Replace(strings.Join(c.Chunks, " "))
}

// Empty reports whether the capture holds no non-blank text.
func (c Capture) Empty() bool {
	for _, ch := range c.Chunks {
		if strings.TrimSpace(ch) != "" {
			return false
		}
	}
	return true
}

// FromText wraps an already-available text blob as a single-chunk Capture.
func FromText(origin, text string) Capture {
	return Capture{Origin: origin, Chunks: []string{text}}
}

// FromLines wraps a slice of lines as a Capture. The slice is copied.
func FromLines(origin string, lines []string) Capture {
	chunks := make([]string, len(lines))
	copy(chunks, lines)
	return Capture{Origin: origin, Chunks: chunks}
}
