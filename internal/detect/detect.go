// Package detect sniffs captured text to determine how it was produced.
package detect

import (
	"bytes"
)

// Format represents a recognized capture layout.
type Format int

const (
	Unknown Format = iota
	Monitor        // plain InnoDB monitor text, as printed by \G or saved to a file
	Batch          // mysql client batch output: tab-separated, newlines escaped
)

func (f Format) String() string {
	switch f {
	case Monitor:
		return "monitor"
	case Batch:
		return "batch"
	default:
		return "unknown"
	}
}

var (
	banner    = []byte("INNODB MONITOR OUTPUT")
	endMarker = []byte("END OF INNODB MONITOR OUTPUT")
	batchHead = []byte("Type\tName\tStatus")
	batchRow  = []byte("InnoDB\t\t")
)

// Sniff examines the first bytes of input to determine its layout.
func Sniff(data []byte) Format {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return Unknown
	}

	if bytes.HasPrefix(data, batchHead) || bytes.HasPrefix(data, batchRow) {
		return Batch
	}
	// Batch rows keep the whole status on one line with literal \n escapes.
	firstLine := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		firstLine = data[:i]
	}
	if bytes.Contains(firstLine, banner) && bytes.Contains(firstLine, []byte(`\n`)) {
		return Batch
	}

	if bytes.Contains(data, banner) {
		return Monitor
	}
	return Unknown
}

// Complete reports whether data carries the closing monitor marker.
// Captures cut off mid-report still extract, but may miss later sections.
func Complete(data []byte) bool {
	return bytes.Contains(data, endMarker)
}
