package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// FileSource reads a saved status capture from disk.
type FileSource struct {
	Path string
}

// Acquire reads the whole file. A missing file yields a KindNotFound error.
func (s FileSource) Acquire(ctx context.Context) (Capture, error) {
	if err := ctx.Err(); err != nil {
		return Capture{}, &Error{Kind: KindUnreadable, Source: s.Path, Err: err}
	}

	f, err := os.Open(s.Path)
	if err != nil {
		kind := KindUnreadable
		if errors.Is(err, fs.ErrNotExist) {
			kind = KindNotFound
		}
		return Capture{}, &Error{Kind: kind, Source: s.Path, Err: err}
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return Capture{}, &Error{Kind: KindUnreadable, Source: s.Path, Err: err}
	}
	return Capture{Origin: "file:" + s.Path, Chunks: lines}, nil
}

// ReaderSource reads a capture from an arbitrary reader, typically stdin.
type ReaderSource struct {
	R    io.Reader
	Name string // label used in Origin and errors; defaults to "stdin"
}

// Acquire reads R to EOF. It does not close R.
func (s ReaderSource) Acquire(ctx context.Context) (Capture, error) {
	name := s.Name
	if name == "" {
		name = "stdin"
	}
	if err := ctx.Err(); err != nil {
		return Capture{}, &Error{Kind: KindUnreadable, Source: name, Err: err}
	}
	if s.R == nil {
		return Capture{}, &Error{Kind: KindUnreadable, Source: name, Err: errors.New("nil reader")}
	}

	lines, err := readLines(s.R)
	if err != nil {
		return Capture{}, &Error{Kind: KindUnreadable, Source: name, Err: err}
	}
	return Capture{Origin: name, Chunks: lines}, nil
}

// readLines reads r fully and splits it into lines without their terminators.
// No line-length limit applies; status output can carry very long queries.
func readLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read capture: %w", err)
	}
	return splitLines(string(data)), nil
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
