package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

// StatusQuery is the statement every live source runs.
const StatusQuery = "SHOW ENGINE INNODB STATUS"

// CommandSource captures the standard output of an external command.
type CommandSource struct {
	Name   string
	Args   []string
	Stdin  io.Reader // forwarded to the child, e.g. for a password prompt
	Stderr io.Writer // child stderr; discarded when nil

	// Decode post-processes captured stdout into lines. Nil splits on newlines.
	Decode func(string) []string
}

// MySQLOptions configures the mysql client invocation.
type MySQLOptions struct {
	Binary string // client binary, defaults to "mysql"
	Host   string
	User   string
	Port   int  // omitted when zero
	Prompt bool // pass -p so the client prompts for a password
}

// NewMySQLCommand builds a CommandSource running
// mysql -e "SHOW ENGINE INNODB STATUS" -h HOST -u USER [-P PORT] [-p].
func NewMySQLCommand(opts MySQLOptions, stdin io.Reader, stderr io.Writer) CommandSource {
	bin := opts.Binary
	if bin == "" {
		bin = "mysql"
	}
	args := []string{"-e", StatusQuery}
	if opts.Host != "" {
		args = append(args, "-h", opts.Host)
	}
	if opts.User != "" {
		args = append(args, "-u", opts.User)
	}
	if opts.Port > 0 {
		args = append(args, "-P", strconv.Itoa(opts.Port))
	}
	if opts.Prompt {
		args = append(args, "-p")
	}
	return CommandSource{
		Name:   bin,
		Args:   args,
		Stdin:  stdin,
		Stderr: stderr,
		Decode: DecodeBatch,
	}
}

// Acquire runs the command to completion and returns its stdout.
//
// Error semantics:
//   - binary not on PATH: KindNotFound (errors.Is(err, exec.ErrNotFound) also holds)
//   - any other start failure or a non-zero exit: KindUnstartable
func (s CommandSource) Acquire(ctx context.Context) (Capture, error) {
	if s.Name == "" {
		return Capture{}, &Error{Kind: KindUnstartable, Source: "command", Err: errors.New("no command given")}
	}

	cmd := exec.CommandContext(ctx, s.Name, s.Args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stdin = s.Stdin
	if s.Stderr != nil {
		cmd.Stderr = s.Stderr
	}

	if err := cmd.Start(); err != nil {
		kind := KindUnstartable
		if errors.Is(err, exec.ErrNotFound) {
			kind = KindNotFound
		}
		return Capture{}, &Error{Kind: kind, Source: s.Name, Err: err}
	}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			err = fmt.Errorf("exit code %d: %w", exitErr.ExitCode(), err)
		}
		return Capture{}, &Error{Kind: KindUnstartable, Source: s.Name, Err: err}
	}

	decode := s.Decode
	if decode == nil {
		decode = splitLines
	}
	return Capture{Origin: "command:" + s.Name, Chunks: decode(stdout.String())}, nil
}

const batchHeader = "Type\tName\tStatus"

// DecodeBatch turns mysql batch-mode output (tab-separated, with newlines,
// tabs and backslashes escaped inside values) back into the plain status text.
// The column header row and the leading Type/Name columns are dropped.
func DecodeBatch(out string) []string {
	lines := splitLines(out)
	if len(lines) > 0 && lines[0] == batchHeader {
		lines = lines[1:]
	}

	var decoded []string
	for _, row := range lines {
		if parts := strings.SplitN(row, "\t", 3); len(parts) == 3 {
			row = parts[2]
		}
		decoded = append(decoded, splitLines(unescapeBatch(row))...)
	}
	return decoded
}

// unescapeBatch reverses the client's \n, \t, \\ and \0 escapes. Any other
// backslash sequence is left untouched.
func unescapeBatch(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		switch s[i+1] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case '0':
			b.WriteByte(0)
		default:
			b.WriteByte(c)
			continue
		}
		i++
	}
	return b.String()
}
