// innostat summarizes SHOW ENGINE INNODB STATUS output as a sectioned report.
//
// Usage:
//
//	innostat                       # run the mysql client against localhost
//	innostat --host db1 --user monitor --no-password-prompt
//	innostat saved_status.txt      # read a saved capture
//	mysql -e 'SHOW ENGINE INNODB STATUS' | innostat -
//	innostat --dsn 'root:secret@tcp(db1:3306)/'
//
// Output modes:
//
//	plain     the fixed text layout (default when piped)
//	terminal  styled output (default when TTY)
//	json      slot values and sections for automation
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/dkoosis/innostat/internal/config"
	"github.com/dkoosis/innostat/internal/detect"
	"github.com/dkoosis/innostat/internal/logging"
	"github.com/dkoosis/innostat/internal/version"
	"github.com/dkoosis/innostat/pkg/capture"
	"github.com/dkoosis/innostat/pkg/report"
	"github.com/dkoosis/innostat/pkg/status"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("innostat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var flags config.CliFlags
	fs.StringVar(&flags.File, "file", "", "Read a saved status capture instead of querying a server")
	fs.StringVar(&flags.Host, "host", "", "Server host for the mysql client (default localhost)")
	fs.StringVar(&flags.User, "user", "", "Server user for the mysql client (default root)")
	fs.IntVar(&flags.Port, "port", 0, "Server port for the mysql client")
	fs.BoolVar(&flags.NoPrompt, "no-password-prompt", false, "Do not pass -p to the mysql client")
	fs.StringVar(&flags.Client, "mysql", "", "Path to the mysql client binary")
	fs.StringVar(&flags.DSN, "dsn", "", "Query through the database driver, e.g. user:pass@tcp(host:3306)/")
	fs.StringVar(&flags.Format, "format", "", "Output format: auto, plain, terminal, json")
	fs.StringVar(&flags.Theme, "theme", "", "Theme: default, mono")
	fs.StringVar(&flags.ConfigPath, "config", "", "Path to a YAML config file")
	fs.BoolVar(&flags.Debug, "debug", false, "Log diagnostics to stderr")
	showVersion := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "innostat %s (%s, %s)\n", version.Version, version.CommitHash, version.BuildDate)
		return 0
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "no-password-prompt":
			flags.NoPromptSet = true
		case "debug":
			flags.DebugSet = true
		}
	})

	switch rest := fs.Args(); {
	case len(rest) > 1:
		fmt.Fprintf(stderr, "innostat: expected at most one capture path, got %d\n", len(rest))
		return 2
	case len(rest) == 1 && rest[0] == "-":
		flags.Stdin = true
	case len(rest) == 1:
		if flags.File != "" && flags.File != rest[0] {
			fmt.Fprintf(stderr, "innostat: both --file %q and path %q given\n", flags.File, rest[0])
			return 2
		}
		flags.File = rest[0]
	}

	cfg, err := config.ResolveConfig(flags, os.Getenv)
	if err != nil {
		fmt.Fprintf(stderr, "innostat: %v\n", err)
		return 2
	}

	log := logging.New(stderr, logging.Level(cfg.Debug))
	defer func() { _ = log.Sync() }()
	if cfg.ConfigFile != "" {
		log.Debug("loaded config", zap.String("path", cfg.ConfigFile))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c, err := acquire(ctx, cfg, stdin, stderr, log)
	if err != nil {
		if errors.Is(err, capture.ErrNotFound) && cfg.Source == config.SourceFile {
			fmt.Fprintf(stderr, "innostat: %q could not be found in this directory!\n", cfg.File)
		} else {
			fmt.Fprintf(stderr, "innostat: %v\n", err)
		}
		return 1
	}

	cat := status.Extract(c)
	if log.Core().Enabled(zap.DebugLevel) {
		log.Debug("extracted",
			zap.String("origin", cat.Origin()),
			zap.Int("chunks", len(c.Chunks)),
			zap.Any("matches", cat.MatchCounts()),
			zap.Bool("complete", detect.Complete([]byte(c.Text()))),
		)
	}
	if c.Empty() {
		log.Warn("no status text captured", zap.String("origin", c.Origin))
	}

	opts := report.Options{Logger: log}
	if cfg.Source == config.SourceFile {
		opts.SourceFile = cfg.File
	}
	mode := resolveFormat(cfg.Format, stdout)
	fmt.Fprint(stdout, selectRenderer(mode, cfg.Theme, stdout, opts).Render(cat))
	return 0
}

// acquire builds the configured source and reads one capture from it.
func acquire(ctx context.Context, cfg *config.ResolvedConfig, stdin io.Reader, stderr io.Writer, log *zap.Logger) (capture.Capture, error) {
	log.Debug("acquiring", zap.Stringer("source", cfg.Source))

	switch cfg.Source {
	case config.SourceFile:
		return capture.FileSource{Path: cfg.File}.Acquire(ctx)
	case config.SourceStdin:
		return acquireStdin(ctx, stdin, log)
	case config.SourceSQL:
		db, err := capture.OpenSQL(cfg.DSN)
		if err != nil {
			return capture.Capture{}, err
		}
		defer db.Close()
		return capture.SQLSource{DB: db}.Acquire(ctx)
	default:
		src := capture.NewMySQLCommand(capture.MySQLOptions{
			Binary: cfg.Client,
			Host:   cfg.Host,
			User:   cfg.User,
			Port:   cfg.Port,
			Prompt: cfg.PasswordPrompt,
		}, stdin, stderr)
		log.Debug("running client", zap.String("name", src.Name), zap.Strings("args", src.Args))
		return src.Acquire(ctx)
	}
}

// acquireStdin reads a piped capture. Output of `mysql -e` without \G arrives
// in batch form and is decoded back to monitor text.
func acquireStdin(ctx context.Context, stdin io.Reader, log *zap.Logger) (capture.Capture, error) {
	br := bufio.NewReaderSize(stdin, 8*1024)
	peeked, _ := br.Peek(4096)
	format := detect.Sniff(peeked)
	log.Debug("sniffed stdin", zap.Stringer("format", format))

	c, err := capture.ReaderSource{R: br}.Acquire(ctx)
	if err != nil || format != detect.Batch {
		return c, err
	}
	return capture.FromLines(c.Origin, capture.DecodeBatch(strings.Join(c.Chunks, "\n"))), nil
}

func selectRenderer(mode, themeName string, w io.Writer, opts report.Options) report.Renderer {
	switch mode {
	case "json":
		return report.NewJSON(opts)
	case "terminal":
		return report.NewTerminal(report.ThemeByName(themeName), termWidth(w), opts)
	default:
		return report.NewPlain(opts)
	}
}

// resolveFormat maps "auto" to terminal on a TTY and plain otherwise.
func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	if isTTYWriter(w) {
		return "terminal"
	}
	return "plain"
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}
