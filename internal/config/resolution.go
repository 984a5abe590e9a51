package config

import (
	"fmt"
	"strconv"
)

// Source identifies where the status text comes from.
type Source int

const (
	SourceCommand Source = iota // run the mysql client
	SourceFile                  // read a saved capture
	SourceStdin                 // read standard input
	SourceSQL                   // query through the database driver
)

func (s Source) String() string {
	switch s {
	case SourceFile:
		return "file"
	case SourceStdin:
		return "stdin"
	case SourceSQL:
		return "sql"
	default:
		return "command"
	}
}

// CliFlags holds command-line values. The *Set fields record whether the user
// passed the flag, so zero values do not mask lower-priority sources.
type CliFlags struct {
	ConfigPath string
	Host       string
	User       string
	Port       int
	Client     string
	NoPrompt   bool
	DSN        string
	File       string
	Stdin      bool
	Format     string
	Theme      string
	Debug      bool

	NoPromptSet bool
	DebugSet    bool
}

// ResolvedConfig is the final configuration for one run. It is read once at
// startup and not modified afterwards.
type ResolvedConfig struct {
	Source         Source
	Host           string
	User           string
	Port           int
	Client         string
	PasswordPrompt bool
	DSN            string
	File           string
	Format         string
	Theme          string
	Debug          bool
	NoColor        bool

	ConfigFile string // path of the YAML file used, if any
}

var validFormats = map[string]bool{"auto": true, "plain": true, "terminal": true, "json": true}

// ResolveConfig merges configuration with priority CLI > env > file > defaults.
// getenv is usually os.Getenv; tests pass a map lookup.
func ResolveConfig(flags CliFlags, getenv func(string) string) (*ResolvedConfig, error) {
	file, path, err := LoadConfig(flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	r := &ResolvedConfig{
		Host:           pick(flags.Host, getenv("INNOSTAT_HOST"), file.Host, DefaultHost),
		User:           pick(flags.User, getenv("INNOSTAT_USER"), file.User, DefaultUser),
		Client:         pick(flags.Client, getenv("INNOSTAT_CLIENT"), file.Client, DefaultClient),
		DSN:            pick(flags.DSN, getenv("INNOSTAT_DSN"), file.DSN),
		File:           pick(flags.File, file.File),
		Format:         pick(flags.Format, getenv("INNOSTAT_FORMAT"), file.Format, DefaultFormat),
		Theme:          pick(flags.Theme, getenv("INNOSTAT_THEME"), file.Theme, DefaultTheme),
		PasswordPrompt: true,
		ConfigFile:     path,
	}

	switch {
	case flags.Port != 0:
		r.Port = flags.Port
	case getenv("INNOSTAT_PORT") != "":
		port, err := strconv.Atoi(getenv("INNOSTAT_PORT"))
		if err != nil {
			return nil, fmt.Errorf("INNOSTAT_PORT: %w", err)
		}
		r.Port = port
	default:
		r.Port = file.Port
	}

	if flags.NoPromptSet {
		r.PasswordPrompt = !flags.NoPrompt
	} else if file.PasswordPrompt != nil {
		r.PasswordPrompt = *file.PasswordPrompt
	}

	if flags.DebugSet {
		r.Debug = flags.Debug
	} else if b := envBool(getenv, "INNOSTAT_DEBUG"); b != nil {
		r.Debug = *b
	} else {
		r.Debug = file.Debug
	}

	// NO_COLOR is honored when set to any non-empty value.
	if getenv("NO_COLOR") != "" {
		r.NoColor = true
		r.Theme = "mono"
	}

	// CLI source choice beats a file path or DSN from the environment or YAML.
	switch {
	case flags.Stdin:
		r.Source = SourceStdin
	case flags.File != "":
		r.Source = SourceFile
	case flags.DSN != "":
		r.Source = SourceSQL
	case r.File != "":
		r.Source = SourceFile
	case r.DSN != "":
		r.Source = SourceSQL
	default:
		r.Source = SourceCommand
	}

	if err := validate(r); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return r, nil
}

// pick returns the first non-empty value.
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func envBool(getenv func(string) string, key string) *bool {
	if val := getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return &b
		}
	}
	return nil
}

func validate(r *ResolvedConfig) error {
	if !validFormats[r.Format] {
		return fmt.Errorf("invalid format %q (expected auto, plain, terminal, json)", r.Format)
	}
	if r.Port < 0 || r.Port > 65535 {
		return fmt.Errorf("port out of range: %d", r.Port)
	}
	return nil
}
