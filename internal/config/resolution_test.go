package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestResolveConfig_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := ResolveConfig(CliFlags{}, envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, SourceCommand, cfg.Source)
	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultUser, cfg.User)
	assert.Equal(t, DefaultClient, cfg.Client)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.True(t, cfg.PasswordPrompt)
	assert.False(t, cfg.Debug)
	assert.Zero(t, cfg.Port)
	assert.Empty(t, cfg.ConfigFile)
}

func TestResolveConfig_PriorityOrder(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		env      map[string]string
		flags    CliFlags
		wantHost string
		wantFmt  string
	}{
		{
			name:     "file beats defaults",
			yaml:     "host: filehost\nformat: json\n",
			wantHost: "filehost",
			wantFmt:  "json",
		},
		{
			name:     "env beats file",
			yaml:     "host: filehost\nformat: json\n",
			env:      map[string]string{"INNOSTAT_HOST": "envhost", "INNOSTAT_FORMAT": "plain"},
			wantHost: "envhost",
			wantFmt:  "plain",
		},
		{
			name:     "cli beats env",
			yaml:     "host: filehost\n",
			env:      map[string]string{"INNOSTAT_HOST": "envhost"},
			flags:    CliFlags{Host: "clihost", Format: "terminal"},
			wantHost: "clihost",
			wantFmt:  "terminal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			if tt.yaml != "" {
				require.NoError(t, os.WriteFile(FileName, []byte(tt.yaml), 0o600))
			}

			cfg, err := ResolveConfig(tt.flags, envMap(tt.env))
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, cfg.Host)
			assert.Equal(t, tt.wantFmt, cfg.Format)
		})
	}
}

func TestResolveConfig_SourceSelection(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		env   map[string]string
		flags CliFlags
		want  Source
	}{
		{name: "default is command", want: SourceCommand},
		{name: "stdin flag", flags: CliFlags{Stdin: true, File: "x.txt"}, want: SourceStdin},
		{name: "file flag", flags: CliFlags{File: "x.txt"}, want: SourceFile},
		{name: "dsn flag", flags: CliFlags{DSN: "root@tcp(db:3306)/"}, want: SourceSQL},
		{name: "file flag beats env dsn", flags: CliFlags{File: "x.txt"}, env: map[string]string{"INNOSTAT_DSN": "root@/"}, want: SourceFile},
		{name: "dsn flag beats yaml file", flags: CliFlags{DSN: "root@/"}, yaml: "file: saved.txt\n", want: SourceSQL},
		{name: "yaml file", yaml: "file: saved.txt\n", want: SourceFile},
		{name: "env dsn", env: map[string]string{"INNOSTAT_DSN": "root@/"}, want: SourceSQL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			if tt.yaml != "" {
				require.NoError(t, os.WriteFile(FileName, []byte(tt.yaml), 0o600))
			}
			cfg, err := ResolveConfig(tt.flags, envMap(tt.env))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Source)
		})
	}
}

func TestResolveConfig_PasswordPrompt(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile(FileName, []byte("password_prompt: false\n"), 0o600))

	cfg, err := ResolveConfig(CliFlags{}, envMap(nil))
	require.NoError(t, err)
	assert.False(t, cfg.PasswordPrompt, "file disables prompt")

	cfg, err = ResolveConfig(CliFlags{NoPrompt: false, NoPromptSet: true}, envMap(nil))
	require.NoError(t, err)
	assert.True(t, cfg.PasswordPrompt, "explicit flag wins over file")
}

func TestResolveConfig_DebugAndNoColor(t *testing.T) {
	chdirTemp(t)

	cfg, err := ResolveConfig(CliFlags{}, envMap(map[string]string{"INNOSTAT_DEBUG": "1", "NO_COLOR": "1"}))
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "mono", cfg.Theme)

	cfg, err = ResolveConfig(CliFlags{Debug: false, DebugSet: true}, envMap(map[string]string{"INNOSTAT_DEBUG": "1"}))
	require.NoError(t, err)
	assert.False(t, cfg.Debug)
}

func TestResolveConfig_Port(t *testing.T) {
	chdirTemp(t)

	cfg, err := ResolveConfig(CliFlags{}, envMap(map[string]string{"INNOSTAT_PORT": "3307"}))
	require.NoError(t, err)
	assert.Equal(t, 3307, cfg.Port)

	_, err = ResolveConfig(CliFlags{}, envMap(map[string]string{"INNOSTAT_PORT": "abc"}))
	assert.Error(t, err)

	_, err = ResolveConfig(CliFlags{Port: 70000}, envMap(nil))
	assert.Error(t, err)
}

func TestResolveConfig_InvalidFormat(t *testing.T) {
	chdirTemp(t)
	_, err := ResolveConfig(CliFlags{Format: "xml"}, envMap(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "command", SourceCommand.String())
	assert.Equal(t, "file", SourceFile.String())
	assert.Equal(t, "stdin", SourceStdin.String())
	assert.Equal(t, "sql", SourceSQL.String())
}
