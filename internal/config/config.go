package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory and
// under the user config directory.
const FileName = ".innostat.yaml"

// Defaults.
const (
	DefaultHost   = "localhost"
	DefaultUser   = "root"
	DefaultClient = "mysql"
	DefaultFormat = "auto"
	DefaultTheme  = "default"
)

// AppConfig represents the contents of .innostat.yaml.
type AppConfig struct {
	Host           string `yaml:"host"`
	User           string `yaml:"user"`
	Port           int    `yaml:"port"`
	Client         string `yaml:"client"`
	PasswordPrompt *bool  `yaml:"password_prompt"`
	DSN            string `yaml:"dsn"`
	File           string `yaml:"file"`
	Format         string `yaml:"format"`
	Theme          string `yaml:"theme"`
	Debug          bool   `yaml:"debug"`
}

// LoadConfig reads the configuration file. An explicit path must exist;
// without one the local file is tried, then the user config directory.
// It returns the path actually read, or "" when no file was found.
func LoadConfig(explicit string) (*AppConfig, string, error) {
	path := explicit
	if path == "" {
		path = getConfigPath()
		if path == "" {
			return &AppConfig{}, "", nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit == "" && errors.Is(err, fs.ErrNotExist) {
			return &AppConfig{}, "", nil
		}
		return nil, path, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, path, nil
}

// getConfigPath looks for .innostat.yaml in the local directory first, then
// in $XDG_CONFIG_HOME/innostat (or the platform equivalent).
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "innostat", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
