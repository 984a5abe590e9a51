// Package config handles configuration loading and merging for innostat.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--host, --user, --file, --dsn, --format, ...)
//  2. Environment variables (INNOSTAT_HOST, INNOSTAT_USER, INNOSTAT_PORT,
//     INNOSTAT_CLIENT, INNOSTAT_DSN, INNOSTAT_FORMAT, INNOSTAT_THEME,
//     INNOSTAT_DEBUG, NO_COLOR)
//  3. YAML config file (.innostat.yaml in the local directory or
//     ~/.config/innostat/.innostat.yaml)
//  4. Hardcoded defaults (root@localhost via the mysql client, auto format)
//
// # Source Selection
//
// Exactly one source is used per run:
//
//   - stdin when the positional argument is "-"
//   - a capture file when --file, a positional path, or file: in YAML is set
//   - the database driver when a DSN is set
//   - otherwise the mysql client, prompting for a password unless disabled
package config
