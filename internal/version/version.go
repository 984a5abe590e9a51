// Package version carries build metadata reported by innostat --version.
package version

// Set with -ldflags "-X github.com/dkoosis/innostat/internal/version.Version=..."
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
