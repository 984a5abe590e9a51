package magetasks

import (
	"os"
	"path/filepath"
)

var (
	// ModulePath is the Go module path used in ldflags.
	ModulePath = "github.com/dkoosis/innostat"

	// BinPath is where Build writes the binary.
	BinPath = "./bin/innostat"

	// MainPackage is the package Build compiles.
	MainPackage = "./cmd/innostat"

	ProjectRoot string
)

// Initialize records the project root and creates the bin directory.
// Call this from the magefile init().
func Initialize() error {
	var err error
	ProjectRoot, err = os.Getwd()
	if err != nil {
		return err
	}
	return os.MkdirAll(filepath.Join(ProjectRoot, "bin"), 0o750)
}
