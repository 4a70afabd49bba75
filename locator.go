package hexwall

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LibraryEnv names the environment variable holding the default library
// roots, separated by the OS path list separator.
const LibraryEnv = "HEXWALL_LIBRARY"

// Locator resolves an installed package name to its installation root.
// Implementations should return an error wrapping ErrPackageNotFound when
// the package is not installed; the build skips such packages with a
// warning instead of failing.
type Locator interface {
	Locate(name string) (string, error)
}

// DirLocator locates packages as directories under a list of library roots.
// The first root containing a directory named after the package wins.
type DirLocator struct {
	Roots []string
}

// NewDirLocator creates a DirLocator over the given library roots.
func NewDirLocator(roots ...string) *DirLocator {
	return &DirLocator{Roots: roots}
}

// DefaultLocator returns a DirLocator over the roots named by the
// HEXWALL_LIBRARY environment variable. With the variable unset the
// locator has no roots and every lookup fails with ErrPackageNotFound.
func DefaultLocator() *DirLocator {
	var roots []string
	for _, root := range strings.Split(os.Getenv(LibraryEnv), string(os.PathListSeparator)) {
		if root != "" {
			roots = append(roots, root)
		}
	}
	return NewDirLocator(roots...)
}

// Locate returns the absolute installation root of the named package.
func (l *DirLocator) Locate(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty package name", ErrPackageNotFound)
	}

	for _, root := range l.Roots {
		dir := filepath.Join(root, name)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		return abs, nil
	}

	return "", fmt.Errorf("%w: %q", ErrPackageNotFound, name)
}

// Compile-time interface check.
var _ Locator = (*DirLocator)(nil)
