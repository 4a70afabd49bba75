// Package sources resolves and validates image sources for the wall.
//
// A source list mixes local file paths and http(s) URLs. Package names are
// resolved to logo file paths through a Locator before validation.
package sources

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-hexwall/internal/datauri"
	"github.com/alnah/go-hexwall/internal/fileutil"
)

// Sentinel errors for source resolution.
var (
	// ErrMissingFile indicates a local image path does not exist on disk.
	ErrMissingFile = errors.New("image file not found")

	// ErrPackageNotFound indicates a package could not be located.
	ErrPackageNotFound = errors.New("package not found")
)

// logoFigureDir is the conventional sub-path holding a package's logo.
var logoFigureDir = filepath.Join("help", "figures")

// logoExtensions are the extensions considered when searching for a logo,
// matched case-insensitively against files named "logo".
var logoExtensions = []string{"png", "jpg", "jpeg", "svg"}

// Warner collects non-fatal diagnostics emitted during resolution.
type Warner interface {
	Warnf(source, format string, args ...any)
}

// Locator resolves an installed package name to its installation root.
type Locator interface {
	// Locate returns the absolute root directory of the named package,
	// or an error wrapping ErrPackageNotFound if it is not installed.
	Locate(name string) (string, error)
}

// Validate checks an ordered source list before any conversion work.
// Local paths that do not exist fail with ErrMissingFile immediately.
// Unsupported-but-plausible extensions produce warnings only, for URLs and
// local paths alike.
func Validate(srcs []string, warner Warner) error {
	for _, src := range srcs {
		if fileutil.IsURL(src) {
			if !datauri.IsSupported(src) {
				warner.Warnf(src, "URL does not end in a supported image extension")
			}
			continue
		}

		if !fileutil.FileExists(src) {
			return fmt.Errorf("%w: %s", ErrMissingFile, src)
		}
		if !datauri.IsSupported(src) {
			warner.Warnf(src, "unsupported image extension %q", filepath.Ext(src))
		}
	}
	return nil
}

// FindLogos resolves package names to logo file paths.
//
// Packages that cannot be located, or that carry no logo under help/figures/,
// are skipped with a warning and contribute nothing to the result. The result
// preserves input order, one entry per successfully located logo.
func FindLogos(locator Locator, packages []string, warner Warner) []string {
	var logos []string
	for _, pkg := range packages {
		root, err := locator.Locate(pkg)
		if err != nil {
			warner.Warnf(pkg, "skipping package: %v", err)
			continue
		}

		logo, ok := findLogoIn(filepath.Join(root, logoFigureDir))
		if !ok {
			warner.Warnf(pkg, "package has no logo under %s", logoFigureDir)
			continue
		}
		logos = append(logos, logo)
	}
	return logos
}

// findLogoIn returns the first file named logo.{png,jpg,jpeg,svg} in dir,
// case-insensitive, in directory-listing order.
func findLogoIn(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isLogoName(entry.Name()) {
			abs, err := filepath.Abs(filepath.Join(dir, entry.Name()))
			if err != nil {
				continue
			}
			return abs, true
		}
	}
	return "", false
}

// isLogoName matches "logo" plus a supported extension, case-insensitive.
func isLogoName(name string) bool {
	for _, ext := range logoExtensions {
		if strings.EqualFold(name, "logo."+ext) {
			return true
		}
	}
	return false
}
