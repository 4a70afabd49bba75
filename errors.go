package hexwall

import (
	"errors"

	"github.com/alnah/go-hexwall/internal/assets"
	"github.com/alnah/go-hexwall/internal/datauri"
	"github.com/alnah/go-hexwall/internal/sources"
)

// Sentinel errors for library operations.
var (
	// ErrInvalidArgument indicates malformed or missing top-level arguments.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMissingFile indicates a named local image does not exist.
	ErrMissingFile = errors.New("image file not found")

	// ErrDownload indicates a remote image fetch failed.
	ErrDownload = errors.New("image download failed")

	// ErrMissingAsset indicates the stylesheet resource cannot be located.
	ErrMissingAsset = errors.New("stylesheet asset not found")

	// ErrPackageNotFound indicates a package could not be located by a Locator.
	ErrPackageNotFound = errors.New("package not found")

	// Snapshot rendering errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrSnapshot       = errors.New("snapshot rendering failed")
)

// convertSourceError maps internal source errors to public errors.
func convertSourceError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, sources.ErrMissingFile):
		return wrapError(ErrMissingFile, err)
	case errors.Is(err, sources.ErrPackageNotFound):
		return wrapError(ErrPackageNotFound, err)
	default:
		return err
	}
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrStyleNotFound),
		errors.Is(err, assets.ErrInvalidBasePath),
		errors.Is(err, assets.ErrPathTraversal),
		errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrMissingAsset, err)
	default:
		return err
	}
}

// convertConversionError maps internal conversion errors to public errors.
func convertConversionError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, datauri.ErrDownload) {
		return wrapError(ErrDownload, err)
	}
	return err
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedError{sentinel: sentinel, original: original}
}

type wrappedError struct {
	sentinel error
	original error
}

func (e *wrappedError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedError) Unwrap() error {
	return e.sentinel
}
