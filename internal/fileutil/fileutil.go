// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// TempFile creates an empty temporary file with the given extension.
// Returns the open file and a cleanup function that closes and removes it.
// The caller owns writes to the file; cleanup is safe to call more than once.
func TempFile(extension string) (f *os.File, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return nil, nil, err
	}

	tmpFile, err := os.CreateTemp("", "hexwall-*."+extension)
	if err != nil {
		return nil, nil, fmt.Errorf("creating temp file: %w", err)
	}

	cleanup = func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpFile.Name())
	}

	return tmpFile, cleanup, nil
}

// WriteTempFile creates a temporary file with the given content and extension.
// Returns the file path and a cleanup function to remove the file.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	tmpFile, cleanup, err := TempFile(extension)
	if err != nil {
		return "", nil, err
	}

	path = tmpFile.Name()

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// ValidateExtension checks that the extension is safe for use in temp file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like an HTTP or HTTPS URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
