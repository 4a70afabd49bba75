// Package datauri converts image sources to base64 data URIs.
//
// A source is either a local file path or an http(s) URL. Remote sources
// are downloaded to a scoped temporary file which is removed before the
// function returns, regardless of outcome.
package datauri

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-hexwall/internal/fileutil"
)

// Sentinel errors for conversion operations.
var (
	// ErrDownload indicates a remote image could not be fetched.
	ErrDownload = errors.New("image download failed")

	// ErrRead indicates a local image file could not be read.
	ErrRead = errors.New("failed to read image file")
)

// FallbackMIME is returned for unrecognized or missing extensions.
const FallbackMIME = "image/png"

// mimeTypes maps lowercased image extensions to MIME types.
var mimeTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"svg":  "image/svg+xml",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// MIMEType resolves the MIME type for a file path or URL from its extension.
// For URLs the query string is stripped before the extension is extracted.
// Unrecognized or missing extensions resolve to FallbackMIME.
func MIMEType(source string) string {
	ext := Extension(source)
	if mime, ok := mimeTypes[ext]; ok {
		return mime
	}
	return FallbackMIME
}

// Extension returns the lowercased extension of a path or URL without the
// leading dot. Query strings are ignored for URLs.
func Extension(source string) string {
	path := source
	if fileutil.IsURL(source) {
		if u, err := url.Parse(source); err == nil {
			path = u.Path
		} else if i := strings.IndexByte(source, '?'); i != -1 {
			path = source[:i]
		}
	}
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// IsSupported reports whether the source has one of the supported image
// extensions (png, jpg, jpeg, svg, gif, webp).
func IsSupported(source string) bool {
	_, ok := mimeTypes[Extension(source)]
	return ok
}

// Encode composes a data URI from a MIME type and raw bytes.
func Encode(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// FromFile reads a local image file and returns it as a data URI.
// The MIME type is resolved from the path extension.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- image paths are caller-provided by design
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}
	return Encode(MIMEType(path), data), nil
}

// FromURL downloads a remote image and returns it as a data URI.
// The response body is written to a temporary file that is always removed
// before FromURL returns. The MIME type is resolved from the URL path with
// the query string stripped.
func FromURL(ctx context.Context, client *http.Client, rawURL string) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDownload, rawURL, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDownload, rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s: unexpected status %s", ErrDownload, rawURL, resp.Status)
	}

	ext := Extension(rawURL)
	if ext == "" {
		ext = "img"
	}
	tmpFile, cleanup, err := fileutil.TempFile(ext)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDownload, rawURL, err)
	}
	defer cleanup()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDownload, rawURL, err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDownload, rawURL, err)
	}

	data, err := os.ReadFile(tmpFile.Name()) // #nosec G304 -- path comes from os.CreateTemp
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDownload, rawURL, err)
	}

	return Encode(MIMEType(rawURL), data), nil
}

// FromSource converts a single image source to a data URI, dispatching on
// whether the source is a URL or a local path.
func FromSource(ctx context.Context, client *http.Client, source string) (string, error) {
	if fileutil.IsURL(source) {
		return FromURL(ctx, client, source)
	}
	return FromFile(source)
}
