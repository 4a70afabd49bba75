package hexwall

import (
	"net/http"
	"time"
)

// Base CSS classes applied to every wall container.
const baseClasses = "hextile clr"

// Stylesheet identity constants.
const (
	// DefaultStylesheet is the name of the built-in wall stylesheet.
	DefaultStylesheet = "hexwall"

	// StylesheetVersion identifies the shipped stylesheet revision.
	StylesheetVersion = "0.4.0"
)

// Input contains wall-building parameters.
//
// At least one of Packages or Images must be supplied. A supplied-but-empty
// slice is an argument error; leave the field nil to omit it.
type Input struct {
	Packages []string          // Installed package names to resolve to logos (optional)
	Images   []string          // Local paths or http(s) URLs (optional)
	Class    []string          // Extra CSS class tokens for the container (optional)
	Attrs    map[string]string // Extra attributes for the container (optional)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout    time.Duration
	httpClient *http.Client
	locator    Locator
	assetPath  string
	stylesheet string
}

// defaultTimeout bounds each remote image download.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the per-download timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("hexwall: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithHTTPClient sets the client used for remote image downloads.
// The client's own timeout is respected; WithTimeout is ignored for a
// caller-supplied client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.cfg.httpClient = client
	}
}

// WithLocator sets the package locator used to resolve Input.Packages.
func WithLocator(locator Locator) Option {
	return func(s *Service) {
		s.cfg.locator = locator
	}
}

// WithAssetPath sets a directory whose styles/ sub-directory overrides the
// embedded stylesheet. An invalid path surfaces as ErrMissingAsset at
// build time.
func WithAssetPath(path string) Option {
	return func(s *Service) {
		s.cfg.assetPath = path
	}
}

// WithStylesheet selects the stylesheet attached to built fragments.
// The name is resolved without its .css extension.
func WithStylesheet(name string) Option {
	return func(s *Service) {
		s.cfg.stylesheet = name
	}
}
