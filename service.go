package hexwall

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/alnah/go-hexwall/internal/assets"
	"github.com/alnah/go-hexwall/internal/datauri"
	"github.com/alnah/go-hexwall/internal/sources"
)

// Service builds hexagonal tile walls. The zero-cost construction makes a
// Service cheap to create per call, but it is also safe for reuse: there is
// no shared mutable state across builds.
type Service struct {
	cfg serviceConfig
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithLocator, WithAssetPath).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout:    defaultTimeout,
			stylesheet: DefaultStylesheet,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create HTTP client if not injected (e.g., by tests)
	if s.cfg.httpClient == nil {
		s.cfg.httpClient = &http.Client{Timeout: s.cfg.timeout}
	}
	if s.cfg.locator == nil {
		s.cfg.locator = DefaultLocator()
	}

	return s
}

// Build runs the full pipeline: resolve package logos, validate the
// combined source list, convert every entry to a data URI, and assemble
// the fragment with its stylesheet dependency.
//
// Images are processed sequentially in input order. A per-image conversion
// failure keeps the original source string in place of a data URI and
// records a diagnostic on the fragment; argument errors, missing local
// files, and stylesheet resolution failures abort the build.
func (s *Service) Build(ctx context.Context, input Input) (*Fragment, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	diags := &diagnostics{}

	var srcs []string
	if len(input.Packages) > 0 {
		srcs = append(srcs, sources.FindLogos(s.cfg.locator, input.Packages, diags)...)
	}
	srcs = append(srcs, input.Images...)

	if len(srcs) == 0 {
		return nil, fmt.Errorf("%w: no image sources resolved", ErrInvalidArgument)
	}

	// Validation happens before any conversion so a single missing local
	// file aborts the call before network or encoding work begins.
	if err := sources.Validate(srcs, diags); err != nil {
		return nil, convertSourceError(err)
	}

	uris := make([]string, 0, len(srcs))
	for _, src := range srcs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		uri, err := datauri.FromSource(ctx, s.cfg.httpClient, src)
		if err != nil {
			// Per-item failures degrade to a warning plus the original
			// source string; the batch continues.
			diags.Warnf(src, "conversion failed, keeping original reference: %v", convertConversionError(err))
			uri = src
		}
		uris = append(uris, uri)
	}

	css, err := s.loadStylesheet()
	if err != nil {
		return nil, err
	}

	return &Fragment{
		root: buildFragment(uris, input.Class, input.Attrs),
		Stylesheet: StyleDependency{
			Name:    s.cfg.stylesheet,
			Version: StylesheetVersion,
			Content: css,
		},
		diags: diags.all(),
	}, nil
}

// loadStylesheet resolves the configured stylesheet through the asset
// resolver: custom asset path first, embedded default as fallback.
func (s *Service) loadStylesheet() (string, error) {
	resolver, err := assets.NewAssetResolver(s.cfg.assetPath)
	if err != nil {
		return "", convertAssetError(err)
	}
	content, err := resolver.LoadStyle(s.cfg.stylesheet)
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

// validateInput checks the top-level argument contract.
func validateInput(input Input) error {
	if input.Packages == nil && input.Images == nil {
		return fmt.Errorf("%w: at least one of packages or images is required", ErrInvalidArgument)
	}
	if input.Packages != nil && len(input.Packages) == 0 {
		return fmt.Errorf("%w: packages cannot be empty", ErrInvalidArgument)
	}
	if input.Images != nil && len(input.Images) == 0 {
		return fmt.Errorf("%w: images cannot be empty", ErrInvalidArgument)
	}
	for _, pkg := range input.Packages {
		if pkg == "" {
			return fmt.Errorf("%w: package names cannot be blank", ErrInvalidArgument)
		}
	}
	for _, img := range input.Images {
		if img == "" {
			return fmt.Errorf("%w: image sources cannot be blank", ErrInvalidArgument)
		}
	}
	return nil
}

// HexWall builds a wall with a one-off Service. It is the package-level
// convenience form of New(opts...).Build(ctx, input).
func HexWall(ctx context.Context, input Input, opts ...Option) (*Fragment, error) {
	return New(opts...).Build(ctx, input)
}

// wallDeprecationOnce gates the one-time deprecation notice emitted by Wall.
var wallDeprecationOnce sync.Once

// Wall builds a wall from images only.
//
// Deprecated: Wall predates package logo support. Use HexWall, which
// accepts packages, images, and extra container attributes.
func Wall(ctx context.Context, images, class []string, opts ...Option) (*Fragment, error) {
	frag, err := HexWall(ctx, Input{Images: images, Class: class}, opts...)
	if err != nil {
		return nil, err
	}

	wallDeprecationOnce.Do(func() {
		frag.diags = append(frag.diags, Diagnostic{
			Source:  "hexwall.Wall",
			Message: "deprecated: use hexwall.HexWall",
		})
	})

	return frag, nil
}
