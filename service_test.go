package hexwall

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeLocator maps package names to roots for tests.
type fakeLocator struct {
	roots map[string]string
}

func (f *fakeLocator) Locate(name string) (string, error) {
	if root, ok := f.roots[name]; ok {
		return root, nil
	}
	return "", fmt.Errorf("%w: %q", ErrPackageNotFound, name)
}

// writeImage creates an image file and returns its path.
func writeImage(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// makeLogoPackage creates a fake installed package carrying a logo.
func makeLogoPackage(t *testing.T, root, name, logoName string) string {
	t.Helper()
	figDir := filepath.Join(root, name, "help", "figures")
	if err := os.MkdirAll(figDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(figDir, logoName), []byte{0x89, 0x50}, 0o644); err != nil {
		t.Fatal(err)
	}
	return filepath.Join(root, name)
}

func TestBuildLocalImages(t *testing.T) {
	dir := t.TempDir()
	png := writeImage(t, dir, "a.png", []byte{0x89, 0x50, 0x4e, 0x47})
	svg := writeImage(t, dir, "b.svg", []byte("<svg/>"))

	frag, err := New().Build(context.Background(), Input{Images: []string{png, svg}})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	srcs := frag.Images()
	if len(srcs) != 2 {
		t.Fatalf("Images() = %d entries, want 2", len(srcs))
	}
	if !strings.HasPrefix(srcs[0], "data:image/png;base64,") {
		t.Errorf("first tile src = %q, want image/png data URI", srcs[0])
	}
	if !strings.HasPrefix(srcs[1], "data:image/svg+xml;base64,") {
		t.Errorf("second tile src = %q, want image/svg+xml data URI", srcs[1])
	}
	if len(frag.Diagnostics()) != 0 {
		t.Errorf("Diagnostics() = %v, want none", frag.Diagnostics())
	}
}

func TestBuildFragmentHTML(t *testing.T) {
	dir := t.TempDir()
	png := writeImage(t, dir, "a.png", []byte{1})

	frag, err := New().Build(context.Background(), Input{
		Images: []string{png},
		Class:  []string{"narrow", "dark"},
		Attrs:  map[string]string{"id": "wall-1", "data-count": "1"},
	})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	out, err := frag.HTML()
	if err != nil {
		t.Fatalf("HTML() unexpected error: %v", err)
	}

	for _, want := range []string{
		`class="hextile clr narrow dark"`,
		`data-count="1"`,
		`id="wall-1"`,
		"<ul><li><img src=\"data:image/png;base64,",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML() = %q, missing %q", out, want)
		}
	}
}

func TestBuildMissingFileFatal(t *testing.T) {
	dir := t.TempDir()
	valid := writeImage(t, dir, "ok.png", []byte{1})
	missing := filepath.Join(dir, "absent.png")

	_, err := New().Build(context.Background(), Input{Images: []string{valid, missing}})
	if !errors.Is(err, ErrMissingFile) {
		t.Fatalf("Build() error = %v, want ErrMissingFile", err)
	}
}

func TestBuildArgumentErrors(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{"neither packages nor images", Input{}},
		{"empty packages", Input{Packages: []string{}}},
		{"empty images", Input{Images: []string{}}},
		{"blank package name", Input{Packages: []string{""}}},
		{"blank image source", Input{Images: []string{""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Build(context.Background(), tt.input)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Build() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestBuildUnresolvablePackagesOnly(t *testing.T) {
	svc := New(WithLocator(&fakeLocator{}))

	_, err := svc.Build(context.Background(), Input{Packages: []string{"nonexistent-pkg"}})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Build() error = %v, want ErrInvalidArgument", err)
	}
}

func TestBuildPackageLogos(t *testing.T) {
	libRoot := t.TempDir()
	alphaRoot := makeLogoPackage(t, libRoot, "alpha", "logo.png")
	dir := t.TempDir()
	extra := writeImage(t, dir, "extra.svg", []byte("<svg/>"))

	svc := New(WithLocator(&fakeLocator{roots: map[string]string{"alpha": alphaRoot}}))
	frag, err := svc.Build(context.Background(), Input{
		Packages: []string{"alpha", "ghost"},
		Images:   []string{extra},
	})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	srcs := frag.Images()
	if len(srcs) != 2 {
		t.Fatalf("Images() = %d entries, want 2 (logo + extra)", len(srcs))
	}
	// Logo Finder output comes before raw images.
	if !strings.HasPrefix(srcs[0], "data:image/png;base64,") {
		t.Errorf("logo tile src = %q, want image/png data URI", srcs[0])
	}
	if !strings.HasPrefix(srcs[1], "data:image/svg+xml;base64,") {
		t.Errorf("extra tile src = %q, want image/svg+xml data URI", srcs[1])
	}

	diags := frag.Diagnostics()
	if len(diags) != 1 || diags[0].Source != "ghost" {
		t.Errorf("Diagnostics() = %v, want one entry for skipped package ghost", diags)
	}
}

func TestBuildRemoteImage(t *testing.T) {
	content := []byte{0x47, 0x49, 0x46}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(content)
	}))
	defer server.Close()

	frag, err := New(WithHTTPClient(server.Client())).Build(context.Background(), Input{
		Images: []string{server.URL + "/pic.gif"},
	})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	srcs := frag.Images()
	if len(srcs) != 1 || !strings.HasPrefix(srcs[0], "data:image/gif;base64,") {
		t.Errorf("Images() = %v, want one image/gif data URI", srcs)
	}
}

func TestBuildDownloadFailureFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	badURL := server.URL + "/gone.png"
	server.Close()

	frag, err := New().Build(context.Background(), Input{Images: []string{badURL}})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	srcs := frag.Images()
	if len(srcs) != 1 {
		t.Fatalf("Images() = %d entries, want 1", len(srcs))
	}
	// Fallback keeps the literal original URL string.
	if srcs[0] != badURL {
		t.Errorf("fallback src = %q, want %q", srcs[0], badURL)
	}

	diags := frag.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("Diagnostics() = %v, want 1 entry", diags)
	}
	if diags[0].Source != badURL {
		t.Errorf("diagnostic source = %q, want %q", diags[0].Source, badURL)
	}
}

func TestBuildStylesheetDependency(t *testing.T) {
	dir := t.TempDir()
	png := writeImage(t, dir, "a.png", []byte{1})

	frag, err := New().Build(context.Background(), Input{Images: []string{png}})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	dep := frag.Stylesheet
	if dep.Name != DefaultStylesheet {
		t.Errorf("Stylesheet.Name = %q, want %q", dep.Name, DefaultStylesheet)
	}
	if dep.Version != StylesheetVersion {
		t.Errorf("Stylesheet.Version = %q, want %q", dep.Version, StylesheetVersion)
	}
	if !strings.Contains(dep.Content, ".hextile") {
		t.Error("Stylesheet.Content lacks .hextile rules")
	}
}

func TestBuildMissingStylesheet(t *testing.T) {
	dir := t.TempDir()
	png := writeImage(t, dir, "a.png", []byte{1})

	svc := New(WithStylesheet("no-such-style"))
	_, err := svc.Build(context.Background(), Input{Images: []string{png}})
	if !errors.Is(err, ErrMissingAsset) {
		t.Fatalf("Build() error = %v, want ErrMissingAsset", err)
	}
}

func TestBuildCustomAssetPath(t *testing.T) {
	base := t.TempDir()
	stylesDir := filepath.Join(base, "styles")
	if err := os.MkdirAll(stylesDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(stylesDir, "hexwall.css"), []byte("/* override */"), 0o644); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	png := writeImage(t, dir, "a.png", []byte{1})

	frag, err := New(WithAssetPath(base)).Build(context.Background(), Input{Images: []string{png}})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if frag.Stylesheet.Content != "/* override */" {
		t.Errorf("Stylesheet.Content = %q, want override", frag.Stylesheet.Content)
	}
}

func TestBuildContextCancellation(t *testing.T) {
	dir := t.TempDir()
	png := writeImage(t, dir, "a.png", []byte{1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Build(ctx, Input{Images: []string{png}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Build() error = %v, want context.Canceled", err)
	}
}

func TestHexWallConvenience(t *testing.T) {
	dir := t.TempDir()
	png := writeImage(t, dir, "a.png", []byte{1})

	frag, err := HexWall(context.Background(), Input{Images: []string{png}})
	if err != nil {
		t.Fatalf("HexWall() unexpected error: %v", err)
	}
	if len(frag.Images()) != 1 {
		t.Errorf("Images() = %v, want 1 entry", frag.Images())
	}
}

func TestWallDeprecatedAlias(t *testing.T) {
	dir := t.TempDir()
	png := writeImage(t, dir, "a.png", []byte{1})

	frag, err := Wall(context.Background(), []string{png}, []string{"compact"})
	if err != nil {
		t.Fatalf("Wall() unexpected error: %v", err)
	}

	out, err := frag.HTML()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `class="hextile clr compact"`) {
		t.Errorf("HTML() = %q, missing forwarded class", out)
	}

	// First call carries the one-time deprecation notice.
	var deprecated bool
	for _, diag := range frag.Diagnostics() {
		if strings.Contains(diag.Message, "deprecated") {
			deprecated = true
		}
	}
	if !deprecated {
		t.Errorf("Diagnostics() = %v, want deprecation notice", frag.Diagnostics())
	}

	// Subsequent calls stay silent.
	again, err := Wall(context.Background(), []string{png}, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, diag := range again.Diagnostics() {
		if strings.Contains(diag.Message, "deprecated") {
			t.Errorf("second Wall() call repeated the deprecation notice: %v", diag)
		}
	}
}

func TestWithTimeoutPanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) did not panic")
		}
	}()
	WithTimeout(0)
}
