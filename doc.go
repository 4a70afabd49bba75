// Package hexwall renders sets of images as a self-contained hexagonal
// tile wall: an HTML fragment in which every image is inlined as a base64
// data URI, plus the stylesheet the fragment depends on.
//
// # Quick Start
//
// Build a wall from local files and remote URLs:
//
//	frag, err := hexwall.HexWall(ctx, hexwall.Input{
//	    Images: []string{"logo.png", "https://example.com/badge.svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html, _ := frag.HTML()
//	fmt.Println(html)
//
// The fragment carries its stylesheet dependency (frag.Stylesheet) and any
// non-fatal warnings collected during the build (frag.Diagnostics()).
//
// # Package Logos
//
// Input.Packages names installed packages whose logos are discovered under
// the conventional help/figures/ sub-path of each package's root. Package
// lookup is abstracted behind the Locator interface; the default DirLocator
// scans the library roots named by the HEXWALL_LIBRARY environment
// variable. Packages that cannot be located or carry no logo are skipped
// with a warning.
//
// # Failure Policy
//
// Argument errors, missing local files, and missing stylesheet assets are
// fatal. A failed per-image conversion (network hiccup, permission error)
// is not: the original source string is kept in place of a data URI and a
// diagnostic records the failure, so one bad image never aborts the batch.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := hexwall.New(
//	    hexwall.WithTimeout(time.Minute),
//	    hexwall.WithAssetPath("/path/to/custom/assets"),
//	    hexwall.WithLocator(myLocator),
//	)
//	frag, err := svc.Build(ctx, input)
//
// # Snapshots
//
// Snapshotter renders a finished fragment to a PNG via headless Chrome
// (go-rod downloads a managed Chromium on first run). This is optional and
// never invoked by Build.
package hexwall
