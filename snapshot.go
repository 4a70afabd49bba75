package hexwall

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-hexwall/internal/fileutil"
)

// defaultSnapshotTimeout bounds page load and capture.
const defaultSnapshotTimeout = 30 * time.Second

// pageTemplate wraps the wall fragment in a complete HTML5 document with
// the stylesheet inlined, suitable for loading from a file:// URL.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>hexwall</title>
<style>%s</style>
</head>
<body>
%s
</body>
</html>`

// Snapshotter renders a wall fragment to a PNG using headless Chrome.
// Rod automatically downloads Chromium on first run if not found.
type Snapshotter struct {
	Timeout time.Duration
}

// NewSnapshotter creates a Snapshotter with the default timeout.
func NewSnapshotter() *Snapshotter {
	return &Snapshotter{Timeout: defaultSnapshotTimeout}
}

// Snapshot renders the fragment as a full-page PNG screenshot.
// The standalone page is written to a temporary file removed before return.
func (s *Snapshotter) Snapshot(ctx context.Context, frag *Fragment) ([]byte, error) {
	fragHTML, err := frag.HTML()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}

	pageHTML := fmt.Sprintf(pageTemplate, sanitizeCSS(frag.Stylesheet.Content), fragHTML)
	tmpPath, cleanup, err := fileutil.WriteTempFile(pageHTML, "html")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	defer cleanup()

	browser := rod.New().Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	defer func() { _ = browser.Close() }()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	if err := page.Timeout(s.Timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	buf, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}

	return buf, nil
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
