package sources

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FromMarkdown extracts image destinations from a markdown document, in
// document order. The document is parsed but never rendered; only the
// destination of each image node is collected. Empty destinations are
// skipped.
func FromMarkdown(source []byte) ([]string, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var images []string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if img, ok := n.(*ast.Image); ok && len(img.Destination) > 0 {
			images = append(images, string(img.Destination))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking markdown document: %w", err)
	}

	return images, nil
}
