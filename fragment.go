package hexwall

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StyleDependency declares the stylesheet a fragment depends on. It is
// emitted alongside the fragment rather than inside it; Content holds the
// resolved CSS so callers can inline or serve it as they see fit.
type StyleDependency struct {
	Name    string
	Version string
	Content string
}

// Fragment is the composed wall: a container node tree plus the stylesheet
// dependency and the warnings collected while building it.
type Fragment struct {
	root       *html.Node
	Stylesheet StyleDependency
	diags      []Diagnostic
}

// Node returns the fragment's container element for direct manipulation.
func (f *Fragment) Node() *html.Node {
	return f.root
}

// Diagnostics returns the non-fatal warnings recorded during the build,
// in emission order.
func (f *Fragment) Diagnostics() []Diagnostic {
	return f.diags
}

// HTML renders the fragment to a string.
func (f *Fragment) HTML() (string, error) {
	var buf strings.Builder
	if err := html.Render(&buf, f.root); err != nil {
		return "", fmt.Errorf("rendering fragment: %w", err)
	}
	return buf.String(), nil
}

// Images returns the src attribute of every tile image, in tile order.
func (f *Fragment) Images() []string {
	var srcs []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Img {
			for _, attr := range n.Attr {
				if attr.Key == "src" {
					srcs = append(srcs, attr.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(f.root)
	return srcs
}

// buildFragment assembles div.hextile.clr > ul > li > img, one list item
// per display string, in input order. Extra attributes are emitted in
// sorted key order so rendering is deterministic.
func buildFragment(srcs []string, class []string, attrs map[string]string) *html.Node {
	div := newElement(atom.Div)

	classAttr := baseClasses
	if len(class) > 0 {
		classAttr += " " + strings.Join(class, " ")
	}
	div.Attr = append(div.Attr, html.Attribute{Key: "class", Val: classAttr})

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		div.Attr = append(div.Attr, html.Attribute{Key: k, Val: attrs[k]})
	}

	ul := newElement(atom.Ul)
	div.AppendChild(ul)

	for _, src := range srcs {
		li := newElement(atom.Li)
		img := newElement(atom.Img)
		img.Attr = append(img.Attr, html.Attribute{Key: "src", Val: src})
		li.AppendChild(img)
		ul.AppendChild(li)
	}

	return div
}

// newElement creates an element node for a known atom.
func newElement(a atom.Atom) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
}
