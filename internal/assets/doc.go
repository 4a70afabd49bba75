// Package assets resolves the wall stylesheet from embedded defaults with
// optional filesystem overrides.
//
// The embedded stylesheet ships with the binary and plays the role of the
// installed asset; a caller-configured base path acts as the local
// development override and takes precedence when it contains the requested
// stylesheet.
package assets
