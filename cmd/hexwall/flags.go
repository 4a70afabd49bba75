package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	images   []string
	packages []string
	class    []string
	attrs    map[string]string
	markdown string
	config   string
	out      string
	snapshot string
	preview  bool
	verbose  bool
	version  bool
}

// parseFlags parses args (including the program name at index 0).
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("hexwall", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringArrayVar(&f.images, "image", nil, "image path or URL (repeatable)")
	fs.StringArrayVar(&f.packages, "package", nil, "installed package whose logo to include (repeatable)")
	fs.StringArrayVar(&f.class, "class", nil, "extra CSS class for the container (repeatable)")
	fs.StringToStringVar(&f.attrs, "attr", nil, "extra container attribute as key=value (repeatable)")
	fs.StringVar(&f.markdown, "markdown", "", "collect image sources from a markdown file")
	fs.StringVarP(&f.config, "config", "c", "", "YAML config file")
	fs.StringVarP(&f.out, "out", "o", "", "write the fragment HTML to this file (default: stdout)")
	fs.StringVar(&f.snapshot, "snapshot", "", "render the wall to this PNG file via headless Chrome")
	fs.BoolVar(&f.preview, "preview", false, "print the fragment HTML syntax-highlighted to stdout")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	return f, nil
}
