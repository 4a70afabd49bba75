package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	charmlog "github.com/charmbracelet/log"

	hexwall "github.com/alnah/go-hexwall"
	"github.com/alnah/go-hexwall/internal/sources"
)

// ErrNoSources is returned when neither flags, config, nor markdown yield
// any image source.
var ErrNoSources = errors.New("no image sources given (use --image, --package, --markdown, or a config file)")

// run merges flags over config, builds the wall, and writes the outputs.
func run(ctx context.Context, flags *cliFlags, logger *charmlog.Logger) error {
	cfg := &Config{}
	if flags.config != "" {
		loaded, err := LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debug("loaded config", "path", flags.config)
	}

	input, err := mergeInput(flags, cfg)
	if err != nil {
		return err
	}
	if len(input.Images) == 0 && len(input.Packages) == 0 {
		return ErrNoSources
	}

	opts := buildOptions(flags, cfg)
	logger.Debug("building wall", "images", len(input.Images), "packages", len(input.Packages))

	frag, err := hexwall.New(opts...).Build(ctx, input)
	if err != nil {
		return err
	}

	for _, diag := range frag.Diagnostics() {
		logger.Warn(diag.Message, "source", diag.Source)
	}

	htmlOut, err := frag.HTML()
	if err != nil {
		return err
	}

	if err := writeFragment(flags, cfg, htmlOut); err != nil {
		return err
	}

	if flags.snapshot != "" {
		logger.Debug("rendering snapshot", "path", flags.snapshot)
		png, err := hexwall.NewSnapshotter().Snapshot(ctx, frag)
		if err != nil {
			return err
		}
		// #nosec G306 -- snapshot output files are intended to be readable
		if err := os.WriteFile(flags.snapshot, png, 0o644); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
		logger.Info("wrote snapshot", "path", flags.snapshot)
	}

	return nil
}

// mergeInput combines flag and config sources; flags win where both are set.
// Markdown-collected images are appended after explicit ones.
func mergeInput(flags *cliFlags, cfg *Config) (hexwall.Input, error) {
	input := hexwall.Input{
		Images:   firstNonEmpty(flags.images, cfg.Images),
		Packages: firstNonEmpty(flags.packages, cfg.Packages),
		Class:    firstNonEmpty(flags.class, cfg.Class),
		Attrs:    flags.attrs,
	}
	if len(input.Attrs) == 0 {
		input.Attrs = cfg.Attrs
	}

	if flags.markdown != "" {
		data, err := os.ReadFile(flags.markdown) // #nosec G304 -- markdown path is user-provided
		if err != nil {
			return hexwall.Input{}, fmt.Errorf("reading markdown file: %w", err)
		}
		collected, err := sources.FromMarkdown(data)
		if err != nil {
			return hexwall.Input{}, err
		}
		input.Images = append(input.Images, collected...)
	}

	return input, nil
}

// buildOptions translates config fields into service options.
func buildOptions(flags *cliFlags, cfg *Config) []hexwall.Option {
	var opts []hexwall.Option
	if cfg.Assets.BasePath != "" {
		opts = append(opts, hexwall.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Stylesheet != "" {
		opts = append(opts, hexwall.WithStylesheet(cfg.Stylesheet))
	}
	if len(cfg.Library) > 0 {
		opts = append(opts, hexwall.WithLocator(hexwall.NewDirLocator(cfg.Library...)))
	}
	return opts
}

// writeFragment sends the fragment HTML to the configured destination.
func writeFragment(flags *cliFlags, cfg *Config, htmlOut string) error {
	if flags.preview {
		if err := quick.Highlight(os.Stdout, htmlOut+"\n", "html", "terminal256", "monokai"); err != nil {
			// Highlighting is cosmetic; fall through to plain output.
			fmt.Println(htmlOut)
		}
		return nil
	}

	out := flags.out
	if out == "" {
		out = cfg.Output
	}
	if out == "" {
		fmt.Println(htmlOut)
		return nil
	}

	// #nosec G306 -- fragment output files are intended to be readable
	if err := os.WriteFile(out, []byte(htmlOut), 0o644); err != nil {
		return fmt.Errorf("writing fragment: %w", err)
	}
	return nil
}

// firstNonEmpty returns a if it has entries, otherwise b.
func firstNonEmpty(a, b []string) []string {
	if len(a) > 0 {
		return a
	}
	return b
}
