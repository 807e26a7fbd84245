package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plasmidmap/plasmidmap/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file (single format) or base path (multiple)
	formats []string // output formats: svg, png, pdf, ps, json
	scale   float64  // png raster scale in pixels per layout unit
	noCache bool     // disable caching
	refresh bool     // bypass the cache and recompute
}

// renderCommand creates the render command for generating plasmid maps.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [map.toml]",
		Short: "Render a plasmid map to SVG, PNG, PDF, PS, or JSON",
		Long: `Render a plasmid map to one or more output formats.

The render command reads a TOML map description, computes the circular
layout, and writes the requested artifacts. Results are cached locally
keyed on the map file's content, so repeated renders of an unchanged
map are fast.

PDF and PS output require rsvg-convert on PATH.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = resolveFormats(formatsStr, opts.output)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, ps, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "png scale in pixels per layout unit (default 0.5)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when a cached result exists")

	return cmd
}

// runRender executes the pipeline and writes the resulting artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Rendering map...")
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		MapFile:  input,
		Formats:  opts.formats,
		PNGScale: opts.scale,
		Refresh:  opts.refresh,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %s", result.Plasmid.Name()))

	paths, err := writeArtifacts(result.Artifacts, opts.formats, input, opts.output)
	if err != nil {
		return err
	}

	printSuccess("Render complete")
	for _, path := range paths {
		printFile(path)
	}
	printStats(result.Stats.FeatureCount, result.Stats.OrbitCount, result.CacheInfo.RenderHit)
	return nil
}

// resolveFormats resolves the requested formats: an explicit --format
// flag wins, otherwise the output file's extension picks the format, and
// with neither the default applies.
func resolveFormats(formatsStr, output string) []string {
	if formatsStr == "" && output != "" {
		if ext := strings.TrimPrefix(filepath.Ext(output), "."); pipeline.ValidFormats[ext] {
			return []string{ext}
		}
	}
	return parseFormats(formatsStr)
}

// writeArtifacts writes each rendered format to disk and returns the
// written paths in format order.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := outputPath(input, output, format, len(formats) == 1)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath builds the destination path for one artifact. A single
// requested format uses the output flag verbatim; multiple formats share
// a base path and get per-format extensions.
func outputPath(input, output, format string, single bool) string {
	if single && output != "" {
		return output
	}
	return basePath(output, input) + "." + format
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. If output ends
// in a known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
