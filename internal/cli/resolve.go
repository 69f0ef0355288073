package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilestyle/pkg/errors"
	"github.com/matzehuels/tilestyle/pkg/geo"
	"github.com/matzehuels/tilestyle/pkg/resolve"
	"github.com/matzehuels/tilestyle/pkg/style"
)

// resolveOpts holds the command-line flags for the resolve command.
type resolveOpts struct {
	style  styleFlags
	gzip   bool   // force gzip decoding of vector tiles
	output string // output file, stdout when empty
}

// resolvedFeature pairs a feature with its resolved style in the output.
type resolvedFeature struct {
	Feature resolve.Feature `json:"feature"`
	Style   resolve.Style   `json:"style"`
}

// resolveCommand resolves styles for every feature in a GeoJSON or vector
// tile file.
func (c *CLI) resolveCommand() *cobra.Command {
	var opts resolveOpts

	cmd := &cobra.Command{
		Use:   "resolve <file>",
		Short: "Resolve feature styles for a GeoJSON or vector tile file",
		Long: `Resolve the fill, stroke and label of every feature in a file.

Supported inputs are GeoJSON feature collections (.geojson, .json) and Mapbox
vector tiles (.mvt, .pbf). Each GeoJSON feature takes its layer, kind and name
from the properties of the same names; vector tile features take their layer
from the tile layer they belong to. Gzip-compressed tiles are detected
automatically.`,
		Example: `  tilestyle resolve tile.mvt --preset dark
  tilestyle resolve places.geojson --set background=#212121 -o styles.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResolve(cmd, args[0], &opts)
		},
	}

	opts.style.bind(cmd)
	cmd.Flags().BoolVar(&opts.gzip, "gzip", false, "treat vector tile input as gzip-compressed")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write JSON to file instead of stdout")
	return cmd
}

func (c *CLI) runResolve(cmd *cobra.Command, path string, opts *resolveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, _, _, err := c.effectiveStyle(ctx, &opts.style)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	features, err := readFeatures(path, opts.gzip)
	if err != nil {
		return err
	}
	logger.Debug("Read features", "file", path, "layers", geo.Summary(features))

	out, err := resolveFeatures(ctx, cfg, features)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Resolved %d features", len(out)))

	write := func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	if opts.output == "" {
		return write(cmd.OutOrStdout())
	}
	if err := writeFile(opts.output, write); err != nil {
		return err
	}
	printFile(cmd.ErrOrStderr(), opts.output)
	return nil
}

// readFeatures decodes features from a GeoJSON or vector tile file.
func readFeatures(path string, gzipped bool) ([]resolve.Feature, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".geojson", ".json":
		return geo.ReadGeoJSON(bytes.NewReader(data))
	case ".mvt", ".pbf":
		return geo.DecodeMVT(data, gzipped || isGzip(data))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported input %q (want .geojson, .json, .mvt or .pbf)", ext)
	}
}

// isGzip reports whether data starts with the gzip magic number.
func isGzip(data []byte) bool {
	return len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b
}

func resolveFeatures(ctx context.Context, cfg style.Config, features []resolve.Feature) ([]resolvedFeature, error) {
	styles, err := resolve.New(cfg).ResolveContext(ctx, features)
	if err != nil {
		return nil, err
	}
	out := make([]resolvedFeature, len(features))
	for i, f := range features {
		out[i] = resolvedFeature{Feature: f, Style: styles[i]}
	}
	return out, nil
}
