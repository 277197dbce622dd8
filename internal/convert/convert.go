// Package convert runs the scene conversion pipeline: import the project's
// descriptors, load and build the scene, render it and write the result.
package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/fireconv/internal/assets"
	"github.com/Faultbox/fireconv/internal/export"
	"github.com/Faultbox/fireconv/internal/scene"
	"github.com/Faultbox/fireconv/pkg/encoding"
	"github.com/Faultbox/fireconv/pkg/fire"
)

// Format selects the output renderer.
type Format string

// Output formats.
const (
	FormatJSON Format = "json"
	FormatCode Format = "code"
)

// ErrUnknownFormat is returned for output formats other than json and code.
var ErrUnknownFormat = errors.New("unknown output format")

// Ext returns the output file extension for the format.
func (f Format) Ext() string {
	if f == FormatCode {
		return ".cpp"
	}
	return ".json"
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatCode:
		return f, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Options configures a Converter.
type Options struct {
	// AssetPath is prepended to every resolved asset path.
	AssetPath string
	// CreatorAssets is the editor's built-in asset directory.
	CreatorAssets string
	// OutputDir receives one file per converted scene.
	OutputDir string
	Format    Format
	// Indent is the JSON indent width. Zero writes compact JSON.
	Indent int
	// Design is used when the scene has no Canvas.
	Design scene.DesignResolution
}

// Converter converts scene files. Each file gets its own catalog and
// conversion context.
type Converter struct {
	opts     Options
	log      *zap.Logger
	importer *assets.Importer
}

// New creates a converter. A nil logger disables logging.
func New(opts Options, log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Format == "" {
		opts.Format = FormatJSON
	}
	if opts.AssetPath != "" {
		opts.AssetPath = encoding.EnsureTrailingSlash(encoding.NormalizeAssetPath(opts.AssetPath))
	}
	return &Converter{
		opts:     opts,
		log:      log,
		importer: assets.NewImporter(log),
	}
}

// Build imports the assets next to the scene file and builds its tree.
func (c *Converter) Build(scenePath string) (*scene.Context, *scene.Node, error) {
	if c.opts.CreatorAssets != "" {
		if info, err := os.Stat(c.opts.CreatorAssets); err != nil || !info.IsDir() {
			c.log.Warn("creator assets directory not found, built-in assets will not resolve",
				zap.String("dir", c.opts.CreatorAssets))
		}
	}

	cat, err := c.importer.Import(filepath.Dir(scenePath), c.opts.CreatorAssets)
	if err != nil {
		return nil, nil, fmt.Errorf("importing assets: %w", err)
	}

	g, err := fire.ParseFile(scenePath)
	if err != nil {
		return nil, nil, err
	}
	c.log.Debug("scene loaded", zap.String("file", scenePath), zap.Int("records", g.Len()))

	ctx := scene.NewContext(g, cat, c.opts.AssetPath, c.log.With(zap.String("scene", filepath.Base(scenePath))))
	ctx.Design = c.opts.Design

	root, err := ctx.BuildScene()
	if err != nil {
		return nil, nil, err
	}
	if !ctx.HasCanvas {
		c.log.Debug("scene has no canvas, using fallback design resolution",
			zap.Float64("width", ctx.Design.Width),
			zap.Float64("height", ctx.Design.Height))
	}
	return ctx, root, nil
}

// Convert converts one scene file and returns the rendered output.
func (c *Converter) Convert(scenePath string) ([]byte, error) {
	ctx, root, err := c.Build(scenePath)
	if err != nil {
		return nil, err
	}

	switch c.opts.Format {
	case FormatJSON:
		return export.Marshal(export.Serialize(ctx, root), c.opts.Indent)
	case FormatCode:
		return []byte(export.RenderCode(ctx, root).String()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, c.opts.Format)
	}
}

// OutputPath returns where the output for scenePath is written.
func (c *Converter) OutputPath(scenePath string) string {
	base := strings.TrimSuffix(filepath.Base(scenePath), filepath.Ext(scenePath))
	return filepath.Join(c.opts.OutputDir, base+c.opts.Format.Ext())
}

// ConvertFile converts one scene file and writes the result to the output
// directory. Nothing is written unless the conversion succeeds.
func (c *Converter) ConvertFile(scenePath string) (string, error) {
	data, err := c.Convert(scenePath)
	if err != nil {
		return "", fmt.Errorf("%s: %w", scenePath, err)
	}

	out := c.OutputPath(scenePath)
	if err := writeFile(out, data); err != nil {
		return "", fmt.Errorf("%s: %w", scenePath, err)
	}
	c.log.Info("converted", zap.String("scene", scenePath), zap.String("output", out))
	return out, nil
}

// ConvertAll converts every scene file. A failing file is logged and does
// not stop the batch; the returned error combines all failures.
func (c *Converter) ConvertAll(scenePaths []string) ([]string, error) {
	var (
		outputs []string
		errs    error
	)
	for _, path := range scenePaths {
		out, err := c.ConvertFile(path)
		if err != nil {
			c.log.Error("conversion failed", zap.String("scene", path), zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}
		outputs = append(outputs, out)
	}
	return outputs, errs
}

// writeFile stages data in a temp file next to path and renames it into
// place.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("staging output: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing output: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing output: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("finalizing output: %w", err)
	}
	return nil
}
