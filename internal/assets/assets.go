// Package assets imports the per-asset descriptors of an editor project.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/fireconv/pkg/meta"
)

// Import errors.
var (
	ErrMissingUUIDTable = errors.New("library uuid table not found")
	ErrUnknownAtlasKind = errors.New("unknown atlas descriptor kind")
)

// Importer scans descriptor files and fills a Catalog.
type Importer struct {
	log *zap.Logger
}

// NewImporter creates an importer. A nil logger disables logging.
func NewImporter(log *zap.Logger) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{log: log}
}

// Import builds the catalog for scenes stored in dir. Descriptors are read
// from dir itself and from creatorAssets/*/*/ (the editor's built-in
// assets); an empty creatorAssets skips the second root.
//
// The library uuid table is loaded first: atlas descriptors resolve their
// own path through it.
func (im *Importer) Import(dir, creatorAssets string) (*Catalog, error) {
	cat := NewCatalog()

	tablePath := filepath.Join(dir, filepath.FromSlash(meta.UUIDTableFile))
	if err := im.loadUUIDTable(cat, tablePath); err != nil {
		return nil, err
	}

	paths, err := descriptorPaths(dir, creatorAssets)
	if err != nil {
		return nil, err
	}
	im.log.Debug("scanning descriptors", zap.Int("count", len(paths)), zap.String("dir", dir))

	for _, path := range paths {
		if err := im.importDescriptor(cat, path); err != nil {
			return nil, err
		}
	}

	im.log.Debug("catalog ready",
		zap.Int("paths", len(cat.Paths)),
		zap.Int("frames", len(cat.Frames)),
		zap.Int("atlases", len(cat.atlases)),
		zap.Int("clips", len(cat.Clips)))

	return cat, nil
}

func (im *Importer) loadUUIDTable(cat *Catalog, path string) error {
	table, err := meta.ParseUUIDTableFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMissingUUIDTable, path)
		}
		return fmt.Errorf("loading uuid table: %w", err)
	}
	for id, e := range table {
		cat.Paths[id] = e.RelativePath
	}
	return nil
}

// descriptorPaths lists descriptor files from both roots, sorted per root
// with duplicates removed.
func descriptorPaths(dir, creatorAssets string) ([]string, error) {
	patterns := []string{filepath.Join(dir, "*"+meta.DescriptorExt)}
	if creatorAssets != "" {
		patterns = append(patterns, filepath.Join(creatorAssets, "*", "*", "*"+meta.DescriptorExt))
	}

	seen := make(map[string]bool)
	var out []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", pattern, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			abs, err := filepath.Abs(m)
			if err != nil {
				abs = m
			}
			if seen[abs] {
				continue
			}
			seen[abs] = true
			out = append(out, m)
		}
	}
	return out, nil
}

func (im *Importer) importDescriptor(cat *Catalog, path string) error {
	d, err := meta.ParseDescriptorFile(path)
	if err != nil {
		return err
	}

	switch {
	case d.HasKind() && d.IsAtlasKind():
		return im.importFrames(cat, d, path)
	case d.HasKind():
		return im.checkUnknownKind(d, path)
	default:
		dataPath, ok := meta.ClipDataPath(path)
		if !ok {
			return nil
		}
		clip, err := meta.ParseClipFile(dataPath)
		if err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(dataPath), err)
		}
		cat.Clips[d.UUID] = clip
		im.log.Debug("imported clip", zap.String("file", filepath.Base(dataPath)), zap.String("uuid", d.UUID))
		return nil
	}
}

func (im *Importer) importFrames(cat *Catalog, d *meta.Descriptor, path string) error {
	frames, err := d.SpriteFrames()
	if err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	if d.Type == meta.KindTexturePacker {
		if atlas, ok := cat.PathFor(d.UUID); ok {
			cat.AddAtlas(atlas)
		} else {
			im.log.Warn("atlas file not in uuid table",
				zap.String("descriptor", filepath.Base(path)),
				zap.String("uuid", d.UUID))
		}
	}

	for _, f := range frames {
		if !f.HasTexture() {
			// Still usable for name lookup, but cannot be registered.
			cat.AddFrame(f, false)
			im.log.Warn("sprite frame has no raw texture, skipping registration",
				zap.String("frame", f.Name),
				zap.String("descriptor", filepath.Base(path)))
			continue
		}
		// Texture Packer frames are loaded through their atlas file.
		cat.AddFrame(f, d.Type == meta.KindSprite)
	}
	return nil
}

// checkUnknownKind rejects descriptors whose sub-entries look like sprite
// frames under a kind this importer does not know how to register.
// Other kinds (raw textures, audio, fonts) carry no frames and are ignored.
func (im *Importer) checkUnknownKind(d *meta.Descriptor, path string) error {
	frames, err := d.SpriteFrames()
	if err != nil {
		return nil
	}
	for _, f := range frames {
		if f.HasTexture() {
			return fmt.Errorf("%s: %w: %q", filepath.Base(path), ErrUnknownAtlasKind, d.Type)
		}
	}
	return nil
}
