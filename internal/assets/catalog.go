package assets

import (
	"sort"

	"github.com/Faultbox/fireconv/pkg/meta"
)

// Catalog holds the asset indexes collected for one conversion run.
// It is filled by the Importer and read-only afterwards.
type Catalog struct {
	// Paths maps content ids to project-relative paths.
	Paths map[string]string
	// Frames maps sprite frame content ids to their geometry.
	Frames map[string]*meta.SpriteFrame
	// Clips maps clip content ids to their raw documents.
	Clips map[string]meta.RawClip

	standalone []string
	atlases    []string
	seenAtlas  map[string]bool
	seenFrame  map[string]bool
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		Paths:     make(map[string]string),
		Frames:    make(map[string]*meta.SpriteFrame),
		Clips:     make(map[string]meta.RawClip),
		seenAtlas: make(map[string]bool),
		seenFrame: make(map[string]bool),
	}
}

// PathFor resolves a content id to a relative path. Sprite frame ids
// resolve to their frame name.
func (c *Catalog) PathFor(uuid string) (string, bool) {
	if p, ok := c.Paths[uuid]; ok {
		return p, true
	}
	if f, ok := c.Frames[uuid]; ok {
		return f.Name, true
	}
	return "", false
}

// Frame returns the sprite frame registered under uuid.
func (c *Catalog) Frame(uuid string) (*meta.SpriteFrame, bool) {
	f, ok := c.Frames[uuid]
	return f, ok
}

// AddFrame registers a frame for lookup. Standalone frames are also queued
// for individual registration by the exporters.
func (c *Catalog) AddFrame(f *meta.SpriteFrame, standalone bool) {
	c.Frames[f.UUID] = f
	if standalone && !c.seenFrame[f.UUID] {
		c.seenFrame[f.UUID] = true
		c.standalone = append(c.standalone, f.UUID)
	}
}

// AddAtlas records an atlas file that must be registered as a whole.
// Repeated paths are ignored.
func (c *Catalog) AddAtlas(path string) {
	if c.seenAtlas[path] {
		return
	}
	c.seenAtlas[path] = true
	c.atlases = append(c.atlases, path)
}

// AtlasFiles returns atlas paths in discovery order.
func (c *Catalog) AtlasFiles() []string {
	out := make([]string, len(c.atlases))
	copy(out, c.atlases)
	return out
}

// StandaloneFrames returns frames registered individually, sorted by name
// and then content id.
func (c *Catalog) StandaloneFrames() []*meta.SpriteFrame {
	out := make([]*meta.SpriteFrame, 0, len(c.standalone))
	for _, id := range c.standalone {
		out = append(out, c.Frames[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].UUID < out[j].UUID
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ClipIDs returns clip content ids in sorted order.
func (c *Catalog) ClipIDs() []string {
	ids := make([]string, 0, len(c.Clips))
	for id := range c.Clips {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
