package scene

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/fireconv/internal/assets"
	"github.com/Faultbox/fireconv/pkg/fire"
)

// Build errors.
var (
	ErrUnsupportedFont      = errors.New("label font is neither .ttf nor .fnt")
	ErrMissingScrollContent = errors.New("scroll view has no view/content nodes")
	ErrMissingComponent     = errors.New("node is missing its component")
)

// DesignResolution is the authoring canvas size and fit policy.
type DesignResolution struct {
	Width     float64
	Height    float64
	FitWidth  bool
	FitHeight bool
}

// Context is the state of one conversion run. It is created per scene file
// and never shared between files.
type Context struct {
	Graph     *fire.Graph
	Catalog   *assets.Catalog
	AssetPath string
	Log       *zap.Logger

	// Design starts at the fallback resolution and is replaced by the
	// scene's Canvas, if any.
	Design    DesignResolution
	HasCanvas bool
}

// NewContext creates a conversion context. A nil logger disables logging.
func NewContext(g *fire.Graph, cat *assets.Catalog, assetPath string, log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	if cat == nil {
		cat = assets.NewCatalog()
	}
	return &Context{
		Graph:     g,
		Catalog:   cat,
		AssetPath: assetPath,
		Log:       log,
	}
}

// Components resolves the component records attached to a node.
func (c *Context) Components(node fire.Record) ([]fire.Record, error) {
	refs := node.Refs("_components")
	out := make([]fire.Record, 0, len(refs))
	for _, ref := range refs {
		comp, err := c.Graph.Resolve(ref)
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", ref, err)
		}
		out = append(out, comp)
	}
	return out, nil
}

// Component returns the first attached component of the given kind.
func (c *Context) Component(node fire.Record, kind string) (fire.Record, bool, error) {
	comps, err := c.Components(node)
	if err != nil {
		return nil, false, err
	}
	for _, comp := range comps {
		if comp.Kind() == kind {
			return comp, true, nil
		}
	}
	return nil, false, nil
}

// assetPath resolves a content id and prepends the configured prefix.
func (c *Context) assetPath(uuid string) (string, bool) {
	p, ok := c.Catalog.PathFor(uuid)
	if !ok {
		return "", false
	}
	return c.AssetPath + p, true
}
