// Package export turns a built scene tree into its output forms: the JSON
// scene document and the generated construction code.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/fireconv/internal/scene"
	"github.com/Faultbox/fireconv/pkg/meta"
)

// Version is the schema version written into every document.
const Version = "1.0"

// DefaultIndent is the JSON indent width.
const DefaultIndent = 4

// Document is the serialized scene. Fields are declared in key order so
// that the output matches a sorted-keys encoding.
type Document struct {
	AnimationClips      []Clip         `json:"animationClips"`
	DesignResolution    map[string]any `json:"designResolution"`
	ResolutionFitHeight bool           `json:"resolutionFitHeight"`
	ResolutionFitWidth  bool           `json:"resolutionFitWidth"`
	Root                *NodeJSON      `json:"root"`
	SpriteFrames        []SpriteFrame  `json:"spriteFrames"`
	Version             string         `json:"version"`
}

// NodeJSON is one node of the exported tree.
type NodeJSON struct {
	Children   []*NodeJSON      `json:"children"`
	Properties scene.Properties `json:"properties"`
	Type       string           `json:"type"`
}

// SpriteFrame is a standalone frame registration.
type SpriteFrame struct {
	CenterRect   map[string]any `json:"centerRect,omitempty"`
	Name         string         `json:"name"`
	Offset       map[string]any `json:"offset"`
	OriginalSize map[string]any `json:"originalSize"`
	Rect         map[string]any `json:"rect"`
	Rotated      bool           `json:"rotated"`
	TexturePath  string         `json:"texturePath"`
}

// Clip is a normalized animation clip.
type Clip map[string]any

// Serialize builds the document for a scene built with c. It reads the
// context's design resolution and catalog and never modifies either.
func Serialize(c *scene.Context, root *scene.Node) *Document {
	return &Document{
		Version: Version,
		DesignResolution: map[string]any{
			"w": c.Design.Width,
			"h": c.Design.Height,
		},
		ResolutionFitWidth:  c.Design.FitWidth,
		ResolutionFitHeight: c.Design.FitHeight,
		SpriteFrames:        spriteFrames(c),
		AnimationClips:      clips(c, root),
		Root:                nodeJSON(root),
	}
}

func nodeJSON(n *scene.Node) *NodeJSON {
	out := &NodeJSON{
		Type:       n.Type.String(),
		Properties: n.Props,
		Children:   make([]*NodeJSON, 0, len(n.Children)),
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, nodeJSON(child))
	}
	return out
}

func spriteFrames(c *scene.Context) []SpriteFrame {
	frames := c.Catalog.StandaloneFrames()
	out := make([]SpriteFrame, 0, len(frames))
	for _, f := range frames {
		texture, ok := c.Catalog.PathFor(f.RawTextureUUID)
		if !ok {
			c.Log.Warn("sprite frame texture not in uuid table, skipping",
				zap.String("frame", f.Name),
				zap.String("texture", f.RawTextureUUID))
			continue
		}
		out = append(out, newSpriteFrame(f, c.AssetPath+texture))
	}
	return out
}

func newSpriteFrame(f *meta.SpriteFrame, texturePath string) SpriteFrame {
	sf := SpriteFrame{
		Name:         f.Name,
		TexturePath:  texturePath,
		Rect:         f.Rect().Map(),
		Offset:       f.Offset().Map(),
		Rotated:      f.Rotated,
		OriginalSize: f.OriginalSize().Map(),
	}
	if in := f.Insets(); !in.IsZero() {
		sf.CenterRect = in.CenterRect(f.Width, f.Height).Map()
	}
	return sf
}

// clips normalizes every collected clip and warns about animation
// components that reference clips the catalog does not hold.
func clips(c *scene.Context, root *scene.Node) []Clip {
	ids := c.Catalog.ClipIDs()
	out := make([]Clip, 0, len(ids))
	for _, id := range ids {
		out = append(out, NormalizeClip(id, c.Catalog.Clips[id]))
	}

	root.Walk(func(n *scene.Node, _ int) {
		anim, ok := n.Common()["anim"].(scene.Properties)
		if !ok {
			return
		}
		refs, _ := anim["clips"].([]string)
		for _, id := range refs {
			if _, ok := c.Catalog.Clips[id]; !ok {
				c.Log.Warn("animation clip not found",
					zap.String("node", n.Name),
					zap.String("clip", id))
			}
		}
	})
	return out
}

// Marshal encodes the document with the given indent width; zero writes
// compact output. Rich text markup is written without HTML escaping.
func Marshal(doc *Document, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return buf.Bytes(), nil
}
