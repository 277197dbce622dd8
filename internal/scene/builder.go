package scene

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/fireconv/pkg/fire"
)

// NodeError reports a fatal problem with one node of the scene.
type NodeError struct {
	Name  string
	Index int
	Type  TypeTag
	Err   error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node %q (#%d, %s): %v", e.Name, e.Index, e.Type, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

// BuildScene builds the tree rooted at the document's scene node.
func (c *Context) BuildScene() (*Node, error) {
	root, err := c.Graph.SceneRoot()
	if err != nil {
		return nil, err
	}
	return c.Build(root, TypeScene)
}

// Build builds the node stored at index as the given type, recursing into
// its children.
func (c *Context) Build(index int, tag TypeTag) (*Node, error) {
	rec, err := c.Graph.At(index)
	if err != nil {
		return nil, err
	}

	n := &Node{
		Type:      tag,
		Index:     index,
		Name:      rec.Name(),
		record:    rec,
		childRefs: rec.Refs("_children"),
	}

	common := extractCommon(rec)
	if err := c.extractAnimation(rec, common); err != nil {
		return nil, c.nodeError(n, err)
	}
	if tag.Wrapped() {
		n.Props = Properties{"node": common}
	} else {
		n.Props = common
	}

	extract, ok := extractors[tag]
	if !ok {
		return nil, c.nodeError(n, fmt.Errorf("no extractor for type %s", tag))
	}
	if err := extract(c, n); err != nil {
		return nil, c.nodeError(n, err)
	}

	for _, ref := range n.childRefs {
		child, err := c.buildChild(ref)
		if err != nil {
			return nil, c.nodeError(n, err)
		}
		if child == nil {
			continue
		}
		if n.adjust != nil {
			n.adjust(child)
		}
		n.Children = append(n.Children, child)
	}

	return n, nil
}

// buildChild resolves one child reference. Non-node records and nodes with
// unrecognized components yield nil.
func (c *Context) buildChild(ref fire.Ref) (*Node, error) {
	rec, err := c.Graph.Resolve(ref)
	if err != nil {
		return nil, err
	}
	if rec.Kind() != fire.KindNode {
		return nil, nil
	}

	tag, err := c.ResolveType(rec)
	if err != nil {
		return nil, err
	}
	if !tag.Known() {
		c.Log.Debug("skipping child", zap.String("node", rec.Name()), zap.Int("index", ref.ID))
		return nil, nil
	}
	return c.Build(ref.ID, tag)
}

// nodeError attaches node context to err unless a deeper node already did.
func (c *Context) nodeError(n *Node, err error) error {
	var ne *NodeError
	if errors.As(err, &ne) {
		return err
	}
	c.Log.Error("node conversion failed",
		zap.String("node", n.Name),
		zap.Int("index", n.Index),
		zap.Stringer("type", n.Type),
		zap.Error(err))
	return &NodeError{Name: n.Name, Index: n.Index, Type: n.Type, Err: err}
}

// extractCommon copies the transform and appearance fields every node carries.
func extractCommon(r fire.Record) Properties {
	p := Properties{}
	p.setSize("contentSize", r, "_contentSize")
	p.setBool("enabled", r, "_enabled")
	p.setString("name", r, "_name")
	p.setVec2("anchorPoint", r, "_anchorPoint")
	p.setBool("cascadeOpacityEnabled", r, "_cascadeOpacityEnabled")
	p.setColor("color", r, "_color")
	p.setNumber("globalZOrder", r, "_globalZOrder")
	p.setNumber("localZOrder", r, "_localZOrder")
	p.setNumber("opacity", r, "_opacity")
	p.setBool("opacityModifyRGB", r, "_opacityModifyRGB")
	p.setVec2("position", r, "_position")
	p.setNumber("rotationSkewX", r, "_rotationX")
	p.setNumber("rotationSkewY", r, "_rotationY")
	p.setNumber("scaleX", r, "_scaleX")
	p.setNumber("scaleY", r, "_scaleY")
	p.setNumber("skewX", r, "_skewX")
	p.setNumber("skewY", r, "_skewY")
	p.setNumber("tag", r, "_tag")
	return p
}

// extractAnimation records the node's cc.Animation component under "anim".
// Clip ids are resolved against the catalog at export time.
func (c *Context) extractAnimation(r fire.Record, common Properties) error {
	comp, ok, err := c.Component(r, ComponentAnimation)
	if err != nil || !ok {
		return err
	}

	anim := Properties{}
	anim.setBool("playOnLoad", comp, "playOnLoad")
	anim.setString("name", comp, "_name")
	anim.setNumber("objFlags", comp, "_objFlags")
	if uuid, ok := comp.UUID("_defaultClip"); ok {
		anim["defaultClip"] = uuid
	}

	clips := []string{}
	for _, ref := range comp.Refs("_clips") {
		if ref.UUID != "" {
			clips = append(clips, ref.UUID)
		}
	}
	anim["clips"] = clips

	common["anim"] = anim
	return nil
}
