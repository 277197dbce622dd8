package scene

import (
	"fmt"

	"github.com/Faultbox/fireconv/pkg/fire"
	"github.com/Faultbox/fireconv/pkg/math"
)

// Structural names of a scroll view's subtree:
//
//	ScrollView
//	 +-- scrollBar
//	 +-- view
//	      +-- content   <- children of this node are the scroll view's children
const (
	scrollViewNode    = "view"
	scrollContentNode = "content"
)

func extractScrollView(c *Context, n *Node) error {
	p := n.Props
	p.setColor("backgroundImageColor", n.record, "_color")

	spr, ok, err := c.Component(n.record, ComponentSprite)
	if err != nil {
		return err
	}
	scale9 := false
	if ok {
		c.setFrameName(n, "backgroundImage", spr, "_spriteFrame")
		if t, ok := spr.Int("_type"); ok && t == spriteTypeSliced {
			scale9 = true
		}
	}
	p["backgroundImageScale9Enabled"] = scale9

	sv, err := c.requireComponent(n, ComponentScrollView)
	if err != nil {
		return err
	}
	horizontal, _ := sv.Bool("horizontal")
	vertical, _ := sv.Bool("vertical")
	p["direction"] = scrollDirection(horizontal, vertical)
	p.setBool("bounceEnabled", sv, "elastic")

	content, err := c.scrollContent(n.record)
	if err != nil {
		return err
	}
	p.setSize("innerContainerSize", content, "_contentSize")

	// The engine's inner container ignores the content node's anchor, so
	// children are shifted by the offset the anchor would have applied.
	size, _ := content.Size("_contentSize")
	anchor, _ := content.Vec2("_anchorPoint")
	offset := size.Vec2().Mul(anchor)

	n.childRefs = content.Refs("_children")
	n.adjust = func(child *Node) {
		shiftPosition(child, offset)
	}
	return nil
}

func scrollDirection(horizontal, vertical bool) string {
	switch {
	case horizontal && vertical:
		return "Both"
	case horizontal:
		return "Horizontal"
	case vertical:
		return "Vertical"
	default:
		return "None"
	}
}

// scrollContent finds the view/content grandchild of a scroll view.
func (c *Context) scrollContent(rec fire.Record) (fire.Record, error) {
	view, err := c.childNamed(rec, scrollViewNode)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, fmt.Errorf("%w: no %q child", ErrMissingScrollContent, scrollViewNode)
	}

	content, err := c.childNamed(view, scrollContentNode)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, fmt.Errorf("%w: no %q child under %q", ErrMissingScrollContent, scrollContentNode, scrollViewNode)
	}
	return content, nil
}

func (c *Context) childNamed(rec fire.Record, name string) (fire.Record, error) {
	for _, ref := range rec.Refs("_children") {
		child, err := c.Graph.Resolve(ref)
		if err != nil {
			return nil, err
		}
		if child.Name() == name {
			return child, nil
		}
	}
	return nil, nil
}

func shiftPosition(n *Node, offset math.Vec2) {
	common := n.Common()
	if common == nil {
		return
	}
	pos, ok := common.Vec2("position")
	if !ok {
		return
	}
	common["position"] = pos.Add(offset).Map()
}
