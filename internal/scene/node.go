package scene

import (
	"github.com/Faultbox/fireconv/pkg/fire"
	"github.com/Faultbox/fireconv/pkg/math"
)

// Properties is a node's normalized property set, keyed by output name.
type Properties map[string]any

// Node is a resolved scene node.
type Node struct {
	Type     TypeTag
	Index    int // position of the source record in the scene document
	Name     string
	Props    Properties
	Children []*Node

	record fire.Record

	// childRefs overrides the record's own children (scroll views adopt
	// their content node's children).
	childRefs []fire.Ref
	// adjust is applied to every built child before it is attached.
	adjust func(child *Node)
}

// Common returns the transform/appearance properties: the nested "node"
// map for wrapped types, the top-level map otherwise.
func (n *Node) Common() Properties {
	if !n.Type.Wrapped() {
		return n.Props
	}
	if p, ok := n.Props["node"].(Properties); ok {
		return p
	}
	return nil
}

// Walk visits n and its descendants depth-first, passing the depth.
func (n *Node) Walk(fn func(node *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(node *Node, depth int), depth int) {
	fn(n, depth)
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// Property setters copy a source field into p only when it is present.

func (p Properties) setString(key string, r fire.Record, field string) {
	if v, ok := r.String(field); ok {
		p[key] = v
	}
}

func (p Properties) setNumber(key string, r fire.Record, field string) {
	if v, ok := r.Float(field); ok {
		p[key] = v
	}
}

func (p Properties) setBool(key string, r fire.Record, field string) {
	if v, ok := r.Bool(field); ok {
		p[key] = v
	}
}

func (p Properties) setVec2(key string, r fire.Record, field string) {
	if v, ok := r.Vec2(field); ok {
		p[key] = v.Map()
	}
}

func (p Properties) setSize(key string, r fire.Record, field string) {
	if v, ok := r.Size(field); ok {
		p[key] = v.Map()
	}
}

func (p Properties) setColor(key string, r fire.Record, field string) {
	if v, ok := r.Color(field); ok {
		p[key] = v.Map()
	}
}

// setEnum maps an integer-coded field through a fixed label table.
// Out-of-range codes leave the property unset.
func (p Properties) setEnum(key string, r fire.Record, field string, labels []string) bool {
	i, ok := r.Int(field)
	if !ok || i < 0 || i >= len(labels) {
		return false
	}
	p[key] = labels[i]
	return true
}

// Vec2 reads back an {x, y} property.
func (p Properties) Vec2(key string) (math.Vec2, bool) {
	m, ok := p[key].(map[string]any)
	if !ok {
		return math.Vec2{}, false
	}
	x, okX := m["x"].(float64)
	y, okY := m["y"].(float64)
	return math.Vec2{X: x, Y: y}, okX && okY
}

// String reads back a string property.
func (p Properties) String(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}
