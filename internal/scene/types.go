// Package scene resolves a loaded scene document into a typed node tree.
package scene

import "fmt"

// TypeTag is the semantic type of a node, inferred from its components.
type TypeTag int

// Node types. The set is closed: every tag has an entry in the extractor
// table and a stable output name.
const (
	TypeUnknown TypeTag = iota
	TypeGeneric
	TypeScene
	TypeCanvas
	TypeSprite
	TypeLabel
	TypeRichText
	TypeParticle
	TypeTileMap
	TypeButton
	TypeEditBox
	TypeProgressBar
	TypeScrollView
	TypeSkeleton
)

// String returns the output type name. Canvas nodes are exported as plain nodes.
func (t TypeTag) String() string {
	switch t {
	case TypeGeneric, TypeCanvas:
		return "Node"
	case TypeScene:
		return "Scene"
	case TypeSprite:
		return "Sprite"
	case TypeLabel:
		return "Label"
	case TypeRichText:
		return "RichText"
	case TypeParticle:
		return "Particle"
	case TypeTileMap:
		return "TileMap"
	case TypeButton:
		return "Button"
	case TypeEditBox:
		return "EditBox"
	case TypeProgressBar:
		return "ProgressBar"
	case TypeScrollView:
		return "ScrollView"
	case TypeSkeleton:
		return "SpineSkeleton"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// Known reports whether nodes of this type are built into the tree.
func (t TypeTag) Known() bool {
	return t > TypeUnknown && t <= TypeSkeleton
}

// Wrapped reports whether the node's common properties are nested under
// the "node" key. Only plain nodes keep them at the top level.
func (t TypeTag) Wrapped() bool {
	return t != TypeGeneric && t != TypeCanvas
}

// Component kinds.
const (
	ComponentButton      = "cc.Button"
	ComponentProgressBar = "cc.ProgressBar"
	ComponentScrollView  = "cc.ScrollView"
	ComponentEditBox     = "cc.EditBox"
	ComponentRichText    = "cc.RichText"
	ComponentLabel       = "cc.Label"
	ComponentSkeleton    = "sp.Skeleton"
	ComponentSprite      = "cc.Sprite"
	ComponentParticle    = "cc.ParticleSystem"
	ComponentTiledMap    = "cc.TiledMap"
	ComponentCanvas      = "cc.Canvas"
	ComponentAnimation   = "cc.Animation"
)

// typePriority lists the recognized component kinds, most specific first.
// Composite widgets carry a Sprite (and often a Label) next to their own
// component, so they must be matched before the plain renderers.
var typePriority = []struct {
	kind string
	tag  TypeTag
}{
	{ComponentButton, TypeButton},
	{ComponentProgressBar, TypeProgressBar},
	{ComponentScrollView, TypeScrollView},
	{ComponentEditBox, TypeEditBox},
	{ComponentRichText, TypeRichText},
	{ComponentLabel, TypeLabel},
	{ComponentSkeleton, TypeSkeleton},
	{ComponentSprite, TypeSprite},
	{ComponentParticle, TypeParticle},
	{ComponentTiledMap, TypeTileMap},
	{ComponentCanvas, TypeCanvas},
}
