package scene

import (
	"fmt"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/fireconv/pkg/encoding"
	"github.com/Faultbox/fireconv/pkg/fire"
)

// extractor adds the type-specific properties of a node. It may also
// redirect child resolution through n.childRefs and n.adjust.
type extractor func(c *Context, n *Node) error

var extractors = map[TypeTag]extractor{
	TypeGeneric:     extractNone,
	TypeScene:       extractNone,
	TypeCanvas:      extractCanvas,
	TypeSprite:      extractSprite,
	TypeLabel:       extractLabel,
	TypeRichText:    extractRichText,
	TypeParticle:    extractParticle,
	TypeTileMap:     extractTileMap,
	TypeButton:      extractButton,
	TypeEditBox:     extractEditBox,
	TypeProgressBar: extractProgressBar,
	TypeScrollView:  extractScrollView,
	TypeSkeleton:    extractSkeleton,
}

// Fixed label tables for integer-coded component fields.
var (
	spriteTypes   = []string{"Simple", "Sliced", "Tiled", "Filled"}
	sizeModes     = []string{"Custom", "Trimmed", "Raw"}
	hAlignments   = []string{"Left", "Center", "Right"}
	vAlignments   = []string{"Top", "Center", "Bottom"}
	overflowTypes = []string{"None", "Clamp", "Shrink", "ResizeHeight"}
	inputModes    = []string{"Any", "EmailAddress", "Numeric", "PhoneNumber", "URL", "Decime", "SingleLine"}
	inputFlags    = []string{"Password", "Sensitive", "InitialCapsWord", "InitialCapsSentence", "InitialCapsAllCharacters", "LowercaseAllCharacters"}
	returnTypes   = []string{"Default", "Done", "Send", "Search", "Go"}
)

const (
	spriteTypeSliced = 1
	systemFontName   = "arial"
	skeletonDataExt  = ".json"
	skeletonAtlasExt = ".atlas"
)

func extractNone(*Context, *Node) error {
	return nil
}

func (c *Context) requireComponent(n *Node, kind string) (fire.Record, error) {
	comp, ok, err := c.Component(n.record, kind)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingComponent, kind)
	}
	return comp, nil
}

// setAssetPath resolves a content id field and stores the prefixed path.
func (c *Context) setAssetPath(n *Node, key string, comp fire.Record, field string) {
	uuid, ok := comp.UUID(field)
	if !ok {
		return
	}
	p, ok := c.assetPath(uuid)
	if !ok {
		c.Log.Warn("unresolved asset reference",
			zap.String("node", n.Name),
			zap.String("field", field),
			zap.String("uuid", uuid))
		return
	}
	n.Props[key] = p
}

// setFrameName resolves a content id field to a sprite frame name (or,
// for ids outside the frame table, a relative path) without the prefix.
func (c *Context) setFrameName(n *Node, key string, comp fire.Record, field string) {
	uuid, ok := comp.UUID(field)
	if !ok {
		return
	}
	name, ok := c.Catalog.PathFor(uuid)
	if !ok {
		c.Log.Warn("unresolved sprite frame",
			zap.String("node", n.Name),
			zap.String("field", field),
			zap.String("uuid", uuid))
		return
	}
	n.Props[key] = name
}

func extractCanvas(c *Context, n *Node) error {
	comp, err := c.requireComponent(n, ComponentCanvas)
	if err != nil {
		return err
	}

	if size, ok := comp.Size("_designResolution"); ok {
		c.Design.Width = size.Width
		c.Design.Height = size.Height
	}
	c.Design.FitWidth, _ = comp.Bool("_fitWidth")
	c.Design.FitHeight, _ = comp.Bool("_fitHeight")
	c.HasCanvas = true

	c.Log.Debug("design resolution",
		zap.Float64("width", c.Design.Width),
		zap.Float64("height", c.Design.Height),
		zap.Bool("fitWidth", c.Design.FitWidth),
		zap.Bool("fitHeight", c.Design.FitHeight))
	return nil
}

func extractSprite(c *Context, n *Node) error {
	comp, err := c.requireComponent(n, ComponentSprite)
	if err != nil {
		return err
	}

	p := n.Props
	if uuid, ok := comp.UUID("_spriteFrame"); ok {
		if f, ok := c.Catalog.Frame(uuid); ok {
			p["spriteFrameName"] = f.Name
		} else {
			c.Log.Warn("unresolved sprite frame", zap.String("node", n.Name), zap.String("uuid", uuid))
		}
	}
	p.setEnum("spriteType", comp, "_type", spriteTypes)
	p.setNumber("srcBlend", comp, "_srcBlendFactor")
	p.setNumber("dstBlend", comp, "_dstBlendFactor")
	p.setBool("trimEnabled", comp, "_isTrimmedMode")
	p.setEnum("sizeMode", comp, "_sizeMode", sizeModes)
	return nil
}

func extractLabel(c *Context, n *Node) error {
	comp, err := c.requireComponent(n, ComponentLabel)
	if err != nil {
		return err
	}

	p := n.Props
	p.setNumber("fontSize", comp, "_fontSize")
	if text, ok := comp.String("_N$string"); ok {
		p["labelText"] = encoding.EscapeNewlines(text)
	}
	p.setEnum("horizontalAlignment", comp, "_N$horizontalAlign", hAlignments)
	p.setEnum("verticalAlignment", comp, "_N$verticalAlign", vAlignments)
	p.setEnum("overflowType", comp, "_N$overflow", overflowTypes)
	p.setBool("enableWrap", comp, "_enableWrapText")

	fontUUID, hasFile := comp.UUID("_N$file")
	system, ok := comp.Bool("_isSystemFontUsed")
	if !ok {
		system = !hasFile
	}
	if !system && !hasFile {
		c.Log.Warn("label has no font file, using system font", zap.String("node", n.Name))
		system = true
	}
	if system {
		p["fontType"] = "System"
		p["fontName"] = systemFontName
		return nil
	}

	fontPath, ok := c.Catalog.PathFor(fontUUID)
	if !ok {
		return fmt.Errorf("%w: font %s is not in the uuid table", ErrUnsupportedFont, fontUUID)
	}
	switch strings.ToLower(path.Ext(fontPath)) {
	case ".ttf":
		p["fontType"] = "TTF"
	case ".fnt":
		p["fontType"] = "BMFont"
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFont, fontPath)
	}
	p["fontName"] = c.AssetPath + fontPath

	// System fonts ignore line height.
	p.setNumber("lineHeight", comp, "_lineHeight")
	return nil
}

func extractRichText(c *Context, n *Node) error {
	comp, err := c.requireComponent(n, ComponentRichText)
	if err != nil {
		return err
	}

	p := n.Props
	p.setString("text", comp, "_N$string")
	p.setEnum("horizontalAlignment", comp, "_N$horizontalAlign", hAlignments)
	p.setNumber("fontSize", comp, "_N$fontSize")
	p.setNumber("maxWidth", comp, "_N$maxWidth")
	p.setNumber("lineHeight", comp, "_N$lineHeight")
	c.setAssetPath(n, "fontFilename", comp, "_N$font")
	return nil
}

func extractParticle(c *Context, n *Node) error {
	comp, err := c.requireComponent(n, ComponentParticle)
	if err != nil {
		return err
	}
	c.setAssetPath(n, "particleFilename", comp, "_file")
	return nil
}

func extractTileMap(c *Context, n *Node) error {
	comp, err := c.requireComponent(n, ComponentTiledMap)
	if err != nil {
		return err
	}

	// Setting a content size on a TMX map moves its anchor without scaling
	// it, so the size is handed over separately.
	common := n.Common()
	if cs, ok := common["contentSize"]; ok {
		delete(common, "contentSize")
		n.Props["desiredContentSize"] = cs
	}
	c.setAssetPath(n, "tmxFilename", comp, "_tmxFile")
	return nil
}

func extractButton(c *Context, n *Node) error {
	comp, err := c.requireComponent(n, ComponentButton)
	if err != nil {
		return err
	}
	c.setFrameName(n, "spriteFrameName", comp, "_N$normalSprite")
	n.Props["ignoreContentAdaptWithSize"] = false
	return nil
}

func extractEditBox(c *Context, n *Node) error {
	comp, err := c.requireComponent(n, ComponentEditBox)
	if err != nil {
		return err
	}

	p := n.Props
	c.setFrameName(n, "backgroundImage", comp, "_N$backgroundImage")
	p.setEnum("returnType", comp, "_N$returnType", returnTypes)
	p.setEnum("inputFlag", comp, "_N$inputFlag", inputFlags)
	p.setEnum("inputMode", comp, "_N$inputMode", inputModes)
	p.setNumber("fontSize", comp, "_N$fontSize")
	p.setColor("fontColor", comp, "_N$fontColor")
	p.setString("placeholder", comp, "_N$placeholder")
	p.setNumber("placeholderFontSize", comp, "_N$placeholderFontSize")
	p.setColor("placeholderFontColor", comp, "_N$placeholderFontColor")
	p.setNumber("maxLength", comp, "_N$maxLength")
	p.setString("text", comp, "_string")
	return nil
}

func extractProgressBar(c *Context, n *Node) error {
	comp, err := c.requireComponent(n, ComponentProgressBar)
	if err != nil {
		return err
	}
	if progress, ok := comp.Float("_N$progress"); ok {
		n.Props["percent"] = progress * 100
	}
	return nil
}

func extractSkeleton(c *Context, n *Node) error {
	comp, err := c.requireComponent(n, ComponentSkeleton)
	if err != nil {
		return err
	}

	p := n.Props
	if uuid, ok := comp.UUID("_N$skeletonData"); ok {
		if dataPath, ok := c.assetPath(uuid); ok {
			p["jsonFile"] = dataPath
			p["atlasFile"] = atlasPathFor(dataPath)
		} else {
			c.Log.Warn("unresolved skeleton data", zap.String("node", n.Name), zap.String("uuid", uuid))
		}
	}
	p.setString("defaultSkin", comp, "defaultSkin")
	p.setString("defaultAnimation", comp, "defaultAnimation")
	p.setBool("loop", comp, "loop")
	p.setBool("premultipliedAlpha", comp, "_premultipliedAlpha")
	p.setNumber("timeScale", comp, "_N$timeScale")
	p.setBool("debugSlots", comp, "_N$debugSlots")
	p.setBool("debugBones", comp, "_N$debugBones")
	return nil
}

// atlasPathFor swaps the skeleton data extension for the atlas one.
func atlasPathFor(dataPath string) string {
	if len(dataPath) >= len(skeletonDataExt) {
		return dataPath[:len(dataPath)-len(skeletonDataExt)] + skeletonAtlasExt
	}
	return dataPath + skeletonAtlasExt
}
