package export

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/fireconv/internal/scene"
	"github.com/Faultbox/fireconv/pkg/meta"
)

const texturePlist = "cocos2d::ui::Widget::TextureResType::PLIST"

// Program is the generated construction code for one scene: a setup
// block registering resolution policy and sprite frames, then the node
// statements in tree order.
type Program struct {
	Setup []string
	Body  []string
}

// String renders the program as a source fragment.
func (p *Program) String() string {
	var b strings.Builder
	b.WriteString("// Generated by fireconv. Do not edit.\n\n")
	b.WriteString("// setup\n")
	for _, line := range p.Setup {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("\n// scene\n")
	for _, line := range p.Body {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderCode generates the construction code for a scene built with c.
func RenderCode(c *scene.Context, root *scene.Node) *Program {
	r := &codeRenderer{ctx: c}
	r.setupResolution(c.Design)
	r.setupFrames()
	r.node(root, "")
	return &Program{Setup: r.setup, Body: r.body}
}

type codeRenderer struct {
	ctx   *scene.Context
	setup []string
	body  []string
	next  int
}

func (r *codeRenderer) setupResolution(d scene.DesignResolution) {
	w, h := num(d.Width), num(d.Height)
	r.setup = append(r.setup,
		"auto glview = cocos2d::Director::getInstance()->getOpenGLView();",
		"const auto frameSize = glview->getFrameSize();")

	var stmt string
	switch {
	case d.FitWidth && d.FitHeight:
		stmt = fmt.Sprintf("glview->setDesignResolutionSize(%s, %s, ResolutionPolicy::EXACT_FIT);", w, h)
	case d.FitHeight:
		stmt = fmt.Sprintf("glview->setDesignResolutionSize(frameSize.width / (frameSize.height / %s), %s, ResolutionPolicy::NO_BORDER);", h, h)
	case d.FitWidth:
		stmt = fmt.Sprintf("glview->setDesignResolutionSize(%s, frameSize.height / (frameSize.width / %s), ResolutionPolicy::NO_BORDER);", w, w)
	default:
		stmt = fmt.Sprintf("glview->setDesignResolutionSize(%s, %s, ResolutionPolicy::NO_BORDER);", w, h)
	}
	r.setup = append(r.setup, stmt)
}

func (r *codeRenderer) setupFrames() {
	cat := r.ctx.Catalog
	r.setup = append(r.setup, "auto frameCache = cocos2d::SpriteFrameCache::getInstance();")

	for _, atlas := range cat.AtlasFiles() {
		r.setup = append(r.setup, fmt.Sprintf("frameCache->addSpriteFramesWithFile(%s);", cppString(r.ctx.AssetPath+atlas)))
	}

	for _, f := range cat.StandaloneFrames() {
		texture, ok := cat.PathFor(f.RawTextureUUID)
		if !ok {
			r.ctx.Log.Warn("sprite frame texture not in uuid table, skipping",
				zap.String("frame", f.Name),
				zap.String("texture", f.RawTextureUUID))
			continue
		}
		r.setup = append(r.setup, frameStatements(f, r.ctx.AssetPath+texture)...)
	}
}

func frameStatements(f *meta.SpriteFrame, texturePath string) []string {
	rect := f.Rect()
	off := f.Offset()
	orig := f.OriginalSize()

	lines := []string{
		"{",
		fmt.Sprintf("    auto frame = cocos2d::SpriteFrame::create(%s, cocos2d::Rect(%s, %s, %s, %s), %t, cocos2d::Vec2(%s, %s), cocos2d::Size(%s, %s));",
			cppString(texturePath),
			num(rect.X), num(rect.Y), num(rect.W), num(rect.H),
			f.Rotated,
			num(off.X), num(off.Y),
			num(orig.Width), num(orig.Height)),
	}
	if in := f.Insets(); !in.IsZero() {
		cr := in.CenterRect(f.Width, f.Height)
		lines = append(lines, fmt.Sprintf("    frame->setCenterRectInPixels(cocos2d::Rect(%s, %s, %s, %s));",
			num(cr.X), num(cr.Y), num(cr.W), num(cr.H)))
	}
	lines = append(lines,
		fmt.Sprintf("    frameCache->addSpriteFrame(frame, %s);", cppString(f.Name)),
		"}")
	return lines
}

// node emits the statements for n and its subtree and returns the
// variable holding n.
func (r *codeRenderer) node(n *scene.Node, parent string) string {
	name := fmt.Sprintf("n%d", r.next)
	r.next++

	r.body = append(r.body, fmt.Sprintf("auto %s = %s;", name, constructor(n)))

	r.setters(name, n.Common(), commonSetters)
	if n.Type.Wrapped() {
		r.setters(name, n.Props, typeSetters[n.Type])
	}

	for _, child := range n.Children {
		r.node(child, name)
	}
	if parent != "" {
		r.body = append(r.body, fmt.Sprintf("%s->addChild(%s);", parent, name))
	}
	return name
}

// setters emits one call per property with a known setter, in key order.
func (r *codeRenderer) setters(name string, p scene.Properties, table map[string]setter) {
	keys := make([]string, 0, len(p))
	for k := range p {
		if _, ok := table[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		s := table[k]
		args, ok := s.format(p[k], p)
		if !ok {
			r.ctx.Log.Debug("unrenderable property",
				zap.String("variable", name),
				zap.String("property", k))
			continue
		}
		r.body = append(r.body, fmt.Sprintf("%s->%s(%s);", name, s.method, args))
	}
}

func constructor(n *scene.Node) string {
	p := n.Props
	str := func(key string) string {
		s, _ := p.String(key)
		return cppString(s)
	}
	text, _ := p.String("labelText")
	number := func(key string, def float64) string {
		if v, ok := p[key].(float64); ok {
			return num(v)
		}
		return num(def)
	}

	switch n.Type {
	case scene.TypeScene:
		return "cocos2d::Scene::create()"
	case scene.TypeSprite:
		if _, ok := p.String("spriteFrameName"); ok {
			return fmt.Sprintf("cocos2d::Sprite::createWithSpriteFrameName(%s)", str("spriteFrameName"))
		}
		return "cocos2d::Sprite::create()"
	case scene.TypeLabel:
		switch p["fontType"] {
		case "TTF":
			return fmt.Sprintf("cocos2d::Label::createWithTTF(%s, %s, %s)", labelString(text), str("fontName"), number("fontSize", 0))
		case "BMFont":
			return fmt.Sprintf("cocos2d::Label::createWithBMFont(%s, %s)", str("fontName"), labelString(text))
		default:
			return fmt.Sprintf("cocos2d::Label::createWithSystemFont(%s, %s, %s)", labelString(text), str("fontName"), number("fontSize", 0))
		}
	case scene.TypeRichText:
		if _, ok := p.String("text"); ok {
			return fmt.Sprintf("cocos2d::ui::RichText::createWithXML(%s)", str("text"))
		}
		return "cocos2d::ui::RichText::create()"
	case scene.TypeParticle:
		return fmt.Sprintf("cocos2d::ParticleSystemQuad::create(%s)", str("particleFilename"))
	case scene.TypeTileMap:
		return fmt.Sprintf("cocos2d::TMXTiledMap::create(%s)", str("tmxFilename"))
	case scene.TypeButton:
		if _, ok := p.String("spriteFrameName"); ok {
			return fmt.Sprintf("cocos2d::ui::Button::create(%s, \"\", \"\", %s)", str("spriteFrameName"), texturePlist)
		}
		return "cocos2d::ui::Button::create()"
	case scene.TypeEditBox:
		sz, ok := formatSize(n.Common()["contentSize"], nil)
		if !ok {
			sz = "cocos2d::Size(0, 0)"
		}
		return fmt.Sprintf("cocos2d::ui::EditBox::create(%s, %s, %s)", sz, str("backgroundImage"), texturePlist)
	case scene.TypeProgressBar:
		return "cocos2d::ui::LoadingBar::create()"
	case scene.TypeScrollView:
		return "cocos2d::ui::ScrollView::create()"
	case scene.TypeSkeleton:
		return fmt.Sprintf("spine::SkeletonAnimation::createWithJsonFile(%s, %s, %s)", str("jsonFile"), str("atlasFile"), number("timeScale", 1))
	default:
		return "cocos2d::Node::create()"
	}
}

var cppEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// cppString quotes s as a C++ string literal.
func cppString(s string) string {
	return `"` + cppEscaper.Replace(s) + `"`
}

// labelString quotes label text, which carries newlines as the
// two-character "\n" sequence.
func labelString(s string) string {
	return cppString(strings.ReplaceAll(s, `\n`, "\n"))
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
