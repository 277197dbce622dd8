package scene

import (
	"github.com/Faultbox/fireconv/internal/assets"
	"github.com/Faultbox/fireconv/pkg/fire"
	"github.com/Faultbox/fireconv/pkg/meta"
)

// sceneDoc assembles a scene document record by record.
type sceneDoc struct {
	recs []fire.Record
}

// newSceneDoc starts a document with a scene asset and an empty scene node.
func newSceneDoc() *sceneDoc {
	d := &sceneDoc{}
	d.add(fire.Record{"__type__": fire.KindSceneAsset, "scene": ref(1)})
	d.add(fire.Record{"__type__": fire.KindScene, "_name": "scene", "_children": []any{}, "_components": []any{}})
	return d
}

func (d *sceneDoc) add(r fire.Record) int {
	d.recs = append(d.recs, r)
	return len(d.recs) - 1
}

// node adds a cc.Node with the given fields and components.
func (d *sceneDoc) node(name string, fields fire.Record, comps ...fire.Record) int {
	r := fire.Record{"__type__": fire.KindNode, "_name": name, "_children": []any{}}
	for k, v := range fields {
		r[k] = v
	}
	idx := d.add(r)

	compRefs := []any{}
	for _, comp := range comps {
		comp["node"] = ref(idx)
		compRefs = append(compRefs, ref(d.add(comp)))
	}
	r["_components"] = compRefs
	return idx
}

// attach appends children to parent's child list.
func (d *sceneDoc) attach(parent int, children ...int) {
	list, _ := d.recs[parent]["_children"].([]any)
	for _, c := range children {
		list = append(list, ref(c))
	}
	d.recs[parent]["_children"] = list
}

func (d *sceneDoc) graph() *fire.Graph {
	return fire.New(d.recs...)
}

func ref(i int) map[string]any {
	return map[string]any{"__id__": float64(i)}
}

func uuidRef(id string) map[string]any {
	return map[string]any{"__uuid__": id}
}

func vec2(x, y float64) map[string]any {
	return map[string]any{"__type__": "cc.Vec2", "x": x, "y": y}
}

func size(w, h float64) map[string]any {
	return map[string]any{"__type__": "cc.Size", "width": w, "height": h}
}

func color(r, g, b float64) map[string]any {
	return map[string]any{"__type__": "cc.Color", "r": r, "g": g, "b": b, "a": 255.0}
}

func component(kind string, fields fire.Record) fire.Record {
	r := fire.Record{"__type__": kind}
	for k, v := range fields {
		r[k] = v
	}
	return r
}

func testCatalog() *assets.Catalog {
	cat := assets.NewCatalog()
	cat.Paths["tex-hero"] = "textures/hero.png"
	cat.Paths["font-ttf"] = "fonts/title.ttf"
	cat.Paths["font-fnt"] = "fonts/score.fnt"
	cat.Paths["font-otf"] = "fonts/body.otf"
	cat.Paths["particle"] = "fx/fire.plist"
	cat.Paths["tmx"] = "maps/level1.tmx"
	cat.Paths["spine"] = "spine/hero.json"
	cat.AddFrame(&meta.SpriteFrame{
		Name: "hero.png", UUID: "frame-hero", RawTextureUUID: "tex-hero",
		TrimX: 2, TrimY: 3, Width: 10, Height: 12, RawWidth: 16, RawHeight: 16,
	}, true)
	cat.AddFrame(&meta.SpriteFrame{Name: "btn_normal", UUID: "frame-btn", RawTextureUUID: "tex-hero"}, false)
	cat.AddFrame(&meta.SpriteFrame{Name: "panel_bg", UUID: "frame-panel", RawTextureUUID: "tex-hero"}, false)
	return cat
}
