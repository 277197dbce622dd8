package export

import (
	"testing"

	"github.com/Faultbox/fireconv/internal/assets"
	"github.com/Faultbox/fireconv/internal/scene"
	"github.com/Faultbox/fireconv/pkg/fire"
	"github.com/Faultbox/fireconv/pkg/meta"
)

func ref(i int) map[string]any {
	return map[string]any{"__id__": float64(i)}
}

// testScene is: scene -> canvas -> [hero sprite, caption label].
func testScene() *fire.Graph {
	return fire.New(
		fire.Record{"__type__": "cc.SceneAsset", "scene": ref(1)},
		fire.Record{"__type__": "cc.Scene", "_name": "main", "_children": []any{ref(2)}, "_components": []any{}},
		fire.Record{"__type__": "cc.Node", "_name": "Canvas", "_children": []any{ref(4), ref(6)}, "_components": []any{ref(3)},
			"_position": map[string]any{"x": 480.0, "y": 320.0}},
		fire.Record{"__type__": "cc.Canvas", "_designResolution": map[string]any{"width": 1280.0, "height": 720.0},
			"_fitWidth": false, "_fitHeight": true},
		fire.Record{"__type__": "cc.Node", "_name": "hero", "_children": []any{}, "_components": []any{ref(5)},
			"_position": map[string]any{"x": 10.0, "y": 20.0}},
		fire.Record{"__type__": "cc.Sprite", "_spriteFrame": map[string]any{"__uuid__": "frame-hero"}, "_type": 0.0},
		fire.Record{"__type__": "cc.Node", "_name": "caption", "_children": []any{}, "_components": []any{ref(7), ref(8)}},
		fire.Record{"__type__": "cc.Label", "_N$string": "Say \"Hi\"\n<b>now</b>", "_isSystemFontUsed": true,
			"_fontSize": 24.0, "_N$horizontalAlign": 1.0},
		fire.Record{"__type__": "cc.Animation", "playOnLoad": true, "_name": "", "_objFlags": 0.0,
			"_defaultClip": map[string]any{"__uuid__": "clip-walk"},
			"_clips":       []any{map[string]any{"__uuid__": "clip-walk"}, map[string]any{"__uuid__": "clip-gone"}}},
	)
}

func testCatalog() *assets.Catalog {
	cat := assets.NewCatalog()
	cat.Paths["tex-hero"] = "textures/hero.png"
	cat.Paths["tex-panel"] = "textures/panel.png"
	cat.AddFrame(&meta.SpriteFrame{
		Name: "hero.png", UUID: "frame-hero", RawTextureUUID: "tex-hero",
		TrimX: 2, TrimY: 3, Width: 10, Height: 12, OffsetX: 1, OffsetY: -1, RawWidth: 16, RawHeight: 16,
	}, true)
	cat.AddFrame(&meta.SpriteFrame{
		Name: "panel.png", UUID: "frame-panel", RawTextureUUID: "tex-panel",
		Width: 100, Height: 50, RawWidth: 100, RawHeight: 50,
		BorderTop: 5, BorderBottom: 6, BorderLeft: 7, BorderRight: 8,
	}, true)
	cat.AddFrame(&meta.SpriteFrame{Name: "lost.png", UUID: "frame-lost", RawTextureUUID: "tex-missing"}, true)
	cat.AddAtlas("atlas/ui.plist")
	cat.Clips["clip-walk"] = meta.RawClip{
		"__type__":  "cc.AnimationClip",
		"_name":     "walk",
		"_objFlags": 0.0,
		"_rawFiles": nil,
		"_duration": 1.5,
		"sample":    60.0,
		"curveData": map[string]any{
			"props": map[string]any{
				"x": []any{map[string]any{"frame": 0.0, "value": 1.0}},
			},
		},
	}
	return cat
}

func buildTestScene(t *testing.T, opts ...func(*scene.Context)) (*scene.Context, *scene.Node) {
	t.Helper()
	ctx := scene.NewContext(testScene(), testCatalog(), "creator/", nil)
	for _, o := range opts {
		o(ctx)
	}
	root, err := ctx.BuildScene()
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}
	return ctx, root
}
