package export

import (
	"github.com/Faultbox/fireconv/pkg/meta"
)

// Source field renames applied to the clip's top level.
var clipRenames = []struct{ from, to string }{
	{"_duration", "duration"},
	{"_objFlags", "objFlags"},
	{"_name", "name"},
}

// Per-axis position tracks are exported under explicit names.
var trackRenames = []struct{ from, to string }{
	{"x", "positionX"},
	{"y", "positionY"},
}

// NormalizeClip converts an editor clip into its exported form. The raw
// clip is left untouched.
//
// Component curves (curveData.comps) are not supported and are dropped.
func NormalizeClip(uuid string, raw meta.RawClip) Clip {
	clip := Clip(deepCopy(map[string]any(raw)).(map[string]any))

	delete(clip, "__type__")
	delete(clip, "_rawFiles")
	for _, r := range clipRenames {
		if v, ok := clip[r.from]; ok {
			delete(clip, r.from)
			clip[r.to] = v
		}
	}
	clip["uuid"] = uuid

	curves, ok := clip["curveData"].(map[string]any)
	if !ok {
		return clip
	}
	delete(curves, "comps")

	props, ok := curves["props"].(map[string]any)
	if !ok {
		return clip
	}
	for _, frame := range keyframes(props["color"]) {
		if v, ok := frame["value"].(map[string]any); ok {
			delete(v, "__type__")
		}
	}
	for _, frame := range keyframes(props["position"]) {
		if v, ok := frame["value"].([]any); ok && len(v) >= 2 {
			frame["value"] = map[string]any{"x": v[0], "y": v[1]}
		}
	}
	for _, r := range trackRenames {
		if track, ok := props[r.from]; ok {
			delete(props, r.from)
			props[r.to] = track
		}
	}
	return clip
}

func keyframes(track any) []map[string]any {
	list, ok := track.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(list))
	for _, f := range list {
		if m, ok := f.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// deepCopy copies decoded JSON values.
func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = deepCopy(e)
		}
		return m
	case meta.RawClip:
		return deepCopy(map[string]any(t))
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = deepCopy(e)
		}
		return s
	default:
		return v
	}
}
