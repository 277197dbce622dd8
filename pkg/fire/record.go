package fire

import (
	"fmt"
	"math"

	gmath "github.com/Faultbox/fireconv/pkg/math"
)

// Record is one untyped entry of a scene document.
type Record map[string]any

// Ref is a reference to another record or to an external asset.
type Ref struct {
	ID   int    // position in the document, -1 for content references
	UUID string // content id, empty for position references
}

// IsPosition reports whether the reference points into the document.
func (r Ref) IsPosition() bool {
	return r.UUID == "" && r.ID >= 0
}

// String returns a short description for error messages.
func (r Ref) String() string {
	if r.UUID != "" {
		return fmt.Sprintf("uuid:%s", r.UUID)
	}
	return fmt.Sprintf("#%d", r.ID)
}

// Kind returns the record's "__type__" tag.
func (r Record) Kind() string {
	s, _ := r["__type__"].(string)
	return s
}

// Name returns the record's "_name" field, empty if absent.
func (r Record) Name() string {
	s, _ := r["_name"].(string)
	return s
}

// Has reports whether key is present with a non-null value.
func (r Record) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// Value returns the raw value stored under key.
func (r Record) Value(key string) (any, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// String returns a string field.
func (r Record) String(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// Float returns a numeric field.
func (r Record) Float(key string) (float64, bool) {
	f, ok := r[key].(float64)
	return f, ok
}

// Int returns a numeric field truncated to an int.
func (r Record) Int(key string) (int, bool) {
	f, ok := r[key].(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// Bool returns a boolean field.
func (r Record) Bool(key string) (bool, bool) {
	b, ok := r[key].(bool)
	return b, ok
}

// Object returns a nested object field.
func (r Record) Object(key string) (Record, bool) {
	m, ok := r[key].(map[string]any)
	if !ok {
		return nil, false
	}
	return Record(m), true
}

// Vec2 returns an {x, y} field.
func (r Record) Vec2(key string) (gmath.Vec2, bool) {
	o, ok := r.Object(key)
	if !ok {
		return gmath.Vec2{}, false
	}
	x, okX := o.Float("x")
	y, okY := o.Float("y")
	if !okX || !okY {
		return gmath.Vec2{}, false
	}
	return gmath.Vec2{X: x, Y: y}, true
}

// Size returns a {width, height} field.
func (r Record) Size(key string) (gmath.Size, bool) {
	o, ok := r.Object(key)
	if !ok {
		return gmath.Size{}, false
	}
	w, okW := o.Float("width")
	h, okH := o.Float("height")
	if !okW || !okH {
		return gmath.Size{}, false
	}
	return gmath.Size{Width: w, Height: h}, true
}

// Color returns an {r, g, b} field truncated to integer channels.
func (r Record) Color(key string) (gmath.Color3, bool) {
	o, ok := r.Object(key)
	if !ok {
		return gmath.Color3{}, false
	}
	red, okR := o.Int("r")
	green, okG := o.Int("g")
	blue, okB := o.Int("b")
	if !okR || !okG || !okB {
		return gmath.Color3{}, false
	}
	return gmath.Color3{R: red, G: green, B: blue}, true
}

// Ref returns a {"__id__"} or {"__uuid__"} reference field.
// A null field yields false.
func (r Record) Ref(key string) (Ref, bool) {
	o, ok := r.Object(key)
	if !ok {
		return Ref{}, false
	}
	return parseRef(o)
}

// UUID returns the content id of a {"__uuid__"} field.
func (r Record) UUID(key string) (string, bool) {
	ref, ok := r.Ref(key)
	if !ok || ref.UUID == "" {
		return "", false
	}
	return ref.UUID, true
}

// Refs returns a list of references, skipping malformed entries.
func (r Record) Refs(key string) []Ref {
	list, ok := r[key].([]any)
	if !ok {
		return nil
	}
	refs := make([]Ref, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if ref, ok := parseRef(Record(m)); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}

func parseRef(o Record) (Ref, bool) {
	if uuid, ok := o.String("__uuid__"); ok {
		return Ref{ID: -1, UUID: uuid}, true
	}
	if id, ok := o.Int("__id__"); ok {
		return Ref{ID: id}, true
	}
	return Ref{}, false
}
