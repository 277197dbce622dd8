// Package fire reads editor scene documents (.fire, .prefab).
//
// A scene document is a flat JSON array of records. Records refer to each
// other by position ({"__id__": n}) and to external assets by content id
// ({"__uuid__": "..."}). Graph keeps the array as loaded and resolves
// position references by indexing into it.
package fire

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Faultbox/fireconv/pkg/encoding"
)

// Scene document errors.
var (
	ErrNotSceneDocument = errors.New("scene document is not a JSON array of objects")
	ErrNoSceneAsset     = errors.New("scene document has no cc.SceneAsset record")
	ErrRefOutOfRange    = errors.New("reference out of range")
	ErrNotReference     = errors.New("value is not a position reference")
)

// Record kinds with structural meaning.
const (
	KindSceneAsset = "cc.SceneAsset"
	KindScene      = "cc.Scene"
	KindNode       = "cc.Node"
)

// Graph is a loaded scene document.
type Graph struct {
	records []Record
}

// Parse parses a scene document from raw bytes.
func Parse(data []byte) (*Graph, error) {
	var raw []map[string]any
	if err := json.Unmarshal(encoding.DecodeText(data), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSceneDocument, err)
	}

	g := &Graph{records: make([]Record, len(raw))}
	for i, r := range raw {
		if r == nil {
			return nil, fmt.Errorf("%w: record %d is null", ErrNotSceneDocument, i)
		}
		g.records[i] = Record(r)
	}
	return g, nil
}

// ParseFile parses a scene document from disk.
func ParseFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	return Parse(data)
}

// New wraps already decoded records. Used by tests and tools that build
// documents in memory.
func New(records ...Record) *Graph {
	return &Graph{records: records}
}

// Len returns the number of records.
func (g *Graph) Len() int {
	return len(g.records)
}

// At returns the record at position i.
func (g *Graph) At(i int) (Record, error) {
	if i < 0 || i >= len(g.records) {
		return nil, fmt.Errorf("%w: %d (document has %d records)", ErrRefOutOfRange, i, len(g.records))
	}
	return g.records[i], nil
}

// Resolve returns the record a position reference points to.
func (g *Graph) Resolve(ref Ref) (Record, error) {
	if !ref.IsPosition() {
		return nil, fmt.Errorf("%w: %s", ErrNotReference, ref)
	}
	return g.At(ref.ID)
}

// SceneRoot returns the position of the scene node named by the
// document's cc.SceneAsset record.
func (g *Graph) SceneRoot() (int, error) {
	for i, r := range g.records {
		if r.Kind() != KindSceneAsset {
			continue
		}
		ref, ok := r.Ref("scene")
		if !ok || !ref.IsPosition() {
			return 0, fmt.Errorf("scene asset record %d: %w", i, ErrNotReference)
		}
		if _, err := g.At(ref.ID); err != nil {
			return 0, fmt.Errorf("scene asset record %d: %w", i, err)
		}
		return ref.ID, nil
	}
	return 0, ErrNoSceneAsset
}
