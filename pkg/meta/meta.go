// Package meta parses the editor's per-asset descriptor files.
//
// Every asset in an editor project has a sibling ".meta" JSON descriptor
// carrying its content id. Texture descriptors list the sprite frames cut
// from the texture under "subMetas"; the project library keeps a global
// content id -> relative path table in uuid-to-mtime.json.
package meta

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Faultbox/fireconv/pkg/encoding"
	"github.com/Faultbox/fireconv/pkg/math"
)

// Descriptor errors.
var (
	ErrInvalidDescriptor = errors.New("invalid asset descriptor")
	ErrInvalidUUIDTable  = errors.New("invalid uuid table")
)

// Declared descriptor kinds.
const (
	KindSprite        = "sprite"
	KindTexturePacker = "Texture Packer"
)

// File naming conventions.
const (
	DescriptorExt = ".meta"
	ClipExt       = ".anim"
)

// Descriptor is a parsed .meta file.
type Descriptor struct {
	UUID     string                     `json:"uuid"`
	Type     string                     `json:"type,omitempty"`
	SubMetas map[string]json.RawMessage `json:"subMetas,omitempty"`

	hasType bool
}

// HasKind reports whether the descriptor declares a "type".
func (d *Descriptor) HasKind() bool {
	return d.hasType
}

// IsAtlasKind reports whether the declared kind holds sprite frames.
func (d *Descriptor) IsAtlasKind() bool {
	return d.Type == KindSprite || d.Type == KindTexturePacker
}

// ParseDescriptor parses a descriptor from raw bytes.
func ParseDescriptor(data []byte) (*Descriptor, error) {
	data = encoding.DecodeText(data)

	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}
	_, d.hasType = fields["type"]

	return &d, nil
}

// ParseDescriptorFile parses a descriptor from disk.
func ParseDescriptorFile(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor: %w", err)
	}
	d, err := ParseDescriptor(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return d, nil
}

// SpriteFrame is one sub-entry of a texture or atlas descriptor.
type SpriteFrame struct {
	Name           string  `json:"-"`
	UUID           string  `json:"uuid"`
	RawTextureUUID string  `json:"rawTextureUuid"`
	TrimX          float64 `json:"trimX"`
	TrimY          float64 `json:"trimY"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	OffsetX        float64 `json:"offsetX"`
	OffsetY        float64 `json:"offsetY"`
	RawWidth       float64 `json:"rawWidth"`
	RawHeight      float64 `json:"rawHeight"`
	Rotated        bool    `json:"rotated"`
	BorderTop      float64 `json:"borderTop"`
	BorderBottom   float64 `json:"borderBottom"`
	BorderLeft     float64 `json:"borderLeft"`
	BorderRight    float64 `json:"borderRight"`
}

// Rect returns the trimmed rectangle inside the texture.
func (f *SpriteFrame) Rect() math.Rect {
	return math.Rect{X: f.TrimX, Y: f.TrimY, W: f.Width, H: f.Height}
}

// Offset returns the pivot offset of the trimmed rectangle.
func (f *SpriteFrame) Offset() math.Vec2 {
	return math.Vec2{X: f.OffsetX, Y: f.OffsetY}
}

// OriginalSize returns the untrimmed size.
func (f *SpriteFrame) OriginalSize() math.Size {
	return math.Size{Width: f.RawWidth, Height: f.RawHeight}
}

// Insets returns the 9-slice borders.
func (f *SpriteFrame) Insets() math.Insets {
	return math.Insets{
		Top:    f.BorderTop,
		Bottom: f.BorderBottom,
		Left:   f.BorderLeft,
		Right:  f.BorderRight,
	}
}

// HasTexture reports whether the frame names its raw texture.
func (f *SpriteFrame) HasTexture() bool {
	return f.RawTextureUUID != ""
}

// SpriteFrames decodes the sub-entries, sorted by frame name.
func (d *Descriptor) SpriteFrames() ([]*SpriteFrame, error) {
	names := make([]string, 0, len(d.SubMetas))
	for name := range d.SubMetas {
		names = append(names, name)
	}
	sort.Strings(names)

	frames := make([]*SpriteFrame, 0, len(names))
	for _, name := range names {
		var f SpriteFrame
		if err := json.Unmarshal(d.SubMetas[name], &f); err != nil {
			return nil, fmt.Errorf("%w: sub-entry %q: %v", ErrInvalidDescriptor, name, err)
		}
		f.Name = name
		frames = append(frames, &f)
	}
	return frames, nil
}

// ClipDataPath returns the data file a clip descriptor belongs to, and
// whether path names a clip descriptor at all ("walk.anim.meta" ->
// "walk.anim").
func ClipDataPath(path string) (string, bool) {
	if !strings.HasSuffix(path, DescriptorExt) {
		return "", false
	}
	data := strings.TrimSuffix(path, DescriptorExt)
	if filepath.Ext(data) != ClipExt {
		return "", false
	}
	return data, true
}
