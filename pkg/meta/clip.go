package meta

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Faultbox/fireconv/pkg/encoding"
)

// RawClip is an animation clip document as written by the editor.
// Its curve layout depends on the animated properties, so it is kept
// untyped until export.
type RawClip map[string]any

// ParseClip parses a clip document from raw bytes.
func ParseClip(data []byte) (RawClip, error) {
	var c RawClip
	if err := json.Unmarshal(encoding.DecodeText(data), &c); err != nil {
		return nil, fmt.Errorf("%w: clip: %v", ErrInvalidDescriptor, err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: clip is null", ErrInvalidDescriptor)
	}
	return c, nil
}

// ParseClipFile parses a clip document from disk.
func ParseClipFile(path string) (RawClip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading clip: %w", err)
	}
	return ParseClip(data)
}
