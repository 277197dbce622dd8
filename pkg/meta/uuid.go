package meta

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Faultbox/fireconv/pkg/encoding"
)

// UUIDTableFile is the library index location relative to the assets directory.
const UUIDTableFile = "../library/uuid-to-mtime.json"

// UUIDEntry is one row of the library index.
type UUIDEntry struct {
	Asset        float64 `json:"asset"`
	RelativePath string  `json:"relativePath"`
}

// UUIDTable maps content ids to project-relative paths.
type UUIDTable map[string]UUIDEntry

// ParseUUIDTable parses the library index from raw bytes.
// Paths are normalized to forward slashes.
func ParseUUIDTable(data []byte) (UUIDTable, error) {
	var t UUIDTable
	if err := json.Unmarshal(encoding.DecodeText(data), &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUUIDTable, err)
	}
	for id, e := range t {
		e.RelativePath = encoding.NormalizeAssetPath(e.RelativePath)
		t[id] = e
	}
	return t, nil
}

// ParseUUIDTableFile parses the library index from disk.
func ParseUUIDTableFile(path string) (UUIDTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading uuid table: %w", err)
	}
	return ParseUUIDTable(data)
}
