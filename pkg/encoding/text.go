// Package encoding provides text decoding utilities for editor-written asset files.
package encoding

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeText converts editor output to plain UTF-8.
// A UTF-8 or UTF-16 byte order mark selects the source encoding and is
// dropped; data without a BOM is treated as UTF-8.
// Returns the original bytes if conversion fails.
func DecodeText(data []byte) []byte {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	result, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return data
	}
	return result
}

// NormalizeAssetPath converts a descriptor path to forward slashes.
// The editor writes native separators on Windows.
func NormalizeAssetPath(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// EscapeNewlines replaces literal newlines with the two-character "\n"
// sequence expected by the engine-side label loaders.
func EscapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", `\n`)
}

// EnsureTrailingSlash appends "/" to non-empty directory prefixes.
func EnsureTrailingSlash(dir string) string {
	if dir == "" || strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + "/"
}
