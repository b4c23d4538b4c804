package model

import (
	"path/filepath"
	"strings"
)

// FontExtensions is an allow-list of font file extensions. Entries are stored
// lower-cased with a leading dot.
type FontExtensions []string

// DefaultFontExtensions returns the built-in allow-list
func DefaultFontExtensions() FontExtensions {
	return FontExtensions{".ttf", ".otf", ".fon", ".fnt"}
}

// NewFontExtensions normalizes raw extensions ("TTF", ".otf", " fon ") into a FontExtensions.
// Empty entries and duplicates are dropped.
func NewFontExtensions(raw []string) FontExtensions {
	seen := make(map[string]bool, len(raw))
	exts := make(FontExtensions, 0, len(raw))
	for _, r := range raw {
		ext := strings.ToLower(strings.TrimSpace(r))
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if seen[ext] {
			continue
		}
		seen[ext] = true
		exts = append(exts, ext)
	}
	return exts
}

// Match reports whether name has one of the allowed extensions, ignoring case
func (x FontExtensions) Match(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, e := range x {
		if e == ext {
			return true
		}
	}
	return false
}

// IsArchive reports whether name looks like a zip archive
func IsArchive(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".zip")
}
