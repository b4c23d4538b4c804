package model

import "path/filepath"

const (
	// DefaultDestName is the directory, relative to the search root, that receives installed fonts
	DefaultDestName = "font_files"
	// DefaultTempName is the per-archive extraction directory, relative to the search root
	DefaultTempName = "temp_fonts"
)

// Layout holds every path the installer works with. It is resolved once at
// startup and passed explicitly to each component.
type Layout struct {
	SearchRoot string         // Absolute directory scanned for archives
	DestDir    string         // Directory receiving installed fonts
	TempDir    string         // Scratch directory, recreated for each archive
	Extensions FontExtensions // Allowed font file extensions
}

// NewLayout builds a Layout rooted at root with the default directory names and extensions
func NewLayout(root string) *Layout {
	return &Layout{
		SearchRoot: root,
		DestDir:    filepath.Join(root, DefaultDestName),
		TempDir:    filepath.Join(root, DefaultTempName),
		Extensions: DefaultFontExtensions(),
	}
}
