package interfaces

import "context"

// Decompressor extracts an archive into a directory
type Decompressor interface {
	// Extract writes the contents of archivePath under destDir. destDir must exist.
	Extract(ctx context.Context, archivePath, destDir string) error
}

// ArchiveInspector lists entries of an archive without extracting it
type ArchiveInspector interface {
	// Entries returns the names of regular file entries in archivePath
	Entries(ctx context.Context, archivePath string) ([]string, error)
}
