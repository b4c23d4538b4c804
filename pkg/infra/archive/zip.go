package archive

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/fontinst/pkg/domain/model"
)

// flagEncrypted is bit 0 of the zip general purpose flag
const flagEncrypted = 0x1

// Zip extracts archives with the archive/zip reader
type Zip struct{}

// NewZip creates a native zip decompressor
func NewZip() *Zip {
	return &Zip{}
}

// Extract extracts every entry of archivePath into destDir
func (z *Zip) Extract(ctx context.Context, archivePath, destDir string) error {
	logger := ctxlog.From(ctx)

	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return goerr.Wrap(err, "failed to open zip archive",
			goerr.V("archive", archivePath),
			goerr.T(model.ErrTagExtraction))
	}
	defer reader.Close()

	var totalSize uint64
	for _, file := range reader.File {
		if err := ctx.Err(); err != nil {
			return goerr.Wrap(err, "extraction interrupted", goerr.V("archive", archivePath))
		}

		if err := extractFile(file, destDir); err != nil {
			return goerr.Wrap(err, "failed to extract entry",
				goerr.V("archive", archivePath),
				goerr.V("entry", file.Name),
				goerr.T(model.ErrTagExtraction))
		}
		totalSize += file.UncompressedSize64
	}

	logger.Debug("Extracted zip archive",
		"archive", archivePath,
		"dest_dir", destDir,
		"entry_count", len(reader.File),
		"total_size_bytes", totalSize,
	)

	return nil
}

// Entries lists regular file entries of archivePath
func (z *Zip) Entries(ctx context.Context, archivePath string) ([]string, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open zip archive",
			goerr.V("archive", archivePath),
			goerr.T(model.ErrTagExtraction))
	}
	defer reader.Close()

	names := make([]string, 0, len(reader.File))
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		names = append(names, file.Name)
	}
	return names, nil
}

// extractFile extracts a single file from ZIP to the destination directory
func extractFile(file *zip.File, destDir string) error {
	cleanDest := filepath.Clean(destDir)
	destPath := filepath.Join(cleanDest, file.Name)

	// Security check: prevent path traversal attacks
	if destPath != cleanDest && !strings.HasPrefix(destPath, cleanDest+string(os.PathSeparator)) {
		return goerr.New("invalid file path detected",
			goerr.V("file", file.Name),
			goerr.V("dest", destPath))
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(destPath, 0755)
	}

	if file.Flags&flagEncrypted != 0 {
		return goerr.New("encrypted entries are not supported", goerr.V("file", file.Name))
	}

	rc, err := file.Open()
	if err != nil {
		return goerr.Wrap(err, "failed to open file in zip", goerr.V("file", file.Name))
	}
	defer rc.Close()

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return goerr.Wrap(err, "failed to create parent directories", goerr.V("dir", filepath.Dir(destPath)))
	}

	// Keep owner read/write so the scratch directory can always be removed
	perm := file.Mode().Perm() | 0600

	destFile, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return goerr.Wrap(err, "failed to create destination file", goerr.V("path", destPath))
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, rc); err != nil {
		return goerr.Wrap(err, "failed to copy file content", goerr.V("path", destPath))
	}

	return destFile.Close()
}
