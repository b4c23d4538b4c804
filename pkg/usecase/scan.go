package usecase

import (
	"context"
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"

	"github.com/m-mizutani/fontinst/pkg/domain/model"
)

// ScanArchives lazily yields absolute paths of zip archives under root.
// Directories listed in skip are not descended into. Unreadable directories,
// including root itself, are logged and skipped.
func ScanArchives(ctx context.Context, root string, skip ...string) iter.Seq[string] {
	return func(yield func(string) bool) {
		logger := ctxlog.From(ctx)

		absRoot, err := filepath.Abs(root)
		if err != nil {
			logger.Warn("Cannot resolve search root", "root", root, "error", err)
			return
		}

		skipped := make(map[string]bool, len(skip))
		for _, s := range skip {
			if abs, err := filepath.Abs(s); err == nil {
				skipped[abs] = true
			}
		}

		_ = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
			if ctx.Err() != nil {
				return filepath.SkipAll
			}
			if err != nil {
				logger.Warn("Cannot read directory, skipping", "path", path, "error", err)
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if path != absRoot && skipped[path] {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() || !model.IsArchive(d.Name()) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}
