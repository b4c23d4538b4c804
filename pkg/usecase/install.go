package usecase

import (
	"context"
	"os"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/fontinst/pkg/domain/interfaces"
	"github.com/m-mizutani/fontinst/pkg/domain/model"
	"github.com/m-mizutani/fontinst/pkg/utils/errutil"
)

type installUseCase struct {
	decompressor interfaces.Decompressor
}

// NewInstall creates a new instance of InstallUseCase
func NewInstall(decompressor interfaces.Decompressor) interfaces.InstallUseCase {
	return &installUseCase{
		decompressor: decompressor,
	}
}

// Install extracts every archive under the search root and copies its fonts into
// the destination directory. Archives are processed one at a time.
func (uc *installUseCase) Install(ctx context.Context, layout *model.Layout) (*model.InstallReport, error) {
	logger := ctxlog.From(ctx)

	report := &model.InstallReport{
		Layout:    layout,
		StartedAt: time.Now(),
	}

	logger.Info("Starting font installation",
		"search_root", layout.SearchRoot,
		"dest_dir", layout.DestDir,
		"temp_dir", layout.TempDir,
		"extensions", []string(layout.Extensions),
	)

	if err := os.MkdirAll(layout.DestDir, 0755); err != nil {
		report.SetupErr = goerr.Wrap(err, "failed to create destination directory",
			goerr.V("dest_dir", layout.DestDir),
			goerr.T(model.ErrTagDirectoryCreate))
		errutil.Handle(ctx, "Cannot prepare destination directory", report.SetupErr)
	}

	for archivePath := range ScanArchives(ctx, layout.SearchRoot, layout.TempDir, layout.DestDir) {
		report.Archives = append(report.Archives, uc.processArchive(ctx, layout, archivePath))
		if ctx.Err() != nil {
			break
		}
	}
	report.FinishedAt = time.Now()

	if err := ctx.Err(); err != nil {
		return report, goerr.Wrap(err, "font installation interrupted",
			goerr.V("processed_archives", len(report.Archives)))
	}

	logger.Info("Font installation completed",
		"archive_count", len(report.Archives),
		"installed_count", report.InstalledCount(),
		"failed_archive_count", len(report.FailedArchives()),
		"duration", report.FinishedAt.Sub(report.StartedAt),
	)

	return report, nil
}

// processArchive runs extract, copy and cleanup for one archive. It never fails;
// problems are recorded in the returned result.
func (uc *installUseCase) processArchive(ctx context.Context, layout *model.Layout, archivePath string) *model.ArchiveResult {
	logger := ctxlog.From(ctx)
	logger.Info("Processing archive", "archive", archivePath)

	result := &model.ArchiveResult{Archive: archivePath}

	err := withTempDir(ctx, layout.TempDir, func(dir string) error {
		extractErr := uc.decompressor.Extract(ctx, archivePath, dir)
		if extractErr != nil && ctx.Err() != nil {
			return extractErr
		}

		// Whatever was extracted before a failure is still installed
		result.Fonts, result.CopyErrors = CopyFonts(ctx, dir, layout.DestDir, layout.Extensions)

		if extractErr != nil {
			return goerr.Wrap(extractErr, "failed to extract archive",
				goerr.V("archive", archivePath),
				goerr.V("installed_count", len(result.Fonts)),
				goerr.T(model.ErrTagExtraction))
		}
		return nil
	})
	if err != nil {
		result.Err = err
		errutil.Handle(ctx, "Failed to process archive", err)
	}

	for _, copyErr := range result.CopyErrors {
		errutil.Handle(ctx, "Failed to install font", copyErr)
	}

	logger.Debug("Archive processed",
		"archive", archivePath,
		"font_count", len(result.Fonts),
		"copy_error_count", len(result.CopyErrors),
	)

	return result
}

// withTempDir creates an empty directory at path, runs fn with it and removes it
// afterwards regardless of the outcome of fn.
func withTempDir(ctx context.Context, path string, fn func(dir string) error) error {
	if err := prepareTempDir(path); err != nil {
		return err
	}

	defer func() {
		if err := os.RemoveAll(path); err != nil {
			errutil.Handle(ctx, "Failed to remove temporary directory",
				goerr.Wrap(err, "failed to remove temporary directory", goerr.V("temp_dir", path)))
		}
	}()

	ctxlog.From(ctx).Debug("Created temporary directory", "temp_dir", path)
	return fn(path)
}

// prepareTempDir makes path an empty directory. A leftover directory from an
// interrupted run is removed first; any other file at path is an error.
func prepareTempDir(path string) error {
	info, err := os.Lstat(path)
	switch {
	case err == nil && !info.IsDir():
		return goerr.New("temporary directory path is occupied by a file",
			goerr.V("temp_dir", path),
			goerr.T(model.ErrTagDirectoryCreate))

	case err == nil:
		if err := os.RemoveAll(path); err != nil {
			return goerr.Wrap(err, "failed to remove stale temporary directory",
				goerr.V("temp_dir", path),
				goerr.T(model.ErrTagDirectoryCreate))
		}

	case !os.IsNotExist(err):
		return goerr.Wrap(err, "failed to inspect temporary directory",
			goerr.V("temp_dir", path),
			goerr.T(model.ErrTagDirectoryCreate))
	}

	if err := os.MkdirAll(path, 0700); err != nil {
		return goerr.Wrap(err, "failed to create temporary directory",
			goerr.V("temp_dir", path),
			goerr.T(model.ErrTagDirectoryCreate))
	}
	return nil
}
