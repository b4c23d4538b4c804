package usecase

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/fontinst/pkg/domain/model"
)

// CopyFonts copies every file under srcDir whose extension is in exts into
// destDir, flattening subdirectories. Same-named files overwrite each other in
// walk order. A failure on one file is recorded and does not stop the others.
func CopyFonts(ctx context.Context, srcDir, destDir string, exts model.FontExtensions) ([]model.InstalledFont, []error) {
	logger := ctxlog.From(ctx)

	var (
		installed []model.InstalledFont
		errs      []error
	)

	walkErr := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			errs = append(errs, goerr.Wrap(err, "failed to read extracted files",
				goerr.V("path", path),
				goerr.T(model.ErrTagCopy)))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !exts.Match(d.Name()) {
			return nil
		}

		dest := filepath.Join(destDir, d.Name())
		size, err := copyFile(path, dest)
		if err != nil {
			errs = append(errs, goerr.Wrap(err, "failed to copy font",
				goerr.V("file", d.Name()),
				goerr.V("src", path),
				goerr.V("dest", dest),
				goerr.T(model.ErrTagCopy)))
			return nil
		}

		logger.Info("Installed font", "font", d.Name(), "dest", dest, "size_bytes", size)
		installed = append(installed, model.InstalledFont{Source: path, Dest: dest, Size: size})
		return nil
	})
	if walkErr != nil {
		errs = append(errs, goerr.Wrap(walkErr, "font copy interrupted", goerr.V("src_dir", srcDir)))
	}

	return installed, errs
}

// copyFile writes the content of src to dest, replacing dest if it exists
func copyFile(src, dest string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to open source file")
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create destination file")
	}

	size, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return size, goerr.Wrap(err, "failed to write destination file")
	}

	if err := out.Close(); err != nil {
		return size, goerr.Wrap(err, "failed to close destination file")
	}
	return size, nil
}
