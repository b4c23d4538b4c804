package archive

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/fontinst/pkg/domain/model"
)

// DefaultUnzipBinary is the extraction utility used by Command
const DefaultUnzipBinary = "unzip"

// unzipExitWarning is unzip's status for "warnings, processing completed"
const unzipExitWarning = 1

// CommandOption is a functional option for Command
type CommandOption func(*Command)

// WithBinary sets the unzip executable name or path
func WithBinary(bin string) CommandOption {
	return func(c *Command) {
		c.bin = bin
	}
}

// Command extracts archives by running the system unzip utility
type Command struct {
	bin string
}

// NewCommand creates a decompressor that shells out to unzip
func NewCommand(opts ...CommandOption) *Command {
	c := &Command{bin: DefaultUnzipBinary}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Extract runs `unzip -o -qq archive -d destDir`
func (c *Command) Extract(ctx context.Context, archivePath, destDir string) error {
	logger := ctxlog.From(ctx)

	cmd := exec.CommandContext(ctx, c.bin, "-o", "-qq", archivePath, "-d", destDir)
	out, err := cmd.CombinedOutput()

	// unzip exits 1 for warnings (e.g. leading junk bytes) after completing extraction
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == unzipExitWarning && ctx.Err() == nil {
		logger.Warn("unzip reported warnings",
			"archive", archivePath,
			"output", strings.TrimSpace(string(out)),
		)
		err = nil
	}

	if err != nil {
		return goerr.Wrap(err, "unzip command failed",
			goerr.V("archive", archivePath),
			goerr.V("bin", c.bin),
			goerr.V("output", strings.TrimSpace(string(out))),
			goerr.T(model.ErrTagExtraction))
	}

	logger.Debug("Extracted archive with unzip", "archive", archivePath, "dest_dir", destDir)
	return nil
}
