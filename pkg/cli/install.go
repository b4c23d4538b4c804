package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/fontinst/pkg/cli/config"
	"github.com/m-mizutani/fontinst/pkg/domain/model"
	"github.com/m-mizutani/fontinst/pkg/infra/archive"
	"github.com/m-mizutani/fontinst/pkg/usecase"
)

func cmdInstall(installCfg *config.Install) *cli.Command {
	return &cli.Command{
		Name:    "install",
		Aliases: []string{"i"},
		Usage:   "Extract archives and copy their fonts into the destination (default)",
		Action:  cmdInstallAction(installCfg),
	}
}

func cmdInstallAction(installCfg *config.Install) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		layout, kind, err := installCfg.Resolve(c.IsSet)
		if err != nil {
			return goerr.Wrap(err, "invalid install configuration")
		}

		decompressor, err := archive.New(kind)
		if err != nil {
			return goerr.Wrap(err, "invalid install configuration")
		}

		report, err := usecase.NewInstall(decompressor).Install(ctx, layout)
		printInstallSummary(c.Root().Writer, report)
		if err != nil {
			return err
		}

		// Per-archive and per-file failures were already reported; the run itself succeeded
		return nil
	}
}

func printInstallSummary(w io.Writer, report *model.InstallReport) {
	if report == nil {
		return
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(w)
	if len(report.Archives) == 0 {
		yellow.Fprintf(w, "No archives found under %s\n", report.Layout.SearchRoot)
	}

	if report.SetupErr != nil {
		red.Fprintf(w, "✗ Destination unavailable: %v\n", report.SetupErr)
	}

	if failed := report.FailedArchives(); len(failed) > 0 {
		red.Fprintf(w, "✗ %d archive(s) could not be processed:\n", len(failed))
		for _, a := range failed {
			fmt.Fprintf(w, "  • %s: %v\n", filepath.Base(a.Archive), a.Err)
		}
	}

	var copyErrs []error
	for _, a := range report.Archives {
		copyErrs = append(copyErrs, a.CopyErrors...)
	}
	if len(copyErrs) > 0 {
		yellow.Fprintf(w, "⚠ %d font(s) could not be copied:\n", len(copyErrs))
		for _, err := range copyErrs {
			fmt.Fprintf(w, "  • %v\n", err)
		}
	}

	green.Fprintf(w, "✨ Installed %d font(s) from %d archive(s) into %s\n",
		report.InstalledCount(), len(report.Archives), report.Layout.DestDir)
}
