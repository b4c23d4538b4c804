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

func cmdList(installCfg *config.Install) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "Show the fonts each archive would install without extracting anything",
		Action: func(ctx context.Context, c *cli.Command) error {
			layout, _, err := installCfg.Resolve(c.IsSet)
			if err != nil {
				return goerr.Wrap(err, "invalid install configuration")
			}

			listings, err := usecase.NewList(archive.NewZip()).List(ctx, layout)
			printListings(c.Root().Writer, layout, listings)
			return err
		},
	}
}

func printListings(w io.Writer, layout *model.Layout, listings []*model.ArchiveListing) {
	cyan := color.New(color.FgCyan)
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)

	total := 0
	for _, l := range listings {
		rel, err := filepath.Rel(layout.SearchRoot, l.Archive)
		if err != nil {
			rel = l.Archive
		}

		if l.Err != nil {
			red.Fprintf(w, "✗ %s: %v\n", rel, l.Err)
			continue
		}

		cyan.Fprintf(w, "📦 %s\n", rel)
		for _, f := range l.Fonts {
			fmt.Fprintf(w, "  • %s\n", f)
		}
		total += len(l.Fonts)
	}

	green.Fprintf(w, "Found %d font(s) in %d archive(s) under %s\n", total, len(listings), layout.SearchRoot)
}
