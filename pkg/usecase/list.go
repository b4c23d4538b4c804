package usecase

import (
	"context"
	"path"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/fontinst/pkg/domain/interfaces"
	"github.com/m-mizutani/fontinst/pkg/domain/model"
	"github.com/m-mizutani/fontinst/pkg/utils/errutil"
)

type listUseCase struct {
	inspector interfaces.ArchiveInspector
}

// NewList creates a new instance of ListUseCase
func NewList(inspector interfaces.ArchiveInspector) interfaces.ListUseCase {
	return &listUseCase{
		inspector: inspector,
	}
}

// List reads the entry table of every archive under the search root and keeps
// the entries an install would copy. Nothing is extracted or written.
func (uc *listUseCase) List(ctx context.Context, layout *model.Layout) ([]*model.ArchiveListing, error) {
	logger := ctxlog.From(ctx)

	var listings []*model.ArchiveListing
	for archivePath := range ScanArchives(ctx, layout.SearchRoot, layout.TempDir, layout.DestDir) {
		listing := &model.ArchiveListing{Archive: archivePath}

		entries, err := uc.inspector.Entries(ctx, archivePath)
		if err != nil {
			listing.Err = err
			errutil.Handle(ctx, "Failed to read archive", err)
		}
		for _, entry := range entries {
			// zip entry names always use forward slashes
			if layout.Extensions.Match(path.Base(entry)) {
				listing.Fonts = append(listing.Fonts, entry)
			}
		}

		logger.Debug("Listed archive", "archive", archivePath, "font_count", len(listing.Fonts))
		listings = append(listings, listing)
	}

	if err := ctx.Err(); err != nil {
		return listings, goerr.Wrap(err, "archive listing interrupted")
	}
	return listings, nil
}
