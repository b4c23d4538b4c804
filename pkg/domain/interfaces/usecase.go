package interfaces

import (
	"context"

	"github.com/m-mizutani/fontinst/pkg/domain/model"
)

// InstallUseCase installs fonts found in archives under a search root
type InstallUseCase interface {
	// Install processes every archive under layout.SearchRoot. Per-archive and
	// per-file failures are recorded in the report; the returned error is non-nil
	// only when the run was interrupted.
	Install(ctx context.Context, layout *model.Layout) (*model.InstallReport, error)
}

// ListUseCase reports which fonts each archive would install
type ListUseCase interface {
	List(ctx context.Context, layout *model.Layout) ([]*model.ArchiveListing, error)
}
