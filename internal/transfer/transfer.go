package transfer

import (
	"context"

	"github.com/cbout22/refmirror/internal/config"
)

// Transfer populates or updates a local mirror from its remote. The real
// implementation shells out to external tools; tests substitute a stub so no
// network or tool installation is needed.
type Transfer interface {
	// Acquire performs a full transfer of the source into dest. For site
	// mirrors the crawl writes into dest's parent and may nest content under
	// an intermediate directory; the caller is responsible for the rename.
	Acquire(ctx context.Context, src config.MirrorSource, dest string) error

	// Update refreshes an existing mirror in place. Only the git mechanism
	// supports this; site mirrors are refreshed by removal and re-acquisition.
	Update(ctx context.Context, src config.MirrorSource, dest string) error
}
