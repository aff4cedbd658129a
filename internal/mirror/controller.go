package mirror

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/cbout22/refmirror/internal/config"
	"github.com/cbout22/refmirror/internal/store"
	"github.com/cbout22/refmirror/internal/transfer"
)

// Controller drives the mirror synchronization lifecycle: it decides whether
// a fetch is a no-op, a fresh acquisition, or a destructive re-acquisition,
// and composes removal + re-acquisition into refreshes.
//
// Invocations are assumed non-overlapping: concurrent runs against the same
// path may race and are not guarded against.
type Controller struct {
	fs       store.FS
	transfer transfer.Transfer
	log      zerolog.Logger
}

// NewController creates a Controller over the given filesystem and transfer
// capability.
func NewController(fs store.FS, tr transfer.Transfer, log zerolog.Logger) *Controller {
	return &Controller{fs: fs, transfer: tr, log: log}
}

// Acquire fetches the source into path unless a mirror is already there.
//
// A present mirror with force=false is a safe no-op. With force=true the
// existing content is removed first; if removal fails the old content is left
// alone and no transfer is attempted, so old and new content never mix.
// A stray file occupying the path counts as present: it is never silently
// overwritten, only replaced through the forced path.
func (c *Controller) Acquire(ctx context.Context, src config.MirrorSource, path string, force bool) Result {
	res := Result{Path: path}

	state := c.fs.State(path)
	present := state != store.Absent

	if present && !force {
		c.log.Debug().Str("source", src.Name).Str("path", path).Msg("mirror already present, skipping")
		res.Outcome = SkippedExists
		return res
	}

	if present {
		c.log.Debug().Str("source", src.Name).Str("path", path).Msg("removing existing mirror")
		if err := c.fs.RemoveAll(path); err != nil {
			res.Outcome = FailedRemoval
			res.Err = fmt.Errorf("removing %s: %w", path, err)
			return res
		}
		if c.fs.State(path) != store.Absent {
			res.Outcome = FailedRemoval
			res.Err = fmt.Errorf("removing %s: path still exists", path)
			return res
		}
	}

	if err := c.fs.MkdirAll(filepath.Dir(path)); err != nil {
		res.Outcome = FailedTransfer
		res.Err = fmt.Errorf("creating parent of %s: %w", path, err)
		return res
	}

	c.log.Debug().Str("source", src.Name).Str("mechanism", string(src.Mechanism)).Msg("starting transfer")
	if err := c.transfer.Acquire(ctx, src, path); err != nil {
		res.Outcome = FailedTransfer
		res.Err = err
		return res
	}

	if err := c.relocateNested(src, path); err != nil {
		res.Outcome = FailedTransfer
		res.Err = err
		return res
	}

	if present {
		res.Outcome = Reacquired
	} else {
		res.Outcome = Acquired
	}
	c.log.Debug().Str("source", src.Name).Stringer("outcome", res.Outcome).Msg("transfer complete")
	return res
}

// relocateNested moves content the transfer nested under an intermediate
// top-level directory (the site-mirror crawl writes under e.g. "docs") to the
// resolved target. The move only happens when the target is still absent, to
// avoid clobbering.
func (c *Controller) relocateNested(src config.MirrorSource, path string) error {
	if src.NestedDir == "" {
		return nil
	}
	nested := filepath.Join(filepath.Dir(path), src.NestedDir)
	if nested == path {
		return nil
	}
	if c.fs.State(nested) != store.Directory || c.fs.State(path) != store.Absent {
		return nil
	}
	if err := c.fs.Rename(nested, path); err != nil {
		return fmt.Errorf("moving %s to %s: %w", nested, path, err)
	}
	return nil
}

// Refresh updates an existing mirror. An absent mirror is reported as
// NotPresent rather than fetched, so a caller never refreshes into existence
// by accident.
//
// The two mechanisms refresh differently on purpose: git mirrors fetch+pull
// in place, while site mirrors are removed and fully re-crawled. If removal
// fails nothing is re-fetched; if removal succeeds but the transfer fails the
// mirror ends up absent rather than stale.
func (c *Controller) Refresh(ctx context.Context, src config.MirrorSource, path string) Result {
	res := Result{Path: path}

	state := c.fs.State(path)
	if state == store.Absent {
		res.Outcome = NotPresent
		return res
	}

	if src.Mechanism == config.GitClone && state == store.Directory {
		if err := c.transfer.Update(ctx, src, path); err != nil {
			res.Outcome = FailedTransfer
			res.Err = err
			return res
		}
		res.Outcome = Updated
		c.log.Debug().Str("source", src.Name).Str("path", path).Msg("mirror updated in place")
		return res
	}

	c.log.Debug().Str("source", src.Name).Str("path", path).Msg("removing mirror before re-acquisition")
	if err := c.fs.RemoveAll(path); err != nil {
		res.Outcome = FailedRemoval
		res.Err = fmt.Errorf("removing %s: %w", path, err)
		return res
	}
	if c.fs.State(path) != store.Absent {
		res.Outcome = FailedRemoval
		res.Err = fmt.Errorf("removing %s: path still exists", path)
		return res
	}

	inner := c.Acquire(ctx, src, path, false)
	if inner.Outcome == Acquired {
		inner.Outcome = Reacquired
	}
	return inner
}
