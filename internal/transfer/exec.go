package transfer

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cbout22/refmirror/internal/config"
)

// siteAcceptList is the suffix allow-list passed to wget for site mirrors:
// page content plus the assets needed for offline viewing.
const siteAcceptList = "*.html,*.css,*.js,*.svg,*.png,*.jpg,*.jpeg,*.webp"

// Runner executes an external command in dir (empty dir means the process
// working directory). Injectable so tests can observe invocations instead of
// running real tools.
type Runner func(ctx context.Context, dir, name string, args ...string) error

// runCommand is the real Runner. Output is captured and folded into the error
// on failure; the transfer tools are otherwise silent collaborators.
func runCommand(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, bytes.TrimSpace(out))
	}
	return nil
}

// ExecTransfer implements Transfer by invoking wget and git.
type ExecTransfer struct {
	run Runner
	log zerolog.Logger
}

var _ Transfer = (*ExecTransfer)(nil)

// New creates an ExecTransfer backed by real command execution.
func New(log zerolog.Logger) *ExecTransfer {
	return &ExecTransfer{run: runCommand, log: log}
}

// NewWithRunner creates an ExecTransfer with a custom command runner.
func NewWithRunner(run Runner, log zerolog.Logger) *ExecTransfer {
	return &ExecTransfer{run: run, log: log}
}

// Acquire performs the full transfer for the source's mechanism.
func (t *ExecTransfer) Acquire(ctx context.Context, src config.MirrorSource, dest string) error {
	switch src.Mechanism {
	case config.SiteMirror:
		args := wgetArgs(src, filepath.Dir(dest))
		t.log.Debug().Str("source", src.Name).Strs("args", args).Msg("invoking wget")
		return t.run(ctx, "", "wget", args...)
	case config.GitClone:
		args := gitCloneArgs(src, dest)
		t.log.Debug().Str("source", src.Name).Strs("args", args).Msg("invoking git clone")
		return t.run(ctx, "", "git", args...)
	}
	return fmt.Errorf("unknown transfer mechanism %q", src.Mechanism)
}

// Update refreshes a git mirror in place with fetch+pull against the source's
// fixed branch.
func (t *ExecTransfer) Update(ctx context.Context, src config.MirrorSource, dest string) error {
	if src.Mechanism != config.GitClone {
		return fmt.Errorf("mechanism %q does not support in-place update", src.Mechanism)
	}
	t.log.Debug().Str("source", src.Name).Str("dest", dest).Msg("updating git mirror")
	if err := t.run(ctx, dest, "git", "fetch", "origin"); err != nil {
		return err
	}
	return t.run(ctx, dest, "git", "pull", "origin", src.Branch)
}

// wgetArgs builds the fixed wget option set for a site mirror: recursive, no
// parent ascent, no host directory, one remote path level stripped, links
// rewritten for local viewing, page requisites included, forced .html
// extensions, restricted to the accept list, written under destParent.
func wgetArgs(src config.MirrorSource, destParent string) []string {
	return []string{
		"-r", "-np", "-nH", "--cut-dirs=1", "-k", "-p", "-E",
		"-A", siteAcceptList,
		src.RemoteURL,
		"-P", destParent,
	}
}

// gitCloneArgs builds the clone invocation for a git mirror.
func gitCloneArgs(src config.MirrorSource, dest string) []string {
	return []string{"clone", src.RemoteURL, dest}
}
