package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cbout22/refmirror/internal/config"
	"github.com/cbout22/refmirror/internal/mirror"
	"github.com/cbout22/refmirror/internal/store"
)

// sourceOptions holds the per-invocation flags of a source subcommand.
type sourceOptions struct {
	fetch   bool
	update  bool
	force   bool
	list    bool
	getPath bool
	path    string
}

// newSourceCmd creates the subcommand for one mirror source (docs, wiki).
// Usage: refmirror <source> [--fetch] [--update] [--force] [--path <dir>] [--list] [--get-path]
func newSourceCmd(src config.MirrorSource, ctrl *mirror.Controller) *cobra.Command {
	var opts sourceOptions

	cmd := &cobra.Command{
		Use:   src.Name,
		Short: src.Short,
		Long: src.Short + `.

Without flags the command reports the mirror path if one exists, and
performs a plain fetch otherwise. Flags may be combined; they run in the
fixed order fetch, update, list, get-path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSource(cmd.Context(), src, ctrl, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&opts.fetch, "fetch", false, "Fetch the mirror (no-op if it already exists)")
	cmd.Flags().BoolVar(&opts.update, "update", false, "Update an existing mirror")
	cmd.Flags().BoolVar(&opts.force, "force", false, "With --fetch: discard and refetch an existing mirror")
	cmd.Flags().StringVar(&opts.path, "path", "", "Custom local path for the mirror")
	cmd.Flags().BoolVar(&opts.list, "list", false, "List the mirror's content files")
	cmd.Flags().BoolVar(&opts.getPath, "get-path", false, "Print the mirror path (non-zero exit if absent)")

	return cmd
}

// runSource is the testable core of a source subcommand. Only --get-path on
// an absent mirror returns an error (and hence a non-zero exit): downstream
// tooling tests that exit code. Every other failure is printed and swallowed.
func runSource(ctx context.Context, src config.MirrorSource, ctrl *mirror.Controller, opts sourceOptions, out io.Writer) error {
	path := config.ResolvePath(src.DefaultPath, opts.path)

	if !opts.fetch && !opts.update && !opts.list && !opts.getPath {
		// Default intent: pure inspection, with a plain fetch only when
		// nothing is there yet.
		if store.Exists(path) {
			fmt.Fprintf(out, "✅ %s mirror already exists at: %s\n", src.Name, path)
			return nil
		}
		report(out, src, ctrl.Acquire(ctx, src, path, false))
		return nil
	}

	if opts.fetch {
		report(out, src, ctrl.Acquire(ctx, src, path, opts.force))
	}

	if opts.update {
		report(out, src, ctrl.Refresh(ctx, src, path))
	}

	if opts.list {
		listFiles(out, src, path)
	}

	if opts.getPath {
		if !store.Exists(path) {
			return fmt.Errorf("no %s mirror at %s", src.Name, path)
		}
		fmt.Fprintln(out, path)
	}

	return nil
}

// listFiles prints the mirror's content files, distinguishing an absent
// mirror from a present-but-empty one.
func listFiles(out io.Writer, src config.MirrorSource, path string) {
	files, err := store.ListFiles(path, src.Suffix)
	switch {
	case errors.Is(err, store.ErrNotPresent):
		fmt.Fprintf(out, "⚠️  No %s mirror at: %s — fetch it first\n", src.Name, path)
	case err != nil:
		fmt.Fprintf(out, "❌ Failed to list %s mirror: %s\n", src.Name, err)
	case len(files) == 0:
		fmt.Fprintf(out, "📋 %s mirror at %s contains no %s files.\n", src.Name, path, src.Suffix)
	default:
		fmt.Fprintf(out, "\n%s files (%s):\n", src.Name, src.Suffix)
		for _, f := range files {
			fmt.Fprintf(out, "  - %s\n", f)
		}
	}
}

// report prints one status line per acquire/refresh result.
func report(out io.Writer, src config.MirrorSource, res mirror.Result) {
	switch res.Outcome {
	case mirror.SkippedExists:
		fmt.Fprintf(out, "✅ %s mirror already exists at: %s (use --force to refetch)\n", src.Name, res.Path)
	case mirror.Acquired:
		fmt.Fprintf(out, "✅ Fetched %s mirror to: %s\n", src.Name, res.Path)
	case mirror.Reacquired:
		fmt.Fprintf(out, "✅ Refetched %s mirror at: %s\n", src.Name, res.Path)
	case mirror.Updated:
		fmt.Fprintf(out, "✅ Updated %s mirror at: %s\n", src.Name, res.Path)
	case mirror.NotPresent:
		fmt.Fprintf(out, "⚠️  No %s mirror at: %s — run --fetch first\n", src.Name, res.Path)
	case mirror.FailedRemoval:
		fmt.Fprintf(out, "❌ Failed to remove existing %s mirror: %s\n", src.Name, res.Err)
	case mirror.FailedTransfer:
		fmt.Fprintf(out, "❌ Failed to fetch %s mirror: %s\n", src.Name, res.Err)
	}
}
