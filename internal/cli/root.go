package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cbout22/refmirror/internal/config"
	"github.com/cbout22/refmirror/internal/logging"
	"github.com/cbout22/refmirror/internal/mirror"
	"github.com/cbout22/refmirror/internal/store"
	"github.com/cbout22/refmirror/internal/transfer"
)

// version is set at build time via -ldflags.
var version = "dev"

// NewRootCmd creates the top-level `refmirror` command with one subcommand
// per mirror source. The sources and controller are injected so tests can
// supply a stub transfer and temp paths.
func NewRootCmd(sources []config.MirrorSource, ctrl *mirror.Controller) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "refmirror",
		Short: "refmirror — local offline mirrors of reference documentation",
		Long: `refmirror keeps local, offline-readable mirrors of external reference
corpora (the OpenCode documentation site and the tmux wiki) so that
downstream tooling can read them without a network round-trip.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetVerbose(verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	for _, src := range sources {
		root.AddCommand(newSourceCmd(src, ctrl))
	}

	return root
}

// Execute runs the root command against the real filesystem and transfer tools.
func Execute() {
	log := logging.New(os.Stderr)

	root := config.InstallRoot()
	sources, err := config.LoadSources(filepath.Join(root, config.DefaultConfigFile), root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	ctrl := mirror.NewController(&store.OSFS{}, transfer.New(log), log)
	if err := NewRootCmd(sources, ctrl).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
