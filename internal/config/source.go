package config

import "path/filepath"

// Mechanism identifies how a mirror's content is transferred from the remote.
type Mechanism string

const (
	// SiteMirror fetches the remote with a bulk recursive HTTP crawl (wget).
	SiteMirror Mechanism = "site"
	// GitClone fetches the remote with a version-control clone and updates
	// in place with fetch+pull.
	GitClone Mechanism = "git"
)

// IsValid checks whether the mechanism is one of the known tags.
func (m Mechanism) IsValid() bool {
	switch m {
	case SiteMirror, GitClone:
		return true
	}
	return false
}

// MirrorSource describes one remote reference corpus and how it is mirrored
// locally. Sources are fixed for the lifetime of a process: the compiled-in
// set may be adjusted by a config file at startup, never afterwards.
type MirrorSource struct {
	Name        string    // subcommand name, e.g. "docs" or "wiki"
	Short       string    // one-line description for the command surface
	Mechanism   Mechanism // transfer mechanism tag
	RemoteURL   string    // remote locator passed to the transfer tool
	DefaultPath string    // local mirror directory used when no --path is given
	Suffix      string    // file suffix used when enumerating mirror content
	Branch      string    // git only: branch pulled on update
	NestedDir   string    // site only: intermediate top-level dir the crawl nests under
}

// DefaultSources returns the compiled-in source set with default paths rooted
// at the given install directory. The root is threaded in explicitly so tests
// can point it anywhere.
func DefaultSources(root string) []MirrorSource {
	refs := filepath.Join(root, "references")
	return []MirrorSource{
		{
			Name:        "docs",
			Short:       "Manage the local OpenCode documentation mirror",
			Mechanism:   SiteMirror,
			RemoteURL:   "https://opencode.ai/docs/",
			DefaultPath: filepath.Join(refs, "opencode-docs"),
			Suffix:      ".html",
			NestedDir:   "docs",
		},
		{
			Name:        "wiki",
			Short:       "Manage the local tmux wiki mirror",
			Mechanism:   GitClone,
			RemoteURL:   "https://github.com/tmux/tmux.wiki.git",
			DefaultPath: filepath.Join(refs, "tmux-wiki"),
			Suffix:      ".md",
			Branch:      "main",
		},
	}
}
