package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const DefaultConfigFile = "refmirror.toml"

// File represents the optional refmirror.toml config file. Each section
// overrides fields of one compiled-in source, keyed by source name.
type File struct {
	Sources map[string]SourceOverride `toml:"sources"`
}

// SourceOverride holds the per-source fields a config file may replace.
// Empty fields keep the compiled-in value.
type SourceOverride struct {
	URL    string `toml:"url"`
	Path   string `toml:"path"`
	Suffix string `toml:"suffix"`
	Branch string `toml:"branch"`
}

// LoadSources builds the effective source set: compiled-in defaults rooted at
// the install directory, with any overrides from the config file applied.
// A missing config file is not an error — the defaults are returned as-is.
// Overrides naming an unknown source are rejected so typos surface early.
func LoadSources(configPath, root string) ([]MirrorSource, error) {
	sources := DefaultSources(root)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return sources, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	byName := make(map[string]int, len(sources))
	for i, src := range sources {
		byName[src.Name] = i
	}

	for name, ov := range f.Sources {
		i, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("config: unknown source %q", name)
		}
		src := &sources[i]
		if ov.URL != "" {
			src.RemoteURL = ov.URL
		}
		if ov.Path != "" {
			src.DefaultPath = ov.Path
		}
		if ov.Suffix != "" {
			src.Suffix = ov.Suffix
		}
		if ov.Branch != "" {
			if src.Mechanism != GitClone {
				return nil, fmt.Errorf("config: source %q is not a git mirror, branch override is meaningless", name)
			}
			src.Branch = ov.Branch
		}
	}

	return sources, nil
}

// InstallRoot returns the directory holding the running binary, which anchors
// the default mirror paths and the config file lookup. Falls back to the
// current directory if the executable path cannot be determined.
func InstallRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
