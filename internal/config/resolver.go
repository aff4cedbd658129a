package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath yields the effective local mirror directory for one invocation.
// A non-empty override wins and is returned verbatim apart from home-directory
// expansion; otherwise the source's compiled-in default is used. No existence
// check happens here.
func ResolvePath(defaultPath, override string) string {
	if override != "" {
		return ExpandHome(override)
	}
	return ExpandHome(defaultPath)
}

// ExpandHome replaces a leading "~" or "~/" with the current user's home
// directory. Paths without the shorthand are returned unchanged, as are
// "~user" forms, which we do not resolve.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
