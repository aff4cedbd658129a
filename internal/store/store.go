package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotPresent signals that no mirror exists at the inspected path. It keeps
// "mirror absent" distinguishable from "mirror present but empty", which both
// produce zero file names.
var ErrNotPresent = errors.New("mirror not present")

// State describes what currently occupies a mirror path.
type State int

const (
	Absent    State = iota // nothing at the path
	Directory              // a directory — the only shape a valid mirror has
	File                   // a stray non-directory occupies the path
)

// Stat reports the state of a mirror path. Stat errors other than
// "does not exist" are treated as Absent: if we cannot see the path we
// cannot treat anything there as a mirror.
func Stat(path string) State {
	info, err := os.Stat(path)
	if err != nil {
		return Absent
	}
	if info.IsDir() {
		return Directory
	}
	return File
}

// Exists reports whether a valid mirror is present: the path exists and is a
// directory. A stray file never counts as a mirror.
func Exists(path string) bool {
	return Stat(path) == Directory
}

// ListFiles enumerates the mirror's content files: every file under the
// directory tree whose name ends in suffix, as slash-separated paths relative
// to the mirror root, sorted lexicographically. Returns ErrNotPresent when
// the mirror is absent.
func ListFiles(path, suffix string) ([]string, error) {
	if !Exists(path) {
		return nil, ErrNotPresent
	}

	var files []string
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}
		rel, err := filepath.Rel(path, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
