package store

import "os"

// FS abstracts the filesystem mutations the mirror controllers perform, so
// failure paths (removal errors in particular) can be exercised in tests
// without permission tricks.
type FS interface {
	// State reports what occupies the given path.
	State(path string) State

	// RemoveAll deletes a file or directory tree.
	RemoveAll(path string) error

	// MkdirAll creates a directory path and all necessary parents.
	MkdirAll(path string) error

	// Rename moves oldpath to newpath.
	Rename(oldpath, newpath string) error
}

// OSFS implements FS using the real filesystem.
type OSFS struct{}

var _ FS = (*OSFS)(nil)

func (*OSFS) State(path string) State {
	return Stat(path)
}

func (*OSFS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (*OSFS) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

func (*OSFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}
