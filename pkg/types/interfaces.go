package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required for crosspath file operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Open(name string) (io.ReadCloser, error)
	OpenFile(name string, flag int, perm fs.FileMode) (io.WriteCloser, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink operations
	Symlink(oldname, newname string) error

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error

	// Optional operations - implementations should check for support
	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

// Environment resolves the host directories that the canonical tokens
// "~" and "/tmp" stand for
type Environment interface {
	// HomeDir returns the user's home directory. ok is false when no home
	// directory can be resolved.
	HomeDir() (dir string, ok bool)

	// TempDir returns the platform temporary directory
	TempDir() string
}
