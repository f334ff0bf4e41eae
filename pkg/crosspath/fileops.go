package crosspath

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/crosspath/pkg/errors"
	"github.com/arthur-debert/crosspath/pkg/filesystem"
	"github.com/arthur-debert/crosspath/pkg/logging"
	"github.com/arthur-debert/crosspath/pkg/types"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// FileOps performs filesystem operations on Paths. Each Path is materialized
// for the current OS before it reaches the filesystem. Every operation is
// attempted exactly once and failures are returned as ErrIO errors.
type FileOps struct {
	fs     types.FS
	m      *Materializer
	logger *zerolog.Logger
}

// NewFileOps creates FileOps over fs. Paths are materialized with m, whose
// GOOS should match the platform fs runs on.
func NewFileOps(fs types.FS, m *Materializer) *FileOps {
	return &FileOps{fs: fs, m: m}
}

// WithLogger returns a copy of o that logs to logger instead of the global
// logger.
func (o *FileOps) WithLogger(logger zerolog.Logger) *FileOps {
	c := *o
	c.logger = &logger
	return &c
}

var defaultFileOps = NewFileOps(filesystem.NewOS(), defaultMaterializer)

// DefaultFileOps returns the FileOps used by the Path methods: the OS
// filesystem and the default Materializer.
func DefaultFileOps() *FileOps {
	return defaultFileOps
}

// Materializer returns the Materializer o renders paths with
func (o *FileOps) Materializer() *Materializer {
	return o.m
}

func (o *FileOps) log() *zerolog.Logger {
	if o.logger != nil {
		return o.logger
	}
	logger := logging.GetLogger("fileops")
	return &logger
}

func (o *FileOps) native(p Path) string {
	return o.m.CurrentOS(p).String()
}

// Exists reports whether p exists
func (o *FileOps) Exists(p Path) bool {
	_, err := o.fs.Stat(o.native(p))
	return err == nil
}

// IsFile reports whether p exists and is a regular file
func (o *FileOps) IsFile(p Path) bool {
	info, err := o.fs.Stat(o.native(p))
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether p exists and is a directory
func (o *FileOps) IsDir(p Path) bool {
	info, err := o.fs.Stat(o.native(p))
	return err == nil && info.IsDir()
}

// ReadToString reads the whole file at p
func (o *FileOps) ReadToString(p Path) (string, error) {
	native := o.native(p)
	data, err := o.fs.ReadFile(native)
	if err != nil {
		return "", errors.IO(err, "read", p.s, native)
	}
	return string(data), nil
}

// WriteStrToFile writes content to p, creating parent directories first
func (o *FileOps) WriteStrToFile(p Path, content string) error {
	return o.WriteBytesToFile(p, []byte(content))
}

// WriteBytesToFile writes data to p, creating parent directories first
func (o *FileOps) WriteBytesToFile(p Path, data []byte) error {
	if err := o.CreateDirAllForFile(p); err != nil {
		return err
	}
	native := o.native(p)
	o.log().Debug().Str("path", p.s).Str("native", native).Int("bytes", len(data)).Msg("Writing file")
	if err := o.fs.WriteFile(native, data, filePerm); err != nil {
		return errors.IO(err, "write", p.s, native)
	}
	return nil
}

// CreateDirAll creates the directory p and any missing parents
func (o *FileOps) CreateDirAll(p Path) error {
	native := o.native(p)
	o.log().Debug().Str("path", p.s).Str("native", native).Msg("Creating directory")
	if err := o.fs.MkdirAll(native, dirPerm); err != nil {
		return errors.IO(err, "create directory", p.s, native)
	}
	return nil
}

// CreateDirAllForFile creates the parent directory of the file p. A relative
// single-component path has nothing to create. The parent is taken from the
// materialized path, so it is never materialized twice.
func (o *FileOps) CreateDirAllForFile(p Path) error {
	parent, ok := o.m.nativeParent(o.m.CurrentOS(p))
	if !ok {
		return errors.InvalidPath(errors.ErrNoParent, p.s, "path has no parent")
	}
	if parent == "" {
		return nil
	}
	o.log().Debug().Str("path", p.s).Str("native", parent).Msg("Creating parent directory")
	if err := o.fs.MkdirAll(parent, dirPerm); err != nil {
		return errors.IO(err, "create directory", p.s, parent)
	}
	return nil
}

// RemoveFile removes the file p
func (o *FileOps) RemoveFile(p Path) error {
	native := o.native(p)
	o.log().Debug().Str("path", p.s).Str("native", native).Msg("Removing file")
	if err := o.fs.Remove(native); err != nil {
		return errors.IO(err, "remove file", p.s, native)
	}
	return nil
}

// RemoveDirAll removes p and everything under it. A missing p is not an
// error.
func (o *FileOps) RemoveDirAll(p Path) error {
	native := o.native(p)
	if !o.Exists(p) {
		o.log().Trace().Str("path", p.s).Str("native", native).Msg("Nothing to remove")
		return nil
	}
	o.log().Debug().Str("path", p.s).Str("native", native).Msg("Removing directory tree")
	if err := o.fs.RemoveAll(native); err != nil {
		return errors.IO(err, "remove directory", p.s, native)
	}
	return nil
}

// CopyFileToFile copies the file src to dst, creating the parent directories
// of dst. Nothing happens when both materialize to the same native path.
func (o *FileOps) CopyFileToFile(src, dst Path) error {
	srcNative, dstNative := o.native(src), o.native(dst)
	if srcNative == dstNative {
		o.log().Trace().Str("path", src.s).Msg("Copy source and destination are the same")
		return nil
	}
	if err := o.CreateDirAllForFile(dst); err != nil {
		return err
	}

	o.log().Debug().Str("src", srcNative).Str("dst", dstNative).Msg("Copying file")

	in, err := o.fs.Open(srcNative)
	if err != nil {
		return errors.IO(err, "open", src.s, srcNative)
	}
	defer func() { _ = in.Close() }()

	out, err := o.fs.OpenFile(dstNative, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return errors.IO(err, "create", dst.s, dstNative)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return errors.IO(err, "copy to", dst.s, dstNative)
	}
	if err := out.Close(); err != nil {
		return errors.IO(err, "close", dst.s, dstNative)
	}
	return nil
}

// RenameOrMove moves src to dst, creating the parent directories of dst.
// Nothing happens when both materialize to the same native path.
func (o *FileOps) RenameOrMove(src, dst Path) error {
	srcNative, dstNative := o.native(src), o.native(dst)
	if srcNative == dstNative {
		o.log().Trace().Str("path", src.s).Msg("Move source and destination are the same")
		return nil
	}
	if err := o.CreateDirAllForFile(dst); err != nil {
		return err
	}

	o.log().Debug().Str("src", srcNative).Str("dst", dstNative).Msg("Moving")
	if err := o.fs.Rename(srcNative, dstNative); err != nil {
		return errors.IO(err, "rename", src.s, srcNative).WithDetail("destination", dst.s)
	}
	return nil
}

// Exists reports whether p exists
func (p Path) Exists() bool { return defaultFileOps.Exists(p) }

// IsFile reports whether p is a regular file
func (p Path) IsFile() bool { return defaultFileOps.IsFile(p) }

// IsDir reports whether p is a directory
func (p Path) IsDir() bool { return defaultFileOps.IsDir(p) }

// ReadToString reads the whole file at p
func (p Path) ReadToString() (string, error) { return defaultFileOps.ReadToString(p) }

// WriteStrToFile writes content to p, creating parent directories first
func (p Path) WriteStrToFile(content string) error { return defaultFileOps.WriteStrToFile(p, content) }

// WriteBytesToFile writes data to p, creating parent directories first
func (p Path) WriteBytesToFile(data []byte) error { return defaultFileOps.WriteBytesToFile(p, data) }

// CreateDirAll creates the directory p and any missing parents
func (p Path) CreateDirAll() error { return defaultFileOps.CreateDirAll(p) }

// CreateDirAllForFile creates the parent directory of the file p
func (p Path) CreateDirAllForFile() error { return defaultFileOps.CreateDirAllForFile(p) }

// RemoveFile removes the file p
func (p Path) RemoveFile() error { return defaultFileOps.RemoveFile(p) }

// RemoveDirAll removes p recursively; a missing p is not an error
func (p Path) RemoveDirAll() error { return defaultFileOps.RemoveDirAll(p) }

// CopyFileToFile copies p to dst
func (p Path) CopyFileToFile(dst Path) error { return defaultFileOps.CopyFileToFile(p, dst) }

// RenameOrMove moves p to dst
func (p Path) RenameOrMove(dst Path) error { return defaultFileOps.RenameOrMove(p, dst) }

// DecompressTarGz extracts the gzip-compressed tar archive p into dst
func (p Path) DecompressTarGz(dst Path) error { return defaultFileOps.DecompressTarGz(p, dst) }
