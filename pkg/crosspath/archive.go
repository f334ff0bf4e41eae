package crosspath

import (
	"archive/tar"
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/klauspost/compress/gzip"

	"github.com/arthur-debert/crosspath/pkg/errors"
	"github.com/arthur-debert/crosspath/pkg/logging"
	"github.com/arthur-debert/crosspath/pkg/types"
)

// ExtractOptions controls DecompressTarGzWithOptions
type ExtractOptions struct {
	// MaxSize bounds the number of decompressed bytes read. 0 means no limit.
	MaxSize int64
	// PreserveFileMode applies the modes recorded in the archive instead of
	// 0o750 for directories and 0o644 for files.
	PreserveFileMode bool
}

// LimitReaderUnexpectedEOFError reports an archive larger than MaxSize
type LimitReaderUnexpectedEOFError struct {
	MaxSize int64
}

func (l LimitReaderUnexpectedEOFError) Error() string {
	return fmt.Sprintf(
		"unexpected EOF, the extracted content was likely greater than your defined limit of %d bytes", l.MaxSize,
	)
}

// DecompressTarGz extracts the gzip-compressed tar archive at archive into
// dst, creating dst first.
func (o *FileOps) DecompressTarGz(archive, dst Path) error {
	return o.DecompressTarGzWithOptions(archive, dst, ExtractOptions{})
}

// DecompressTarGzWithOptions is DecompressTarGz with explicit options.
// Entries that would land outside dst are rejected, including entries that
// reach outside through a symlink extracted earlier from the same archive.
func (o *FileOps) DecompressTarGzWithOptions(archive, dst Path, opts ExtractOptions) error {
	logger := o.log()
	done := logging.LogOperationStart(*logger, "decompress tar.gz")
	defer done()

	if err := o.CreateDirAll(dst); err != nil {
		return err
	}

	archiveNative := o.native(archive)
	f, err := o.fs.Open(archiveNative)
	if err != nil {
		return errors.IO(err, "open archive", archive.s, archiveNative)
	}
	defer func() { _ = f.Close() }()

	if err := o.untar(o.native(dst), f, opts); err != nil {
		return errors.IO(err, "extract archive", archive.s, archiveNative).
			WithDetail("destination", dst.s)
	}
	return nil
}

// untar loops over the tar stream creating the file structure at dstNative
func (o *FileOps) untar(dstNative string, r io.Reader, opts ExtractOptions) error {
	gzr, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("failed to read gzip stream: %w", err)
	}
	defer func() {
		if err := gzr.Close(); err != nil {
			o.log().Error().Err(err).Msg("failed to close gzip reader")
		}
	}()

	var tr *tar.Reader
	if opts.MaxSize != 0 {
		tr = tar.NewReader(io.LimitReader(gzr, opts.MaxSize))
	} else {
		tr = tar.NewReader(gzr)
	}

	links := linkSet{fs: o.fs, root: dstNative, names: map[string]bool{}}
	for {
		header, err := tr.Next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			if opts.MaxSize != 0 && stderrors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf("error iterating on tar reader: %w", LimitReaderUnexpectedEOFError{opts.MaxSize})
			}
			return fmt.Errorf("error iterating on tar reader: %w", err)
		}

		if header == nil || header.Name == "." || header.Name == "./" {
			continue
		}

		// Sanity check to protect against zip-slip
		name := filepath.FromSlash(header.Name)
		if !filepath.IsLocal(name) {
			return fmt.Errorf("illegal file path in archive: %s", header.Name)
		}
		name = filepath.Clean(name)
		if links.traverses(name) {
			return fmt.Errorf("illegal file path in archive (through symlink): %s", header.Name)
		}
		target := filepath.Join(dstNative, name)

		switch header.Typeflag {
		case tar.TypeDir:
			mode, err := entryMode(header, 0o750, opts.PreserveFileMode)
			if err != nil {
				return err
			}
			if err := o.fs.MkdirAll(target, mode); err != nil {
				return fmt.Errorf("error creating nested folders: %w", err)
			}

		case tar.TypeSymlink:
			// Sanity check to protect against symlink exploit
			link := filepath.FromSlash(header.Linkname)
			if filepath.IsAbs(link) || !links.resolvesInside(filepath.Dir(name), link) {
				return fmt.Errorf("illegal file path in symlink: %s -> %s", header.Name, header.Linkname)
			}
			if err := o.fs.MkdirAll(filepath.Dir(target), 0o750); err != nil {
				return fmt.Errorf("error creating nested folders: %w", err)
			}
			if err := o.fs.Symlink(link, target); err != nil {
				return fmt.Errorf("error creating symlink: %w", err)
			}
			links.names[name] = true

		case tar.TypeReg:
			mode, err := entryMode(header, filePerm, opts.PreserveFileMode)
			if err != nil {
				return err
			}
			if err := o.fs.MkdirAll(filepath.Dir(target), 0o750); err != nil {
				return fmt.Errorf("error creating nested folders: %w", err)
			}
			if err := o.writeEntry(target, tr, mode, opts.MaxSize); err != nil {
				return err
			}

		default:
			o.log().Debug().Str("entry", header.Name).Int("type", int(header.Typeflag)).Msg("Skipping unsupported tar entry")
		}
	}
}

// linkSet tracks the symlinks under root, both those extracted so far and
// any already on disk. Names are cleaned and relative to root.
type linkSet struct {
	fs    types.FS
	root  string
	names map[string]bool
}

func (l linkSet) isLink(rel string) bool {
	if l.names[rel] {
		return true
	}
	info, err := l.fs.Lstat(filepath.Join(l.root, rel))
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// traverses reports whether rel is a link or has a link among its parents.
// Writing to such an entry would follow the link.
func (l linkSet) traverses(rel string) bool {
	parts := strings.Split(rel, string(filepath.Separator))
	for i := range parts {
		if l.isLink(filepath.Join(parts[:i+1]...)) {
			return true
		}
	}
	return false
}

// resolvesInside walks link from dir one component at a time. It fails when
// the walk leaves root or passes through another link before its last
// component, since the lexical result would then not be the real one.
func (l linkSet) resolvesInside(dir, link string) bool {
	var stack []string
	if dir != "." {
		stack = strings.Split(dir, string(filepath.Separator))
	}
	parts := strings.Split(link, string(filepath.Separator))
	for i, part := range parts {
		switch part {
		case "", ".":
			continue
		case "..":
			if len(stack) == 0 {
				return false
			}
			stack = stack[:len(stack)-1]
		default:
			stack = append(stack, part)
			if i < len(parts)-1 && l.isLink(filepath.Join(stack...)) {
				return false
			}
		}
	}
	return true
}

func (o *FileOps) writeEntry(target string, r io.Reader, mode os.FileMode, maxSize int64) error {
	f, err := o.fs.OpenFile(target, os.O_RDWR|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("error creating file %q: %w", target, err)
	}

	w := bufio.NewWriter(f)
	_, err = io.Copy(w, r)
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		merr := fmt.Errorf("failed to write file: %w", err)
		if maxSize != 0 && stderrors.Is(err, io.ErrUnexpectedEOF) {
			merr = fmt.Errorf("failed to write file: %w", LimitReaderUnexpectedEOFError{maxSize})
		}
		if errClose := f.Close(); errClose != nil {
			merr = multierror.Append(merr, fmt.Errorf("failed to close file: %w", errClose))
		}
		return fmt.Errorf("error on file %q: %w", target, merr)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file %q: %w", target, err)
	}
	return nil
}

func entryMode(header *tar.Header, fallback os.FileMode, preserve bool) (os.FileMode, error) {
	if !preserve {
		return fallback, nil
	}
	if header.Mode < 0 || header.Mode > math.MaxUint32 {
		return 0, fmt.Errorf("invalid mode in tar header: %d", header.Mode)
	}
	return os.FileMode(uint32(header.Mode)).Perm(), nil
}
