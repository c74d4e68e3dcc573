package osfile

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/jmgilman/go/fs/osfile/internal/sys"
)

// DefaultFilePerm is the permission mode given to files created by this
// package, before the process umask is applied.
const DefaultFilePerm = 0o644

// Path is a snapshot of a filesystem entry taken when it was constructed.
//
// The flags are never refreshed. Operations that change the filesystem
// return a new Path (or none) and leave the receiver stale; use Refresh to
// take a new snapshot. The zero value describes nothing and is not usable.
type Path struct {
	fullPath      string
	name          string
	exists        bool
	isDirectory   bool
	isRegularFile bool
	isSymlink     bool
}

// NewPath normalizes raw and snapshots the entry it names by listing its
// parent directory. A path whose parent is missing, or is not a directory,
// is reported as not existing. NewPath fails with ErrInvalidPath when the
// final segment of the normalized path is empty, as it is for "" and "/".
func NewPath(raw string) (Path, error) {
	const op = "construct"

	full := NormalizePath(raw)
	name := full[strings.LastIndex(full, "/")+1:]
	if name == "" {
		return Path{}, invalidPath(op, raw, "empty final path segment")
	}
	p := Path{fullPath: full, name: name}

	// "." and ".." never appear in a listing.
	if name == "." || name == ".." {
		return p.stat(), nil
	}

	parent := "./"
	if len(name) < len(full) {
		parent = full[:len(full)-len(name)]
	}
	entries, err := ListDirectory(parent)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || sys.IsNotDirectory(err) {
			return p, nil
		}
		return Path{}, err
	}
	for _, e := range entries {
		if e.name == name {
			p.exists = true
			p.isDirectory = e.isDirectory
			p.isRegularFile = e.isRegularFile
			p.isSymlink = e.isSymlink
			break
		}
	}
	return p, nil
}

func (p Path) stat() Path {
	fi, err := os.Stat(p.fullPath)
	if err != nil {
		return p
	}
	p.exists = true
	p.isDirectory = fi.IsDir()
	p.isRegularFile = fi.Mode().IsRegular()
	return p
}

// FullPath returns the normalized path.
func (p Path) FullPath() string { return p.fullPath }

// Name returns the final path segment.
func (p Path) Name() string { return p.name }

// Exists reports whether the entry existed when the snapshot was taken.
func (p Path) Exists() bool { return p.exists }

// IsDirectory reports whether the entry was a directory, following links.
func (p Path) IsDirectory() bool { return p.isDirectory }

// IsRegularFile reports whether the entry was a regular file, following links.
func (p Path) IsRegularFile() bool { return p.isRegularFile }

// IsSymlink reports whether the entry itself was a symbolic link.
func (p Path) IsSymlink() bool { return p.isSymlink }

// String returns the normalized path.
func (p Path) String() string { return p.fullPath }

// Refresh returns a new snapshot of the same path.
func (p Path) Refresh() (Path, error) {
	return NewPath(p.fullPath)
}

// OpenRead opens the entry for reading. The operating system decides whether
// that is possible; the snapshot flags are not consulted.
func (p Path) OpenRead() (*Reader, error) {
	return OpenReader(p.fullPath)
}

// OpenWrite opens the entry for writing in the given mode. Files that do not
// exist are created by ModeCreate and ModeInsert; ModeAppend requires an
// existing file. An entry that exists but is not a regular file is rejected
// with ErrInvalidOperation.
func (p Path) OpenWrite(mode OpenMode) (*Writer, error) {
	if p.exists && !p.isRegularFile {
		return nil, invalidOperation("open", p.fullPath, "not a regular file")
	}
	return OpenWriter(p.fullPath, mode)
}

// OpenAppend is shorthand for OpenWrite(ModeAppend).
func (p Path) OpenAppend() (*Writer, error) {
	return p.OpenWrite(ModeAppend)
}

// OpenInsert is shorthand for OpenWrite(ModeInsert).
func (p Path) OpenInsert() (*Writer, error) {
	return p.OpenWrite(ModeInsert)
}

// Remove deletes the entry. Directories are removed recursively, depth
// first; symbolic links are removed without following them.
//
// Removal is not atomic. If it fails partway through a tree, whatever was
// already deleted stays deleted and the error names the entry that failed.
func (p Path) Remove() error {
	if p.isDirectory && !p.isSymlink {
		return removeTree(p.fullPath)
	}
	return removeEntry(p.fullPath)
}

// RemoveQuietly behaves like Remove but reports failure as false instead of
// an error. The error is logged at warn level.
func (p Path) RemoveQuietly() bool {
	if err := p.Remove(); err != nil {
		log().Warn("remove failed", "path", p.fullPath, "error", err)
		return false
	}
	return true
}

func removeTree(dir string) error {
	children, err := listDirectory(dir, true)
	if err != nil {
		return err
	}
	for _, c := range children {
		if c.isDirectory && !c.isSymlink {
			err = removeTree(c.fullPath)
		} else {
			err = removeEntry(c.fullPath)
		}
		if err != nil {
			return err
		}
	}
	log().Debug("removing directory", "path", dir, "children", len(children))
	return removeEntry(dir)
}

func removeEntry(path string) error {
	if err := sys.Remove(path); err != nil {
		return ioError("remove", path, err)
	}
	return nil
}

// Rename moves the entry to target, replacing target if it is a file, and
// returns a snapshot of target. A regular file that cannot be renamed across
// filesystems is copied and then removed.
func (p Path) Rename(target string) (Path, error) {
	const op = "rename"

	err := sys.Rename(p.fullPath, target)
	if err != nil && sys.IsCrossDevice(err) && p.isRegularFile {
		log().Debug("rename crosses filesystems, copying", "path", p.fullPath, "target", target)
		if _, cerr := p.CopyFile(target); cerr != nil {
			return Path{}, cerr
		}
		err = sys.Remove(p.fullPath)
	}
	if err != nil {
		return Path{}, withTarget(ioError(op, p.fullPath, err), target)
	}
	return NewPath(target)
}

// CopyFile copies the bytes of a regular file to target, creating or
// truncating it, and returns a snapshot of target. Permission bits are
// carried over where the platform supports them. A target that names the
// source file, under any spelling or through a link, is rejected with
// ErrInvalidOperation.
func (p Path) CopyFile(target string, opts ...TransferOption) (Path, error) {
	const op = "copy"

	if !p.isRegularFile {
		return Path{}, withTarget(invalidOperation(op, p.fullPath, "not a regular file"), target)
	}
	if err := copyFile(p.fullPath, target, newTransferConfig(opts)); err != nil {
		return Path{}, withTarget(err, target)
	}
	return NewPath(target)
}

func copyFile(source, target string, cfg transferConfig) error {
	const op = "copy"

	src, err := sys.Open(source, sys.ReadOnly)
	if err != nil {
		return ioError(op, source, err)
	}
	defer src.Close()

	perm, err := src.Perm()
	if err != nil {
		return ioError(op, source, err)
	}
	size, err := src.Size()
	if err != nil {
		return ioError(op, source, err)
	}
	// Opening the target truncates it, so an alias of the source must be
	// caught before that happens.
	same, err := src.SameFile(target)
	if err != nil {
		return ioError(op, target, err)
	}
	if same {
		return invalidOperation(op, source, "source and target are the same file")
	}

	dst, err := sys.Open(target, sys.Mode{Write: true, Create: true, Truncate: true, Perm: perm})
	if err != nil {
		return ioError(op, target, err)
	}
	defer dst.Close()

	if _, err := transfer(dst, src, size, cfg); err != nil {
		return ioError(op, source, err)
	}
	// The create mode was filtered through the umask.
	if err := dst.Chmod(perm); err != nil {
		return ioError(op, target, err)
	}
	if err := dst.Close(); err != nil {
		return ioError(op, target, err)
	}
	return nil
}

// Resize sets the length of the file to size bytes, creating it if needed.
// Growing pads with zero bytes.
func (p Path) Resize(size int64) error {
	const op = "resize"

	if size < 0 {
		return invalidOperation(op, p.fullPath, "negative size")
	}
	h, err := sys.Open(p.fullPath, sys.Mode{Read: true, Write: true, Create: true, Perm: DefaultFilePerm})
	if err != nil {
		return ioError(op, p.fullPath, err)
	}
	defer h.Close()

	if err := h.Truncate(size); err != nil {
		return ioError(op, p.fullPath, err)
	}
	if err := h.Close(); err != nil {
		return ioError(op, p.fullPath, err)
	}
	return nil
}
