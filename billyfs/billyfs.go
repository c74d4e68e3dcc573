package billyfs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"syscall"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/helper/chroot"

	"github.com/jmgilman/go/fs/osfile"
	"github.com/jmgilman/go/fs/osfile/internal/sys"
)

// capabilities lists everything except locking.
const capabilities = billy.WriteCapability |
	billy.ReadCapability |
	billy.ReadAndWriteCapability |
	billy.SeekCapability |
	billy.TruncateCapability

// New returns a billy.Filesystem rooted at root. Paths handed to the
// filesystem are resolved inside root; absolute symlink targets are
// rewritten to stay inside it.
func New(root string) billy.Filesystem {
	return chroot.New(&basic{}, root)
}

// basic implements the billy interfaces over absolute host paths. chroot
// translates every call into that form.
type basic struct{}

// Compile-time interface checks.
var (
	_ billy.Basic   = (*basic)(nil)
	_ billy.Dir     = (*basic)(nil)
	_ billy.Symlink = (*basic)(nil)
	_ billy.Capable = (*basic)(nil)
)

// Create creates or truncates the named file for reading and writing.
func (b *basic) Create(filename string) (billy.File, error) {
	return b.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
}

// Open opens the named file for reading.
func (b *basic) Open(filename string) (billy.File, error) {
	return b.OpenFile(filename, os.O_RDONLY, 0)
}

// OpenFile opens the named file with the given os.O_* flags. Missing parent
// directories are created when os.O_CREATE is set.
func (b *basic) OpenFile(filename string, flag int, perm os.FileMode) (billy.File, error) {
	if flag&os.O_CREATE != 0 {
		if err := b.createParent(filename); err != nil {
			return nil, err
		}
	}
	h, err := sys.Open(filename, modeFromFlags(flag, perm))
	if err != nil {
		return nil, pathError("open", filename, err)
	}
	return &file{h: h, name: filename}, nil
}

// Stat returns the FileInfo of the named file, following links.
func (b *basic) Stat(filename string) (os.FileInfo, error) {
	return os.Stat(filename)
}

// Lstat returns the FileInfo of the named file without following links.
func (b *basic) Lstat(filename string) (os.FileInfo, error) {
	return os.Lstat(filename)
}

// Rename moves oldpath to newpath, creating the parent of newpath if needed.
func (b *basic) Rename(oldpath, newpath string) error {
	if err := b.createParent(newpath); err != nil {
		return err
	}
	p, err := osfile.NewPath(oldpath)
	if err != nil {
		return pathError("rename", oldpath, err)
	}
	if _, err := p.Rename(newpath); err != nil {
		return pathError("rename", oldpath, err)
	}
	return nil
}

// Remove deletes a file or an empty directory.
func (b *basic) Remove(filename string) error {
	if err := sys.Remove(filename); err != nil {
		return pathError("remove", filename, err)
	}
	return nil
}

// Join joins path elements with the host separator.
func (b *basic) Join(elem ...string) string {
	return filepath.Join(elem...)
}

// ReadDir returns the Lstat FileInfo of every entry in path, sorted by
// name. Broken links are listed like any other link.
func (b *basic) ReadDir(path string) ([]os.FileInfo, error) {
	entries, err := sys.ReadDir(path)
	if err != nil {
		return nil, pathError("readdir", path, err)
	}
	infos := make([]os.FileInfo, 0, len(entries))
	for _, e := range entries {
		fi, err := e.Info()
		if err != nil {
			// Removed since it was listed.
			continue
		}
		infos = append(infos, fi)
	}
	slices.SortFunc(infos, func(x, y os.FileInfo) int {
		return strings.Compare(x.Name(), y.Name())
	})
	return infos, nil
}

// MkdirAll creates filename and any missing parents. Directories are
// created with osfile.DirPerm; perm is ignored.
func (b *basic) MkdirAll(filename string, _ os.FileMode) error {
	return mkdirAll(filepath.Clean(filename))
}

func mkdirAll(dir string) error {
	p, err := osfile.NewPath(dir)
	switch {
	case errors.Is(err, osfile.ErrInvalidPath):
		// The filesystem root.
		return nil
	case err != nil:
		return pathError("mkdir", dir, err)
	case p.Exists() && p.IsDirectory():
		return nil
	case p.Exists():
		return &fs.PathError{Op: "mkdir", Path: dir, Err: syscall.ENOTDIR}
	}

	if parent := filepath.Dir(dir); parent != dir {
		if err := mkdirAll(parent); err != nil {
			return err
		}
	}
	if err := osfile.CreateDirectory(dir); err != nil && !errors.Is(err, fs.ErrExist) {
		return pathError("mkdir", dir, err)
	}
	return nil
}

func (b *basic) createParent(filename string) error {
	return mkdirAll(filepath.Dir(filename))
}

// Symlink creates link pointing to target, creating the parent of link if
// needed.
func (b *basic) Symlink(target, link string) error {
	if err := b.createParent(link); err != nil {
		return err
	}
	if err := osfile.CreateSymlink(target, link); err != nil {
		return pathError("symlink", link, err)
	}
	return nil
}

// Readlink returns the target of the named link.
func (b *basic) Readlink(link string) (string, error) {
	return os.Readlink(link)
}

// Capabilities reports every capability except locking.
func (b *basic) Capabilities() billy.Capability {
	return capabilities
}

// modeFromFlags translates os.O_* flags into a handle mode.
func modeFromFlags(flag int, perm os.FileMode) sys.Mode {
	m := sys.Mode{
		Append:    flag&os.O_APPEND != 0,
		Create:    flag&os.O_CREATE != 0,
		Truncate:  flag&os.O_TRUNC != 0,
		Exclusive: flag&os.O_EXCL != 0,
		Perm:      uint32(perm.Perm()),
	}
	switch flag & (os.O_RDONLY | os.O_WRONLY | os.O_RDWR) {
	case os.O_WRONLY:
		m.Write = true
	case os.O_RDWR:
		m.Read = true
		m.Write = true
	default:
		m.Read = true
	}
	return m
}

// pathError reports err the way the os package does, so os.IsNotExist and
// friends keep working for billy consumers. Native errors are unwrapped from
// osfile's platform errors.
func pathError(op, path string, err error) error {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return &fs.PathError{Op: op, Path: path, Err: errno}
	}
	if errors.Is(err, sys.ErrUnsupported) {
		return &fs.PathError{Op: op, Path: path, Err: billy.ErrNotSupported}
	}
	return &fs.PathError{Op: op, Path: path, Err: err}
}
