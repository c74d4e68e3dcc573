package osfile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/fs/osfile/internal/sys"
)

// NormalizePath rewrites p with forward slashes only, no repeated slashes,
// no "/./" segments and no trailing slash. It never touches the filesystem.
// Drive letters and leading "." or ".." segments are left as they are, and
// "/" stays "/".
func NormalizePath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	for {
		next := strings.ReplaceAll(p, "/./", "/")
		next = strings.ReplaceAll(next, "//", "/")
		if next == p {
			break
		}
		p = next
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = p[:len(p)-1]
	}
	return p
}

// FullPath resolves p to an absolute path with every symbolic link
// evaluated, using forward slashes. p must exist.
func FullPath(p string) (string, error) {
	abs, err := filepath.Abs(filepath.FromSlash(p))
	if err != nil {
		return "", ioError("resolve", p, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", ioError("resolve", p, err)
	}
	return filepath.ToSlash(resolved), nil
}

// CreateSymlink creates a symbolic link at link pointing to target. On
// Windows a directory link is created when target resolves to a directory;
// 32-bit Windows builds return ErrUnsupported.
func CreateSymlink(target, link string) error {
	const op = "symlink"

	dir := false
	if fi, err := os.Stat(resolveLinkTarget(target, link)); err == nil {
		dir = fi.IsDir()
	}

	if err := sys.Symlink(target, link, dir); err != nil {
		if err == sys.ErrUnsupported {
			return withTarget(unsupported(op, link), target)
		}
		return withTarget(ioError(op, link, err), target)
	}
	return nil
}

// resolveLinkTarget interprets a relative target against the directory that
// will contain the link.
func resolveLinkTarget(target, link string) string {
	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(filepath.Dir(link), target)
}
