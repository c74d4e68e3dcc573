package osfile

import (
	"cmp"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/jmgilman/go/fs/osfile/internal/sys"
)

// DirPerm is the permission mode used by CreateDirectory.
const DirPerm = 0o755

// ListDirectory returns the entries of dir, one level deep, without the "."
// and ".." pseudo-entries. Directories come first, then everything else;
// each group is ordered by name.
//
// Symbolic links are reported with the type of their target. Entries whose
// type cannot be resolved, such as broken links or entries removed while
// listing, are skipped.
func ListDirectory(dir string) ([]Path, error) {
	return listDirectory(dir, false)
}

// listDirectory lists dir. With keepUnresolved set, entries whose type
// cannot be resolved are kept as existing entries with no type, which lets
// removal delete broken links.
func listDirectory(dir string, keepUnresolved bool) ([]Path, error) {
	const op = "list"

	entries, err := sys.ReadDir(dir)
	if err != nil {
		return nil, ioError(op, dir, err)
	}

	prefix := entryPrefix(dir)
	out := make([]Path, 0, len(entries))
	for _, e := range entries {
		if p, ok := pathFromEntry(prefix, e, keepUnresolved); ok {
			out = append(out, p)
		}
	}

	slices.SortFunc(out, compareListing)
	return out, nil
}

// CreateDirectory creates a single directory with mode DirPerm. The parent
// must already exist.
func CreateDirectory(dir string) error {
	if err := sys.Mkdir(dir, DirPerm); err != nil {
		return ioError("mkdir", dir, err)
	}
	return nil
}

func compareListing(a, b Path) int {
	if a.isDirectory != b.isDirectory {
		if a.isDirectory {
			return -1
		}
		return 1
	}
	return cmp.Compare(a.name, b.name)
}

// entryPrefix returns dir in the form that child names are appended to.
func entryPrefix(dir string) string {
	dir = NormalizePath(dir)
	if strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + "/"
}

// pathFromEntry builds a Path from a directory entry without listing the
// parent again.
func pathFromEntry(prefix string, e fs.DirEntry, keepUnresolved bool) (Path, bool) {
	name := e.Name()
	if name == "." || name == ".." {
		return Path{}, false
	}
	p := Path{
		fullPath: prefix + name,
		name:     name,
		exists:   true,
	}

	mode := e.Type()
	if mode&fs.ModeSymlink != 0 {
		p.isSymlink = true
		fi, err := os.Stat(p.fullPath)
		if err != nil {
			if keepUnresolved {
				return p, true
			}
			log().Debug("skipping unresolvable entry", "path", p.fullPath, "error", err)
			return Path{}, false
		}
		mode = fi.Mode().Type()
	}
	p.isDirectory = mode.IsDir()
	p.isRegularFile = mode.IsRegular()
	return p, true
}
