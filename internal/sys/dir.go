package sys

import (
	"io"
	"io/fs"
	"os"
)

// readDirBatch is the number of entries requested from the OS per call.
const readDirBatch = 256

// ReadDir returns the entries of dir in the order the OS reports them.
// Entry types describe the entries themselves, not link targets.
func ReadDir(dir string) ([]fs.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []fs.DirEntry
	for {
		entries, err := f.ReadDir(readDirBatch)
		out = append(out, entries...)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
