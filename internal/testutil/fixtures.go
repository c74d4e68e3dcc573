// Package testutil provides on-disk fixtures for the osfile tests. Every
// helper works inside a t.TempDir sandbox and fails the test on error.
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test file content.
const (
	// Foo is the three-byte content used by the descriptor tests.
	Foo = "foo"

	// Bar is written over or after Foo.
	Bar = "bar"
)

// Dir returns a fresh sandbox directory in forward-slash form.
func Dir(t testing.TB) string {
	t.Helper()
	return filepath.ToSlash(t.TempDir())
}

// WriteFile creates path (and its parents) with the given content.
func WriteFile(t testing.TB, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ReadFile returns the content of path.
func ReadFile(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// Tree creates entries under root. Keys ending in "/" are directories;
// other keys are files holding the mapped content.
//
// Example:
//
//	testutil.Tree(t, root, map[string]string{
//	    "a/":       "",
//	    "a/b.txt":  "hello",
//	    "a/c/d.md": "nested",
//	})
func Tree(t testing.TB, root string, entries map[string]string) {
	t.Helper()
	for name, content := range entries {
		full := filepath.Join(root, filepath.FromSlash(name))
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}
		WriteFile(t, full, content)
	}
}

// Walk returns every path under root relative to it, in forward-slash form
// and sorted. Directories carry a trailing "/".
func Walk(t testing.TB, root string) []string {
	t.Helper()
	var out []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			rel += "/"
		}
		out = append(out, rel)
		return nil
	})
	require.NoError(t, err)
	sort.Strings(out)
	return out
}

// Exists reports whether path exists, without following a final link.
func Exists(t testing.TB, path string) bool {
	t.Helper()
	_, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return false
	}
	require.NoError(t, err)
	return true
}
