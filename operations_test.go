package osfile

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fs/osfile/internal/testutil"
)

// TestNormalizePath verifies the pure string rewrite.
func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/foo/bar/", "/foo/bar"},
		{"/foo//bar", "/foo/bar"},
		{`c:\foo\bar`, "c:/foo/bar"},
		{"", ""},
		{"/", "/"},
		{"//", "/"},
		{"/foo/./bar", "/foo/bar"},
		{"/foo/././bar", "/foo/bar"},
		{"a/.//./b", "a/b"},
		{`c:\`, "c:"},
		{"./foo", "./foo"},
		{"../foo/", "../foo"},
		{"foo/..", "foo/.."},
		{"foo", "foo"},
		{`\\server\share\\x\`, "/server/share/x"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizePath(tt.in); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestFullPath verifies resolution to an absolute, link-free path.
func TestFullPath(t *testing.T) {
	dir := testutil.Dir(t)
	testutil.WriteFile(t, dir+"/real/f.txt", "x")
	require.NoError(t, CreateSymlink(dir+"/real", dir+"/link"))

	want, err := filepath.EvalSymlinks(filepath.FromSlash(dir + "/real/f.txt"))
	require.NoError(t, err)

	got, err := FullPath(dir + "/link/f.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(want), got)

	t.Chdir(dir)
	got, err = FullPath("real/../real/f.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(want), got)

	_, err = FullPath(dir + "/missing")
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

// TestCreateSymlink verifies file and directory links and a link over an
// existing entry.
func TestCreateSymlink(t *testing.T) {
	dir := testutil.Dir(t)
	testutil.WriteFile(t, dir+"/target.txt", "hello")
	testutil.Tree(t, dir, map[string]string{"tdir/": "", "tdir/in": "x"})

	require.NoError(t, CreateSymlink(dir+"/target.txt", dir+"/flink"))
	assert.Equal(t, "hello", testutil.ReadFile(t, dir+"/flink"))

	require.NoError(t, CreateSymlink("tdir", dir+"/dlink"))
	assert.Equal(t, "x", testutil.ReadFile(t, dir+"/dlink/in"))

	target, err := os.Readlink(dir + "/dlink")
	require.NoError(t, err)
	assert.Equal(t, "tdir", target)

	err = CreateSymlink(dir+"/target.txt", dir+"/flink")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, fs.ErrExist)
}
