package osfile

import (
	"io"
	"testing"

	"github.com/jmgilman/go/fs/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fs/osfile/internal/testutil"
)

// TestReader_RoundTrip verifies bytes written through a Writer read back
// unchanged and Size matches.
func TestReader_RoundTrip(t *testing.T) {
	dir := testutil.Dir(t)
	payload := []byte("the quick brown fox\x00\xff jumps")

	p, err := NewPath(dir + "/rt.bin")
	require.NoError(t, err)

	w, err := p.OpenWrite(ModeCreate)
	require.NoError(t, err)
	n, err := w.Write(payload)
	require.NoError(t, err)
	require.Equal(t, len(payload), n)
	require.NoError(t, w.Close())

	r, err := p.OpenRead()
	require.NoError(t, err)
	defer r.Close()

	size, err := r.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), size)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Equal(t, dir+"/rt.bin", r.Path())
}

// TestReader_EOF verifies 0, io.EOF is returned only at the end.
func TestReader_EOF(t *testing.T) {
	dir := testutil.Dir(t)
	testutil.WriteFile(t, dir+"/f", testutil.Foo)

	r, err := OpenReader(dir + "/f")
	require.NoError(t, err)
	defer r.Close()

	buf := make([]byte, 16)
	n, err := r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, testutil.Foo, string(buf[:n]))

	n, err = r.Read(buf)
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)

	n, err = r.Read(nil)
	assert.Equal(t, 0, n)
	assert.NoError(t, err)
}

// TestReader_Seek verifies each whence and the rejection of unknown ones.
func TestReader_Seek(t *testing.T) {
	dir := testutil.Dir(t)
	testutil.WriteFile(t, dir+"/f", "0123456789")

	r, err := OpenReader(dir + "/f")
	require.NoError(t, err)
	defer r.Close()

	tests := []struct {
		name   string
		offset int64
		whence int
		want   int64
		next   string
	}{
		{"start", 2, io.SeekStart, 2, "23"},
		{"current", 1, io.SeekCurrent, 5, "56"},
		{"end", -3, io.SeekEnd, 7, "78"},
		{"past end", 20, io.SeekStart, 20, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := r.Seek(tt.offset, tt.whence)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pos)

			buf := make([]byte, 2)
			n, _ := r.Read(buf)
			assert.Equal(t, tt.next, string(buf[:n]))
		})
	}

	_, err = r.Seek(0, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)

	_, err = r.Seek(-1, io.SeekStart)
	assert.ErrorIs(t, err, ErrIO)
}

// TestReader_ReadAt verifies positional reads leave the cursor alone.
func TestReader_ReadAt(t *testing.T) {
	dir := testutil.Dir(t)
	testutil.WriteFile(t, dir+"/f", "0123456789")

	r, err := OpenReader(dir + "/f")
	require.NoError(t, err)
	defer r.Close()

	buf := make([]byte, 4)
	n, err := r.ReadAt(buf, 3)
	require.NoError(t, err)
	assert.Equal(t, "3456", string(buf[:n]))

	n, err = r.ReadAt(buf, 8)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "89", string(buf[:n]))

	_, err = r.ReadAt(buf, -1)
	assert.ErrorIs(t, err, ErrIO)

	// The cursor never moved.
	head := make([]byte, 2)
	n, err = r.Read(head)
	require.NoError(t, err)
	assert.Equal(t, "01", string(head[:n]))
}

// TestReader_Closed verifies every operation fails after Close and that
// Close is idempotent.
func TestReader_Closed(t *testing.T) {
	dir := testutil.Dir(t)
	testutil.WriteFile(t, dir+"/f", testutil.Foo)

	r, err := OpenReader(dir + "/f")
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	_, err = r.Read(make([]byte, 1))
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, core.ErrClosed)

	_, err = r.ReadAt(make([]byte, 1), 0)
	assert.ErrorIs(t, err, core.ErrClosed)

	_, err = r.Seek(0, io.SeekStart)
	assert.ErrorIs(t, err, core.ErrClosed)

	_, err = r.Size()
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, core.ErrClosed)
}

// TestReader_Directory verifies reading a directory fails as an I/O error.
func TestReader_Directory(t *testing.T) {
	dir := testutil.Dir(t)

	r, err := OpenReader(dir)
	if err != nil {
		assert.ErrorIs(t, err, ErrIO)
		return
	}
	defer r.Close()
	_, err = r.Read(make([]byte, 8))
	assert.ErrorIs(t, err, ErrIO)
}
