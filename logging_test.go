package osfile

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fs/osfile/internal/testutil"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

// TestSetLogger_RemoveQuietly verifies swallowed errors are logged at warn.
func TestSetLogger_RemoveQuietly(t *testing.T) {
	buf := captureLogs(t)

	p, err := NewPath(testutil.Dir(t) + "/missing")
	require.NoError(t, err)
	require.False(t, p.RemoveQuietly())

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "remove failed")
	assert.Contains(t, out, p.FullPath())
}

// TestSetLogger_TransferFallback verifies the buffered fallback is logged
// when the kernel refuses an append target.
func TestSetLogger_TransferFallback(t *testing.T) {
	buf := captureLogs(t)
	dir := testutil.Dir(t)
	testutil.WriteFile(t, dir+"/src", testutil.Bar)
	testutil.WriteFile(t, dir+"/dst", testutil.Foo)

	w, err := OpenWriter(dir+"/dst", ModeAppend)
	require.NoError(t, err)
	defer w.Close()
	_, err = w.WriteFromFile(dir + "/src")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "buffered copy")
}

// TestSetLogger_Nil verifies nil restores the discarding default.
func TestSetLogger_Nil(t *testing.T) {
	SetLogger(nil)
	require.NotNil(t, log())
	assert.False(t, log().Enabled(t.Context(), slog.LevelError))
}
