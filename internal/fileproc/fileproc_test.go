package fileproc

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, contents map[string]string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, len(contents))
	for name, content := range contents {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		paths = append(paths, path)
	}
	return paths
}

func TestLoadFiles_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"c.js", "a.js", "b.js"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("// "+name), 0o644))
		paths = append(paths, path)
	}

	files, err := LoadFiles(context.Background(), paths, nil)
	require.NoError(t, err)
	require.Len(t, files, 3)

	for i, path := range paths {
		assert.Equal(t, path, files[i].Name)
		assert.Equal(t, "// "+filepath.Base(path), files[i].Content)
	}
}

func TestLoadFiles_Empty(t *testing.T) {
	files, err := LoadFiles(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLoadFiles_MissingFileFails(t *testing.T) {
	paths := writeFiles(t, map[string]string{"ok.js": "var x;"})
	paths = append(paths, filepath.Join(t.TempDir(), "missing.js"))

	_, err := LoadFiles(context.Background(), paths, nil)
	require.Error(t, err)

	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Contains(t, lerr.Path, "missing.js")
}

func TestLoadFiles_ProgressCallback(t *testing.T) {
	paths := writeFiles(t, map[string]string{
		"a.js": "1",
		"b.js": "2",
		"c.js": "3",
	})

	var ticks atomic.Int64
	_, err := LoadFiles(context.Background(), paths, func() { ticks.Add(1) })
	require.NoError(t, err)
	assert.Equal(t, int64(3), ticks.Load())
}

func TestLoadFiles_CancelledContext(t *testing.T) {
	paths := writeFiles(t, map[string]string{"a.js": "1"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadFiles(ctx, paths, nil)
	assert.Error(t, err)
}
