package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_isDeclaration(t *testing.T) {
	tests := []struct {
		name string
		exts []string
		path string
		want bool
	}{
		{
			name: "yaml declaration",
			exts: []string{".yaml", ".yml"},
			path: "/project/types.yaml",
			want: true,
		},
		{
			name: "yml declaration",
			exts: []string{".yaml", ".yml"},
			path: "/project/nested/dir/types.yml",
			want: true,
		},
		{
			name: "generated artifact",
			exts: []string{".yaml", ".yml"},
			path: "/project/generated/nibble.rs",
			want: false,
		},
		{
			name: "no extension",
			exts: []string{".yaml"},
			path: "/project/Makefile",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &Watcher{exts: tt.exts}

			assert.Equal(t, tt.want, w.isDeclaration(tt.path))
		})
	}
}

func TestWatcher_Run(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tmpDir := t.TempDir()

	var mu sync.Mutex
	var batches [][]string

	onChange := func(paths []string) {
		mu.Lock()
		defer mu.Unlock()
		batches = append(batches, paths)
	}

	w, err := New([]string{".yaml"}, onChange, zerolog.Nop())
	require.NoError(t, err)
	defer w.Close()

	w.debounce = 50 * time.Millisecond

	require.NoError(t, w.AddDirectory(tmpDir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)

	decl := filepath.Join(tmpDir, "types.yaml")
	require.NoError(t, os.WriteFile(decl, []byte("declarations: []"), 0o644))

	other := filepath.Join(tmpDir, "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))

	time.Sleep(300 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()

	require.NotEmpty(t, batches, "expected a change batch for the declaration file")

	var seen []string
	for _, batch := range batches {
		for _, path := range batch {
			seen = append(seen, filepath.Base(path))
		}
	}

	assert.Contains(t, seen, "types.yaml")
	assert.NotContains(t, seen, "notes.txt")
}

func TestWatcher_AddDirectorySkipsHidden(t *testing.T) {
	tmpDir := t.TempDir()

	for _, dir := range []string{"specs", "specs/nested", ".git", ".cache"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, dir), 0o755))
	}

	w, err := New([]string{".yaml"}, func([]string) {}, zerolog.Nop())
	require.NoError(t, err)
	defer w.Close()

	assert.NoError(t, w.AddDirectory(tmpDir))
}

func TestWatcher_Close(t *testing.T) {
	w, err := New([]string{".yaml"}, func([]string) {}, zerolog.Nop())
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
