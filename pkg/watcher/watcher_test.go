package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchTriggersCallbackOnWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plots.txt")
	require.NoError(t, os.WriteFile(file, []byte("3 4 5\n"), 0o644))

	fw, err := NewFileWatcher(20*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 4)
	require.NoError(t, fw.Watch([]string{file}, func(path string) {
		changed <- path
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fw.Start(ctx)

	require.NoError(t, os.WriteFile(file, []byte("5 5 5\n"), 0o644))

	select {
	case path := <-changed:
		expected, _ := filepath.Abs(file)
		assert.Equal(t, expected, path)
	case <-time.After(5 * time.Second):
		t.Fatal("callback not called after write")
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plots.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	var calls atomic.Int32
	require.NoError(t, fw.Watch([]string{file}, func(string) { calls.Add(1) }))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fw.Start(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, int32(0), calls.Load())
}

func TestStartStopsOnCancel(t *testing.T) {
	fw, err := NewFileWatcher(time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	fw.Start(ctx)
	cancel()

	select {
	case <-fw.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("event loop did not exit after cancel")
	}
}
