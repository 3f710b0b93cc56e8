// pkg/source/fswatch/integration_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem
// PURPOSE: Drive the registry end to end from real filesystem changes

package fswatch_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BannZay/LibEvents/pkg/events"
	"github.com/BannZay/LibEvents/pkg/source/fswatch"
)

func TestWatcherDrivesRegistry(t *testing.T) {
	if testing.Short() {
		t.Skip("filesystem watcher test skipped in short mode")
	}

	dir := t.TempDir()

	watcher, err := fswatch.New(dir)
	require.NoError(t, err)
	defer watcher.Close()

	registry := events.New(watcher)
	listener := events.NewListener(registry, nil)
	defer listener.UnregisterAllEvents()

	var mu sync.Mutex
	var created []string
	require.NoError(t, listener.Set(fswatch.EventCreated, func(target any, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		if len(args) > 0 {
			if path, ok := args[0].(string); ok {
				created = append(created, path)
			}
		}
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watcher.Start(ctx, registry)

	path := filepath.Join(dir, "drop.txt")
	require.NoError(t, os.WriteFile(path, []byte("payload"), 0644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(created) > 0
	}, 3*time.Second, 10*time.Millisecond, "file creation should reach the listener")

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, created, path)
}

func TestDisabledListenerSeesNothing(t *testing.T) {
	if testing.Short() {
		t.Skip("filesystem watcher test skipped in short mode")
	}

	dir := t.TempDir()

	watcher, err := fswatch.New(dir)
	require.NoError(t, err)
	defer watcher.Close()

	registry := events.New(watcher)
	listener := events.NewListener(registry, nil)
	defer listener.UnregisterAllEvents()

	var count int
	var mu sync.Mutex
	require.NoError(t, listener.Set(fswatch.EventCreated, func(target any, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		count++
	}))
	listener.Disable()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watcher.Start(ctx, registry)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0644))

	// Give the watcher a moment; nothing should arrive.
	time.Sleep(200 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, count)
}
