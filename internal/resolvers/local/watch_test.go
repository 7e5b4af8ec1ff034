package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher_Run(t *testing.T) {
	t.Run("fires after a file is created", func(t *testing.T) {
		dir := t.TempDir()

		watcher, err := NewWatcher(dir)
		require.NoError(t, err)
		defer watcher.Close()
		watcher.debounce = 50 * time.Millisecond

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fired := make(chan struct{}, 1)
		go func() {
			_ = watcher.Run(ctx, func() {
				select {
				case fired <- struct{}{}:
				default:
				}
			})
		}()

		// Give the watcher loop a moment to start before writing.
		time.Sleep(100 * time.Millisecond)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "train.csv"), []byte("x"), 0644))

		select {
		case <-fired:
		case <-ctx.Done():
			t.Fatal("watcher did not fire after file creation")
		}
	})

	t.Run("run returns when context is cancelled", func(t *testing.T) {
		dir := t.TempDir()

		watcher, err := NewWatcher(dir)
		require.NoError(t, err)
		defer watcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- watcher.Run(ctx, func() {})
		}()

		cancel()

		select {
		case err := <-done:
			require.ErrorIs(t, err, context.Canceled)
		case <-time.After(2 * time.Second):
			t.Fatal("Run did not return after cancellation")
		}
	})
}
