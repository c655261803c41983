package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microscan/internal/config"
)

func TestRunStopsOnContextCancel(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Port:             0,
		APIURL:           "http://127.0.0.1:9/detect",
		RequestTimeout:   1,
		ExampleDirectory: dir,
		PixelToNM:        100,
		PreviewInterval:  50,
		DatabasePath:     filepath.Join(dir, "scans.db"),
		ThumbnailWidth:   160,
		LogDirectory:     filepath.Join(dir, "logs"),
		StaticDirectory:  dir,
	}

	application, err := New(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- application.Run(ctx)
	}()

	// Let the listener come up before asking it to stop.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}
