package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacriee/prices-tracker/constants"
)

func TestStartWatcherDebouncesBursts(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "AUDIERNE"), 0755))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{Root: root, Debounce: 50 * time.Millisecond})
	require.NoError(t, err)

	path := filepath.Join(root, "AUDIERNE", "cours.tokens.json")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case d := <-evCh:
		assert.Equal(t, constants.VendorAudierne, d.Vendor)
		assert.Equal(t, path, d.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("no event before the deadline")
	}

	// The burst of writes coalesced into a single event.
	select {
	case d := <-evCh:
		t.Fatalf("unexpected second event for %s", d.Path)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestStartWatcherInitialScan(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "DEMARNE"), 0755))
	path := filepath.Join(root, "DEMARNE", "mercuriale.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{Root: root, InitialScan: true})
	require.NoError(t, err)

	select {
	case d := <-evCh:
		assert.Equal(t, constants.VendorDemarne, d.Vendor)
		assert.Equal(t, path, d.Path)
	case <-time.After(time.Second):
		t.Fatal("existing files are emitted on start")
	}
}

func TestStartWatcherRequiresRoot(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{})
	assert.Error(t, err)
}
