package archive

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSave(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root, nil)

	content := []byte("mercuriale content")
	date := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	entry, err := store.Save("AUDIERNE", "cours.pdf", date, content)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("AUDIERNE", "2024-01-15_cours.pdf"), entry.Path)
	assert.Equal(t, len(content), entry.Size)
	sum := sha256.Sum256(content)
	assert.Equal(t, sum[:], entry.Hash)

	onDisk, err := os.ReadFile(filepath.Join(root, entry.Path))
	require.NoError(t, err)
	assert.Equal(t, content, onDisk)
}

func TestStoreSaveOverwrite(t *testing.T) {
	store := NewStore(t.TempDir(), nil)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	_, err := store.Save("DEMARNE", "mercuriale.xlsx", date, []byte("first"))
	require.NoError(t, err)
	entry, err := store.Save("DEMARNE", "mercuriale.xlsx", date, []byte("second"))
	require.NoError(t, err)

	got, err := store.Read(entry.Path)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestStoreSaveStripsDirectories(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root, nil)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	entry, err := store.Save("VVQM", "/uploads/weekly/mercuriale.pdf", date, []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("VVQM", "2024-01-15_mercuriale.pdf"), entry.Path)
}
