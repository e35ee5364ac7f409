package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacriee/prices-tracker/constants"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestScanDropDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "AUDIERNE", "cours.tokens.json"))
	writeFile(t, filepath.Join(root, "DEMARNE", "mercuriale.xlsx"))
	writeFile(t, filepath.Join(root, "laurent-daniel", "ardoise.pdf"))
	writeFile(t, filepath.Join(root, "AUDIERNE", "notes.txt"))   // wrong extension
	writeFile(t, filepath.Join(root, "UNKNOWN", "cours.pdf"))    // unknown vendor
	writeFile(t, filepath.Join(root, "stray.pdf"))               // no vendor folder
	writeFile(t, filepath.Join(root, "AUDIERNE", ".hidden.pdf")) // hidden file
	writeFile(t, filepath.Join(root, ".archive", "old.pdf"))     // hidden dir

	found, stats, err := ScanDropDir(root)
	require.NoError(t, err)

	got := map[string]constants.Vendor{}
	for _, d := range found {
		got[filepath.Base(d.Path)] = d.Vendor
	}
	assert.Equal(t, map[string]constants.Vendor{
		"cours.tokens.json": constants.VendorAudierne,
		"mercuriale.xlsx":   constants.VendorDemarne,
		"ardoise.pdf":       constants.VendorLaurentDaniel,
	}, got)
	assert.Equal(t, uint32(3), stats.Matched)
	assert.Equal(t, uint32(3), stats.Skipped)
}

func TestScanDropDirEmptyRoot(t *testing.T) {
	_, _, err := ScanDropDir("")
	assert.Error(t, err)
}

func TestVendorForPath(t *testing.T) {
	root := filepath.Join("drop")

	vendor, ok := VendorForPath(root, filepath.Join("drop", "VVQM", "week3.pdf"))
	require.True(t, ok)
	assert.Equal(t, constants.VendorVVQM, vendor)

	vendor, ok = VendorForPath(root, filepath.Join("drop", "hennequin", "sub", "week3.pdf"))
	require.True(t, ok)
	assert.Equal(t, constants.VendorHennequin, vendor)

	_, ok = VendorForPath(root, filepath.Join("drop", "week3.pdf"))
	assert.False(t, ok)

	_, ok = VendorForPath(root, filepath.Join("drop", "NOBODY", "week3.pdf"))
	assert.False(t, ok)
}

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt(".pdf"))
	assert.True(t, AllowedExt(".XLSX"))
	assert.True(t, AllowedExt(".json"))
	assert.False(t, AllowedExt(".txt"))
	assert.False(t, AllowedExt(""))
}
