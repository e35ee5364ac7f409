// Package archive stores the original vendor documents on disk so every
// load can be reproduced from the exact bytes that were ingested.
package archive

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Store writes files under <root>/<vendor>/<date>_<filename>.
type Store struct {
	root   string
	logger *slog.Logger
}

func NewStore(root string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{root: root, logger: logger}
}

// Entry describes an archived document.
type Entry struct {
	Path string // relative to the archive root
	Hash []byte // sha256 of the content
	Size int
}

// Save archives the document and returns its entry. Writing the same
// content twice is harmless: the destination is simply overwritten.
func (s *Store) Save(vendor, filename string, date time.Time, content []byte) (*Entry, error) {
	sum := sha256.Sum256(content)

	dir := filepath.Join(s.root, vendor)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s", date.Format("2006-01-02"), filepath.Base(filename))
	dst := filepath.Join(dir, name)
	if err := os.WriteFile(dst, content, 0o644); err != nil {
		return nil, fmt.Errorf("write archive file: %w", err)
	}

	rel := filepath.Join(vendor, name)
	s.logger.Debug("archived source file", "vendor", vendor, "path", rel, "size", len(content))
	return &Entry{Path: rel, Hash: sum[:], Size: len(content)}, nil
}

// Read returns the content of a previously archived document.
func (s *Store) Read(entryPath string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.root, entryPath))
}
