// Package ingest discovers vendor documents in a drop directory laid out as
// <root>/<vendor>/<file>. The vendor is read from the first path element, so
// a weekly upload only needs to land in the right folder.
package ingest

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lacriee/prices-tracker/constants"
)

// Discovered is one vendor document found under the drop root.
type Discovered struct {
	Vendor constants.Vendor
	Path   string
}

// DirStats summarizes a directory scan.
type DirStats struct {
	Scanned uint32
	Matched uint32
	Skipped uint32
	Failed  uint32
}

// ScanDropDir walks root and returns the documents whose extension is
// accepted and whose top-level folder names a known vendor. Everything else
// is counted and skipped, a stray file never aborts the scan.
func ScanDropDir(root string) ([]Discovered, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var found []Discovered
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			stats.Failed++
			return nil // continue walking
		}
		if IsHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		vendor, ok := VendorForPath(root, path)
		if !ok || !AllowedExt(filepath.Ext(path)) {
			stats.Skipped++
			return nil
		}
		stats.Matched++
		found = append(found, Discovered{Vendor: vendor, Path: path})
		return nil
	})
	if err != nil {
		return found, stats, err
	}
	return found, stats, nil
}

// VendorForPath resolves the vendor from the first path element below root.
func VendorForPath(root, path string) (constants.Vendor, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", false
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) < 2 {
		return "", false // file directly under root has no vendor folder
	}
	return constants.ParseVendor(parts[0])
}

// AllowedExt checks if a file extension is in the accepted set.
func AllowedExt(ext string) bool {
	_, ok := constants.AllowedExtensions[constants.NormalizeExt(ext)]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
