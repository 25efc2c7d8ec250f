package ingest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tolu-akinola/paystub-tracker/constants"
)

type DirStats struct {
	Scanned uint32
	Matched uint32
	Skipped uint32
}

// ListDocuments resolves root to the ordered set of documents to process.
// A file path yields itself (when its extension is allowed); a directory is
// walked recursively, filtered by includeExts (or the defaults), with hidden
// entries skipped when requested. Paths come back sorted so batch output is
// stable regardless of filesystem order.
func ListDocuments(root string, includeExts []string, skipHidden bool) ([]string, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("input path is required")
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, DirStats{}, err
	}

	exts := map[string]struct{}{}
	if len(includeExts) == 0 {
		exts = constants.AllowedExtensions
	} else {
		for _, e := range includeExts {
			e = constants.NormalizeExt(strings.TrimSpace(e))
			if e != "" {
				exts[e] = struct{}{}
			}
		}
	}

	var stats DirStats
	if !info.IsDir() {
		stats.Scanned = 1
		ext := constants.NormalizeExt(filepath.Ext(root))
		if _, ok := exts[ext]; !ok {
			return nil, stats, errors.New("unsupported file type: " + root)
		}
		stats.Matched = 1
		return []string{root}, stats, nil
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			stats.Skipped++
			return nil // continue walking
		}
		if skipHidden && IsHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			stats.Skipped++
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := exts[ext]; !ok {
			return nil
		}
		stats.Matched++
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}

	sort.Strings(paths)
	return paths, stats, nil
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}
