// Package pathmap computes destination paths for items discovered under a
// sync root. Mapping is a pure function of (sourceRoot, destRoot, itemPath):
// the item's path relative to the source root is joined onto the destination
// root, so nested structure and filenames carry over verbatim.
package pathmap

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Map returns the path under destRoot corresponding to itemPath under
// sourceRoot. itemPath must be sourceRoot itself or a descendant of it;
// anything else is a caller bug and returns an error.
//
// The remap is structural (Rel then Join), not a string substitution, so a
// root whose name recurs deeper in the path cannot be matched twice.
func Map(sourceRoot, destRoot, itemPath string) (string, error) {
	srcClean := filepath.Clean(sourceRoot)
	dstClean := filepath.Clean(destRoot)
	itemClean := filepath.Clean(itemPath)

	if !Contains(srcClean, itemClean) {
		return "", fmt.Errorf("path %s is not under source root %s", itemPath, sourceRoot)
	}

	rel, err := filepath.Rel(srcClean, itemClean)
	if err != nil {
		return "", fmt.Errorf("computing relative path of %s under %s: %w", itemPath, sourceRoot, err)
	}
	if rel == "." {
		return dstClean, nil
	}

	return filepath.Join(dstClean, rel), nil
}

// Contains reports whether path is root or a descendant of root.
// Both arguments are compared in cleaned form; the prefix check is
// separator-aware so "/data/a" does not contain "/data/ab".
func Contains(root, path string) bool {
	rootClean := filepath.Clean(root)
	pathClean := filepath.Clean(path)

	if pathClean == rootClean {
		return true
	}
	return strings.HasPrefix(pathClean, rootClean+string(filepath.Separator))
}
