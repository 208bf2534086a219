// Package fsops holds the filesystem primitives the synchronizer is built on:
// existence checks, directory creation, and the copy operations. All copies
// are additive; nothing here removes or overwrites an existing entry.
package fsops

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Exists reports whether anything is present at path, file or directory.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDir creates path and any missing ancestors.
// It is a no-op if the directory already exists.
func EnsureDir(path string) error {
	if DirExists(path) {
		return nil
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// EnsureParent creates the parent directory of path if it is missing.
func EnsureParent(path string) error {
	return EnsureDir(filepath.Dir(path))
}

// CopyFile copies a single file from src to dst, preserving the source's
// permission bits. Returns the number of bytes copied. The destination must
// not already exist; an existing file is never overwritten.
func CopyFile(src, dst string) (int64, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", src, err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory, not a file", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	// O_EXCL keeps the copy additive: if something appeared at dst since the
	// existence check, the copy fails rather than clobbering it.
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", dst, err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return n, fmt.Errorf("closing %s: %w", dst, err)
	}
	return n, nil
}

// CopyTree recursively copies the directory at src to dst as one unit.
// Returns the number of files copied and the total bytes written.
// Entries already present under dst are left untouched. If skip is non-nil
// it is consulted with each entry's path relative to src; skipped
// directories are not descended into.
func CopyTree(ctx context.Context, src, dst string, skip func(rel string) bool) (int, int64, error) {
	var files int
	var bytes int64

	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if skip != nil && rel != "." && skip(rel) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return EnsureDir(target)
		}
		if Exists(target) {
			return nil
		}
		n, err := CopyFile(path, target)
		if err != nil {
			return err
		}
		files++
		bytes += n
		return nil
	})
	if err != nil {
		return files, bytes, err
	}
	return files, bytes, nil
}
