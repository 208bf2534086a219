package fsops

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	writeFile(t, file, "x")

	if !Exists(file) {
		t.Error("Exists(file) = false")
	}
	if !Exists(dir) {
		t.Error("Exists(dir) = false")
	}
	if Exists(filepath.Join(dir, "missing")) {
		t.Error("Exists(missing) = true")
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	writeFile(t, file, "x")

	if !DirExists(dir) {
		t.Error("DirExists(dir) = false")
	}
	if DirExists(file) {
		t.Error("DirExists(file) = true")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c")

	if err := EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if !DirExists(nested) {
		t.Error("nested directory not created")
	}

	// Second call is a no-op.
	if err := EnsureDir(nested); err != nil {
		t.Errorf("EnsureDir on existing dir: %v", err)
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	writeFile(t, src, "hello")

	n, err := CopyFile(src, dst)
	if err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	if n != 5 {
		t.Errorf("bytes = %d, want 5", n)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("reading copy: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("content = %q, want 'hello'", got)
	}
}

func TestCopyFileNeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	writeFile(t, src, "new")
	writeFile(t, dst, "original")

	if _, err := CopyFile(src, dst); err == nil {
		t.Fatal("CopyFile should refuse to overwrite an existing file")
	}

	got, _ := os.ReadFile(dst)
	if string(got) != "original" {
		t.Errorf("destination content = %q, want 'original'", got)
	}
}

func TestCopyFileRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	if _, err := CopyFile(dir, filepath.Join(dir, "out")); err == nil {
		t.Error("CopyFile should reject a directory source")
	}
}

func TestCopyTree(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	writeFile(t, filepath.Join(src, "a.txt"), "aaa")
	writeFile(t, filepath.Join(src, "sub", "b.txt"), "bb")
	if err := os.MkdirAll(filepath.Join(src, "empty"), 0755); err != nil {
		t.Fatal(err)
	}

	files, bytes, err := CopyTree(context.Background(), src, dst, nil)
	if err != nil {
		t.Fatalf("CopyTree: %v", err)
	}
	if files != 2 {
		t.Errorf("files = %d, want 2", files)
	}
	if bytes != 5 {
		t.Errorf("bytes = %d, want 5", bytes)
	}
	for _, rel := range []string{"a.txt", filepath.Join("sub", "b.txt")} {
		if !Exists(filepath.Join(dst, rel)) {
			t.Errorf("missing %s in destination", rel)
		}
	}
	if !DirExists(filepath.Join(dst, "empty")) {
		t.Error("empty directory not recreated")
	}
}

func TestCopyTreeSkipsExisting(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	writeFile(t, filepath.Join(src, "keep.txt"), "theirs")
	writeFile(t, filepath.Join(dst, "keep.txt"), "mine")
	writeFile(t, filepath.Join(src, "new.txt"), "fresh")

	files, _, err := CopyTree(context.Background(), src, dst, nil)
	if err != nil {
		t.Fatalf("CopyTree: %v", err)
	}
	if files != 1 {
		t.Errorf("files = %d, want 1", files)
	}

	got, _ := os.ReadFile(filepath.Join(dst, "keep.txt"))
	if string(got) != "mine" {
		t.Errorf("existing file was overwritten: %q", got)
	}
}

func TestCopyTreeSkipFilter(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	writeFile(t, filepath.Join(src, "wanted.txt"), "w")
	writeFile(t, filepath.Join(src, "cache", "blob"), "b")

	skip := func(rel string) bool { return rel == "cache" }
	files, _, err := CopyTree(context.Background(), src, dst, skip)
	if err != nil {
		t.Fatalf("CopyTree: %v", err)
	}
	if files != 1 {
		t.Errorf("files = %d, want 1", files)
	}
	if Exists(filepath.Join(dst, "cache")) {
		t.Error("skipped directory was copied")
	}
}

func TestCopyTreeCancelled(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	writeFile(t, filepath.Join(src, "a.txt"), "aaa")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := CopyTree(ctx, src, filepath.Join(dir, "dst"), nil); err == nil {
		t.Error("CopyTree should fail under a cancelled context")
	}
}
