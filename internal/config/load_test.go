package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "treesync.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return path
}

func TestLoadValid(t *testing.T) {
	path := writeManifest(t, `
version: 1
excludes:
  - "**/.git/**"
pairs:
  - left: /data/left
    right: /data/right
    excludes:
      - "*.tmp"
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Pairs) != 1 {
		t.Fatalf("pairs = %d, want 1", len(m.Pairs))
	}
	p := m.Pairs[0]
	if p.Left != "/data/left" || p.Right != "/data/right" {
		t.Errorf("pair = %+v", p)
	}

	all := m.AllExcludes(p)
	if len(all) != 2 || all[0] != "**/.git/**" || all[1] != "*.tmp" {
		t.Errorf("AllExcludes = %v", all)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeManifest(t, "version: [not closed")
	if _, err := Load(path); err == nil {
		t.Error("Load should fail for malformed YAML")
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest Manifest
		wantSub  string
	}{
		{
			name:     "bad version",
			manifest: Manifest{Version: 2, Pairs: []Pair{{Left: "/a", Right: "/b"}}},
			wantSub:  "unsupported version",
		},
		{
			name:     "no pairs",
			manifest: Manifest{Version: 1},
			wantSub:  "at least one pair",
		},
		{
			name:     "missing left",
			manifest: Manifest{Version: 1, Pairs: []Pair{{Right: "/b"}}},
			wantSub:  "'left' is required",
		},
		{
			name:     "relative right",
			manifest: Manifest{Version: 1, Pairs: []Pair{{Left: "/a", Right: "data"}}},
			wantSub:  "absolute path",
		},
		{
			name:     "same roots",
			manifest: Manifest{Version: 1, Pairs: []Pair{{Left: "/a", Right: "/a"}}},
			wantSub:  "same path",
		},
		{
			name:     "bad glob",
			manifest: Manifest{Version: 1, Pairs: []Pair{{Left: "/a", Right: "/b", Excludes: []string{"[unclosed"}}}},
			wantSub:  "invalid exclude pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(&tt.manifest)
			if len(errs) == 0 {
				t.Fatal("Validate returned no errors")
			}
			found := false
			for _, e := range errs {
				if strings.Contains(e, tt.wantSub) {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %v do not mention %q", errs, tt.wantSub)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Errors: []string{"first", "second"}}
	msg := err.Error()
	if !strings.Contains(msg, "first") || !strings.Contains(msg, "second") {
		t.Errorf("Error() = %q", msg)
	}
}
