package config

// Manifest describes a set of root pairs to reconcile in one invocation.
// The manifest is optional: a single pair can be given directly on the
// command line. Nothing in the manifest persists state between runs.
type Manifest struct {
	Version  int      `yaml:"version"`
	Pairs    []Pair   `yaml:"pairs"`
	Excludes []string `yaml:"excludes,omitempty"`
}

// Pair names the two roots of one bidirectional reconciliation, plus any
// exclusion globs that apply only to this pair.
type Pair struct {
	Left     string   `yaml:"left"`
	Right    string   `yaml:"right"`
	Excludes []string `yaml:"excludes,omitempty"`
}

// AllExcludes returns the manifest-level and pair-level exclude globs
// combined, manifest-level first.
func (m *Manifest) AllExcludes(p Pair) []string {
	out := make([]string, 0, len(m.Excludes)+len(p.Excludes))
	out = append(out, m.Excludes...)
	out = append(out, p.Excludes...)
	return out
}
