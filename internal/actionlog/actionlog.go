// Package actionlog records the filesystem mutations a sync run performs.
// The log is append-only and deduplicates on append: a bidirectional pass
// can re-derive an equivalent action, and the report must list each action
// once, in first-occurrence order.
package actionlog

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Kind discriminates the two mutation types a run can perform.
type Kind string

const (
	KindCreatedDirectory Kind = "created-directory"
	KindCopied           Kind = "copied"
)

// Entry is one recorded mutation. For KindCreatedDirectory only Path is set;
// for KindCopied, Source and Dest are set.
type Entry struct {
	Kind   Kind
	Path   string
	Source string
	Dest   string
}

// CreatedDirectory builds an entry for a directory creation.
func CreatedDirectory(path string) Entry {
	return Entry{Kind: KindCreatedDirectory, Path: path}
}

// Copied builds an entry for a completed copy.
func Copied(source, dest string) Entry {
	return Entry{Kind: KindCopied, Source: source, Dest: dest}
}

// String renders the entry in the report format.
func (e Entry) String() string {
	switch e.Kind {
	case KindCreatedDirectory:
		return fmt.Sprintf("CREATED DIRECTORY: %s", e.Path)
	case KindCopied:
		return fmt.Sprintf("COPIED: %s -> %s", e.Source, e.Dest)
	default:
		return fmt.Sprintf("UNKNOWN ACTION: kind=%s path=%s source=%s dest=%s", string(e.Kind), e.Path, e.Source, e.Dest)
	}
}

// Log is an insertion-ordered set of entries. It is appended to by both
// directions of a run and read once at report time. Not safe for concurrent
// use; directions run sequentially.
type Log struct {
	entries []Entry
	seen    mapset.Set[Entry]
}

// New returns an empty Log.
func New() *Log {
	return &Log{seen: mapset.NewThreadUnsafeSet[Entry]()}
}

// Append records the entry unless an identical one is already present.
// Returns true if the entry was added.
func (l *Log) Append(e Entry) bool {
	if !l.seen.Add(e) {
		return false
	}
	l.entries = append(l.entries, e)
	return true
}

// Entries returns the recorded entries in first-occurrence order.
// The returned slice is owned by the log and must not be mutated.
func (l *Log) Entries() []Entry {
	return l.entries
}

// Len returns the number of distinct entries recorded.
func (l *Log) Len() int {
	return len(l.entries)
}

// Empty reports whether no actions were recorded.
func (l *Log) Empty() bool {
	return len(l.entries) == 0
}
