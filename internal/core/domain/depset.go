package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// DependencySet is the deduplicated, insertion-ordered union of dependency
// specifiers gathered from every provider a template references, plus any
// caller-supplied extras. Deduplication is by exact specifier string; no
// semantic version merging is performed. Insertion order is preserved so that
// the same template content always produces the same ordered output.
type DependencySet struct {
	specs []Specifier
	index map[Specifier]struct{}
}

// NewDependencySet creates an empty DependencySet.
func NewDependencySet() *DependencySet {
	return &DependencySet{index: make(map[Specifier]struct{})}
}

// Add appends spec to the set unless an identical specifier is already
// present. It reports whether the set changed.
func (d *DependencySet) Add(spec Specifier) bool {
	if _, ok := d.index[spec]; ok {
		return false
	}
	d.specs = append(d.specs, spec)
	d.index[spec] = struct{}{}
	return true
}

// Contains reports whether an identical specifier is already in the set.
func (d *DependencySet) Contains(spec Specifier) bool {
	_, ok := d.index[spec]
	return ok
}

// Replace swaps old for updated in place, keeping old's position. It reports
// whether a replacement happened; it refuses to replace when old is absent or
// updated is already a member.
func (d *DependencySet) Replace(old, updated Specifier) bool {
	if _, ok := d.index[old]; !ok {
		return false
	}
	if _, ok := d.index[updated]; ok {
		return false
	}
	for i, s := range d.specs {
		if s == old {
			d.specs[i] = updated
			break
		}
	}
	delete(d.index, old)
	d.index[updated] = struct{}{}
	return true
}

// Len returns the number of specifiers in the set.
func (d *DependencySet) Len() int {
	return len(d.specs)
}

// Specifiers returns the members in insertion order. The slice is a copy.
func (d *DependencySet) Specifiers() []Specifier {
	out := make([]Specifier, len(d.specs))
	copy(out, d.specs)
	return out
}

// Strings returns the members in insertion order as plain strings.
func (d *DependencySet) Strings() []string {
	out := make([]string, len(d.specs))
	for i, s := range d.specs {
		out[i] = string(s)
	}
	return out
}

// Fingerprint returns a stable hash of the ordered membership. Two sets with
// the same members in the same order always hash identically, so artifacts
// can be traced back to the exact dependency set they were built from.
func (d *DependencySet) Fingerprint() string {
	h := xxhash.New()
	for _, s := range d.specs {
		_, _ = h.WriteString(string(s))
		_, _ = h.WriteString("\n")
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
