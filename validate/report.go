package validate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/npillmayer/multiway/btree"
)

// KeyCountViolation describes a node holding too few or too many keys.
type KeyCountViolation struct {
	Keys   []btree.Key
	Depth  int
	IsRoot bool
	Min    int // lower bound applied, 0 for the root
	Max    int
}

func (v KeyCountViolation) String() string {
	return fmt.Sprintf("node %v at depth %d holds %d keys, allowed %d..%d",
		v.Keys, v.Depth, len(v.Keys), v.Min, v.Max)
}

// LeafDepth pairs a leaf with its distance from the root.
type LeafDepth struct {
	Keys  []btree.Key
	Depth int
}

func (l LeafDepth) String() string {
	return fmt.Sprintf("leaf %v at depth %d", l.Keys, l.Depth)
}

// Bound is an exclusive key limit. Unset bounds are unlimited.
type Bound struct {
	Key btree.Key
	Set bool
}

func (b Bound) String() string {
	if !b.Set {
		return "∞"
	}
	return fmt.Sprintf("%d", b.Key)
}

// RangeViolation describes a key which is out of order within its node or
// outside the range its ancestors' separators allow.
type RangeViolation struct {
	Keys  []btree.Key
	Depth int
	Index int // position of the offending key
	Key   btree.Key
	Lower Bound
	Upper Bound
}

func (v RangeViolation) String() string {
	return fmt.Sprintf("key %d of node %v at depth %d violates range (%s, %s)",
		v.Key, v.Keys, v.Depth, lowerString(v.Lower), v.Upper)
}

func lowerString(b Bound) string {
	if !b.Set {
		return "-∞"
	}
	return b.String()
}

// ChildCountViolation describes an internal node whose number of children
// does not match its number of keys plus one.
type ChildCountViolation struct {
	Keys     []btree.Key
	Depth    int
	Children int
}

func (v ChildCountViolation) String() string {
	return fmt.Sprintf("node %v at depth %d has %d children, want %d",
		v.Keys, v.Depth, v.Children, len(v.Keys)+1)
}

// Report is the outcome of validating a tree.
type Report struct {
	OK                   bool // all invariants hold
	Degree               int
	Nodes                int
	Leaves               []LeafDepth // every leaf reached, in preorder
	KeyCountViolations   []KeyCountViolation
	DepthViolations      []LeafDepth // all leaves, if their depths differ
	RangeViolations      []RangeViolation
	ChildCountViolations []ChildCountViolation
}

// ViolationCount returns the total number of violations in r.
func (r *Report) ViolationCount() int {
	return len(r.KeyCountViolations) + len(r.DepthViolations) +
		len(r.RangeViolations) + len(r.ChildCountViolations)
}

// LeafDepths returns the distinct leaf depths, ascending.
func (r *Report) LeafDepths() []int {
	seen := make(map[int]bool)
	var depths []int
	for _, leaf := range r.Leaves {
		if !seen[leaf.Depth] {
			seen[leaf.Depth] = true
			depths = append(depths, leaf.Depth)
		}
	}
	slices.Sort(depths)
	return depths
}

// Err returns nil for a clean report and an error wrapping
// ErrInvariantViolation otherwise.
func (r *Report) Err() error {
	if r.OK {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvariantViolation, r.summary())
}

func (r *Report) summary() string {
	var parts []string
	if n := len(r.KeyCountViolations); n > 0 {
		parts = append(parts, fmt.Sprintf("%d key count", n))
	}
	if len(r.DepthViolations) > 0 {
		parts = append(parts, fmt.Sprintf("leaf depths %v", r.LeafDepths()))
	}
	if n := len(r.RangeViolations); n > 0 {
		parts = append(parts, fmt.Sprintf("%d key range", n))
	}
	if n := len(r.ChildCountViolations); n > 0 {
		parts = append(parts, fmt.Sprintf("%d child count", n))
	}
	return strings.Join(parts, ", ")
}

// String returns a multi-line description of r.
func (r *Report) String() string {
	var b strings.Builder
	if r.OK {
		fmt.Fprintf(&b, "ok: %d nodes, %d leaves, t=%d\n", r.Nodes, len(r.Leaves), r.Degree)
		return b.String()
	}
	fmt.Fprintf(&b, "invalid: %s\n", r.summary())
	for _, v := range r.KeyCountViolations {
		fmt.Fprintf(&b, "  %s\n", v)
	}
	for _, v := range r.DepthViolations {
		fmt.Fprintf(&b, "  %s\n", v)
	}
	for _, v := range r.RangeViolations {
		fmt.Fprintf(&b, "  %s\n", v)
	}
	for _, v := range r.ChildCountViolations {
		fmt.Fprintf(&b, "  %s\n", v)
	}
	return b.String()
}
