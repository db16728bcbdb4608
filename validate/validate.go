package validate

import (
	"github.com/npillmayer/multiway/btree"
)

// Tree runs all checks against tree and returns the combined report.
// An empty tree (or a nil tree) trivially passes.
func Tree(tree *btree.Tree) *Report {
	r := &Report{OK: true}
	if tree.IsEmpty() {
		return r
	}
	r.Degree = tree.Degree()
	tree.Walk(func(*btree.Node, int) bool {
		r.Nodes++
		return true
	})
	r.KeyCountViolations = KeyCounts(tree)
	r.Leaves = Leaves(tree)
	if !uniformDepth(r.Leaves) {
		r.DepthViolations = append([]LeafDepth(nil), r.Leaves...)
	}
	r.RangeViolations = KeyRanges(tree)
	r.ChildCountViolations = ChildCounts(tree)
	r.OK = r.ViolationCount() == 0
	if !r.OK {
		tracer().Infof("validate: %s", r.summary())
	}
	return r
}

// --- Key count -------------------------------------------------------------

// KeyCounts returns every node whose key count is out of bounds. Non-root
// nodes must hold between t-1 and 2t-1 keys; the root has no lower bound.
func KeyCounts(tree *btree.Tree) []KeyCountViolation {
	if tree.IsEmpty() {
		return nil
	}
	cfg := tree.Config()
	return keyCounts(tree.Root(), 0, cfg.MinKeys(), cfg.MaxKeys())
}

func keyCounts(n *btree.Node, depth, minKeys, maxKeys int) []KeyCountViolation {
	var violations []KeyCountViolation
	isRoot := depth == 0
	lower := minKeys
	if isRoot {
		lower = 0
	}
	if count := n.KeyCount(); count < lower || count > maxKeys {
		violations = append(violations, KeyCountViolation{
			Keys:   n.Keys(),
			Depth:  depth,
			IsRoot: isRoot,
			Min:    lower,
			Max:    maxKeys,
		})
	}
	for i := 0; i < n.ChildCount(); i++ {
		violations = append(violations, keyCounts(n.Child(i), depth+1, minKeys, maxKeys)...)
	}
	return violations
}

// --- Leaf depth ------------------------------------------------------------

// Leaves returns every leaf of tree together with its depth, in preorder.
func Leaves(tree *btree.Tree) []LeafDepth {
	if tree.IsEmpty() {
		return nil
	}
	return leaves(tree.Root(), 0)
}

func leaves(n *btree.Node, depth int) []LeafDepth {
	if n.IsLeaf() {
		return []LeafDepth{{Keys: n.Keys(), Depth: depth}}
	}
	var out []LeafDepth
	for i := 0; i < n.ChildCount(); i++ {
		out = append(out, leaves(n.Child(i), depth+1)...)
	}
	return out
}

// LeafDepthsUniform reports whether all leaves of tree are at the same depth.
func LeafDepthsUniform(tree *btree.Tree) bool {
	return uniformDepth(Leaves(tree))
}

func uniformDepth(leaves []LeafDepth) bool {
	depths := make(map[int]struct{})
	for _, leaf := range leaves {
		depths[leaf.Depth] = struct{}{}
	}
	return len(depths) <= 1
}

// --- Key range -------------------------------------------------------------

// KeyRanges returns every key which breaks the ordering of its node or lies
// outside the open interval given by the separators of its ancestors.
func KeyRanges(tree *btree.Tree) []RangeViolation {
	if tree.IsEmpty() {
		return nil
	}
	return keyRanges(tree.Root(), 0, Bound{}, Bound{})
}

func keyRanges(n *btree.Node, depth int, lo, hi Bound) []RangeViolation {
	var violations []RangeViolation
	keys := n.Keys()
	for i, key := range keys {
		outside := (lo.Set && key <= lo.Key) || (hi.Set && key >= hi.Key)
		unordered := i > 0 && key <= keys[i-1]
		if outside || unordered {
			violations = append(violations, RangeViolation{
				Keys:  keys,
				Depth: depth,
				Index: i,
				Key:   key,
				Lower: lo,
				Upper: hi,
			})
		}
	}
	for i := 0; i < n.ChildCount(); i++ {
		clo, chi := lo, hi
		if i > 0 && len(keys) > 0 {
			clo = Bound{Key: keys[min(i-1, len(keys)-1)], Set: true}
		}
		if i < len(keys) {
			chi = Bound{Key: keys[i], Set: true}
		}
		violations = append(violations, keyRanges(n.Child(i), depth+1, clo, chi)...)
	}
	return violations
}

// --- Child count -----------------------------------------------------------

// ChildCounts returns every internal node which does not have exactly one
// child more than it has keys.
func ChildCounts(tree *btree.Tree) []ChildCountViolation {
	if tree.IsEmpty() {
		return nil
	}
	return childCounts(tree.Root(), 0)
}

func childCounts(n *btree.Node, depth int) []ChildCountViolation {
	var violations []ChildCountViolation
	if !n.IsLeaf() && n.ChildCount() != n.KeyCount()+1 {
		violations = append(violations, ChildCountViolation{
			Keys:     n.Keys(),
			Depth:    depth,
			Children: n.ChildCount(),
		})
	}
	for i := 0; i < n.ChildCount(); i++ {
		violations = append(violations, childCounts(n.Child(i), depth+1)...)
	}
	return violations
}
