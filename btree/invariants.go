package btree

import "fmt"

// Check validates the B-tree invariants and fails on the first violation.
//
// This checker is intentionally strict and should be used in tests. For a
// complete report of every violation use package validate.
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrNilNode)
	}
	if t.root == nil {
		return nil
	}
	_, err := t.checkNode(t.root, true, nil, nil)
	return err
}

// checkNode returns the height of the subtree at n. lo and hi are the exclusive
// key bounds inherited from the parent; nil means unbounded.
func (t *Tree) checkNode(n *Node, isRoot bool, lo, hi *Key) (height int, err error) {
	if n == nil {
		return 0, fmt.Errorf("%w: nil child", ErrNilNode)
	}
	if len(n.keys) > t.cfg.MaxKeys() {
		return 0, fmt.Errorf("%w: node %v holds %d keys, max is %d",
			ErrInvalidConfig, n.keys, len(n.keys), t.cfg.MaxKeys())
	}
	if !isRoot && len(n.keys) < t.cfg.MinKeys() {
		return 0, fmt.Errorf("%w: node %v holds %d keys, min is %d",
			ErrInvalidConfig, n.keys, len(n.keys), t.cfg.MinKeys())
	}
	for i, key := range n.keys {
		if i > 0 && key <= n.keys[i-1] {
			return 0, fmt.Errorf("%w: keys of node %v not strictly ascending", ErrInvalidConfig, n.keys)
		}
		if (lo != nil && key <= *lo) || (hi != nil && key >= *hi) {
			return 0, fmt.Errorf("%w: key %d of node %v out of parent range", ErrInvalidConfig, key, n.keys)
		}
	}
	if n.IsLeaf() {
		return 1, nil
	}
	if len(n.children) != len(n.keys)+1 {
		return 0, fmt.Errorf("%w: node %v has %d children, want %d",
			ErrInvalidConfig, n.keys, len(n.children), len(n.keys)+1)
	}
	var childHeight int
	for i, child := range n.children {
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			chi = &n.keys[i]
		}
		h, cErr := t.checkNode(child, false, clo, chi)
		if cErr != nil {
			return 0, cErr
		}
		if i == 0 {
			childHeight = h
		} else if h != childHeight {
			return 0, fmt.Errorf("%w: non-uniform subtree heights below %v", ErrInvalidConfig, n.keys)
		}
	}
	return childHeight + 1, nil
}
