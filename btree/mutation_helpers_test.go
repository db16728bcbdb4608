package btree

import (
	"testing"
)

func makeTree(t *testing.T, degree int) *Tree {
	t.Helper()
	tree, err := New(DegreeConfig(degree))
	if err != nil {
		t.Fatalf("failed to create tree: %v", err)
	}
	return tree
}

func leaves(keyLists ...[]Key) []*Node {
	out := make([]*Node, 0, len(keyLists))
	for _, keys := range keyLists {
		out = append(out, NewNode(keys))
	}
	return out
}

func sameKeys(a, b []Key) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSliceHelpers(t *testing.T) {
	base := []int{1, 2, 4}
	ins := insertAt(base, 2, 3)
	if want := []int{1, 2, 3, 4}; len(ins) != len(want) || ins[2] != 3 || ins[3] != 4 {
		t.Fatalf("insertAt mismatch: got %v want %v", ins, want)
	}
	ins = insertAt(ins, 0, 0)
	ins = insertAt(ins, len(ins), 5)
	for i, v := range ins {
		if v != i {
			t.Fatalf("insertAt mismatch at %d: got %v", i, ins)
		}
	}
	tr := truncate(ins, 2)
	if len(tr) != 2 || tr[0] != 0 || tr[1] != 1 {
		t.Fatalf("truncate mismatch: got %v", tr)
	}
	if ins[2] != 0 {
		t.Fatalf("truncate did not clear tail: %v", ins)
	}
}

func TestNodeSearch(t *testing.T) {
	n := NewNode([]Key{10, 20, 30})
	cases := []struct {
		key   Key
		pos   int
		found bool
	}{
		{5, 0, false}, {10, 0, true}, {15, 1, false}, {20, 1, true},
		{30, 2, true}, {31, 3, false},
	}
	for _, c := range cases {
		pos, found := n.search(c.key)
		if pos != c.pos || found != c.found {
			t.Errorf("search(%d): got=(%d,%v) want=(%d,%v)", c.key, pos, found, c.pos, c.found)
		}
	}
}

func TestSplitLeafChild(t *testing.T) {
	tree := makeTree(t, 2)
	full := NewNode([]Key{1, 2, 3})
	parent := NewNode(nil, full)
	tree.splitChild(parent, 0)
	if !sameKeys(parent.keys, []Key{2}) {
		t.Fatalf("expected promoted median [2], got %v", parent.keys)
	}
	if len(parent.children) != 2 {
		t.Fatalf("expected 2 children after split, got %d", len(parent.children))
	}
	if !sameKeys(parent.children[0].keys, []Key{1}) || !sameKeys(parent.children[1].keys, []Key{3}) {
		t.Fatalf("unexpected halves %v %v", parent.children[0].keys, parent.children[1].keys)
	}
	if !parent.children[1].IsLeaf() {
		t.Fatalf("sibling of a leaf must be a leaf")
	}
}

func TestSplitInternalChild(t *testing.T) {
	tree := makeTree(t, 3)
	full := NewNode([]Key{10, 20, 30, 40, 50}, leaves(
		[]Key{1, 2}, []Key{11, 12}, []Key{21, 22}, []Key{31, 32}, []Key{41, 42}, []Key{51, 52},
	)...)
	other := NewNode([]Key{70, 80}, leaves([]Key{61, 62}, []Key{71, 72}, []Key{81, 82})...)
	parent := NewNode([]Key{60}, full, other)
	before := len(parent.children)
	tree.splitChild(parent, 0)

	if got := len(parent.children); got != before+1 {
		t.Fatalf("child count after split: got=%d want=%d", got, before+1)
	}
	if !sameKeys(parent.keys, []Key{30, 60}) {
		t.Fatalf("unexpected parent keys %v", parent.keys)
	}
	left, right := parent.children[0], parent.children[1]
	if left.KeyCount() != 2 || right.KeyCount() != 2 {
		t.Fatalf("halves must hold t-1 keys, got %v and %v", left.keys, right.keys)
	}
	if !sameKeys(right.keys, []Key{40, 50}) {
		t.Fatalf("unexpected sibling keys %v", right.keys)
	}
	if left.ChildCount() != 3 || right.ChildCount() != 3 {
		t.Fatalf("halves must hold t children, got %d and %d", left.ChildCount(), right.ChildCount())
	}
	if !sameKeys(right.children[0].keys, []Key{31, 32}) {
		t.Fatalf("first child of sibling should be [31 32], is %v", right.children[0].keys)
	}
	if parent.children[2] != other {
		t.Fatalf("untouched sibling moved")
	}
	tree.root = parent
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after split: %v", err)
	}
}

func TestSplitChildRejectsNonFullChild(t *testing.T) {
	tree := makeTree(t, 2)
	parent := NewNode(nil, NewNode([]Key{1, 2}))
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected assertion panic for non-full child")
		}
	}()
	tree.splitChild(parent, 0)
}

func TestSplitRootGrowsHeight(t *testing.T) {
	tree := makeTree(t, 2)
	tree.InsertAll(1, 2, 3)
	if h := tree.Height(); h != 1 {
		t.Fatalf("expected height 1, got %d", h)
	}
	tree.splitRoot()
	if h := tree.Height(); h != 2 {
		t.Fatalf("expected height 2 after root split, got %d", h)
	}
	if !sameKeys(tree.root.keys, []Key{2}) {
		t.Fatalf("unexpected root %v", tree.root.keys)
	}
}
