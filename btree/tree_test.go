package btree

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	for _, degree := range []int{1, -1, -5} {
		_, err := New(DegreeConfig(degree))
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("expected ErrInvalidConfig for degree %d, got %v", degree, err)
		}
	}
	if _, err := FromRoot(DegreeConfig(1), NewNode([]Key{1})); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected FromRoot to reject degree 1, got %v", err)
	}
}

func TestNewNormalizesConfig(t *testing.T) {
	tree, err := New(Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Degree() != DefaultDegree {
		t.Fatalf("expected default degree %d, got %d", DefaultDegree, tree.Degree())
	}
	cfg := DegreeConfig(4)
	if cfg.MaxKeys() != 7 || cfg.MinKeys() != 3 || cfg.MaxChildren() != 8 {
		t.Fatalf("unexpected bounds for t=4: max=%d min=%d children=%d",
			cfg.MaxKeys(), cfg.MinKeys(), cfg.MaxChildren())
	}
}

func TestCheckEmptyTree(t *testing.T) {
	tree := makeTree(t, 2)
	if err := tree.Check(); err != nil {
		t.Fatalf("expected empty tree to be valid, got %v", err)
	}
	if tree.Len() != 0 || tree.Height() != 0 || !tree.IsEmpty() {
		t.Fatalf("unexpected empty tree state len=%d height=%d", tree.Len(), tree.Height())
	}
	if tree.PostorderKeys() != nil || len(tree.PreorderKeys()) != 0 {
		t.Fatalf("expected no traversal output for empty tree")
	}
	if tree.String() != "<empty>" {
		t.Fatalf("unexpected String for empty tree: %q", tree.String())
	}
}

func TestInsertIntoEmptyTreeCreatesLeafRoot(t *testing.T) {
	tree := makeTree(t, 2)
	if !tree.Insert(42) {
		t.Fatalf("expected first insert to succeed")
	}
	root := tree.Root()
	if root == nil || !root.IsLeaf() || !sameKeys(root.Keys(), []Key{42}) {
		t.Fatalf("expected single-key leaf root, got %v", tree)
	}
}

func TestInsertScenarioRootSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "multiway")
	defer teardown()

	tree := makeTree(t, 2)
	tree.InsertAll(10, 20, 5)
	if tree.Height() != 1 || !sameKeys(tree.Root().Keys(), []Key{5, 10, 20}) {
		t.Fatalf("three keys must fit into the leaf root, got %v", tree)
	}
	tree.Insert(6)
	root := tree.Root()
	if !sameKeys(root.Keys(), []Key{10}) {
		t.Fatalf("expected root [10], got %v", root.Keys())
	}
	if root.ChildCount() != 2 {
		t.Fatalf("expected 2 children, got %d", root.ChildCount())
	}
	if !sameKeys(root.Child(0).Keys(), []Key{5, 6}) || !sameKeys(root.Child(1).Keys(), []Key{20}) {
		t.Fatalf("unexpected children %v %v", root.Child(0).Keys(), root.Child(1).Keys())
	}
	if got, want := tree.String(), "[5 6] [20] [10]"; got != want {
		t.Fatalf("postorder mismatch: got=%q want=%q", got, want)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid: %v", err)
	}
}

func TestInsertIgnoresDuplicates(t *testing.T) {
	tree := makeTree(t, 2)
	added := tree.InsertAll(1, 2, 3, 2, 4, 5, 6, 7, 1, 7, 4)
	if added != 7 {
		t.Fatalf("expected 7 distinct keys added, got %d", added)
	}
	if tree.Len() != 7 {
		t.Fatalf("expected 7 keys, got %d", tree.Len())
	}
	// duplicates of promoted medians and of a full root
	for _, key := range tree.Keys() {
		if tree.Insert(key) {
			t.Fatalf("duplicate %d was inserted", key)
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid: %v", err)
	}
}

func TestDuplicateInsertKeepsShape(t *testing.T) {
	tree := makeTree(t, 2)
	tree.InsertAll(10, 20, 30, 40, 50)
	before := tree.String()
	if before != "[10] [30 40 50] [20]" {
		t.Fatalf("unexpected shape: %s", before)
	}
	// 50 sits in a full leaf; a pre-emptive split would change the shape
	for _, key := range []Key{50, 40, 20, 10} {
		if tree.Insert(key) {
			t.Fatalf("duplicate %d was inserted", key)
		}
		if got := tree.String(); got != before {
			t.Fatalf("duplicate %d changed the tree: got=%s want=%s", key, got, before)
		}
	}
	full := makeTree(t, 2)
	full.InsertAll(1, 2, 3)
	if full.Insert(2) || full.String() != "[1 2 3]" {
		t.Fatalf("duplicate in full root changed the tree: %s", full)
	}
}

func TestInsertKeepsInvariantsAfterEveryStep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "multiway")
	defer teardown()

	for _, degree := range []int{2, 3, 5} {
		r := rand.New(rand.NewSource(int64(degree) * 7919))
		tree := makeTree(t, degree)
		model := map[Key]bool{}
		for step := 0; step < 600; step++ {
			key := Key(r.Intn(1000) - 500)
			inserted := tree.Insert(key)
			if inserted == model[key] {
				t.Fatalf("t=%d step %d: insert(%d) returned %v, key present=%v", degree, step, key, inserted, model[key])
			}
			model[key] = true
			if err := tree.Check(); err != nil {
				t.Fatalf("t=%d step %d: insert(%d) broke tree: %v", degree, step, key, err)
			}
		}
		keys := tree.Keys()
		if len(keys) != len(model) {
			t.Fatalf("t=%d: key count mismatch: got=%d want=%d", degree, len(keys), len(model))
		}
		if !slices.IsSorted(keys) {
			t.Fatalf("t=%d: in-order traversal not sorted", degree)
		}
		for key := range model {
			if !tree.Contains(key) {
				t.Fatalf("t=%d: key %d missing", degree, key)
			}
		}
		if tree.Contains(10000) {
			t.Fatalf("t=%d: Contains reports absent key", degree)
		}
	}
}

func TestAscendingInsertHeight(t *testing.T) {
	tree := makeTree(t, 2)
	for k := Key(1); k <= 1024; k++ {
		tree.Insert(k)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid: %v", err)
	}
	// a 2-3-4 tree of 1024 keys cannot be higher than log2(1025) levels
	if h := tree.Height(); h < 5 || h > 10 {
		t.Fatalf("unexpected height %d for 1024 keys", h)
	}
}

func TestTraversals(t *testing.T) {
	tree := makeTree(t, 2)
	tree.InsertAll(10, 20, 5, 6, 12, 30, 7, 17)
	// root [10 20] with children [5 6 7] [12 17] [30]
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid: %v", err)
	}
	if got, want := tree.String(), "[5 6 7] [12 17] [30] [10 20]"; got != want {
		t.Fatalf("postorder mismatch: got=%q want=%q", got, want)
	}
	pre := tree.PreorderKeys()
	if !sameKeys(pre, []Key{10, 20, 5, 6, 7, 12, 17, 30}) {
		t.Fatalf("unexpected preorder emission %v", pre)
	}
	if len(pre) != tree.Len() {
		t.Fatalf("preorder emission size mismatch: %d != %d", len(pre), tree.Len())
	}
	if !sameKeys(pre[:tree.Root().KeyCount()], tree.Root().Keys()) {
		t.Fatalf("preorder must start with root keys, got %v", pre)
	}
	post := tree.PostorderKeys()
	if !sameKeys(post[len(post)-1], tree.Root().Keys()) {
		t.Fatalf("postorder must end with root keys, got %v", post)
	}
	count := 0
	tree.Walk(func(n *Node, depth int) bool {
		count++
		if n.IsLeaf() && depth != tree.Height()-1 {
			t.Errorf("leaf %v at depth %d", n.Keys(), depth)
		}
		return true
	})
	if count != len(post) {
		t.Fatalf("walk visited %d nodes, postorder has %d groups", count, len(post))
	}
	var first []Key
	tree.ForEachKey(func(k Key) bool {
		first = append(first, k)
		return len(first) < 3
	})
	if !sameKeys(first, []Key{5, 6, 7}) {
		t.Fatalf("early-stopped in-order walk: got %v", first)
	}
}

func TestNodeAccessorsDoNotAlias(t *testing.T) {
	n := NewNode([]Key{1, 2, 3})
	keys := n.Keys()
	keys[0] = 99
	if n.Key(0) != 1 {
		t.Fatalf("Keys() aliases node storage")
	}
	src := []Key{4, 5}
	m := NewNode(src)
	src[0] = 0
	if m.Key(0) != 4 {
		t.Fatalf("NewNode aliases caller slice")
	}
}

func TestCheckDetectsBrokenShapes(t *testing.T) {
	cases := map[string]*Node{
		"depth":    NewNode([]Key{10}, NewNode([]Key{5}), NewNode([]Key{20}, leaves([]Key{15}, []Key{25})...)),
		"order":    NewNode([]Key{3, 1}),
		"range":    NewNode([]Key{10}, NewNode([]Key{12}), NewNode([]Key{20})),
		"children": NewNode([]Key{10, 20}, NewNode([]Key{5}), NewNode([]Key{15})),
		"overflow": NewNode([]Key{1, 2, 3, 4}),
	}
	for name, root := range cases {
		tree, err := FromRoot(DegreeConfig(2), root)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if err := tree.Check(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected invariant error, got %v", name, err)
		}
	}
}
