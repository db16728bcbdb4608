package preorder

import (
	"fmt"

	"github.com/npillmayer/multiway/btree"
)

// DefaultMaxDepth limits the nesting depth Build will follow. A B-tree of
// minimum degree 2 and this height would hold more than 2^64 keys, so
// conforming streams never hit it.
const DefaultMaxDepth = 64

// Build reconstructs a tree of minimum degree cfg.Degree from its preorder key
// emission. An empty stream yields an empty tree.
//
// Build fails with btree.ErrInvalidConfig for an invalid configuration and
// with ErrConstruction if the stream cannot be parsed into a tree: input runs
// out while a node is expected, a non-root node underflows, an internal node
// does not get all of its children, nesting exceeds DefaultMaxDepth, or keys
// are left over after the root is complete.
func Build(keys []btree.Key, cfg btree.Config) (*btree.Tree, error) {
	return BuildWithDepth(keys, cfg, DefaultMaxDepth)
}

// BuildWithDepth is Build with an explicit nesting limit.
func BuildWithDepth(keys []btree.Key, cfg btree.Config, maxDepth int) (*btree.Tree, error) {
	tree, err := btree.New(cfg)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return tree, nil
	}
	cfg = tree.Config()
	p := &parser{
		input:    keys,
		minKeys:  cfg.MinKeys(),
		maxKeys:  cfg.MaxKeys(),
		maxDepth: maxDepth,
	}
	root, err := p.node(bound{}, bound{}, true, 0)
	if err != nil {
		tracer().Infof("preorder: %v", err)
		return nil, err
	}
	if !p.exhausted() {
		return nil, fmt.Errorf("%w: %d trailing keys after root at position %d",
			ErrConstruction, len(p.input)-p.pos, p.pos)
	}
	return btree.FromRoot(cfg, root)
}

// bound is an exclusive key limit; unset bounds are unlimited.
type bound struct {
	key btree.Key
	set bool
}

func within(key btree.Key, lo, hi bound) bool {
	return (!lo.set || key > lo.key) && (!hi.set || key < hi.key)
}

// parser owns the input stream and the cursor shared by all recursive calls.
type parser struct {
	input    []btree.Key
	pos      int
	minKeys  int
	maxKeys  int
	maxDepth int
}

func (p *parser) exhausted() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peek() btree.Key {
	return p.input[p.pos]
}

// node parses one node and its subtrees. Every key placed in the subtree must
// lie strictly between lo and hi. The caller guarantees that the next key of
// the input lies within these bounds.
func (p *parser) node(lo, hi bound, isRoot bool, depth int) (*btree.Node, error) {
	if depth > p.maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d at position %d", ErrConstruction, p.maxDepth, p.pos)
	}
	keys := make([]btree.Key, 0, p.maxKeys)
	for !p.exhausted() && len(keys) < p.maxKeys {
		key := p.peek()
		if !within(key, lo, hi) {
			break
		}
		keys = append(keys, key)
		p.pos++
		if !p.exhausted() && p.peek() < key {
			break // a drop starts the children
		}
	}
	// A root split leaves a root with a single key, so the root may have
	// children with fewer than t-1 keys of its own.
	var children []*btree.Node
	if len(keys) > 0 && (isRoot || len(keys) >= p.minKeys) && !p.exhausted() && p.peek() < keys[len(keys)-1] {
		tracer().Debugf("preorder: node %v at depth %d has children", keys, depth)
		children = make([]*btree.Node, 0, len(keys)+1)
		running := lo
		for i := 0; i <= len(keys); i++ {
			upper := hi
			if i < len(keys) {
				upper = bound{key: keys[i], set: true}
			}
			if p.exhausted() {
				return nil, fmt.Errorf("%w: input exhausted at depth %d, node %v has %d of %d children",
					ErrConstruction, depth+1, keys, len(children), len(keys)+1)
			}
			if !within(p.peek(), running, upper) {
				break // no key left for this child
			}
			child, err := p.node(running, upper, false, depth+1)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
			running = upper
		}
		if len(children) != len(keys)+1 {
			return nil, fmt.Errorf("%w: node %v has %d children, want %d",
				ErrConstruction, keys, len(children), len(keys)+1)
		}
	}
	if !isRoot && len(keys) < p.minKeys {
		return nil, fmt.Errorf("%w: node %v underflows at position %d (min %d keys)",
			ErrConstruction, keys, p.pos, p.minKeys)
	}
	return btree.NewNode(keys, children...), nil
}
