package btree

import (
	"cmp"
	"strings"

	"github.com/sirupsen/logrus"
)

/*
Tree is the public handle. It owns the root node exclusively and keeps the
per-tree configuration alongside it. The root is the only node allowed to
hold fewer than minKeys keys; it is created empty and stays allocated even
when the tree holds no keys at all.
*/
type Tree[K cmp.Ordered] struct {
	root  *node[K]
	props props
	size  int
}

// New creates an empty tree. The branch factor controls minimum occupancy:
// the degree is twice the branch factor, so every non-root node holds
// between (degree-1)/2 and degree-1 keys.
func New[K cmp.Ordered](branchFactor int) (*Tree[K], error) {
	if branchFactor < 1 {
		return nil, ErrInvalidBranchFactor
	}
	return &Tree[K]{
		root:  &node[K]{},
		props: newProps(branchFactor),
	}, nil
}

// Len returns the number of keys currently stored.
func (t *Tree[K]) Len() int {
	return t.size
}

func (t *Tree[K]) isMaxedOut(n *node[K]) bool {
	return len(n.keys) == t.props.maxKeys
}

/*
Insert adds key to the tree and returns true, or returns false without
touching the tree when the key is already present. Keys are unique; an
insert never creates adjacent duplicates.

If the root is already full it is split before descending, so the downward
pass never meets a full node and no fix-up on the way back is needed.
*/
func (t *Tree[K]) Insert(key K) bool {
	if t.isMaxedOut(t.root) {
		t.splitRoot()
	}
	if !t.insertNonFull(t.root, key) {
		return false
	}
	t.size++
	return true
}

/*
Create a new empty root. The existing root becomes its only child and is
split immediately, which is the only way the tree ever grows in height.
*/
func (t *Tree[K]) splitRoot() {
	oldRoot := t.root
	t.root = &node[K]{}
	t.root.insertChildAt(0, oldRoot)
	t.splitChild(t.root, 0)
	Log.WithFields(logrus.Fields{
		"op":       "splitRoot",
		"rootKeys": len(t.root.keys),
	}).Debug("tree grew by one level")
}

/*
splitChild expects parent.children[childIndex] to be full. The child's middle
key moves up into the parent at childIndex, and everything after the middle
key becomes a fresh right sibling linked in at childIndex+1. The parent gains
exactly one key and one child.
*/
func (t *Tree[K]) splitChild(parent *node[K], childIndex int) {
	child := parent.children[childIndex]
	mid := t.props.midKeyIndex
	midKey := child.keys[mid]

	sibling := &node[K]{}
	sibling.keys = append(sibling.keys, child.keys[mid+1:]...)
	child.keys = child.keys[:mid]

	if !child.isLeaf() {
		sibling.children = append(sibling.children, child.children[mid+1:]...)
		child.children = child.children[:mid+1]
	}

	parent.insertKeyAt(childIndex, midKey)
	parent.insertChildAt(childIndex+1, sibling)

	Log.WithFields(logrus.Fields{
		"op":         "splitChild",
		"childIndex": childIndex,
		"midKey":     midKey,
	}).Debug("split full child")
}

/*
insertNonFull descends from a node that is guaranteed not to be full.
If the child we are about to enter is full, split it first; promoting its
middle key may shift our direction one slot to the right, or turn out to be
the very key we are inserting.
Returns false if the key already exists.
*/
func (t *Tree[K]) insertNonFull(n *node[K], key K) bool {
	pos, found := n.search(key)
	if found {
		return false
	}

	if n.isLeaf() {
		n.insertKeyAt(pos, key)
		return true
	}

	if t.isMaxedOut(n.children[pos]) {
		t.splitChild(n, pos)
		switch cmp.Compare(key, n.keys[pos]) {
		case 1:
			// The promoted key is smaller than ours, change direction.
			pos++
		case 0:
			// The promoted key is the key being inserted.
			return false
		}
	}

	return t.insertNonFull(n.children[pos], key)
}

// Search reports whether key is present. Purely iterative, never mutates.
func (t *Tree[K]) Search(key K) bool {
	for n := t.root; ; {
		pos, found := n.search(key)
		if found {
			return true
		}
		if n.isLeaf() {
			return false
		}
		n = n.children[pos]
	}
}

// Traverse walks the keys in ascending order, reporting each key together
// with the depth of the node holding it (the root is depth zero).
func (t *Tree[K]) Traverse(fn func(key K, depth int)) {
	if t.size == 0 {
		return
	}
	t.root.traverse(0, fn)
}

// String renders the keys in order, each indented by its depth. Diagnostic
// only; see Visualizer for the colored variant.
func (t *Tree[K]) String() string {
	var sb strings.Builder
	writeIndented(&sb, t, false)
	return sb.String()
}
