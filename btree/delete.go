package btree

import (
	"cmp"

	"github.com/sirupsen/logrus"
)

/*
Deletion never holds a reference from a child back to its parent. The descent
records every ancestor together with the index of the child it stepped into,
and rebalancing walks that path back up. A step's childIdx is therefore also
the position of the next node among its parent's children, which is all the
sibling lookups below need.
*/
type pathStep[K cmp.Ordered] struct {
	node     *node[K]
	childIdx int
}

/*
Delete removes key from the tree and returns true, or returns false without
touching the tree when the key is absent.

The descent stops at the first node on the search path that contains the key;
that node is not necessarily a leaf. When the deletion leaves the root empty,
its one remaining child is promoted and the tree shrinks by one level.
*/
func (t *Tree[K]) Delete(key K) bool {
	var path []pathStep[K]

	n := t.root
	keyIdx := -1
	for {
		pos, found := n.search(key)
		if found {
			keyIdx = pos
			break
		}
		if n.isLeaf() {
			return false
		}
		path = append(path, pathStep[K]{n, pos})
		n = n.children[pos]
	}

	t.deleteKey(path, n, keyIdx)
	t.size--

	if len(t.root.keys) == 0 && !t.root.isLeaf() {
		t.root = t.root.children[0]
		Log.WithFields(logrus.Fields{
			"op":       "rootCollapse",
			"rootKeys": len(t.root.keys),
		}).Debug("tree shrank by one level")
	}
	return true
}

/*
deleteKey removes the key at keyIdx of n, whose ancestors are recorded in
path. A leaf gives its key up directly. An internal node never loses a key in
place: the key is overwritten with its in-order predecessor when the
predecessor's leaf has a key to spare, or with its in-order successor
otherwise, and the substituted key is then removed from that leaf. Only the
leaf that actually shrank is rebalanced.
*/
func (t *Tree[K]) deleteKey(path []pathStep[K], n *node[K], keyIdx int) {
	if n.isLeaf() {
		n.removeKeyAt(keyIdx)
		t.rebalanceAfterDeletion(path, n)
		return
	}

	// Predecessor: rightmost leaf of the left child.
	probe := append(path, pathStep[K]{n, keyIdx})
	leaf := n.children[keyIdx]
	for !leaf.isLeaf() {
		probe = append(probe, pathStep[K]{leaf, len(leaf.children) - 1})
		leaf = leaf.children[len(leaf.children)-1]
	}
	if len(leaf.keys) > t.props.minKeys {
		n.keys[keyIdx] = leaf.removeKeyAt(len(leaf.keys) - 1)
		t.rebalanceAfterDeletion(probe, leaf)
		return
	}

	// Successor: leftmost leaf of the right child. Taking its first key may
	// underflow it, so the substitution happens before the rebalance walks
	// the path back up.
	probe = append(path, pathStep[K]{n, keyIdx + 1})
	leaf = n.children[keyIdx+1]
	for !leaf.isLeaf() {
		probe = append(probe, pathStep[K]{leaf, 0})
		leaf = leaf.children[0]
	}
	n.keys[keyIdx] = leaf.removeKeyAt(0)
	t.rebalanceAfterDeletion(probe, leaf)
}

/*
rebalanceAfterDeletion restores minimum occupancy for n after it lost a key.
The root has no minimum. Preference order: donate from the right sibling,
donate from the left sibling, merge with the right sibling, merge with the
left sibling.
A merge takes a key out of the parent, so the check repeats one level up and
can cascade all the way to the root.
*/
func (t *Tree[K]) rebalanceAfterDeletion(path []pathStep[K], n *node[K]) {
	if len(path) == 0 || len(n.keys) >= t.props.minKeys {
		return
	}

	parent := path[len(path)-1].node
	idx := path[len(path)-1].childIdx

	switch {
	case t.canDonateFromRight(parent, idx):
		t.donateFromRight(parent, idx)
	case t.canDonateFromLeft(parent, idx):
		t.donateFromLeft(parent, idx)
	case idx+1 < len(parent.children):
		t.mergeWithRight(parent, idx)
		t.rebalanceAfterDeletion(path[:len(path)-1], parent)
	case idx > 0:
		t.mergeWithLeft(parent, idx)
		t.rebalanceAfterDeletion(path[:len(path)-1], parent)
	default:
		// A non-root node always has at least one sibling.
		panic("btree: underflowing node has no siblings")
	}
}

// canDonateFromRight reports whether the right sibling of parent.children[idx]
// exists and can give a key away without underflowing itself.
func (t *Tree[K]) canDonateFromRight(parent *node[K], idx int) bool {
	return idx+1 < len(parent.children) && len(parent.children[idx+1].keys) > t.props.minKeys
}

func (t *Tree[K]) canDonateFromLeft(parent *node[K], idx int) bool {
	return idx > 0 && len(parent.children[idx-1].keys) > t.props.minKeys
}

/*
donateFromRight rotates one key through the parent: the right sibling's first
key replaces the separator, and the old separator drops into the underflowing
node. For internal nodes the sibling's first child moves over as well, keeping
children one ahead of keys on both sides. No node is created or destroyed.
*/
func (t *Tree[K]) donateFromRight(parent *node[K], idx int) {
	n, sibling := parent.children[idx], parent.children[idx+1]

	n.keys = append(n.keys, parent.keys[idx])
	parent.keys[idx] = sibling.removeKeyAt(0)
	if !n.isLeaf() {
		n.children = append(n.children, sibling.removeChildAt(0))
	}

	Log.WithFields(logrus.Fields{"op": "donateFromRight", "separator": parent.keys[idx]}).Debug("rotated key from right sibling")
}

// donateFromLeft mirrors donateFromRight: the left sibling's last key moves
// up, the old separator drops in at the front.
func (t *Tree[K]) donateFromLeft(parent *node[K], idx int) {
	n, sibling := parent.children[idx], parent.children[idx-1]

	n.insertKeyAt(0, parent.keys[idx-1])
	parent.keys[idx-1] = sibling.removeKeyAt(len(sibling.keys) - 1)
	if !n.isLeaf() {
		n.insertChildAt(0, sibling.removeChildAt(len(sibling.children)-1))
	}

	Log.WithFields(logrus.Fields{"op": "donateFromLeft", "separator": parent.keys[idx-1]}).Debug("rotated key from left sibling")
}

/*
mergeWithRight folds the separator and the entire right sibling into
parent.children[idx]. The parent gives up one key and one child, which is why
the caller re-checks the parent for underflow afterwards. The root is never
merged; rebalance stops before reaching it.
*/
func (t *Tree[K]) mergeWithRight(parent *node[K], idx int) {
	n := parent.children[idx]
	sibling := parent.children[idx+1]

	n.keys = append(n.keys, parent.removeKeyAt(idx))
	n.keys = append(n.keys, sibling.keys...)
	n.children = append(n.children, sibling.children...)
	parent.removeChildAt(idx + 1)

	Log.WithFields(logrus.Fields{"op": "mergeWithRight", "mergedKeys": len(n.keys)}).Debug("absorbed right sibling")
}

// mergeWithLeft folds parent.children[idx] and the separator into the left
// sibling, which survives the merge.
func (t *Tree[K]) mergeWithLeft(parent *node[K], idx int) {
	n := parent.children[idx]
	sibling := parent.children[idx-1]

	sibling.keys = append(sibling.keys, parent.removeKeyAt(idx-1))
	sibling.keys = append(sibling.keys, n.keys...)
	sibling.children = append(sibling.children, n.children...)
	parent.removeChildAt(idx)

	Log.WithFields(logrus.Fields{"op": "mergeWithLeft", "mergedKeys": len(sibling.keys)}).Debug("absorbed into left sibling")
}
