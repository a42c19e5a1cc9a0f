package btree

import "cmp"

/*
node is one level of the tree: a sorted run of keys plus, for internal nodes,
one more child than it has keys. Nodes hold no back-reference to their parent;
operations that need to revisit ancestors (deletion rebalancing) carry an
explicit descent path instead, so a node's identity is exactly its position
in the slices that own it.
*/
type node[K cmp.Ordered] struct {
	keys     []K
	children []*node[K]
}

func (n *node[K]) isLeaf() bool {
	return len(n.children) == 0
}

/*
search returns the index of key in n if present.
Otherwise it returns the index where the key would have to be inserted --
the lower bound of the key in the node, which is also the index of the child
to descend into when continuing down the tree.
*/
func (n *node[K]) search(key K) (int, bool) {
	low, high := 0, len(n.keys)
	var mid int
	for low < high {
		mid = (low + high) / 2
		switch cmp.Compare(key, n.keys[mid]) {
		case 1:
			low = mid + 1
		case -1:
			high = mid
		default:
			return mid, true
		}
	}
	return low, false
}

// helper method to insert a key at an arbitrary position of a node
func (n *node[K]) insertKeyAt(pos int, key K) {
	var zero K
	n.keys = append(n.keys, zero)
	copy(n.keys[pos+1:], n.keys[pos:])
	n.keys[pos] = key
}

// helper method to insert a child pointer at an arbitrary position of a node
func (n *node[K]) insertChildAt(pos int, child *node[K]) {
	n.children = append(n.children, nil)
	copy(n.children[pos+1:], n.children[pos:])
	n.children[pos] = child
}

func (n *node[K]) removeKeyAt(pos int) K {
	key := n.keys[pos]
	n.keys = append(n.keys[:pos], n.keys[pos+1:]...)
	return key
}

func (n *node[K]) removeChildAt(pos int) *node[K] {
	child := n.children[pos]
	n.children = append(n.children[:pos], n.children[pos+1:]...)
	return child
}

// in-order walk, reporting the depth of the node each key lives in
func (n *node[K]) traverse(depth int, fn func(key K, depth int)) {
	if n.isLeaf() {
		for _, key := range n.keys {
			fn(key, depth)
		}
		return
	}
	for i, key := range n.keys {
		n.children[i].traverse(depth+1, fn)
		fn(key, depth)
	}
	n.children[len(n.children)-1].traverse(depth+1, fn)
}
