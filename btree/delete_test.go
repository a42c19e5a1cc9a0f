package btree

import "testing"

// buildTree inserts keys in order and verifies the structure once.
func buildTree(t *testing.T, branchFactor int, keys ...int) *Tree[int] {
	t.Helper()
	tree := newTestTree(t, branchFactor)
	for _, key := range keys {
		if !tree.Insert(key) {
			t.Fatalf("setup insert of %d failed", key)
		}
	}
	checkInvariants(t, tree)
	return tree
}

func assertMembers(t *testing.T, tree *Tree[int], present []int, absent []int) {
	t.Helper()
	for _, key := range present {
		if !tree.Search(key) {
			t.Errorf("Search(%d) = false, want true", key)
		}
	}
	for _, key := range absent {
		if tree.Search(key) {
			t.Errorf("Search(%d) = true, want false", key)
		}
	}
}

// Shape: root [20], leaves [10] and [30 40]. Deleting 10 underflows the left
// leaf and must rotate 30 up through the parent while 20 drops down.
func TestDeleteDonateFromRight(t *testing.T) {
	tree := buildTree(t, 2, 10, 20, 30, 40)

	if !tree.Delete(10) {
		t.Fatal("Delete(10) = false")
	}
	checkInvariants(t, tree)
	assertMembers(t, tree, []int{20, 30, 40}, []int{10})
	if len(tree.root.keys) != 1 || tree.root.keys[0] != 30 {
		t.Errorf("root keys = %v, want [30]", tree.root.keys)
	}
}

// Shape: root [30], leaves [10 20] and [40]. Deleting 40 underflows the right
// leaf, which has no right sibling, so 20 rotates up and 30 drops down.
func TestDeleteDonateFromLeft(t *testing.T) {
	tree := buildTree(t, 2, 40, 30, 20, 10)

	if !tree.Delete(40) {
		t.Fatal("Delete(40) = false")
	}
	checkInvariants(t, tree)
	assertMembers(t, tree, []int{10, 20, 30}, []int{40})
	if len(tree.root.keys) != 1 || tree.root.keys[0] != 20 {
		t.Errorf("root keys = %v, want [20]", tree.root.keys)
	}
}

// Shape: root [20], leaves [10] and [30]. Neither sibling can donate, so
// deleting 10 merges everything into a single leaf and drops a level.
func TestDeleteMergeWithRight(t *testing.T) {
	tree := buildTree(t, 2, 10, 20, 30, 40)
	tree.Delete(40) // [30 40] -> [30], both leaves now at minimum

	if !tree.Delete(10) {
		t.Fatal("Delete(10) = false")
	}
	checkInvariants(t, tree)
	assertMembers(t, tree, []int{20, 30}, []int{10, 40})
	if height(tree) != 0 {
		t.Errorf("height = %d after merge into root, want 0", height(tree))
	}
}

// Same shape, deleting from the rightmost leaf instead: no right sibling
// exists, so the node merges into its left sibling.
func TestDeleteMergeWithLeft(t *testing.T) {
	tree := buildTree(t, 2, 10, 20, 30, 40)
	tree.Delete(40)

	if !tree.Delete(30) {
		t.Fatal("Delete(30) = false")
	}
	checkInvariants(t, tree)
	assertMembers(t, tree, []int{10, 20}, []int{30, 40})
	if height(tree) != 0 {
		t.Errorf("height = %d after merge into root, want 0", height(tree))
	}
}

// Shape: root [20], leaves [5 10] and [30]. The deleted key lives in the
// root, and the predecessor leaf has a key to spare, so 10 replaces 20.
func TestDeletePredecessorSubstitution(t *testing.T) {
	tree := buildTree(t, 2, 10, 20, 30, 5)

	if !tree.Delete(20) {
		t.Fatal("Delete(20) = false")
	}
	checkInvariants(t, tree)
	assertMembers(t, tree, []int{5, 10, 30}, []int{20})
	if len(tree.root.keys) != 1 || tree.root.keys[0] != 10 {
		t.Errorf("root keys = %v, want [10]", tree.root.keys)
	}
}

// Shape: root [20], leaves [10] and [30 40]. The predecessor leaf sits at
// minimum occupancy, so the successor 30 is pulled from the right leaf.
func TestDeleteSuccessorSubstitution(t *testing.T) {
	tree := buildTree(t, 2, 10, 20, 30, 40)

	if !tree.Delete(20) {
		t.Fatal("Delete(20) = false")
	}
	checkInvariants(t, tree)
	assertMembers(t, tree, []int{10, 30, 40}, []int{20})
	if len(tree.root.keys) != 1 || tree.root.keys[0] != 30 {
		t.Errorf("root keys = %v, want [30]", tree.root.keys)
	}
}

// A three-level tree where deleting a leaf key cascades: the leaf merge
// underflows its parent, which merges in turn and collapses the root.
func TestDeleteCascadingMerge(t *testing.T) {
	tree := newTestTree(t, 2)
	for key := 1; key <= 20; key++ {
		tree.Insert(key)
	}
	for height(tree) > 1 && tree.Len() > 0 {
		// Shrink until just above two levels to set up the cascade.
		tree.Delete(tree.Len())
		checkInvariants(t, tree)
	}

	remaining := tree.Len()
	for key := remaining; key >= 1; key-- {
		if !tree.Delete(key) {
			t.Fatalf("Delete(%d) = false", key)
		}
		checkInvariants(t, tree)
	}
	if tree.Len() != 0 || height(tree) != 0 {
		t.Errorf("tree not fully drained: Len=%d height=%d", tree.Len(), height(tree))
	}
}
