package btree

import "testing"

func TestNodeSearch(t *testing.T) {
	n := &node[int]{keys: []int{10, 20, 30, 40}}

	tests := []struct {
		key       int
		wantPos   int
		wantFound bool
	}{
		{5, 0, false},
		{10, 0, true},
		{15, 1, false},
		{20, 1, true},
		{40, 3, true},
		{45, 4, false},
	}
	for _, tt := range tests {
		pos, found := n.search(tt.key)
		if pos != tt.wantPos || found != tt.wantFound {
			t.Errorf("search(%d) = (%d, %v), want (%d, %v)", tt.key, pos, found, tt.wantPos, tt.wantFound)
		}
	}
}

func TestNodeSearchEmpty(t *testing.T) {
	n := &node[int]{}
	if pos, found := n.search(7); pos != 0 || found {
		t.Errorf("search on empty node = (%d, %v), want (0, false)", pos, found)
	}
}

func TestNodeInsertRemoveKeyAt(t *testing.T) {
	n := &node[int]{}
	n.insertKeyAt(0, 20)
	n.insertKeyAt(0, 10)
	n.insertKeyAt(2, 40)
	n.insertKeyAt(2, 30)

	want := []int{10, 20, 30, 40}
	for i, key := range want {
		if n.keys[i] != key {
			t.Fatalf("keys[%d] = %d, want %d (full: %v)", i, n.keys[i], key, n.keys)
		}
	}

	if got := n.removeKeyAt(1); got != 20 {
		t.Errorf("removeKeyAt(1) = %d, want 20", got)
	}
	if len(n.keys) != 3 || n.keys[1] != 30 {
		t.Errorf("keys after removal = %v, want [10 30 40]", n.keys)
	}
}

func TestNodeInsertRemoveChildAt(t *testing.T) {
	n := &node[int]{}
	a, b, c := &node[int]{}, &node[int]{}, &node[int]{}
	n.insertChildAt(0, c)
	n.insertChildAt(0, a)
	n.insertChildAt(1, b)

	if n.children[0] != a || n.children[1] != b || n.children[2] != c {
		t.Fatal("children not in insertion-position order")
	}
	if !a.isLeaf() || n.isLeaf() {
		t.Error("isLeaf misreported")
	}

	if got := n.removeChildAt(1); got != b {
		t.Error("removeChildAt(1) did not return the middle child")
	}
	if len(n.children) != 2 || n.children[1] != c {
		t.Error("children after removal are wrong")
	}
}
