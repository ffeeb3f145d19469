package maze

import "testing"

func TestDisjointSetFresh(t *testing.T) {
	d := newDisjointSet(5)
	for i := 0; i < 5; i++ {
		if got := d.find(i); got != i {
			t.Errorf("find(%d) = %d, want %d (fresh cells are their own roots)", i, got, i)
		}
	}
}

func TestDisjointSetUnion(t *testing.T) {
	d := newDisjointSet(6)

	d.union(0, 1)
	if d.find(0) != d.find(1) {
		t.Error("0 and 1 should share a root after union")
	}
	if d.find(2) == d.find(0) {
		t.Error("2 should still be separate")
	}

	d.union(2, 3)
	d.union(0, 2)
	for _, i := range []int{1, 2, 3} {
		if d.find(i) != d.find(0) {
			t.Errorf("cell %d not merged into the combined set", i)
		}
	}
	if d.find(4) == d.find(0) || d.find(5) == d.find(0) {
		t.Error("untouched cells must stay separate")
	}
}

func TestDisjointSetRankTie(t *testing.T) {
	// On equal ranks the second argument's root is attached under the
	// first's, and rank stays untouched.
	d := newDisjointSet(2)
	d.union(0, 1)
	if got := d.find(1); got != 0 {
		t.Errorf("tie union attached %d on top, want root 0", got)
	}
	if d.rank[0] != 0 {
		t.Errorf("rank incremented to %d on tie, want 0", d.rank[0])
	}
}

func TestDisjointSetPathCompression(t *testing.T) {
	// Build a deliberate chain 0 <- 1 <- 2 <- 3, then check that a single
	// find re-points the whole walked path at the root.
	d := newDisjointSet(4)
	d.parent[3] = 2
	d.parent[2] = 1
	d.parent[1] = 0

	if got := d.find(3); got != 0 {
		t.Fatalf("find(3) = %d, want 0", got)
	}
	for i := 1; i < 4; i++ {
		if d.parent[i] != 0 {
			t.Errorf("parent[%d] = %d after find, want 0 (path not compressed)", i, d.parent[i])
		}
	}
}

func TestDisjointSetSelfUnion(t *testing.T) {
	d := newDisjointSet(3)
	d.union(1, 1)
	if d.find(1) != 1 || d.find(0) != 0 {
		t.Error("self union must be a no-op")
	}
}
