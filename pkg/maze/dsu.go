package maze

// disjointSet is an index-based union-find over the grid cells. The dense
// parent/rank arrays replace the usual node-points-to-itself object graph;
// a root is an index whose parent is itself.
type disjointSet struct {
	parent []int32
	rank   []uint8
}

func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{
		parent: make([]int32, n),
		rank:   make([]uint8, n),
	}
	for i := range d.parent {
		d.parent[i] = int32(i)
	}
	return d
}

// find returns the canonical representative of i's set, re-pointing every
// cell on the walked path directly at the root.
func (d *disjointSet) find(i int) int {
	root := i
	for d.parent[root] != int32(root) {
		root = int(d.parent[root])
	}
	for i != root {
		next := int(d.parent[i])
		d.parent[i] = int32(root)
		i = next
	}
	return root
}

// union merges the sets containing a and b. The lower-rank root is attached
// under the higher-rank one; on a tie b's root goes under a's. Rank is never
// incremented, which keeps trees a little deeper than textbook union-by-rank
// but changes nothing observable: only connectivity matters to the
// generator, and path compression flattens the trees as they are queried.
func (d *disjointSet) union(a, b int) {
	ra, rb := d.find(a), d.find(b)
	if d.rank[ra] >= d.rank[rb] {
		d.parent[rb] = int32(ra)
	} else {
		d.parent[ra] = int32(rb)
	}
}
