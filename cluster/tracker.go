package cluster

// Tracker maps each point to the id of the group it belongs to. A point
// has no id until it takes part in a merge.
//
// Groups are kept in a disjoint-set forest with union by size and path
// compression. Each root carries its group's id; when two groups join,
// the smaller of their ids survives, so every member reports the same,
// current id.
type Tracker struct {
	parent   []int // -1 means "is a root"
	size     []int
	label    []int // group id, valid for assigned roots
	assigned []bool
	nextID   int
}

func NewTracker(n int) *Tracker {
	t := &Tracker{
		parent:   make([]int, n),
		size:     make([]int, n),
		label:    make([]int, n),
		assigned: make([]bool, n),
	}
	for i := range t.parent {
		t.parent[i] = -1
		t.size[i] = 1
	}
	return t
}

// Len returns the number of points tracked.
func (t *Tracker) Len() int { return len(t.parent) }

func (t *Tracker) find(x int) int {
	root := x
	for t.parent[root] != -1 {
		root = t.parent[root]
	}
	for t.parent[x] != -1 {
		x, t.parent[x] = t.parent[x], root
	}
	return root
}

// ID returns the id of i's group, or false if i has never been merged.
func (t *Tracker) ID(i int) (int, bool) {
	if !t.assigned[i] {
		return 0, false
	}
	return t.label[t.find(i)], true
}

// Same reports whether i and j are in the same group. Every point is in
// its own group until merged.
func (t *Tracker) Same(i, j int) bool {
	return t.find(i) == t.find(j)
}

// Merge joins the groups of i and j and returns the id of the result.
// Two unassigned points get a fresh id; an unassigned point joining a
// group takes its id; two groups keep the smaller id.
func (t *Tracker) Merge(i, j int) int {
	idI, okI := t.ID(i)
	idJ, okJ := t.ID(j)
	var id int
	switch {
	case okI && okJ:
		id = min(idI, idJ)
	case okI:
		id = idI
	case okJ:
		id = idJ
	default:
		id = t.nextID
		t.nextID++
	}

	ri, rj := t.find(i), t.find(j)
	if ri != rj {
		if t.size[ri] < t.size[rj] {
			ri, rj = rj, ri
		}
		t.parent[rj] = ri
		t.size[ri] += t.size[rj]
	}
	t.label[ri] = id
	t.assigned[i] = true
	t.assigned[j] = true
	return id
}

// Members returns the points in i's group in ascending order. An
// unassigned point is alone in its group.
func (t *Tracker) Members(i int) []int {
	root := t.find(i)
	out := make([]int, 0, t.size[root])
	for k := range t.parent {
		if t.find(k) == root {
			out = append(out, k)
		}
	}
	return out
}

// Sizes returns the number of members of each group that has an id.
func (t *Tracker) Sizes() map[int]int {
	sizes := make(map[int]int)
	for k := range t.parent {
		if id, ok := t.ID(k); ok {
			sizes[id]++
		}
	}
	return sizes
}

// Groups returns the number of groups, counting each unassigned point as
// a group of its own.
func (t *Tracker) Groups() int {
	var n int
	for _, p := range t.parent {
		if p == -1 {
			n++
		}
	}
	return n
}
