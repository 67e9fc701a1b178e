package cluster

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/davidkna/aoc-2025"
	"golang.org/x/exp/maps"
)

// BoundedMerge runs k merge steps and returns the product of the sizes of
// the three largest groups. Steps that pick an edge inside an existing
// group still count.
func BoundedMerge(points []Point, k int, opts ...Option) (int, error) {
	e := NewEngine(points, append(slices.Clip(opts), WithPruneJoined(false))...)
	for step := 1; step <= k; step++ {
		if _, err := e.SelectAndMerge(); err != nil {
			return 0, fmt.Errorf("step %d of %d: %w", step, k, err)
		}
	}
	return TopProduct(maps.Values(e.Tracker().Sizes()), 3), nil
}

// TopProduct returns the product of the n largest sizes. Missing sizes
// count as 1.
func TopProduct(sizes []int, n int) int {
	sizes = slices.Clone(sizes)
	slices.SortFunc(sizes, func(a, b int) int { return cmp.Compare(b, a) })
	if len(sizes) > n {
		sizes = sizes[:n]
	}
	return aoc.Product(sizes...)
}

// Convergence describes the merge that first joins every point into a
// single group.
type Convergence struct {
	I, J   int
	A, B   Point // Points()[I], Points()[J]
	Dist   int
	Merges int // merges committed before this one
}

// Converge merges closest pairs until the next merge would leave a single
// group, and returns that merge without committing it.
func Converge(points []Point, opts ...Option) (Convergence, error) {
	e := NewEngine(points, append(slices.Clip(opts), WithPruneJoined(true))...)
	for {
		i, j, ok := e.Next()
		if !ok {
			return Convergence{}, fmt.Errorf("after %d merges: %w", len(e.History()), ErrExhausted)
		}
		if joinsAll(e.Tracker(), i, j) {
			return Convergence{
				I:      i,
				J:      j,
				A:      points[i],
				B:      points[j],
				Dist:   e.Matrix().At(i, j),
				Merges: len(e.History()),
			}, nil
		}
		e.Commit(i, j)
	}
}

// ConvergenceMerge returns the product of the x coordinates of the pair
// found by Converge.
func ConvergenceMerge(points []Point, opts ...Option) (int, error) {
	c, err := Converge(points, opts...)
	if err != nil {
		return 0, err
	}
	return c.A.X * c.B.X, nil
}

// joinsAll reports whether every point other than i and j already
// belongs to i's or j's group. An unassigned side matches the other
// side's group. Two unassigned points only join everything when there is
// nothing else.
func joinsAll(t *Tracker, i, j int) bool {
	id1, ok1 := t.ID(i)
	id2, ok2 := t.ID(j)
	switch {
	case !ok1 && !ok2:
		return t.Len() == 2
	case !ok1:
		id1 = id2
	case !ok2:
		id2 = id1
	}
	for k := 0; k < t.Len(); k++ {
		if k == i || k == j {
			continue
		}
		id, ok := t.ID(k)
		if !ok || (id != id1 && id != id2) {
			return false
		}
	}
	return true
}
