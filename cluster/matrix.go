package cluster

import (
	"math"

	"github.com/davidkna/aoc-2025"
)

// Sentinel marks a consumed edge. It is never a real squared distance.
const Sentinel = math.MaxInt

// Matrix holds the squared euclidean distance between every pair of
// points. Entries are only ever overwritten with Sentinel.
type Matrix struct {
	n int
	d []int // row-major, n*n
}

// NewMatrix computes the distance matrix of points, one goroutine per
// row.
func NewMatrix(points []Point) *Matrix {
	n := len(points)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	rows := aoc.Parallel(idx, func(i int) []int {
		row := make([]int, n)
		for j, q := range points {
			row[j] = points[i].SqDist(q)
		}
		return row
	})
	m := &Matrix{n: n, d: make([]int, 0, n*n)}
	for _, row := range rows {
		m.d = append(m.d, row...)
	}
	return m
}

// Len returns the number of points.
func (m *Matrix) Len() int { return m.n }

func (m *Matrix) At(i, j int) int {
	return m.d[i*m.n+j]
}

func (m *Matrix) row(i int) []int {
	return m.d[i*m.n : (i+1)*m.n]
}

// Consume marks the edge between i and j as used.
func (m *Matrix) Consume(i, j int) {
	m.d[i*m.n+j] = Sentinel
	m.d[j*m.n+i] = Sentinel
}

func (m *Matrix) Consumed(i, j int) bool {
	return m.At(i, j) == Sentinel
}
