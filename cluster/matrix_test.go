package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix(t *testing.T) {
	pts := loadFixture(t, "example").points(t)
	m := NewMatrix(pts)
	require.Equal(t, len(pts), m.Len())

	for i := range pts {
		assert.Zero(t, m.At(i, i), "dist[%d][%d]", i, i)
		for j := range pts {
			assert.Equal(t, m.At(i, j), m.At(j, i), "dist[%d][%d] != dist[%d][%d]", i, j, j, i)
			assert.False(t, m.Consumed(i, j))
		}
	}

	// 162,817,812 to 425,690,689: 263² + 127² + 123²
	assert.Equal(t, 263*263+127*127+123*123, m.At(0, 19))
}

func TestMatrixConsume(t *testing.T) {
	m := NewMatrix([]Point{{X: 0}, {X: 3}, {X: 5}})
	assert.Equal(t, 9, m.At(0, 1))

	m.Consume(1, 0)
	assert.True(t, m.Consumed(0, 1))
	assert.True(t, m.Consumed(1, 0))
	assert.Equal(t, Sentinel, m.At(0, 1))
	assert.False(t, m.Consumed(0, 2))
	assert.Equal(t, 4, m.At(2, 1))
}
