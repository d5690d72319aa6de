package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// cellKey identifies a cubic cell of the space partition.
type cellKey struct {
	X, Y, Z int64
}

type pointEntry[V any] struct {
	point mgl64.Vec3
	value V
}

// PointMap is a map keyed by positions in space that tolerates
// floating-point rounding error: a lookup finds the value stored for any
// point within Epsilon of the queried one.
//
// The space is partitioned into cells of Epsilon width; a lookup scans the
// queried cell and its 26 neighbors, so two keys rounding into adjacent
// cells still find each other.
type PointMap[V any] struct {
	cells map[cellKey][]pointEntry[V]
	size  int
}

// NewPointMap creates an empty PointMap.
func NewPointMap[V any]() *PointMap[V] {
	return &PointMap[V]{cells: make(map[cellKey][]pointEntry[V])}
}

func toCell(point mgl64.Vec3) cellKey {
	return cellKey{
		X: int64(math.Floor(point.X() / Epsilon)),
		Y: int64(math.Floor(point.Y() / Epsilon)),
		Z: int64(math.Floor(point.Z() / Epsilon)),
	}
}

// Insert stores a value for a point. Inserting a point approximately equal
// to an existing key replaces that key's value.
func (m *PointMap[V]) Insert(point mgl64.Vec3, value V) {
	center := toCell(point)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				cell := cellKey{X: center.X + dx, Y: center.Y + dy, Z: center.Z + dz}
				for i, entry := range m.cells[cell] {
					if ApproxEqual(entry.point, point) {
						m.cells[cell][i].value = value
						return
					}
				}
			}
		}
	}
	m.cells[center] = append(m.cells[center], pointEntry[V]{point: point, value: value})
	m.size++
}

// Get returns the value stored for a point approximately equal to the
// queried one.
func (m *PointMap[V]) Get(point mgl64.Vec3) (V, bool) {
	center := toCell(point)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				cell := cellKey{X: center.X + dx, Y: center.Y + dy, Z: center.Z + dz}
				for _, entry := range m.cells[cell] {
					if ApproxEqual(entry.point, point) {
						return entry.value, true
					}
				}
			}
		}
	}
	var zero V
	return zero, false
}

// Len returns the number of distinct points stored.
func (m *PointMap[V]) Len() int {
	return m.size
}
