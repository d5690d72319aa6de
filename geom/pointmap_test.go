package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPointMapGet(t *testing.T) {
	m := NewPointMap[int]()
	m.Insert(mgl64.Vec3{1, 2, 3}, 7)

	tests := []struct {
		name     string
		query    mgl64.Vec3
		expected int
		found    bool
	}{
		{"exact", mgl64.Vec3{1, 2, 3}, 7, true},
		{"within epsilon", mgl64.Vec3{1 + 1e-9, 2 - 1e-9, 3}, 7, true},
		{"outside epsilon", mgl64.Vec3{1 + 1e-7, 2, 3}, 0, false},
		{"far away", mgl64.Vec3{5, 5, 5}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := m.Get(tt.query)
			if found != tt.found || got != tt.expected {
				t.Errorf("Get(%v) = (%d, %v), want (%d, %v)", tt.query, got, found, tt.expected, tt.found)
			}
		})
	}
}

func TestPointMapInsertReplaces(t *testing.T) {
	m := NewPointMap[string]()
	m.Insert(mgl64.Vec3{0, 0, 0}, "first")
	m.Insert(mgl64.Vec3{1e-9, 0, 0}, "second")

	if m.Len() != 1 {
		t.Fatalf("Len = %d, want 1 after inserting two approximately equal points", m.Len())
	}
	got, found := m.Get(mgl64.Vec3{0, 0, 0})
	if !found || got != "second" {
		t.Errorf("Get = (%q, %v), want the replacing value", got, found)
	}
}

func TestPointMapManyPoints(t *testing.T) {
	m := NewPointMap[int]()
	var points []mgl64.Vec3
	for i := range 10 {
		for j := range 10 {
			points = append(points, mgl64.Vec3{float64(i) * 0.1, float64(j) * 0.1, 0})
		}
	}
	for i, p := range points {
		m.Insert(p, i)
	}

	if m.Len() != len(points) {
		t.Fatalf("Len = %d, want %d", m.Len(), len(points))
	}
	for i, p := range points {
		got, found := m.Get(p)
		if !found || got != i {
			t.Errorf("Get(%v) = (%d, %v), want (%d, true)", p, got, found, i)
		}
	}
}
