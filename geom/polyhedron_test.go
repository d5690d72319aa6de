package geom

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestGeneratePlatonicSolids(t *testing.T) {
	tests := []struct {
		name        string
		p, q        int
		numFaces    int
		numVertices int
	}{
		{"tetrahedron", 3, 3, 4, 4},
		{"cube", 4, 3, 6, 8},
		{"octahedron", 3, 4, 8, 6},
		{"dodecahedron", 5, 3, 12, 20},
		{"icosahedron", 3, 5, 20, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poly, err := Generate(tt.p, tt.q)
			if err != nil {
				t.Fatalf("Generate(%d, %d) error: %v", tt.p, tt.q, err)
			}
			if len(poly.Faces) != tt.numFaces {
				t.Errorf("faces = %d, want %d", len(poly.Faces), tt.numFaces)
			}
			if len(poly.Vertices) != tt.numVertices {
				t.Errorf("vertices = %d, want %d", len(poly.Vertices), tt.numVertices)
			}
			for i, face := range poly.Faces {
				if len(face.Vertices) != tt.p {
					t.Errorf("face %d has %d vertices, want %d", i, len(face.Vertices), tt.p)
				}
			}
		})
	}
}

func TestGenerateInvalidSchlafli(t *testing.T) {
	tests := []struct {
		name string
		p, q int
	}{
		{"p too small", 2, 3},
		{"q too small", 3, 2},
		{"no flat tilings", 4, 4},
		{"hyperbolic", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.p, tt.q)
			if !errors.Is(err, ErrInvalidSchlafli) {
				t.Errorf("Generate(%d, %d) error = %v, want ErrInvalidSchlafli", tt.p, tt.q, err)
			}
		})
	}
}

func TestGenerateVerticesOnCircumsphere(t *testing.T) {
	poly, err := Generate(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	radius := poly.Vertices[0].Len()
	for i, v := range poly.Vertices {
		if diff := v.Len() - radius; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("vertex %d at distance %v, want %v", i, v.Len(), radius)
		}
	}
}

func TestFacePairs(t *testing.T) {
	cube, err := Generate(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	pairs := cube.FacePairs()
	if len(pairs) != 3 {
		t.Fatalf("cube has %d opposite face pairs, want 3", len(pairs))
	}
	seen := map[int]bool{}
	for _, pair := range pairs {
		// Opposite faces have anti-parallel normals.
		a := cube.Faces[pair[0]].Plane().Normal.Normalize()
		b := cube.Faces[pair[1]].Plane().Normal.Normalize()
		if !ApproxEqual(a, b.Mul(-1)) {
			t.Errorf("pair %v normals %v and %v are not opposite", pair, a, b)
		}
		seen[pair[0]] = true
		seen[pair[1]] = true
	}
	if len(seen) != 6 {
		t.Errorf("pairs cover %d faces, want 6", len(seen))
	}

	tetra, err := Generate(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if pairs := tetra.FacePairs(); len(pairs) != 0 {
		t.Errorf("tetrahedron has %d opposite face pairs, want 0", len(pairs))
	}
}

func TestFaceRotateAboutAxis(t *testing.T) {
	face := Face{Vertices: []mgl64.Vec3{{1, 0, 0}, {1, 1, 0}, {1, 0, 1}}}
	// Folding a face about an axis reverses its winding.
	rotated := face.RotateAboutAxis(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 0})
	if len(rotated.Vertices) != 3 {
		t.Fatalf("rotated face has %d vertices", len(rotated.Vertices))
	}
	for i := range face.Vertices {
		if !ApproxEqual(rotated.Vertices[i], face.Vertices[len(face.Vertices)-1-i]) {
			t.Errorf("zero rotation should only reverse vertex order, got %v", rotated.Vertices)
		}
	}
}

func TestFaceCenter(t *testing.T) {
	face := Face{Vertices: []mgl64.Vec3{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}}}
	if got := face.Center(); !ApproxEqual(got, mgl64.Vec3{1, 1, 0}) {
		t.Errorf("Center = %v, want (1, 1, 0)", got)
	}
}

func TestEdgeApproxEqual(t *testing.T) {
	a := Edge{A: mgl64.Vec3{0, 0, 0}, B: mgl64.Vec3{1, 0, 0}}
	b := Edge{A: mgl64.Vec3{1, 0, 0}, B: mgl64.Vec3{0, 0, 0}}
	c := Edge{A: mgl64.Vec3{0, 0, 0}, B: mgl64.Vec3{0, 1, 0}}
	if !a.ApproxEqual(b) {
		t.Error("edges equal up to direction should match")
	}
	if a.ApproxEqual(c) {
		t.Error("distinct edges should not match")
	}
}
