package geom

import "errors"

var (
	// ErrInvalidSchlafli indicates the {p,q} pair does not describe a
	// convex regular polyhedron.
	ErrInvalidSchlafli = errors.New("geom: {p,q} is not a convex regular polyhedron")
	// ErrOpenSolid indicates the generated polyhedron is not a closed
	// solid (an edge is not shared by exactly two faces).
	ErrOpenSolid = errors.New("geom: generated polyhedron is not closed")
)
