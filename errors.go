package prism

import "errors"

var (
	// ErrFaceLookup indicates a rotated face center did not land on any
	// known face center while deriving a turn's face map. The cut layout
	// is not consistent with the turn's rotation, so the puzzle cannot be
	// constructed.
	ErrFaceLookup = errors.New("prism: rotated face center matches no face")
	// ErrNoCuts indicates a puzzle was built without any cutting plane.
	ErrNoCuts = errors.New("prism: puzzle needs at least one cut")
)
