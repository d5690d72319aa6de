package prism

import "sort"

// PieceType groups the pieces that carry the same number of faces (the
// corners of a cube all carry three stickers, its edges two, and so on).
// Solvers use piece types to score and solve one kind of piece at a time.
type PieceType struct {
	facesPerPiece int
	pieceIndices  []int
	faceMask      []bool
}

// FacesPerPiece returns the number of faces carried by each piece of the
// type.
func (t PieceType) FacesPerPiece() int {
	return t.facesPerPiece
}

// NumPieces returns the number of pieces of the type.
func (t PieceType) NumPieces() int {
	return len(t.pieceIndices)
}

// FaceMask returns, per face index, whether the face belongs to a piece of
// this type. The mask must not be modified.
func (t PieceType) FaceMask() []bool {
	return t.faceMask
}

func groupPieceTypes(faces []PieceFace, pieces [][]int) []PieceType {
	byFaceCount := make(map[int]*PieceType)
	for pieceIndex, piece := range pieces {
		t, ok := byFaceCount[len(piece)]
		if !ok {
			t = &PieceType{
				facesPerPiece: len(piece),
				faceMask:      make([]bool, len(faces)),
			}
			byFaceCount[len(piece)] = t
		}
		t.pieceIndices = append(t.pieceIndices, pieceIndex)
		for _, faceIndex := range piece {
			t.faceMask[faceIndex] = true
		}
	}

	types := make([]PieceType, 0, len(byFaceCount))
	for _, t := range byFaceCount {
		types = append(types, *t)
	}
	// Most numerous type first; face count breaks ties for determinism.
	sort.Slice(types, func(i, j int) bool {
		if len(types[i].pieceIndices) != len(types[j].pieceIndices) {
			return len(types[i].pieceIndices) > len(types[j].pieceIndices)
		}
		return types[i].facesPerPiece > types[j].facesPerPiece
	})
	return types
}

// PieceTypes returns the puzzle's piece types, most numerous first.
func (p *Puzzle) PieceTypes() []PieceType {
	return p.pieceTypes
}

// GetNumPiecesOfType returns the number of pieces of the given type.
func (p *Puzzle) GetNumPiecesOfType(t PieceType) int {
	return t.NumPieces()
}

// GetNumSolvedPiecesOfType counts the pieces of the given type whose faces
// all show their original color.
func (p *Puzzle) GetNumSolvedPiecesOfType(state PuzzleState, t PieceType) int {
	solved := 0
	for _, pieceIndex := range t.pieceIndices {
		allSolved := true
		for _, faceIndex := range p.pieces[pieceIndex] {
			if state[faceIndex] != p.Faces[faceIndex].ColorIndex {
				allSolved = false
				break
			}
		}
		if allSolved {
			solved++
		}
	}
	return solved
}
