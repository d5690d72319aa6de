package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/akmonengine/prism"
	"github.com/akmonengine/prism/solver"
)

func main() {
	puzzle, err := prism.Pyraminx()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build puzzle: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("🔺 Pyraminx: %d faces, %d pieces, %d turns, %d symmetries\n",
		puzzle.GetNumFaces(), puzzle.GetNumPieces(), len(puzzle.Turns), len(puzzle.Symmetries()))

	for _, pieceType := range puzzle.PieceTypes() {
		fmt.Printf("   piece type: %d pieces with %d faces each\n",
			pieceType.NumPieces(), pieceType.FacesPerPiece())
	}

	metamoves := solver.DiscoverMetaMoves(puzzle, nil, 4)
	fmt.Printf("\n🔍 Discovered %d metamoves up to 4 turns\n", len(metamoves))
	best := metamoves[0]
	fmt.Printf("   best: %s affecting %d pieces\n", turnNames(puzzle, best.Turns), best.NumAffectedPieces)

	rng := rand.New(rand.NewPCG(1, 2))
	scrambled := puzzle.Scramble(puzzle.GetInitialState(), 10, rng)
	fmt.Printf("\n🎲 Scrambled: %d / %d pieces solved\n",
		puzzle.GetNumSolvedPieces(scrambled), puzzle.GetNumPieces())

	s, err := solver.NewMetaMovePhasedSolver(puzzle, scrambled, solver.PhasedOpts{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "build solver: %v\n", err)
		os.Exit(1)
	}
	solution := solver.Collect(s)

	fmt.Printf("⚙️  Solution: %s (%d turns)\n", turnNames(puzzle, solution), len(solution))
	fmt.Printf("✅ Final: %d / %d pieces solved\n",
		puzzle.GetNumSolvedPieces(s.State()), puzzle.GetNumPieces())
}

func turnNames(p *prism.Puzzle, turns []int) string {
	names := ""
	for i, turnIndex := range turns {
		if i > 0 {
			names += " "
		}
		names += p.Turns[turnIndex].Name
	}
	return names
}
