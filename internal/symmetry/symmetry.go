// Package symmetry detects positional symmetry in a puzzle's clues: four
// boolean predicates over clue positions, plus a weighted score.
package symmetry

import "github.com/sudokuforge/engine/internal/board"

// Info is the symmetry analysis of one puzzle's clue positions.
type Info struct {
	Rotational bool
	Horizontal bool
	Vertical   bool
	Diagonal   bool
	Score      float64
}

// Score weights: rotation 0.30, horizontal 0.25, vertical 0.25,
// diagonal 0.20.
const (
	rotationWeight   = 0.30
	horizontalWeight = 0.25
	verticalWeight   = 0.25
	diagonalWeight   = 0.20
)

// Analyze runs all four predicates against a puzzle's clue positions and
// combines them into a weighted score.
func Analyze(b *board.Board) Info {
	info := Info{
		Rotational: hasRotationalSymmetry(b),
		Horizontal: hasHorizontalSymmetry(b),
		Vertical:   hasVerticalSymmetry(b),
		Diagonal:   hasDiagonalSymmetry(b),
	}
	info.Score = weightedScore(info)
	return info
}

func weightedScore(info Info) float64 {
	score := 0.0
	if info.Rotational {
		score += rotationWeight
	}
	if info.Horizontal {
		score += horizontalWeight
	}
	if info.Vertical {
		score += verticalWeight
	}
	if info.Diagonal {
		score += diagonalWeight
	}
	return score
}

func isClue(b *board.Board, row, col int) bool { return b.Get(row, col) != 0 }

// hasRotationalSymmetry reports whether every clue at (r,c) has a clue at
// (size-1-r, size-1-c), the 180-degree rotation.
func hasRotationalSymmetry(b *board.Board) bool {
	return everyClueMatches(b, func(size, r, c int) (int, int) { return size - 1 - r, size - 1 - c })
}

// hasHorizontalSymmetry mirrors across the horizontal axis: row r pairs
// with row size-1-r, same column.
func hasHorizontalSymmetry(b *board.Board) bool {
	return everyClueMatches(b, func(size, r, c int) (int, int) { return size - 1 - r, c })
}

// hasVerticalSymmetry mirrors across the vertical axis: column c pairs
// with column size-1-c, same row.
func hasVerticalSymmetry(b *board.Board) bool {
	return everyClueMatches(b, func(size, r, c int) (int, int) { return r, size - 1 - c })
}

// hasDiagonalSymmetry reflects across the main diagonal: (r,c) pairs with
// (c,r).
func hasDiagonalSymmetry(b *board.Board) bool {
	return everyClueMatches(b, func(size, r, c int) (int, int) { return c, r })
}

func everyClueMatches(b *board.Board, mirror func(size, r, c int) (int, int)) bool {
	size := b.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if !isClue(b, r, c) {
				continue
			}
			mr, mc := mirror(size, r, c)
			if !isClue(b, mr, mc) {
				return false
			}
		}
	}
	return true
}
