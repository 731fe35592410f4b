// Package technique detects eight named human solving techniques over an
// immutable board and its candidate grid. Detection never mutates the
// board, so it can be called speculatively by the rater without cloning.
package technique

import (
	"strconv"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/domain"
)

// Instance is one detected technique application: the tag, an anchor cell,
// and a human-readable description.
type Instance struct {
	Tag         domain.TechniqueTag
	Row, Col    int
	Description string
}

// DetectAll runs every technique detector — singles, pairs, fish (X-Wing,
// Swordfish), then wings (XY-Wing, XYZ-Wing) — and returns every useful
// instance found. Detectors are independent passes;
// the only cross-detector coordination is the hidden-single per-cell dedup.
func DetectAll(b *board.Board, grid board.CandidateGrid) []Instance {
	var out []Instance
	out = append(out, detectNakedSingles(b, grid)...)
	out = append(out, detectHiddenSingles(b, grid)...)
	out = append(out, detectNakedPairs(b, grid)...)
	out = append(out, detectHiddenPairs(b, grid)...)
	out = append(out, detectXWing(b, grid)...)
	out = append(out, detectSwordfish(b, grid)...)
	out = append(out, detectXYWing(b, grid)...)
	out = append(out, detectXYZWing(b, grid)...)
	return out
}

// Score aggregates a detection list into a single technique score: the
// maximum technique weight among detected instances, plus 0.5 per distinct
// technique beyond the first, clamped at 0 for an empty list.
func Score(instances []Instance) float64 {
	if len(instances) == 0 {
		return 0
	}
	maxWeight := 0
	seen := make(map[domain.TechniqueTag]bool)
	for _, in := range instances {
		if w := in.Tag.Weight(); w > maxWeight {
			maxWeight = w
		}
		seen[in.Tag] = true
	}
	score := float64(maxWeight) + 0.5*float64(len(seen)-1)
	if score < 0 {
		return 0
	}
	return score
}

// unit is a named group of cells — one row, one column, or one box — used
// to drive the naked-pair and hidden-pair detectors generically.
type unit struct {
	label string
	cells []domain.CellCoord
}

func allUnits(b *board.Board) []unit {
	size := b.Size()
	units := make([]unit, 0, size*3)
	for r := 0; r < size; r++ {
		units = append(units, unit{label: unitLabel("row", r), cells: rowCells(b, r)})
	}
	for c := 0; c < size; c++ {
		units = append(units, unit{label: unitLabel("column", c), cells: colCells(b, c)})
	}
	for box := 0; box < size; box++ {
		units = append(units, unit{label: unitLabel("box", box), cells: b.BoxCells(box)})
	}
	return units
}

func unitLabel(kind string, idx int) string {
	return kind + " " + strconv.Itoa(idx)
}

func rowCells(b *board.Board, r int) []domain.CellCoord {
	size := b.Size()
	cells := make([]domain.CellCoord, size)
	for c := 0; c < size; c++ {
		cells[c] = domain.CellCoord{Row: r, Col: c}
	}
	return cells
}

func colCells(b *board.Board, c int) []domain.CellCoord {
	size := b.Size()
	cells := make([]domain.CellCoord, size)
	for r := 0; r < size; r++ {
		cells[r] = domain.CellCoord{Row: r, Col: c}
	}
	return cells
}

// seeEachOther reports whether two distinct cells share a unit: same row,
// same column, or same box.
func seeEachOther(b *board.Board, a, c domain.CellCoord) bool {
	if a == c {
		return false
	}
	if a.Row == c.Row || a.Col == c.Col {
		return true
	}
	return b.BoxIndex(a.Row, a.Col) == b.BoxIndex(c.Row, c.Col)
}
