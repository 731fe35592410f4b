// Package analyzer computes per-region clue distribution and per-clue
// importance, used by the refiner to pick which clue to add or remove next.
package analyzer

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/domain"
)

// Distribution holds per-unit clue counts and the units whose count strays
// more than one standard deviation from the global average.
type Distribution struct {
	RowCounts  []int
	ColCounts  []int
	BoxCounts  []int
	Average    float64
	Variance   float64
	OverUnits  []UnitRef
	UnderUnits []UnitRef
}

// UnitRef names one unit ("row", "column", "box") and its index.
type UnitRef struct {
	Kind  string
	Index int
}

// ComputeDistribution builds a Distribution from a puzzle's current clues.
func ComputeDistribution(b *board.Board) Distribution {
	size := b.Size()
	rowCounts := make([]int, size)
	colCounts := make([]int, size)
	boxCounts := make([]int, size)
	for _, cell := range b.Clues() {
		rowCounts[cell.Row]++
		colCounts[cell.Col]++
		boxCounts[b.BoxIndex(cell.Row, cell.Col)]++
	}

	all := make([]float64, 0, size*3)
	for _, n := range rowCounts {
		all = append(all, float64(n))
	}
	for _, n := range colCounts {
		all = append(all, float64(n))
	}
	for _, n := range boxCounts {
		all = append(all, float64(n))
	}
	mean := stat.Mean(all, nil)
	variance := stat.Variance(all, nil)
	stddev := stat.StdDev(all, nil)

	d := Distribution{
		RowCounts: rowCounts, ColCounts: colCounts, BoxCounts: boxCounts,
		Average: mean, Variance: variance,
	}
	classify := func(kind string, counts []int) {
		for i, n := range counts {
			delta := float64(n) - mean
			if delta < 0 {
				delta = -delta
			}
			if delta <= stddev {
				continue
			}
			ref := UnitRef{Kind: kind, Index: i}
			if float64(n) > mean {
				d.OverUnits = append(d.OverUnits, ref)
			} else {
				d.UnderUnits = append(d.UnderUnits, ref)
			}
		}
	}
	classify("row", rowCounts)
	classify("column", colCounts)
	classify("box", boxCounts)
	return d
}

// cellInUnderConstrainedUnit reports whether any unit covering (row, col)
// appears in the distribution's under-constrained list.
func (d Distribution) cellInUnderConstrainedUnit(b *board.Board, row, col int) bool {
	box := b.BoxIndex(row, col)
	for _, u := range d.UnderUnits {
		switch u.Kind {
		case "row":
			if u.Index == row {
				return true
			}
		case "column":
			if u.Index == col {
				return true
			}
		case "box":
			if u.Index == box {
				return true
			}
		}
	}
	return false
}

// sortedIndicesByFloat is a small helper used by CluesByImportance and
// CandidateClueAdditions to order coordinates by a keyed float value.
func sortedIndicesByFloat(cells []domain.CellCoord, keys []float64, ascending bool) []domain.CellCoord {
	idx := make([]int, len(cells))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if ascending {
			return keys[idx[a]] < keys[idx[b]]
		}
		return keys[idx[a]] > keys[idx[b]]
	})
	out := make([]domain.CellCoord, len(cells))
	for i, p := range idx {
		out[i] = cells[p]
	}
	return out
}
