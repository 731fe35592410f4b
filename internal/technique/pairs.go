package technique

import (
	"fmt"
	"sort"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/domain"
)

// detectNakedPairs reports, per unit, two cells that share the same
// two-candidate mask where it is useful: some other cell in the same unit
// still carries one of those two digits as a candidate (the elimination the
// pair makes possible).
func detectNakedPairs(b *board.Board, grid board.CandidateGrid) []Instance {
	var out []Instance
	for _, u := range allUnits(b) {
		type twoCand struct {
			cell domain.CellCoord
			mask uint32
		}
		var twos []twoCand
		for _, cell := range u.cells {
			if b.Get(cell.Row, cell.Col) != 0 {
				continue
			}
			mask := grid.At(cell.Row, cell.Col)
			if board.CandidateCount(mask) == 2 {
				twos = append(twos, twoCand{cell, mask})
			}
		}
		for i := 0; i < len(twos); i++ {
			for j := i + 1; j < len(twos); j++ {
				if twos[i].mask != twos[j].mask {
					continue
				}
				mask := twos[i].mask
				useful := false
				for _, cell := range u.cells {
					if cell == twos[i].cell || cell == twos[j].cell {
						continue
					}
					if b.Get(cell.Row, cell.Col) != 0 {
						continue
					}
					if grid.At(cell.Row, cell.Col)&mask != 0 {
						useful = true
						break
					}
				}
				if !useful {
					continue
				}
				digits := board.CandidateDigits(mask, b.Size())
				out = append(out, Instance{
					Tag: domain.NakedPair, Row: twos[i].cell.Row, Col: twos[i].cell.Col,
					Description: fmt.Sprintf("naked pair %v in %s at (%d,%d) and (%d,%d)",
						digits, u.label, twos[i].cell.Row, twos[i].cell.Col, twos[j].cell.Row, twos[j].cell.Col),
				})
			}
		}
	}
	return out
}

// detectHiddenPairs reports, per unit, two digits confined to exactly the
// same two cells, where the elimination is visible: at least one of the two
// cells carries a candidate besides the pair.
func detectHiddenPairs(b *board.Board, grid board.CandidateGrid) []Instance {
	size := b.Size()
	var out []Instance
	for _, u := range allUnits(b) {
		positions := make(map[int][]domain.CellCoord)
		for _, cell := range u.cells {
			if b.Get(cell.Row, cell.Col) != 0 {
				continue
			}
			mask := grid.At(cell.Row, cell.Col)
			for v := 1; v <= size; v++ {
				if mask&(uint32(1)<<uint(v-1)) != 0 {
					positions[v] = append(positions[v], cell)
				}
			}
		}
		var pairedDigits []int
		for v, cells := range positions {
			if len(cells) == 2 {
				pairedDigits = append(pairedDigits, v)
			}
		}
		sort.Ints(pairedDigits)
		for i := 0; i < len(pairedDigits); i++ {
			for j := i + 1; j < len(pairedDigits); j++ {
				d1, d2 := pairedDigits[i], pairedDigits[j]
				c1, c2 := positions[d1], positions[d2]
				if !sameCellPair(c1, c2) {
					continue
				}
				extra := false
				for _, cell := range c1 {
					if board.CandidateCount(grid.At(cell.Row, cell.Col)) > 2 {
						extra = true
					}
				}
				if !extra {
					continue
				}
				out = append(out, Instance{
					Tag: domain.HiddenPair, Row: c1[0].Row, Col: c1[0].Col,
					Description: fmt.Sprintf("hidden pair {%d,%d} in %s at (%d,%d) and (%d,%d)",
						d1, d2, u.label, c1[0].Row, c1[0].Col, c1[1].Row, c1[1].Col),
				})
			}
		}
	}
	return out
}

func sameCellPair(a, b []domain.CellCoord) bool {
	if len(a) != 2 || len(b) != 2 {
		return false
	}
	return (a[0] == b[0] && a[1] == b[1]) || (a[0] == b[1] && a[1] == b[0])
}
