package technique

import (
	"fmt"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/domain"
)

// detectNakedSingles reports every empty cell with exactly one remaining
// candidate. A naked single is always useful: it fills the cell outright.
func detectNakedSingles(b *board.Board, grid board.CandidateGrid) []Instance {
	size := b.Size()
	var out []Instance
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if b.Get(r, c) != 0 {
				continue
			}
			mask := grid.At(r, c)
			if board.CandidateCount(mask) != 1 {
				continue
			}
			v := board.CandidateDigits(mask, size)[0]
			out = append(out, Instance{
				Tag: domain.NakedSingle, Row: r, Col: c,
				Description: fmt.Sprintf("%d is the only candidate left at (%d,%d)", v, r, c),
			})
		}
	}
	return out
}

// HasNakedSingle is a cheap probe: it reports whether any empty cell has
// exactly one candidate, without building the instance list.
func HasNakedSingle(b *board.Board, grid board.CandidateGrid) bool {
	size := b.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if b.Get(r, c) == 0 && board.CandidateCount(grid.At(r, c)) == 1 {
				return true
			}
		}
	}
	return false
}

// HasHiddenSingle is the hidden-single probe: whether any unit confines
// some digit to a single cell.
func HasHiddenSingle(b *board.Board, grid board.CandidateGrid) bool {
	return len(detectHiddenSingles(b, grid)) > 0
}

// detectHiddenSingles reports, for every unit and digit, the one cell where
// that digit is the only remaining candidate position. Dedup is per cell:
// once a cell has been reported as a hidden single (scanning rows, then
// columns, then boxes), it is never reported again regardless of which
// digit a later unit would report it for.
func detectHiddenSingles(b *board.Board, grid board.CandidateGrid) []Instance {
	size := b.Size()
	seenCells := make(map[domain.CellCoord]bool, size*size)
	var out []Instance

	for r := 0; r < size; r++ {
		out = append(out, hiddenSinglesInUnit(b, grid, rowCells(b, r), seenCells, unitLabel("row", r))...)
	}
	for c := 0; c < size; c++ {
		out = append(out, hiddenSinglesInUnit(b, grid, colCells(b, c), seenCells, unitLabel("column", c))...)
	}
	for box := 0; box < size; box++ {
		out = append(out, hiddenSinglesInUnit(b, grid, b.BoxCells(box), seenCells, unitLabel("box", box))...)
	}
	return out
}

func hiddenSinglesInUnit(b *board.Board, grid board.CandidateGrid, cells []domain.CellCoord, seenCells map[domain.CellCoord]bool, label string) []Instance {
	size := b.Size()
	positions := make([][]domain.CellCoord, size+1)
	for _, cell := range cells {
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

	var out []Instance
	for v := 1; v <= size; v++ {
		if len(positions[v]) != 1 {
			continue
		}
		cell := positions[v][0]
		if seenCells[cell] {
			continue
		}
		seenCells[cell] = true
		out = append(out, Instance{
			Tag: domain.HiddenSingle, Row: cell.Row, Col: cell.Col,
			Description: fmt.Sprintf("%d is the only candidate for %s in (%d,%d)", v, label, cell.Row, cell.Col),
		})
	}
	return out
}
