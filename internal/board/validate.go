package board

import (
	"fmt"

	"github.com/sudokuforge/engine/internal/domain"
)

// Validate checks the row/column/box invariant, no digit repeated within
// any unit, and reports every offending unit. This is the defensive check
// the generator runs after carving. Callers decide whether a non-empty
// report is fatal.
func Validate(b *Board) domain.ValidationReport {
	var report domain.ValidationReport
	size := b.Size()

	checkUnit := func(label string, cells []domain.CellCoord) {
		seen := make(map[uint8][]domain.CellCoord, size)
		for _, cell := range cells {
			v := b.Get(cell.Row, cell.Col)
			if v == 0 {
				continue
			}
			seen[v] = append(seen[v], cell)
		}
		for v, cells := range seen {
			if len(cells) > 1 {
				report.Offenses = append(report.Offenses, domain.UnitOffense{
					Unit:  label,
					Digit: int(v),
					Cells: cells,
				})
			}
		}
	}

	for r := 0; r < size; r++ {
		row := make([]domain.CellCoord, size)
		for c := 0; c < size; c++ {
			row[c] = domain.CellCoord{Row: r, Col: c}
		}
		checkUnit(fmt.Sprintf("row %d", r), row)
	}
	for c := 0; c < size; c++ {
		col := make([]domain.CellCoord, size)
		for r := 0; r < size; r++ {
			col[r] = domain.CellCoord{Row: r, Col: c}
		}
		checkUnit(fmt.Sprintf("column %d", c), col)
	}
	for box := 0; box < size; box++ {
		checkUnit(fmt.Sprintf("box %d", box), b.BoxCells(box))
	}
	return report
}
