package technique

import (
	"fmt"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/domain"
)

type candCell struct {
	cell domain.CellCoord
	mask uint32
}

func collectCellsWithCandidateCount(b *board.Board, grid board.CandidateGrid, count int) []candCell {
	size := b.Size()
	var out []candCell
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if b.Get(r, c) != 0 {
				continue
			}
			mask := grid.At(r, c)
			if board.CandidateCount(mask) == count {
				out = append(out, candCell{domain.CellCoord{Row: r, Col: c}, mask})
			}
		}
	}
	return out
}

// detectXYWing reports a bivalue pivot {A,B} with two bivalue wings {A,C}
// and {B,C}, each seeing the pivot, where some cell sees both wings and
// still carries C as a candidate. An XY-Wing with no visible elimination
// target is not reported.
func detectXYWing(b *board.Board, grid board.CandidateGrid) []Instance {
	size := b.Size()
	bivalues := collectCellsWithCandidateCount(b, grid, 2)
	var out []Instance

	for _, pivot := range bivalues {
		pivotDigits := board.CandidateDigits(pivot.mask, size)
		a, bb := int(pivotDigits[0]), int(pivotDigits[1])
		for _, wing1 := range bivalues {
			if wing1.cell == pivot.cell || !seeEachOther(b, pivot.cell, wing1.cell) {
				continue
			}
			w1 := board.CandidateDigits(wing1.mask, size)
			shared := intersectDigits(pivotDigits, w1)
			if len(shared) != 1 {
				continue
			}
			pivShare := int(shared[0])
			if pivShare != a {
				// wing1 always plays the A-sharer role; trying both orderings
				// would report every XY-Wing twice with wings swapped.
				continue
			}
			c := otherDigit(w1, pivShare)
			other := bb
			for _, wing2 := range bivalues {
				if wing2.cell == pivot.cell || wing2.cell == wing1.cell {
					continue
				}
				if !seeEachOther(b, pivot.cell, wing2.cell) {
					continue
				}
				w2 := board.CandidateDigits(wing2.mask, size)
				if !digitSetEquals(w2, []uint8{uint8(other), uint8(c)}) {
					continue
				}
				sees := []domain.CellCoord{wing1.cell, wing2.cell}
				excl := []domain.CellCoord{pivot.cell, wing1.cell, wing2.cell}
				if !eliminationVisible(b, grid, sees, excl, uint32(1)<<uint(c-1)) {
					continue
				}
				out = append(out, Instance{
					Tag: domain.XYWing, Row: pivot.cell.Row, Col: pivot.cell.Col,
					Description: fmt.Sprintf("XY-Wing pivot (%d,%d) wings (%d,%d)/(%d,%d) eliminate %d",
						pivot.cell.Row, pivot.cell.Col, wing1.cell.Row, wing1.cell.Col, wing2.cell.Row, wing2.cell.Col, c),
				})
			}
		}
	}
	return out
}

// detectXYZWing reports a trivalue pivot {A,B,C} with two bivalue wings
// drawn from its digits whose intersection is a single digit C and whose
// union reconstructs the pivot's three digits, where some cell sees the
// pivot and both wings and still carries C.
func detectXYZWing(b *board.Board, grid board.CandidateGrid) []Instance {
	size := b.Size()
	trivalues := collectCellsWithCandidateCount(b, grid, 3)
	bivalues := collectCellsWithCandidateCount(b, grid, 2)
	var out []Instance

	for _, pivot := range trivalues {
		pivotDigits := board.CandidateDigits(pivot.mask, size)
		for _, wing1 := range bivalues {
			if !seeEachOther(b, pivot.cell, wing1.cell) {
				continue
			}
			w1 := board.CandidateDigits(wing1.mask, size)
			if !isSubset(w1, pivotDigits) {
				continue
			}
			for _, wing2 := range bivalues {
				if !cellLess(wing1.cell, wing2.cell) {
					// canonical ordering: avoids reporting the same wing
					// pair twice with roles swapped.
					continue
				}
				if !seeEachOther(b, pivot.cell, wing2.cell) {
					continue
				}
				w2 := board.CandidateDigits(wing2.mask, size)
				if !isSubset(w2, pivotDigits) {
					continue
				}
				common := intersectDigits(w1, w2)
				if len(common) != 1 {
					continue
				}
				union := unionDigits(w1, w2)
				if !digitSetEquals(union, pivotDigits) {
					continue
				}
				c := int(common[0])
				cells := []domain.CellCoord{pivot.cell, wing1.cell, wing2.cell}
				if !eliminationVisible(b, grid, cells, cells, uint32(1)<<uint(c-1)) {
					continue
				}
				out = append(out, Instance{
					Tag: domain.XYZWing, Row: pivot.cell.Row, Col: pivot.cell.Col,
					Description: fmt.Sprintf("XYZ-Wing pivot (%d,%d) wings (%d,%d)/(%d,%d) eliminate %d",
						pivot.cell.Row, pivot.cell.Col, wing1.cell.Row, wing1.cell.Col, wing2.cell.Row, wing2.cell.Col, c),
				})
			}
		}
	}
	return out
}

// eliminationVisible reports whether some empty cell outside exclude sees
// every cell in sees and still carries bit as a candidate. For an XY-Wing
// the eliminating cell must see both wings but not necessarily the pivot;
// for an XYZ-Wing it must see all three, so sees and exclude coincide.
func eliminationVisible(b *board.Board, grid board.CandidateGrid, sees, exclude []domain.CellCoord, bit uint32) bool {
	size := b.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			cell := domain.CellCoord{Row: r, Col: c}
			if b.Get(r, c) != 0 || isIn(exclude, cell) {
				continue
			}
			if grid.At(r, c)&bit == 0 {
				continue
			}
			seesAll := true
			for _, ex := range sees {
				if !seeEachOther(b, cell, ex) {
					seesAll = false
					break
				}
			}
			if seesAll {
				return true
			}
		}
	}
	return false
}

func cellLess(a, b domain.CellCoord) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

func isIn(cells []domain.CellCoord, cell domain.CellCoord) bool {
	for _, c := range cells {
		if c == cell {
			return true
		}
	}
	return false
}

func intersectDigits(a, b []uint8) []uint8 {
	var out []uint8
	for _, x := range a {
		for _, y := range b {
			if x == y {
				out = append(out, x)
			}
		}
	}
	return out
}

func unionDigits(a, b []uint8) []uint8 {
	set := map[uint8]bool{}
	for _, x := range a {
		set[x] = true
	}
	for _, x := range b {
		set[x] = true
	}
	var out []uint8
	for v := uint8(1); v <= 32; v++ {
		if set[v] {
			out = append(out, v)
		}
	}
	return out
}

func isSubset(sub, super []uint8) bool {
	for _, x := range sub {
		found := false
		for _, y := range super {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func digitSetEquals(a, b []uint8) bool {
	return isSubset(a, b) && isSubset(b, a) && len(a) == len(b)
}

func otherDigit(pair []uint8, not int) int {
	for _, d := range pair {
		if int(d) != not {
			return int(d)
		}
	}
	return not
}
